package shape

import (
	"fmt"
	"math"

	"github.com/akmonengine/geom3d/clip"
	"github.com/go-gl/mathgl/mgl64"
)

// Tetrahedron is a non-degenerate solid tetrahedron. Its faces PQR, QSR,
// SPR and PSQ, wound so that their normals point outward, and their bounding
// half-spaces are recomputed by every mutator.
type Tetrahedron struct {
	P, Q, R, S Point
	faces      [4]*Triangle
	halfSpaces [4]clip.HalfSpace
}

// NewTetrahedron creates the tetrahedron pqrs.
func NewTetrahedron(p, q, r, s Point, epsilon float64) (*Tetrahedron, error) {
	base, err := NewPlaneFromPoints(p, q, r, epsilon)
	if err != nil {
		return nil, fmt.Errorf("tetrahedron %v, %v, %v, %v: %w: %w", p.Abs(), q.Abs(), r.Abs(), s.Abs(), ErrCoplanar, err)
	}
	if base.IsOnPlane(s, epsilon) {
		return nil, fmt.Errorf("tetrahedron %v, %v, %v, %v: %w", p.Abs(), q.Abs(), r.Abs(), s.Abs(), ErrCoplanar)
	}
	t := &Tetrahedron{P: p, Q: q, R: r, S: s}
	t.update()
	return t, nil
}

func (t *Tetrahedron) update() {
	type face struct {
		a, b, c, opposite Point
	}
	faces := [4]face{
		{t.P, t.Q, t.R, t.S},
		{t.Q, t.S, t.R, t.P},
		{t.S, t.P, t.R, t.Q},
		{t.P, t.S, t.Q, t.R},
	}
	for i, f := range faces {
		a := f.a.Abs()
		if normalOf(a, f.b.Abs(), f.c.Abs()).Dot(f.opposite.Abs().Sub(a)) > 0 {
			f.b, f.c = f.c, f.b
		}
		t.faces[i] = newTriangle(f.a, f.b, f.c)

		// Outward faces, inward half-spaces
		inward := t.faces[i].plane.unitNormal().Mul(-1)
		t.halfSpaces[i] = clip.HalfSpace{Point: a, Normal: inward}
	}
}

// Faces returns the faces PQR, QSR, SPR and PSQ. A face whose vertex order
// would make its normal point inward has its last two vertices swapped.
func (t *Tetrahedron) Faces() [4]*Triangle {
	var faces [4]*Triangle
	for i, f := range t.faces {
		faces[i] = f.copy()
	}
	return faces
}

// Points returns P, Q, R and S.
func (t *Tetrahedron) Points() []Point {
	return []Point{t.P, t.Q, t.R, t.S}
}

// Volume returns |(q-p)·((r-p)×(s-p))| / 6.
func (t *Tetrahedron) Volume() float64 {
	p := t.P.Abs()
	m := mgl64.Mat3FromCols(t.Q.Abs().Sub(p), t.R.Abs().Sub(p), t.S.Abs().Sub(p))
	return math.Abs(m.Det()) / 6
}

// Area returns the total area of the four faces.
func (t *Tetrahedron) Area() float64 {
	area := 0.0
	for _, f := range t.faces {
		area += f.Area()
	}
	return area
}

// Centroid returns the vertex mean.
func (t *Tetrahedron) Centroid() Point {
	return meanPoint(t.Points())
}

// AABB returns the bounding box of the vertices.
func (t *Tetrahedron) AABB() AABB {
	return NewAABB(t.Points()...)
}

// Support returns the vertex furthest along direction.
func (t *Tetrahedron) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return supportOf(t.Points(), direction)
}

// IsIntersectedBy reports whether pt lies inside the tetrahedron or on its
// boundary.
func (t *Tetrahedron) IsIntersectedBy(pt Point, epsilon float64) bool {
	v := pt.Abs()
	for _, h := range t.halfSpaces {
		if !h.Contains(v, epsilon) {
			return false
		}
	}
	return true
}

// Distance returns 0 for points inside and otherwise the distance to the
// closest face.
func (t *Tetrahedron) Distance(pt Point) float64 {
	if t.IsIntersectedBy(pt, 0) {
		return 0
	}
	best := math.Inf(1)
	for _, f := range t.faces {
		best = math.Min(best, f.Distance(pt))
	}
	return best
}

// Equals reports whether both tetrahedra have the same vertex set.
func (t *Tetrahedron) Equals(other *Tetrahedron, epsilon float64) bool {
	mine, theirs := t.Points(), other.Points()
	used := make([]bool, len(theirs))
	for _, p := range mine {
		found := false
		for j, q := range theirs {
			if !used[j] && p.Equals(q, epsilon) {
				used[j], found = true, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (t *Tetrahedron) intersectLocus(lc locus, epsilon float64) Geometry {
	lo, hi, ok := clip.Interval(lc.Origin, lc.Dir, lc.Lo, lc.Hi, t.halfSpaces[:], epsilon)
	if !ok {
		return nil
	}
	return lc.piece(lo, hi, epsilon)
}

// IntersectLine returns nil, a *Point or the *LineSegment inside the solid.
func (t *Tetrahedron) IntersectLine(l Line, epsilon float64) Geometry {
	return t.intersectLocus(l.locus(), epsilon)
}

// IntersectRay returns nil, a *Point or the *LineSegment inside the solid.
func (t *Tetrahedron) IntersectRay(r Ray, epsilon float64) Geometry {
	return t.intersectLocus(r.locus(), epsilon)
}

// IntersectLineSegment returns nil, a *Point or the *LineSegment inside the
// solid.
func (t *Tetrahedron) IntersectLineSegment(s LineSegment, epsilon float64) Geometry {
	return t.intersectLocus(s.locus(), epsilon)
}

// IntersectPlane returns the section of the solid by pl: nil, a *Point, a
// *LineSegment, a *Triangle or a quadrilateral *ConvexArea.
func (t *Tetrahedron) IntersectPlane(pl Plane, epsilon float64) Geometry {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	points, _, ok := sectionByPlane(absolutes(t.Points()), edges, pl, epsilon)
	if !ok {
		return nil
	}
	return GeometryOf(pointsFromAbs(t.P.Offset, points), epsilon)
}

// clipBoundary returns the part of a planar boundary inside the solid, in
// absolute coordinates.
func (t *Tetrahedron) clipBoundary(boundary []mgl64.Vec3, box AABB, epsilon float64) []mgl64.Vec3 {
	if !t.AABB().Intersects(box, epsilon) {
		return nil
	}
	return clip.PolygonAgainstHalfSpaces(boundary, t.halfSpaces[:], epsilon)
}

func (t *Tetrahedron) intersectFlat(f flat, epsilon float64) Geometry {
	clipped := t.clipBoundary(f.boundary, f.aabb(), epsilon)
	return GeometryOf(pointsFromAbs(f.offset, clipped), epsilon)
}

// IntersectTriangle returns the part of tri inside the solid.
func (t *Tetrahedron) IntersectTriangle(tri *Triangle, epsilon float64) Geometry {
	return t.intersectFlat(tri.flat(), epsilon)
}

// IntersectRectangle returns the part of r inside the solid.
func (t *Tetrahedron) IntersectRectangle(r *Rectangle, epsilon float64) Geometry {
	return t.intersectFlat(r.flat(), epsilon)
}

// IntersectConvexArea returns the part of c inside the solid.
func (t *Tetrahedron) IntersectConvexArea(c *ConvexArea, epsilon float64) Geometry {
	return t.intersectFlat(c.flat(), epsilon)
}

// IntersectPolygon returns the part of p inside the solid: nil, a *Point, a
// *LineSegment, a convex piece, or a *PolygonNoInternalHoles when the cut
// keeps a concavity. Pieces left disconnected by the cut are joined along
// the faces they were cut by.
func (t *Tetrahedron) IntersectPolygon(p *PolygonNoInternalHoles, epsilon float64) Geometry {
	clipped := t.clipBoundary(absolutes(p.pts), p.AABB(), epsilon)
	return p.piece(clipped, epsilon)
}

// Translate moves the tetrahedron by v.
func (t *Tetrahedron) Translate(v mgl64.Vec3) {
	t.P.Translate(v)
	t.Q.Translate(v)
	t.R.Translate(v)
	t.S.Translate(v)
	t.update()
}

// Rotate rotates the tetrahedron about axis.
func (t *Tetrahedron) Rotate(axis Ray, theta, epsilon float64) {
	r := newRotation(axis, theta, epsilon)
	r.point(&t.P)
	r.point(&t.Q)
	r.point(&t.R)
	r.point(&t.S)
	t.update()
}
