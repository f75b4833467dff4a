package shape

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a non-degenerate triangle. Its plane is cached and recomputed
// by every mutator; the vertices must not be assigned directly.
type Triangle struct {
	P, Q, R Point
	plane   Plane
}

// NewTriangle creates the triangle pqr. Its plane normal is (q-p)×(r-p).
func NewTriangle(p, q, r Point, epsilon float64) (*Triangle, error) {
	if collinear(p.Abs(), q.Abs(), r.Abs(), epsilon) {
		return nil, fmt.Errorf("triangle %v, %v, %v: %w", p.Abs(), q.Abs(), r.Abs(), ErrCollinear)
	}
	return newTriangle(p, q, r), nil
}

// TriangleGeometry returns the triangle pqr, or the segment or point it
// degenerates to.
func TriangleGeometry(p, q, r Point, epsilon float64) FiniteGeometry {
	return GeometryOf([]Point{p, q, r}, epsilon)
}

func newTriangle(p, q, r Point) *Triangle {
	t := &Triangle{P: p, Q: q, R: r}
	t.update()
	return t
}

func (t *Triangle) update() {
	t.plane = Plane{P: t.P, N: normalOf(t.P.Abs(), t.Q.Abs(), t.R.Abs())}
}

func (t *Triangle) flat() flat {
	return newFlat(t.plane, t.Points())
}

// Plane returns the supporting plane.
func (t *Triangle) Plane() Plane {
	return t.plane
}

// Points returns P, Q and R.
func (t *Triangle) Points() []Point {
	return []Point{t.P, t.Q, t.R}
}

// PQ returns the edge from P to Q.
func (t *Triangle) PQ() LineSegment {
	return LineSegment{L: Line{P: t.P, V: t.Q.Abs().Sub(t.P.Abs())}}
}

// QR returns the edge from Q to R.
func (t *Triangle) QR() LineSegment {
	return LineSegment{L: Line{P: t.Q, V: t.R.Abs().Sub(t.Q.Abs())}}
}

// RP returns the edge from R to P.
func (t *Triangle) RP() LineSegment {
	return LineSegment{L: Line{P: t.R, V: t.P.Abs().Sub(t.R.Abs())}}
}

// Area returns half the magnitude of the plane normal.
func (t *Triangle) Area() float64 {
	return t.plane.N.Len() / 2
}

// Perimeter returns the sum of the edge lengths.
func (t *Triangle) Perimeter() float64 {
	return t.PQ().Length() + t.QR().Length() + t.RP().Length()
}

// Centroid returns the vertex mean.
func (t *Triangle) Centroid() Point {
	return meanPoint(t.Points())
}

// AABB returns the bounding box of the vertices.
func (t *Triangle) AABB() AABB {
	return NewAABB(t.P, t.Q, t.R)
}

// Support returns the vertex furthest along direction.
func (t *Triangle) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return supportOf(t.Points(), direction)
}

// IsAligned reports whether pt projects inside the triangle, that is, lies
// inside the infinite prism over it.
func (t *Triangle) IsAligned(pt Point, epsilon float64) bool {
	return t.flat().isAligned(pt.Abs(), epsilon)
}

// IsIntersectedBy reports whether pt lies on the triangle, edges included.
func (t *Triangle) IsIntersectedBy(pt Point, epsilon float64) bool {
	if !t.plane.IsOnPlane(pt, epsilon) {
		return false
	}
	// Signed distance of pt to each edge, in the plane. Vertices run counter
	// clockwise about the normal, so inside is positive for every edge.
	n := t.plane.unitNormal()
	v := pt.Abs()
	vertices := [3]mgl64.Vec3{t.P.Abs(), t.Q.Abs(), t.R.Abs()}
	for i, a := range vertices {
		edge := vertices[(i+1)%3].Sub(a)
		if edge.Cross(v.Sub(a)).Dot(n)/edge.Len() < -epsilon {
			return false
		}
	}
	return true
}

// Distance returns the distance from pt to the triangle.
func (t *Triangle) Distance(pt Point) float64 {
	return t.flat().distance(pt.Abs())
}

// Equals reports whether both triangles have the same vertices in any order.
func (t *Triangle) Equals(other *Triangle, epsilon float64) bool {
	mine := t.Points()
	for _, perm := range [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}} {
		theirs := other.Points()
		if mine[0].Equals(theirs[perm[0]], epsilon) &&
			mine[1].Equals(theirs[perm[1]], epsilon) &&
			mine[2].Equals(theirs[perm[2]], epsilon) {
			return true
		}
	}
	return false
}

// IntersectLine returns nil, a *Point or a *LineSegment.
func (t *Triangle) IntersectLine(l Line, epsilon float64) Geometry {
	return t.flat().intersectLocus(l.locus(), epsilon)
}

// IntersectRay returns nil, a *Point or a *LineSegment.
func (t *Triangle) IntersectRay(r Ray, epsilon float64) Geometry {
	return t.flat().intersectLocus(r.locus(), epsilon)
}

// IntersectLineSegment returns nil, a *Point or a *LineSegment.
func (t *Triangle) IntersectLineSegment(s LineSegment, epsilon float64) Geometry {
	return t.flat().intersectLocus(s.locus(), epsilon)
}

// IntersectPlane returns nil, a *Point, a *LineSegment, or a copy of the
// triangle when it lies in pl.
func (t *Triangle) IntersectPlane(pl Plane, epsilon float64) Geometry {
	g, coplanar := t.flat().intersectPlane(pl, epsilon)
	if coplanar {
		return t.copy()
	}
	return g
}

// IntersectTriangle returns nil, a *Point, a *LineSegment, a *Triangle or a
// *ConvexArea with up to 6 sides.
func (t *Triangle) IntersectTriangle(other *Triangle, epsilon float64) Geometry {
	return t.flat().intersectFlat(other.flat(), epsilon)
}

func (t *Triangle) copy() *Triangle {
	c := *t
	return &c
}

// Translate moves the triangle by v.
func (t *Triangle) Translate(v mgl64.Vec3) {
	t.P.Translate(v)
	t.Q.Translate(v)
	t.R.Translate(v)
	t.update()
}

// Rotate rotates the triangle about axis.
func (t *Triangle) Rotate(axis Ray, theta, epsilon float64) {
	r := newRotation(axis, theta, epsilon)
	r.point(&t.P)
	r.point(&t.Q)
	r.point(&t.R)
	t.update()
}
