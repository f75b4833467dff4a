package shape

import (
	"math"

	"github.com/akmonengine/geom3d/clip"
	"github.com/go-gl/mathgl/mgl64"
)

// flat is the common view of the convex planar shapes (Triangle, Rectangle,
// ConvexArea): a supporting plane and an ordered convex boundary.
type flat struct {
	plane    Plane
	boundary []mgl64.Vec3
	offset   mgl64.Vec3
}

func newFlat(plane Plane, boundary []Point) flat {
	return flat{plane: plane, boundary: absolutes(boundary), offset: boundary[0].Offset}
}

func (f flat) aabb() AABB {
	box := AABB{Min: f.boundary[0], Max: f.boundary[0]}
	for _, v := range f.boundary[1:] {
		box = box.ExpandToPoint(v)
	}
	return box
}

// edgeHalfSpaces returns the in-plane half-spaces bounded by each edge,
// oriented towards the inside. Together they bound the infinite prism over
// the shape.
func (f flat) edgeHalfSpaces() []clip.HalfSpace {
	return edgeHalfSpaces(f.boundary, f.plane.unitNormal())
}

func edgeHalfSpaces(boundary []mgl64.Vec3, normal mgl64.Vec3) []clip.HalfSpace {
	var center mgl64.Vec3
	for _, v := range boundary {
		center = center.Add(v)
	}
	center = center.Mul(1 / float64(len(boundary)))

	halfSpaces := make([]clip.HalfSpace, 0, len(boundary))
	for i, a := range boundary {
		b := boundary[(i+1)%len(boundary)]
		m := normal.Cross(b.Sub(a))
		if m.Len() == 0 {
			continue
		}
		m = m.Normalize()
		if m.Dot(center.Sub(a)) < 0 {
			m = m.Mul(-1)
		}
		halfSpaces = append(halfSpaces, clip.HalfSpace{Point: a, Normal: m})
	}
	return halfSpaces
}

// isAligned reports whether v projects inside the shape.
func (f flat) isAligned(v mgl64.Vec3, epsilon float64) bool {
	for _, h := range f.edgeHalfSpaces() {
		if !h.Contains(v, epsilon) {
			return false
		}
	}
	return true
}

func (f flat) contains(v mgl64.Vec3, epsilon float64) bool {
	return math.Abs(f.plane.signedDistance(v)) <= epsilon && f.isAligned(v, epsilon)
}

func (f flat) distance(v mgl64.Vec3) float64 {
	if f.isAligned(v, 0) {
		return math.Abs(f.plane.signedDistance(v))
	}
	best := math.Inf(1)
	for i, a := range f.boundary {
		b := f.boundary[(i+1)%len(f.boundary)]
		edge := locus{Origin: a, Dir: b.Sub(a), Lo: 0, Hi: 1}
		if edge.Dir.Len() == 0 {
			continue
		}
		best = math.Min(best, edge.distance(v))
	}
	return best
}

// intersectLocus intersects a line, ray or segment with the shape.
func (f flat) intersectLocus(lc locus, epsilon float64) Geometry {
	t, inPlane, ok := f.plane.crossing(lc, epsilon)
	if !ok {
		return nil
	}
	if !inPlane {
		v := lc.at(t)
		if !f.isAligned(v, epsilon) {
			return nil
		}
		p := pointFromAbs(lc.Offset, v)
		return &p
	}

	lo, hi, ok := clip.Interval(lc.Origin, lc.Dir, lc.Lo, lc.Hi, f.edgeHalfSpaces(), epsilon)
	if !ok {
		return nil
	}
	return lc.piece(lo, hi, epsilon)
}

// intersectPlane returns the part of the shape lying in pl. coplanar is set
// when the whole shape lies in pl.
func (f flat) intersectPlane(pl Plane, epsilon float64) (Geometry, bool) {
	points, coplanar, ok := sectionByPlane(f.boundary, cycleEdges(len(f.boundary)), pl, epsilon)
	if coplanar {
		return nil, true
	}
	if !ok {
		return nil, false
	}
	return GeometryOf(pointsFromAbs(f.offset, points), epsilon), false
}

// liesIn reports whether every vertex is within epsilon of pl.
func (f flat) liesIn(pl Plane, epsilon float64) bool {
	for _, v := range f.boundary {
		if math.Abs(pl.signedDistance(v)) > epsilon {
			return false
		}
	}
	return true
}

// coplanar reports whether one shape lies within epsilon of the plane of the
// other.
func (f flat) coplanar(other flat, epsilon float64) bool {
	return f.liesIn(other.plane, epsilon) || other.liesIn(f.plane, epsilon)
}

// intersectFlat intersects two convex planar shapes.
func (f flat) intersectFlat(other flat, epsilon float64) Geometry {
	if !f.aabb().Intersects(other.aabb(), epsilon) {
		return nil
	}

	if f.coplanar(other, epsilon) {
		clipped := clip.PolygonAgainstHalfSpaces(other.boundary, f.edgeHalfSpaces(), epsilon)
		return GeometryOf(pointsFromAbs(f.offset, clipped), epsilon)
	}

	// The section of f by the other plane is a point or a segment, which is
	// then cut by the other shape.
	section, _ := f.intersectPlane(other.plane, epsilon)
	switch s := section.(type) {
	case *Point:
		if other.contains(s.Abs(), epsilon) {
			return s
		}
	case *LineSegment:
		return other.intersectLocus(s.locus(), epsilon)
	}
	return nil
}

func cycleEdges(n int) [][2]int {
	edges := make([][2]int, n)
	for i := range edges {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	return edges
}

// sectionByPlane returns the vertices lying on pl and the crossings of the
// edges straddling it. coplanar is set when every vertex lies on pl; ok is
// false when pl misses the vertices entirely.
func sectionByPlane(vertices []mgl64.Vec3, edges [][2]int, pl Plane, epsilon float64) (points []mgl64.Vec3, coplanar, ok bool) {
	dists := make([]float64, len(vertices))
	above, below := 0, 0
	for i, v := range vertices {
		dists[i] = pl.signedDistance(v)
		switch {
		case dists[i] > epsilon:
			above++
		case dists[i] < -epsilon:
			below++
		default:
			points = append(points, v)
		}
	}
	if above == 0 && below == 0 {
		return nil, true, true
	}
	if len(points) == 0 && (above == 0 || below == 0) {
		return nil, false, false
	}

	for _, e := range edges {
		da, db := dists[e[0]], dists[e[1]]
		if (da > epsilon && db < -epsilon) || (da < -epsilon && db > epsilon) {
			a, b := vertices[e[0]], vertices[e[1]]
			points = append(points, a.Add(b.Sub(a).Mul(da/(da-db))))
		}
	}
	return points, false, true
}
