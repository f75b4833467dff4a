// Package shape holds the geometric primitives of the kernel and their
// pairwise operations.
//
// Every approximate predicate takes an explicit epsilon. Intersections return
// a Geometry, nil when the operands do not meet; the dynamic type of a non nil
// result tells its kind (*Point, *LineSegment, *Triangle, ...).
package shape

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is anything that can be moved rigidly in place.
type Geometry interface {
	Translate(v mgl64.Vec3)
	Rotate(axis Ray, theta, epsilon float64)
}

// FiniteGeometry is a bounded geometry described by a finite set of points.
type FiniteGeometry interface {
	Geometry
	AABB() AABB
	Points() []Point
	Centroid() Point
}

// GeometryOf returns the simplest geometry spanned by a set of coplanar
// points: nil for no point, a *Point, a *LineSegment between the extreme
// points of a collinear set, a *Triangle, or the *ConvexArea of their hull.
func GeometryOf(points []Point, epsilon float64) FiniteGeometry {
	points = Unique(points, epsilon)
	switch len(points) {
	case 0:
		return nil
	case 1:
		p := points[0]
		return &p
	}

	// Farthest point from the first one fixes the line direction.
	a := points[0].Abs()
	far := 0
	for i, p := range points {
		if p.Abs().Sub(a).Len() > points[far].Abs().Sub(a).Len() {
			far = i
		}
	}
	axis := locus{Origin: a, Dir: points[far].Abs().Sub(a)}

	// Farthest point from that line fixes the plane.
	off, offDist := -1, epsilon
	for i, p := range points {
		if d := axis.lineDistance(p.Abs()); d > offDist {
			off, offDist = i, d
		}
	}

	if off < 0 {
		lo, hi := 0, 0
		for i, p := range points {
			t := axis.param(p.Abs())
			if t < axis.param(points[lo].Abs()) {
				lo = i
			}
			if t > axis.param(points[hi].Abs()) {
				hi = i
			}
		}
		return SegmentOrPoint(points[lo], points[hi], epsilon)
	}

	if len(points) == 3 {
		if t, err := NewTriangle(points[0], points[1], points[2], epsilon); err == nil {
			return t
		}
	}

	normal := normalOf(a, points[far].Abs(), points[off].Abs())
	area, err := NewConvexArea(normal, epsilon, points...)
	if err != nil {
		return SegmentOrPoint(points[0], points[far], epsilon)
	}
	if len(area.pts) == 3 {
		return newTriangle(area.pts[0], area.pts[1], area.pts[2])
	}
	return area
}

// convexHull returns the indices of the convex hull of points, counter
// clockwise about normal. Vertices within epsilon of a hull edge are
// dropped.
func convexHull(points []mgl64.Vec3, normal mgl64.Vec3, epsilon float64) []int {
	u, w := tangentBasis(normal)
	origin := points[0]

	type planar struct {
		x, y  float64
		index int
	}
	projected := make([]planar, len(points))
	for i, p := range points {
		d := p.Sub(origin)
		projected[i] = planar{x: d.Dot(u), y: d.Dot(w), index: i}
	}
	sort.Slice(projected, func(i, j int) bool {
		if projected[i].x != projected[j].x {
			return projected[i].x < projected[j].x
		}
		return projected[i].y < projected[j].y
	})

	// turn is positive for a counter clockwise turn o -> a -> b that bends
	// away from the line ob by more than epsilon.
	turn := func(o, a, b planar) bool {
		cross := (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
		length := mgl64.Vec2{b.x - o.x, b.y - o.y}.Len()
		return cross > epsilon*length
	}

	hull := make([]planar, 0, 2*len(projected))
	for _, p := range projected {
		for len(hull) >= 2 && !turn(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(projected) - 2; i >= 0; i-- {
		p := projected[i]
		for len(hull) >= lower && !turn(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1]

	indices := make([]int, len(hull))
	for i, p := range hull {
		indices[i] = p.index
	}
	return indices
}

// union combines two pieces of a convex intersection.
func union(a, b Geometry, epsilon float64) Geometry {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	fa, okA := a.(FiniteGeometry)
	fb, okB := b.(FiniteGeometry)
	if !okA || !okB {
		return a
	}
	g := GeometryOf(append(fa.Points(), fb.Points()...), epsilon)
	if g == nil {
		return nil
	}
	return g
}

// cyclicEquals reports whether b is a cyclic shift of a, in either
// direction.
func cyclicEquals(a, b []Point, epsilon float64) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	for shift := 0; shift < n; shift++ {
		for _, dir := range []int{1, -1} {
			match := true
			for i := 0; i < n; i++ {
				j := ((shift+dir*i)%n + n) % n
				if !a[i].Equals(b[j], epsilon) {
					match = false
					break
				}
			}
			if match {
				return true
			}
		}
	}
	return false
}
