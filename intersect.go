// Package geom3d dispatches geometric queries between any two shapes of the
// shape package.
//
// Intersect picks the dedicated algorithm for a pair regardless of argument
// order, Overlaps answers the boolean question with an AABB pre-filter and
// GJK for solids, and FindOverlaps runs both over a whole set of shapes.
package geom3d

import (
	"errors"
	"fmt"

	"github.com/akmonengine/geom3d/gjk"
	"github.com/akmonengine/geom3d/shape"
)

// ErrUnsupported is returned for pairs of geometries without an algorithm.
var ErrUnsupported = errors.New("unsupported geometry pair")

// rank orders geometry kinds so that every pair is handled once, with the
// lower ranked geometry first.
func rank(g shape.Geometry) int {
	switch g.(type) {
	case *shape.Point:
		return 0
	case *shape.Line:
		return 1
	case *shape.Ray:
		return 2
	case *shape.LineSegment:
		return 3
	case *shape.Plane:
		return 4
	case *shape.Triangle:
		return 5
	case *shape.Rectangle:
		return 6
	case *shape.ConvexArea:
		return 7
	case *shape.PolygonNoInternalHoles:
		return 8
	case *shape.Tetrahedron:
		return 9
	}
	return -1
}

func unsupported(a, b shape.Geometry) error {
	return fmt.Errorf("%T and %T: %w", a, b, ErrUnsupported)
}

// Intersect returns the intersection of a and b, or nil when they do not
// meet. The result does not depend on argument order.
func Intersect(a, b shape.Geometry, epsilon float64) (shape.Geometry, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("nil geometry: %w", ErrUnsupported)
	}
	if rank(a) < 0 || rank(b) < 0 {
		return nil, unsupported(a, b)
	}
	if rank(a) > rank(b) {
		a, b = b, a
	}

	if p, ok := a.(*shape.Point); ok {
		return intersectPoint(*p, b, epsilon)
	}

	switch x := a.(type) {
	case *shape.Line:
		return intersectLine(*x, b, epsilon)
	case *shape.Ray:
		return intersectRay(*x, b, epsilon)
	case *shape.LineSegment:
		return intersectLineSegment(*x, b, epsilon)
	case *shape.Plane:
		return intersectPlane(*x, b, epsilon)
	case *shape.Triangle:
		switch y := b.(type) {
		case *shape.Triangle:
			return x.IntersectTriangle(y, epsilon), nil
		case *shape.Rectangle:
			return y.IntersectTriangle(x, epsilon), nil
		case *shape.ConvexArea:
			return y.IntersectTriangle(x, epsilon), nil
		case *shape.PolygonNoInternalHoles:
			return y.IntersectTriangle(x, epsilon), nil
		case *shape.Tetrahedron:
			return y.IntersectTriangle(x, epsilon), nil
		}
	case *shape.Rectangle:
		switch y := b.(type) {
		case *shape.Rectangle:
			return x.IntersectRectangle(y, epsilon), nil
		case *shape.ConvexArea:
			return y.IntersectRectangle(x, epsilon), nil
		case *shape.PolygonNoInternalHoles:
			return y.IntersectRectangle(x, epsilon), nil
		case *shape.Tetrahedron:
			return y.IntersectRectangle(x, epsilon), nil
		}
	case *shape.ConvexArea:
		switch y := b.(type) {
		case *shape.ConvexArea:
			return x.IntersectConvexArea(y, epsilon), nil
		case *shape.PolygonNoInternalHoles:
			return y.IntersectConvexArea(x, epsilon), nil
		case *shape.Tetrahedron:
			return y.IntersectConvexArea(x, epsilon), nil
		}
	case *shape.PolygonNoInternalHoles:
		if y, ok := b.(*shape.Tetrahedron); ok {
			return y.IntersectPolygon(x, epsilon), nil
		}
	}
	return nil, unsupported(a, b)
}

func intersectPoint(p shape.Point, g shape.Geometry, epsilon float64) (shape.Geometry, error) {
	var hit bool
	switch x := g.(type) {
	case *shape.Point:
		hit = p.Equals(*x, epsilon)
	case *shape.Line:
		hit = x.IsIntersectedBy(p, epsilon)
	case *shape.Ray:
		hit = x.IsIntersectedBy(p, epsilon)
	case *shape.LineSegment:
		hit = x.IsIntersectedBy(p, epsilon)
	case *shape.Plane:
		hit = x.IsOnPlane(p, epsilon)
	case *shape.Triangle:
		hit = x.IsIntersectedBy(p, epsilon)
	case *shape.Rectangle:
		hit = x.IsIntersectedBy(p, epsilon)
	case *shape.ConvexArea:
		hit = x.IsIntersectedBy(p, epsilon)
	case *shape.PolygonNoInternalHoles:
		hit = x.IsIntersectedBy(p, epsilon)
	case *shape.Tetrahedron:
		hit = x.IsIntersectedBy(p, epsilon)
	default:
		return nil, unsupported(&p, g)
	}

	if !hit {
		return nil, nil
	}
	return &p, nil
}

// locusTarget is implemented by every shape that can be cut by the three
// straight loci.
type locusTarget interface {
	IntersectLine(l shape.Line, epsilon float64) shape.Geometry
	IntersectRay(r shape.Ray, epsilon float64) shape.Geometry
	IntersectLineSegment(s shape.LineSegment, epsilon float64) shape.Geometry
}

func intersectLine(l shape.Line, g shape.Geometry, epsilon float64) (shape.Geometry, error) {
	if t, ok := g.(locusTarget); ok {
		return t.IntersectLine(l, epsilon), nil
	}
	return nil, unsupported(&l, g)
}

func intersectRay(r shape.Ray, g shape.Geometry, epsilon float64) (shape.Geometry, error) {
	if t, ok := g.(locusTarget); ok {
		return t.IntersectRay(r, epsilon), nil
	}
	return nil, unsupported(&r, g)
}

func intersectLineSegment(s shape.LineSegment, g shape.Geometry, epsilon float64) (shape.Geometry, error) {
	if t, ok := g.(locusTarget); ok {
		return t.IntersectLineSegment(s, epsilon), nil
	}
	return nil, unsupported(&s, g)
}

func intersectPlane(pl shape.Plane, g shape.Geometry, epsilon float64) (shape.Geometry, error) {
	switch x := g.(type) {
	case *shape.Plane:
		return pl.IntersectPlane(*x, epsilon), nil
	case *shape.Triangle:
		return x.IntersectPlane(pl, epsilon), nil
	case *shape.Rectangle:
		return x.IntersectPlane(pl, epsilon), nil
	case *shape.ConvexArea:
		return x.IntersectPlane(pl, epsilon), nil
	case *shape.Tetrahedron:
		return x.IntersectPlane(pl, epsilon), nil
	}
	return nil, unsupported(&pl, g)
}

// Overlaps reports whether a and b share at least one point.
//
// Disjoint bounding boxes answer false right away. Two tetrahedra are tested
// with GJK; every other pair falls back to Intersect.
func Overlaps(a, b shape.FiniteGeometry, epsilon float64) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("nil geometry: %w", ErrUnsupported)
	}
	if !a.AABB().Intersects(b.AABB(), epsilon) {
		return false, nil
	}

	ta, aSolid := a.(*shape.Tetrahedron)
	tb, bSolid := b.(*shape.Tetrahedron)
	if aSolid && bSolid {
		return gjk.Overlap(ta, tb, epsilon), nil
	}

	g, err := Intersect(a, b, epsilon)
	if err != nil {
		return false, err
	}
	return g != nil, nil
}

// Distance returns the distance from pt to g.
func Distance(pt shape.Point, g shape.Geometry) (float64, error) {
	switch x := g.(type) {
	case *shape.Point:
		return pt.Distance(*x), nil
	case *shape.Line:
		return x.Distance(pt), nil
	case *shape.Ray:
		return x.Distance(pt), nil
	case *shape.LineSegment:
		return x.Distance(pt), nil
	case *shape.Plane:
		return x.Distance(pt), nil
	case *shape.Triangle:
		return x.Distance(pt), nil
	case *shape.Rectangle:
		return x.Distance(pt), nil
	case *shape.ConvexArea:
		return x.Distance(pt), nil
	case *shape.Tetrahedron:
		return x.Distance(pt), nil
	}
	return 0, unsupported(&pt, g)
}
