package shape

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// LineSegment joins L.P (t = 0) to L.P + L.V (t = 1).
type LineSegment struct {
	L Line
}

// NewLineSegment creates the segment from p to q.
func NewLineSegment(p, q Point, epsilon float64) (*LineSegment, error) {
	l, err := NewLineFromPoints(p, q, epsilon)
	if err != nil {
		return nil, fmt.Errorf("line segment: %w", err)
	}
	return &LineSegment{L: *l}, nil
}

// SegmentOrPoint returns the segment pq, or a *Point when p and q coincide.
func SegmentOrPoint(p, q Point, epsilon float64) FiniteGeometry {
	s, err := NewLineSegment(p, q, epsilon)
	if err != nil {
		return &p
	}
	return s
}

func (s LineSegment) locus() locus {
	return locus{Origin: s.L.P.Abs(), Dir: s.L.V, Lo: 0, Hi: 1, Offset: s.L.P.Offset}
}

// P returns the start point.
func (s LineSegment) P() Point {
	return s.L.P
}

// Q returns the end point.
func (s LineSegment) Q() Point {
	return s.L.Q()
}

// Length returns the distance between both endpoints.
func (s LineSegment) Length() float64 {
	return s.L.V.Len()
}

// Midpoint returns the middle of the segment.
func (s LineSegment) Midpoint() Point {
	return pointFromAbs(s.L.P.Offset, s.locus().at(0.5))
}

// Reverse returns the segment from Q to P.
func (s LineSegment) Reverse() LineSegment {
	return LineSegment{L: Line{P: s.Q(), V: s.L.V.Mul(-1)}}
}

// IsIntersectedBy reports whether pt lies on the segment.
func (s LineSegment) IsIntersectedBy(pt Point, epsilon float64) bool {
	return s.locus().isIntersectedBy(pt.Abs(), epsilon)
}

// Distance returns the distance from pt to the segment.
func (s LineSegment) Distance(pt Point) float64 {
	return s.locus().distance(pt.Abs())
}

// ClosestPoint returns the point of the segment closest to pt.
func (s LineSegment) ClosestPoint(pt Point) Point {
	return pointFromAbs(s.L.P.Offset, s.locus().closest(pt.Abs()))
}

// Equals compares endpoints in order.
func (s LineSegment) Equals(other LineSegment, epsilon float64) bool {
	return s.P().Equals(other.P(), epsilon) && s.Q().Equals(other.Q(), epsilon)
}

// EqualsIgnoreDirection compares endpoints in either order.
func (s LineSegment) EqualsIgnoreDirection(other LineSegment, epsilon float64) bool {
	return s.Equals(other, epsilon) || s.Equals(other.Reverse(), epsilon)
}

// IntersectLine returns nil, a *Point or the *LineSegment when it lies on l.
func (s LineSegment) IntersectLine(l Line, epsilon float64) Geometry {
	return intersectLoci(s.locus(), l.locus(), epsilon)
}

// IntersectRay returns nil, a *Point or the overlapping *LineSegment.
func (s LineSegment) IntersectRay(r Ray, epsilon float64) Geometry {
	return intersectLoci(s.locus(), r.locus(), epsilon)
}

// IntersectLineSegment returns nil, a *Point or the overlapping
// *LineSegment.
func (s LineSegment) IntersectLineSegment(other LineSegment, epsilon float64) Geometry {
	return intersectLoci(s.locus(), other.locus(), epsilon)
}

// IntersectPlane returns nil, a *Point or the *LineSegment when it lies in
// pl.
func (s LineSegment) IntersectPlane(pl Plane, epsilon float64) Geometry {
	return pl.intersectLocus(s.locus(), epsilon)
}

// AABB returns the bounding box of both endpoints.
func (s LineSegment) AABB() AABB {
	return NewAABB(s.P(), s.Q())
}

// Points returns both endpoints.
func (s LineSegment) Points() []Point {
	return []Point{s.P(), s.Q()}
}

// Centroid returns the midpoint.
func (s LineSegment) Centroid() Point {
	return s.Midpoint()
}

// Support returns the endpoint furthest along direction.
func (s LineSegment) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return supportOf(s.Points(), direction)
}

// Translate moves the segment by v.
func (s *LineSegment) Translate(v mgl64.Vec3) {
	s.L.Translate(v)
}

// Rotate rotates the segment about axis.
func (s *LineSegment) Rotate(axis Ray, theta, epsilon float64) {
	s.L.Rotate(axis, theta, epsilon)
}
