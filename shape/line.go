package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Line is the infinite line through P with direction V.
type Line struct {
	P Point
	V mgl64.Vec3
}

// NewLine creates the line through p with direction v.
func NewLine(p Point, v mgl64.Vec3, epsilon float64) (*Line, error) {
	if IsZero(v, epsilon) {
		return nil, fmt.Errorf("line through %v: %w", p.Abs(), ErrZeroVector)
	}
	return &Line{P: p, V: v}, nil
}

// NewLineFromPoints creates the line through p and q, directed from p to q.
func NewLineFromPoints(p, q Point, epsilon float64) (*Line, error) {
	if p.Equals(q, epsilon) {
		return nil, fmt.Errorf("line through %v and %v: %w", p.Abs(), q.Abs(), ErrCoincident)
	}
	return &Line{P: p, V: q.Abs().Sub(p.Abs())}, nil
}

func (l Line) locus() locus {
	return locus{Origin: l.P.Abs(), Dir: l.V, Lo: math.Inf(-1), Hi: math.Inf(1), Offset: l.P.Offset}
}

// Q returns P + V.
func (l Line) Q() Point {
	return pointFromAbs(l.P.Offset, l.P.Abs().Add(l.V))
}

// Direction returns V as a unit vector.
func (l Line) Direction() mgl64.Vec3 {
	return l.V.Normalize()
}

// IsIntersectedBy reports whether pt lies on the line.
func (l Line) IsIntersectedBy(pt Point, epsilon float64) bool {
	return l.locus().isIntersectedBy(pt.Abs(), epsilon)
}

// IsParallel reports whether both lines have parallel directions.
func (l Line) IsParallel(other Line, epsilon float64) bool {
	return IsScalarMultiple(l.V, other.V, epsilon)
}

// Equals reports whether both lines are the same set of points, regardless
// of their direction.
func (l Line) Equals(other Line, epsilon float64) bool {
	return l.IsParallel(other, epsilon) && l.IsIntersectedBy(other.P, epsilon)
}

// Distance returns the distance from pt to the line.
func (l Line) Distance(pt Point) float64 {
	return l.locus().distance(pt.Abs())
}

// ClosestPoint returns the orthogonal projection of pt on the line.
func (l Line) ClosestPoint(pt Point) Point {
	return pointFromAbs(l.P.Offset, l.locus().closest(pt.Abs()))
}

// DistanceLine returns the shortest distance between two lines.
func (l Line) DistanceLine(other Line, epsilon float64) float64 {
	if l.IsParallel(other, epsilon) {
		return l.Distance(other.P)
	}
	n := l.V.Cross(other.V)
	return math.Abs(other.P.Abs().Sub(l.P.Abs()).Dot(n)) / n.Len()
}

// LineOfShortestDistance returns the segment joining the closest points of
// two skew lines. It returns nil when the lines intersect or are parallel.
func (l Line) LineOfShortestDistance(other Line, epsilon float64) *LineSegment {
	a, b, ok := shortestSegment(l.locus(), other.locus(), epsilon)
	if !ok || VectorEquals(a, b, epsilon) {
		return nil
	}
	return &LineSegment{L: Line{P: pointFromAbs(l.P.Offset, a), V: b.Sub(a)}}
}

// IntersectLine returns nil, the crossing *Point, or a *Line when both
// lines are equal.
func (l Line) IntersectLine(other Line, epsilon float64) Geometry {
	return intersectLoci(l.locus(), other.locus(), epsilon)
}

// IntersectRay returns nil, a *Point or a *Ray.
func (l Line) IntersectRay(r Ray, epsilon float64) Geometry {
	return intersectLoci(r.locus(), l.locus(), epsilon)
}

// IntersectLineSegment returns nil, a *Point or a *LineSegment.
func (l Line) IntersectLineSegment(s LineSegment, epsilon float64) Geometry {
	return intersectLoci(s.locus(), l.locus(), epsilon)
}

// IntersectPlane returns nil, a *Point or the *Line itself when it lies in
// the plane.
func (l Line) IntersectPlane(pl Plane, epsilon float64) Geometry {
	return pl.intersectLocus(l.locus(), epsilon)
}

// Translate moves the line by v.
func (l *Line) Translate(v mgl64.Vec3) {
	l.P.Translate(v)
}

// Rotate rotates the line about axis.
func (l *Line) Rotate(axis Ray, theta, epsilon float64) {
	r := newRotation(axis, theta, epsilon)
	r.point(&l.P)
	l.V = r.vector(l.V)
}
