package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is the half-line L.P + t*L.V, t >= 0.
type Ray struct {
	L Line
}

// NewRay creates the ray starting at p with direction v.
func NewRay(p Point, v mgl64.Vec3, epsilon float64) (*Ray, error) {
	l, err := NewLine(p, v, epsilon)
	if err != nil {
		return nil, fmt.Errorf("ray: %w", err)
	}
	return &Ray{L: *l}, nil
}

// NewRayFromPoints creates the ray starting at p and passing through q.
func NewRayFromPoints(p, q Point, epsilon float64) (*Ray, error) {
	l, err := NewLineFromPoints(p, q, epsilon)
	if err != nil {
		return nil, fmt.Errorf("ray: %w", err)
	}
	return &Ray{L: *l}, nil
}

func (r Ray) locus() locus {
	return locus{Origin: r.L.P.Abs(), Dir: r.L.V, Lo: 0, Hi: math.Inf(1), Offset: r.L.P.Offset}
}

// Origin returns the starting point.
func (r Ray) Origin() Point {
	return r.L.P
}

// IsIntersectedBy reports whether pt lies on the ray.
func (r Ray) IsIntersectedBy(pt Point, epsilon float64) bool {
	return r.locus().isIntersectedBy(pt.Abs(), epsilon)
}

// Distance returns the distance from pt to the ray.
func (r Ray) Distance(pt Point) float64 {
	return r.locus().distance(pt.Abs())
}

// ClosestPoint returns the point of the ray closest to pt.
func (r Ray) ClosestPoint(pt Point) Point {
	return pointFromAbs(r.L.P.Offset, r.locus().closest(pt.Abs()))
}

// Equals reports whether both rays start at the same point and point the
// same way.
func (r Ray) Equals(other Ray, epsilon float64) bool {
	return r.L.P.Equals(other.L.P, epsilon) &&
		r.L.IsParallel(other.L, epsilon) &&
		r.L.V.Dot(other.L.V) > 0
}

// IntersectLine returns nil, a *Point or the *Ray when it lies on l.
func (r Ray) IntersectLine(l Line, epsilon float64) Geometry {
	return intersectLoci(r.locus(), l.locus(), epsilon)
}

// IntersectRay returns nil, a *Point, a *LineSegment for opposite
// overlapping rays, or a *Ray for rays pointing the same way.
func (r Ray) IntersectRay(other Ray, epsilon float64) Geometry {
	return intersectLoci(r.locus(), other.locus(), epsilon)
}

// IntersectLineSegment returns nil, a *Point or a *LineSegment.
func (r Ray) IntersectLineSegment(s LineSegment, epsilon float64) Geometry {
	return intersectLoci(s.locus(), r.locus(), epsilon)
}

// IntersectPlane returns nil, a *Point or the *Ray when it lies in pl.
func (r Ray) IntersectPlane(pl Plane, epsilon float64) Geometry {
	return pl.intersectLocus(r.locus(), epsilon)
}

// Translate moves the ray by v.
func (r *Ray) Translate(v mgl64.Vec3) {
	r.L.Translate(v)
}

// Rotate rotates the ray about axis.
func (r *Ray) Rotate(axis Ray, theta, epsilon float64) {
	r.L.Rotate(axis, theta, epsilon)
}
