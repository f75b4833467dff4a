package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane is the plane through P with normal N. N does not need to be unit
// length; its orientation defines the positive side.
type Plane struct {
	P Point
	N mgl64.Vec3
}

// NewPlane creates the plane through p with normal n.
func NewPlane(p Point, n mgl64.Vec3, epsilon float64) (*Plane, error) {
	if IsZero(n, epsilon) {
		return nil, fmt.Errorf("plane through %v: %w", p.Abs(), ErrZeroVector)
	}
	return &Plane{P: p, N: n}, nil
}

// NewPlaneFromPoints creates the plane through p, q and r with normal
// (q-p)×(r-p).
func NewPlaneFromPoints(p, q, r Point, epsilon float64) (*Plane, error) {
	if collinear(p.Abs(), q.Abs(), r.Abs(), epsilon) {
		return nil, fmt.Errorf("plane through %v, %v and %v: %w", p.Abs(), q.Abs(), r.Abs(), ErrCollinear)
	}
	return &Plane{P: p, N: normalOf(p.Abs(), q.Abs(), r.Abs())}, nil
}

func normalOf(p, q, r mgl64.Vec3) mgl64.Vec3 {
	return q.Sub(p).Cross(r.Sub(p))
}

// collinear reports whether one of p, q, r is within epsilon of the line
// through the two others, or two of them coincide.
func collinear(p, q, r mgl64.Vec3, epsilon float64) bool {
	// Measure from the longest side so the distance is well conditioned.
	a, b, c := p, q, r
	longest := q.Sub(p).Len()
	if d := r.Sub(q).Len(); d > longest {
		a, b, c, longest = q, r, p, d
	}
	if d := p.Sub(r).Len(); d > longest {
		a, b, c, longest = r, p, q, d
	}
	if longest <= epsilon {
		return true
	}
	if VectorEquals(a, c, epsilon) || VectorEquals(b, c, epsilon) {
		return true
	}
	return b.Sub(a).Cross(c.Sub(a)).Len()/longest <= epsilon
}

func (pl Plane) unitNormal() mgl64.Vec3 {
	return pl.N.Normalize()
}

// SignedDistance returns the distance from pt to the plane, positive on the
// side N points to.
func (pl Plane) SignedDistance(pt Point) float64 {
	return pl.signedDistance(pt.Abs())
}

func (pl Plane) signedDistance(v mgl64.Vec3) float64 {
	return v.Sub(pl.P.Abs()).Dot(pl.unitNormal())
}

// Distance returns the unsigned distance from pt to the plane.
func (pl Plane) Distance(pt Point) float64 {
	return math.Abs(pl.SignedDistance(pt))
}

// Side returns 1 when pt is on the side N points to, -1 on the other side
// and 0 when pt is within epsilon of the plane.
func (pl Plane) Side(pt Point, epsilon float64) int {
	d := pl.SignedDistance(pt)
	switch {
	case d > epsilon:
		return 1
	case d < -epsilon:
		return -1
	}
	return 0
}

// IsOnPlane reports whether pt is within epsilon of the plane.
func (pl Plane) IsOnPlane(pt Point, epsilon float64) bool {
	return pl.Distance(pt) <= epsilon
}

// IsCoplanar reports whether every point lies on the plane.
func (pl Plane) IsCoplanar(epsilon float64, points ...Point) bool {
	for _, p := range points {
		if !pl.IsOnPlane(p, epsilon) {
			return false
		}
	}
	return true
}

// PointOfProjection returns the orthogonal projection of pt on the plane.
func (pl Plane) PointOfProjection(pt Point) Point {
	n := pl.unitNormal()
	abs := pt.Abs()
	return pointFromAbs(pl.P.Offset, abs.Sub(n.Mul(pl.signedDistance(abs))))
}

// IsParallel reports whether both planes have parallel normals.
func (pl Plane) IsParallel(other Plane, epsilon float64) bool {
	return IsScalarMultiple(pl.N, other.N, epsilon)
}

// IsParallelTo reports whether l is parallel to the plane (in it or not).
func (pl Plane) IsParallelTo(l Line, epsilon float64) bool {
	return math.Abs(pl.unitNormal().Dot(l.V.Normalize())) <= epsilon
}

// Equals reports whether both planes are the same set with normals pointing
// the same way.
func (pl Plane) Equals(other Plane, epsilon float64) bool {
	return pl.EqualsIgnoreOrientation(other, epsilon) && pl.N.Dot(other.N) > 0
}

// EqualsIgnoreOrientation reports whether both planes are the same set.
func (pl Plane) EqualsIgnoreOrientation(other Plane, epsilon float64) bool {
	return pl.IsParallel(other, epsilon) && pl.IsOnPlane(other.P, epsilon)
}

// crossing finds where lc meets the plane. inPlane is set when the whole
// locus lies in the plane; ok is false when they do not meet.
func (pl Plane) crossing(lc locus, epsilon float64) (t float64, inPlane, ok bool) {
	n := pl.unitNormal()
	num := pl.signedDistance(lc.Origin)
	rate := n.Dot(lc.Dir)

	if math.Abs(n.Dot(lc.Dir.Normalize())) <= epsilon {
		if math.Abs(num) <= epsilon {
			return 0, true, true
		}
		return 0, false, false
	}

	t = -num / rate
	if !lc.contains(t, epsilon) {
		return 0, false, false
	}
	return lc.clamp(t), false, true
}

func (pl Plane) intersectLocus(lc locus, epsilon float64) Geometry {
	t, inPlane, ok := pl.crossing(lc, epsilon)
	if !ok {
		return nil
	}
	if inPlane {
		return lc.piece(lc.Lo, lc.Hi, epsilon)
	}
	p := pointFromAbs(lc.Offset, lc.at(t))
	return &p
}

// IntersectLine returns nil, a *Point or l when it lies in the plane.
func (pl Plane) IntersectLine(l Line, epsilon float64) Geometry {
	return pl.intersectLocus(l.locus(), epsilon)
}

// IntersectRay returns nil, a *Point or r when it lies in the plane.
func (pl Plane) IntersectRay(r Ray, epsilon float64) Geometry {
	return pl.intersectLocus(r.locus(), epsilon)
}

// IntersectLineSegment returns nil, a *Point or s when it lies in the plane.
func (pl Plane) IntersectLineSegment(s LineSegment, epsilon float64) Geometry {
	return pl.intersectLocus(s.locus(), epsilon)
}

// IntersectPlane returns nil for parallel distinct planes, a copy of the
// plane when both are equal, and otherwise their *Line of intersection.
func (pl Plane) IntersectPlane(other Plane, epsilon float64) Geometry {
	if pl.IsParallel(other, epsilon) {
		if pl.IsOnPlane(other.P, epsilon) {
			c := pl
			return &c
		}
		return nil
	}

	n1, n2 := pl.unitNormal(), other.unitNormal()
	d1, d2 := n1.Dot(pl.P.Abs()), n2.Dot(other.P.Abs())
	n12 := n1.Dot(n2)
	det := 1 - n12*n12

	c1 := (d1 - d2*n12) / det
	c2 := (d2 - d1*n12) / det
	origin := n1.Mul(c1).Add(n2.Mul(c2))

	return &Line{P: pointFromAbs(pl.P.Offset, origin), V: n1.Cross(n2)}
}

// Translate moves the plane by v.
func (pl *Plane) Translate(v mgl64.Vec3) {
	pl.P.Translate(v)
}

// Rotate rotates the plane about axis.
func (pl *Plane) Rotate(axis Ray, theta, epsilon float64) {
	r := newRotation(axis, theta, epsilon)
	r.point(&pl.P)
	pl.N = r.vector(pl.N)
}
