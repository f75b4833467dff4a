package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rectangle is a planar rectangle with vertices P, Q, R, S in boundary
// order. It is split along the diagonal PR into the triangles PQR and RSP,
// which are recomputed by every mutator.
type Rectangle struct {
	P, Q, R, S Point
	pqr, rsp   *Triangle
}

// IsRectangle reports whether pqrs, in that order, is a rectangle: coplanar,
// right angles at every vertex and opposite sides of equal length.
func IsRectangle(p, q, r, s Point, epsilon float64) bool {
	plane, err := NewPlaneFromPoints(p, q, r, epsilon)
	if err != nil || !plane.IsOnPlane(s, epsilon) {
		return false
	}

	vertices := [4]mgl64.Vec3{p.Abs(), q.Abs(), r.Abs(), s.Abs()}
	for i, v := range vertices {
		next := vertices[(i+1)%4].Sub(v)
		prev := vertices[(i+3)%4].Sub(v)
		if next.Len() <= epsilon || prev.Len() <= epsilon {
			return false
		}
		// Projection of one edge on its neighbour
		if math.Abs(next.Dot(prev))/next.Len() > epsilon {
			return false
		}
	}

	pq, qr := p.Distance(q), q.Distance(r)
	rs, sp := r.Distance(s), s.Distance(p)
	return math.Abs(pq-rs) <= epsilon && math.Abs(qr-sp) <= epsilon
}

// NewRectangle creates the rectangle pqrs.
func NewRectangle(p, q, r, s Point, epsilon float64) (*Rectangle, error) {
	if !IsRectangle(p, q, r, s, epsilon) {
		return nil, fmt.Errorf("rectangle %v, %v, %v, %v: %w", p.Abs(), q.Abs(), r.Abs(), s.Abs(), ErrNotRectangle)
	}
	rect := &Rectangle{P: p, Q: q, R: r, S: s}
	rect.update()
	return rect, nil
}

func (r *Rectangle) update() {
	r.pqr = newTriangle(r.P, r.Q, r.R)
	r.rsp = newTriangle(r.R, r.S, r.P)
}

func (r *Rectangle) flat() flat {
	return newFlat(r.pqr.plane, r.Points())
}

// Triangles returns the triangles PQR and RSP.
func (r *Rectangle) Triangles() [2]*Triangle {
	return [2]*Triangle{r.pqr.copy(), r.rsp.copy()}
}

// Plane returns the supporting plane, oriented like PQR.
func (r *Rectangle) Plane() Plane {
	return r.pqr.plane
}

// Points returns P, Q, R and S.
func (r *Rectangle) Points() []Point {
	return []Point{r.P, r.Q, r.R, r.S}
}

// Area returns |PQ|·|QR|.
func (r *Rectangle) Area() float64 {
	return r.P.Distance(r.Q) * r.Q.Distance(r.R)
}

// Perimeter returns the sum of the side lengths.
func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.P.Distance(r.Q) + r.Q.Distance(r.R))
}

// Centroid returns the middle of the diagonal PR.
func (r *Rectangle) Centroid() Point {
	return pointFromAbs(r.P.Offset, r.P.Abs().Add(r.R.Abs()).Mul(0.5))
}

// AABB returns the bounding box of the vertices.
func (r *Rectangle) AABB() AABB {
	return NewAABB(r.Points()...)
}

// Support returns the vertex furthest along direction.
func (r *Rectangle) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return supportOf(r.Points(), direction)
}

// IsIntersectedBy reports whether pt lies on the rectangle.
func (r *Rectangle) IsIntersectedBy(pt Point, epsilon float64) bool {
	return r.pqr.IsIntersectedBy(pt, epsilon) || r.rsp.IsIntersectedBy(pt, epsilon)
}

// Distance returns the distance from pt to the rectangle.
func (r *Rectangle) Distance(pt Point) float64 {
	return math.Min(r.pqr.Distance(pt), r.rsp.Distance(pt))
}

// Equals reports whether other has the same vertices in the same boundary
// order, up to a cyclic shift or a reversal.
func (r *Rectangle) Equals(other *Rectangle, epsilon float64) bool {
	return cyclicEquals(r.Points(), other.Points(), epsilon)
}

// IntersectLine returns nil, a *Point or a *LineSegment.
func (r *Rectangle) IntersectLine(l Line, epsilon float64) Geometry {
	return union(r.pqr.IntersectLine(l, epsilon), r.rsp.IntersectLine(l, epsilon), epsilon)
}

// IntersectRay returns nil, a *Point or a *LineSegment.
func (r *Rectangle) IntersectRay(ray Ray, epsilon float64) Geometry {
	return union(r.pqr.IntersectRay(ray, epsilon), r.rsp.IntersectRay(ray, epsilon), epsilon)
}

// IntersectLineSegment returns nil, a *Point or a *LineSegment.
func (r *Rectangle) IntersectLineSegment(s LineSegment, epsilon float64) Geometry {
	return union(r.pqr.IntersectLineSegment(s, epsilon), r.rsp.IntersectLineSegment(s, epsilon), epsilon)
}

// IntersectPlane returns nil, a *Point, a *LineSegment, or a copy of the
// rectangle when it lies in pl.
func (r *Rectangle) IntersectPlane(pl Plane, epsilon float64) Geometry {
	if pl.IsCoplanar(epsilon, r.Points()...) {
		return r.copy()
	}
	return union(r.pqr.IntersectPlane(pl, epsilon), r.rsp.IntersectPlane(pl, epsilon), epsilon)
}

// IntersectTriangle returns nil or the convex piece shared with t.
func (r *Rectangle) IntersectTriangle(t *Triangle, epsilon float64) Geometry {
	if !r.AABB().Intersects(t.AABB(), epsilon) {
		return nil
	}
	return union(r.pqr.IntersectTriangle(t, epsilon), r.rsp.IntersectTriangle(t, epsilon), epsilon)
}

// IntersectRectangle returns nil or the convex piece shared with other.
func (r *Rectangle) IntersectRectangle(other *Rectangle, epsilon float64) Geometry {
	return r.flat().intersectFlat(other.flat(), epsilon)
}

func (r *Rectangle) copy() *Rectangle {
	c := &Rectangle{P: r.P, Q: r.Q, R: r.R, S: r.S}
	c.update()
	return c
}

// Translate moves the rectangle by v.
func (r *Rectangle) Translate(v mgl64.Vec3) {
	r.P.Translate(v)
	r.Q.Translate(v)
	r.R.Translate(v)
	r.S.Translate(v)
	r.update()
}

// Rotate rotates the rectangle about axis.
func (r *Rectangle) Rotate(axis Ray, theta, epsilon float64) {
	rot := newRotation(axis, theta, epsilon)
	rot.point(&r.P)
	rot.point(&r.Q)
	rot.point(&r.R)
	rot.point(&r.S)
	r.update()
}
