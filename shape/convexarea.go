package shape

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ConvexArea is a convex planar polygon. Its boundary runs counter clockwise
// about the plane normal and has no duplicate or collinear vertices.
type ConvexArea struct {
	pts   []Point
	plane Plane
}

// NewConvexArea builds the convex hull of points in the plane with the given
// normal. The points need not be ordered.
func NewConvexArea(normal mgl64.Vec3, epsilon float64, points ...Point) (*ConvexArea, error) {
	if IsZero(normal, epsilon) {
		return nil, fmt.Errorf("convex area: %w", ErrZeroVector)
	}
	points = Unique(points, epsilon)
	if len(points) < 3 {
		return nil, fmt.Errorf("convex area of %d points: %w", len(points), ErrTooFewPoints)
	}
	plane := Plane{P: points[0], N: normal}
	if !plane.IsCoplanar(epsilon, points...) {
		return nil, fmt.Errorf("convex area: %w", ErrNotCoplanar)
	}

	indices := convexHull(absolutes(points), normal, epsilon)
	if len(indices) < 3 {
		return nil, fmt.Errorf("convex area: %w", ErrCollinear)
	}
	hull := make([]Point, len(indices))
	for i, index := range indices {
		hull[i] = points[index]
	}
	return &ConvexArea{pts: hull, plane: Plane{P: hull[0], N: normal}}, nil
}

func (c *ConvexArea) flat() flat {
	return newFlat(c.plane, c.pts)
}

// Plane returns the supporting plane.
func (c *ConvexArea) Plane() Plane {
	return c.plane
}

// Points returns the boundary vertices in order.
func (c *ConvexArea) Points() []Point {
	return append([]Point(nil), c.pts...)
}

// Edges returns the boundary edges in order.
func (c *ConvexArea) Edges() []LineSegment {
	edges := make([]LineSegment, len(c.pts))
	for i, p := range c.pts {
		q := c.pts[(i+1)%len(c.pts)]
		edges[i] = LineSegment{L: Line{P: p, V: q.Abs().Sub(p.Abs())}}
	}
	return edges
}

// Triangles returns the fan triangulation from the first vertex.
func (c *ConvexArea) Triangles() []*Triangle {
	triangles := make([]*Triangle, 0, len(c.pts)-2)
	for i := 1; i+1 < len(c.pts); i++ {
		triangles = append(triangles, newTriangle(c.pts[0], c.pts[i], c.pts[i+1]))
	}
	return triangles
}

// Area returns the enclosed area.
func (c *ConvexArea) Area() float64 {
	area := 0.0
	for _, t := range c.Triangles() {
		area += t.Area()
	}
	return area
}

// Perimeter returns the boundary length.
func (c *ConvexArea) Perimeter() float64 {
	perimeter := 0.0
	for _, e := range c.Edges() {
		perimeter += e.Length()
	}
	return perimeter
}

// Centroid returns the area-weighted center.
func (c *ConvexArea) Centroid() Point {
	var sum mgl64.Vec3
	total := 0.0
	for _, t := range c.Triangles() {
		a := t.Area()
		sum = sum.Add(t.Centroid().Abs().Mul(a))
		total += a
	}
	return pointFromAbs(c.pts[0].Offset, sum.Mul(1/total))
}

// AABB returns the bounding box of the vertices.
func (c *ConvexArea) AABB() AABB {
	return NewAABB(c.pts...)
}

// Support returns the vertex furthest along direction.
func (c *ConvexArea) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return supportOf(c.pts, direction)
}

// Simplify returns a copy with vertices collinear within epsilon removed.
func (c *ConvexArea) Simplify(epsilon float64) *ConvexArea {
	pts := simplifyChain(c.pts, epsilon)
	if len(pts) < 3 {
		return c.copy()
	}
	return &ConvexArea{pts: pts, plane: Plane{P: pts[0], N: c.plane.N}}
}

// IsIntersectedBy reports whether pt lies on the area, boundary included.
func (c *ConvexArea) IsIntersectedBy(pt Point, epsilon float64) bool {
	return c.flat().contains(pt.Abs(), epsilon)
}

// Distance returns the distance from pt to the area.
func (c *ConvexArea) Distance(pt Point) float64 {
	return c.flat().distance(pt.Abs())
}

// Equals reports whether both areas have the same boundary up to a cyclic
// shift or a reversal.
func (c *ConvexArea) Equals(other *ConvexArea, epsilon float64) bool {
	return cyclicEquals(c.pts, other.pts, epsilon)
}

// IntersectLine returns nil, a *Point or a *LineSegment.
func (c *ConvexArea) IntersectLine(l Line, epsilon float64) Geometry {
	return c.flat().intersectLocus(l.locus(), epsilon)
}

// IntersectRay returns nil, a *Point or a *LineSegment.
func (c *ConvexArea) IntersectRay(r Ray, epsilon float64) Geometry {
	return c.flat().intersectLocus(r.locus(), epsilon)
}

// IntersectLineSegment returns nil, a *Point or a *LineSegment.
func (c *ConvexArea) IntersectLineSegment(s LineSegment, epsilon float64) Geometry {
	return c.flat().intersectLocus(s.locus(), epsilon)
}

// IntersectPlane returns nil, a *Point, a *LineSegment, or a copy of the
// area when it lies in pl.
func (c *ConvexArea) IntersectPlane(pl Plane, epsilon float64) Geometry {
	g, coplanar := c.flat().intersectPlane(pl, epsilon)
	if coplanar {
		return c.copy()
	}
	return g
}

// IntersectTriangle returns nil or the convex piece shared with t.
func (c *ConvexArea) IntersectTriangle(t *Triangle, epsilon float64) Geometry {
	return c.flat().intersectFlat(t.flat(), epsilon)
}

// IntersectRectangle returns nil or the convex piece shared with r.
func (c *ConvexArea) IntersectRectangle(r *Rectangle, epsilon float64) Geometry {
	return c.flat().intersectFlat(r.flat(), epsilon)
}

// IntersectConvexArea returns nil or the convex piece shared with other.
func (c *ConvexArea) IntersectConvexArea(other *ConvexArea, epsilon float64) Geometry {
	return c.flat().intersectFlat(other.flat(), epsilon)
}

func (c *ConvexArea) copy() *ConvexArea {
	return &ConvexArea{pts: c.Points(), plane: c.plane}
}

// Translate moves the area by v.
func (c *ConvexArea) Translate(v mgl64.Vec3) {
	for i := range c.pts {
		c.pts[i].Translate(v)
	}
	c.plane.Translate(v)
}

// Rotate rotates the area about axis.
func (c *ConvexArea) Rotate(axis Ray, theta, epsilon float64) {
	r := newRotation(axis, theta, epsilon)
	for i := range c.pts {
		r.point(&c.pts[i])
	}
	r.point(&c.plane.P)
	c.plane.N = r.vector(c.plane.N)
}

// simplifyChain drops consecutive duplicates and vertices lying within
// epsilon of the segment joining their neighbours, on a closed boundary.
func simplifyChain(points []Point, epsilon float64) []Point {
	pts := append([]Point(nil), points...)
	for changed := true; changed && len(pts) >= 3; {
		changed = false
		for i := 0; i < len(pts) && len(pts) >= 3; i++ {
			prev := pts[(i+len(pts)-1)%len(pts)]
			next := pts[(i+1)%len(pts)]
			cur := pts[i]
			redundant := cur.Equals(next, epsilon)
			if !redundant && !prev.Equals(next, epsilon) {
				s := locus{Origin: prev.Abs(), Dir: next.Abs().Sub(prev.Abs()), Lo: 0, Hi: 1}
				redundant = s.lineDistance(cur.Abs()) <= epsilon && cur.IsBetween(prev, next, epsilon)
			}
			if redundant {
				pts = append(pts[:i], pts[i+1:]...)
				changed = true
				i--
			}
		}
	}
	return pts
}
