package shape

import (
	"fmt"
	"sort"

	"github.com/akmonengine/geom3d/clip"
	"github.com/go-gl/mathgl/mgl64"
)

// PolygonNoInternalHoles is a simple planar polygon, possibly concave. It is
// stored as its convex hull minus its external holes: the pockets between
// the hull and the boundary, each a PolygonNoInternalHoles of its own.
type PolygonNoInternalHoles struct {
	pts   []Point
	hull  *ConvexArea
	holes []*PolygonNoInternalHoles
}

// NewPolygonNoInternalHoles creates the polygon whose ordered boundary is
// points, in the plane with the given normal.
func NewPolygonNoInternalHoles(normal mgl64.Vec3, epsilon float64, points ...Point) (*PolygonNoInternalHoles, error) {
	pts := dropRepeated(points, epsilon)
	if len(pts) < 3 {
		return nil, fmt.Errorf("polygon of %d points: %w", len(pts), ErrTooFewPoints)
	}
	hull, err := NewConvexArea(normal, epsilon, pts...)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}

	p := &PolygonNoInternalHoles{pts: pts, hull: hull}
	p.holes = externalHoles(pts, hull, normal, epsilon)
	return p, nil
}

// dropRepeated removes consecutive duplicates on a closed boundary.
func dropRepeated(points []Point, epsilon float64) []Point {
	pts := make([]Point, 0, len(points))
	for _, p := range points {
		if len(pts) > 0 && pts[len(pts)-1].Equals(p, epsilon) {
			continue
		}
		pts = append(pts, p)
	}
	for len(pts) > 1 && pts[0].Equals(pts[len(pts)-1], epsilon) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// externalHoles walks the boundary between consecutive hull vertices. Every
// chain that leaves the hull edge encloses, with that edge, a pocket.
func externalHoles(pts []Point, hull *ConvexArea, normal mgl64.Vec3, epsilon float64) []*PolygonNoInternalHoles {
	var onHull []int
	for i, p := range pts {
		for _, h := range hull.pts {
			if p.Equals(h, epsilon) {
				onHull = append(onHull, i)
				break
			}
		}
	}

	var holes []*PolygonNoInternalHoles
	n := len(pts)
	for k, start := range onHull {
		end := onHull[(k+1)%len(onHull)]
		if (end-start+n)%n <= 1 {
			continue
		}
		chain := []Point{pts[start]}
		for i := (start + 1) % n; i != end; i = (i + 1) % n {
			chain = append(chain, pts[i])
		}
		chain = append(chain, pts[end])

		closing := locus{Origin: pts[start].Abs(), Dir: pts[end].Abs().Sub(pts[start].Abs())}
		pocket := false
		for _, c := range chain[1 : len(chain)-1] {
			if closing.lineDistance(c.Abs()) > epsilon {
				pocket = true
				break
			}
		}
		if !pocket {
			continue
		}
		if hole, err := NewPolygonNoInternalHoles(normal, epsilon, chain...); err == nil {
			holes = append(holes, hole)
		}
	}
	return holes
}

// Points returns the boundary vertices in order.
func (p *PolygonNoInternalHoles) Points() []Point {
	return append([]Point(nil), p.pts...)
}

// Hull returns the convex hull.
func (p *PolygonNoInternalHoles) Hull() *ConvexArea {
	return p.hull.copy()
}

// ExternalHoles returns the pockets between the hull and the boundary.
func (p *PolygonNoInternalHoles) ExternalHoles() []*PolygonNoInternalHoles {
	return append([]*PolygonNoInternalHoles(nil), p.holes...)
}

// Plane returns the supporting plane.
func (p *PolygonNoInternalHoles) Plane() Plane {
	return p.hull.plane
}

// Edges returns the boundary edges in order.
func (p *PolygonNoInternalHoles) Edges() []LineSegment {
	edges := make([]LineSegment, 0, len(p.pts))
	for i, a := range p.pts {
		b := p.pts[(i+1)%len(p.pts)]
		edges = append(edges, LineSegment{L: Line{P: a, V: b.Abs().Sub(a.Abs())}})
	}
	return edges
}

// Area returns the hull area minus the area of the pockets.
func (p *PolygonNoInternalHoles) Area() float64 {
	area := p.hull.Area()
	for _, h := range p.holes {
		area -= h.Area()
	}
	return area
}

// Perimeter returns the boundary length.
func (p *PolygonNoInternalHoles) Perimeter() float64 {
	perimeter := 0.0
	for _, e := range p.Edges() {
		perimeter += e.Length()
	}
	return perimeter
}

// Centroid returns the area-weighted center.
func (p *PolygonNoInternalHoles) Centroid() Point {
	total := p.hull.Area()
	sum := p.hull.Centroid().Abs().Mul(total)
	for _, h := range p.holes {
		a := h.Area()
		sum = sum.Sub(h.Centroid().Abs().Mul(a))
		total -= a
	}
	return pointFromAbs(p.pts[0].Offset, sum.Mul(1/total))
}

// AABB returns the bounding box of the boundary.
func (p *PolygonNoInternalHoles) AABB() AABB {
	return NewAABB(p.pts...)
}

// Simplify returns a copy with vertices collinear within epsilon removed.
func (p *PolygonNoInternalHoles) Simplify(epsilon float64) (*PolygonNoInternalHoles, error) {
	return NewPolygonNoInternalHoles(p.hull.plane.N, epsilon, simplifyChain(p.pts, epsilon)...)
}

func (p *PolygonNoInternalHoles) onBoundary(v mgl64.Vec3, epsilon float64) bool {
	for _, e := range p.Edges() {
		if e.locus().isIntersectedBy(v, epsilon) {
			return true
		}
	}
	return false
}

func (p *PolygonNoInternalHoles) contains(v mgl64.Vec3, epsilon float64) bool {
	if !p.hull.flat().contains(v, epsilon) {
		return false
	}
	if p.onBoundary(v, epsilon) {
		return true
	}
	for _, h := range p.holes {
		if h.contains(v, epsilon) {
			return false
		}
	}
	return true
}

// IsIntersectedBy reports whether pt lies on the polygon, boundary included.
func (p *PolygonNoInternalHoles) IsIntersectedBy(pt Point, epsilon float64) bool {
	return p.contains(pt.Abs(), epsilon)
}

// intersectLocus returns the crossing point for a locus leaving the plane.
// A locus lying in the plane may cross the polygon several times; the first
// connected piece along the locus is returned.
func (p *PolygonNoInternalHoles) intersectLocus(lc locus, epsilon float64) Geometry {
	t, inPlane, ok := p.hull.plane.crossing(lc, epsilon)
	if !ok {
		return nil
	}
	if !inPlane {
		v := lc.at(t)
		if !p.contains(v, epsilon) {
			return nil
		}
		pt := pointFromAbs(lc.Offset, v)
		return &pt
	}

	hullPiece := p.hull.flat().intersectLocus(lc, epsilon)
	if hullPiece == nil {
		return nil
	}
	within := lc
	switch g := hullPiece.(type) {
	case *Point:
		if p.contains(g.Abs(), epsilon) {
			return g
		}
		return nil
	case *LineSegment:
		within.Lo, within.Hi = lc.param(g.P().Abs()), lc.param(g.Q().Abs())
	}

	// Cut the locus where it meets the boundary, then keep the first run of
	// pieces whose midpoints are inside.
	params := []float64{within.Lo, within.Hi}
	for _, e := range p.Edges() {
		switch g := intersectLoci(within, e.locus(), epsilon).(type) {
		case *Point:
			params = append(params, lc.param(g.Abs()))
		case *LineSegment:
			params = append(params, lc.param(g.P().Abs()), lc.param(g.Q().Abs()))
		}
	}
	sort.Float64s(params)

	var start, end float64
	started := false
	for i, t := range params {
		if !started {
			if !p.contains(lc.at(t), epsilon) {
				continue
			}
			started = true
			start, end = t, t
		}
		if i+1 == len(params) || !p.contains(lc.at((t+params[i+1])/2), epsilon) {
			break
		}
		end = params[i+1]
	}
	if !started {
		return nil
	}
	return lc.piece(start, end, epsilon)
}

// IntersectLine returns nil, a *Point or the first *LineSegment of the line
// inside the polygon. When the line lies in the plane and crosses a pocket,
// the pieces after the first are discarded.
func (p *PolygonNoInternalHoles) IntersectLine(l Line, epsilon float64) Geometry {
	return p.intersectLocus(l.locus(), epsilon)
}

// IntersectRay returns nil, a *Point or the first *LineSegment of the ray
// inside the polygon, counted from the ray origin. Later pieces are
// discarded.
func (p *PolygonNoInternalHoles) IntersectRay(r Ray, epsilon float64) Geometry {
	return p.intersectLocus(r.locus(), epsilon)
}

// IntersectLineSegment returns nil, a *Point or the first *LineSegment of s
// inside the polygon, counted from s.P. Later pieces are discarded.
func (p *PolygonNoInternalHoles) IntersectLineSegment(s LineSegment, epsilon float64) Geometry {
	return p.intersectLocus(s.locus(), epsilon)
}

// piece builds the geometry of a clipped copy of the boundary, in absolute
// coordinates.
func (p *PolygonNoInternalHoles) piece(clipped []mgl64.Vec3, epsilon float64) Geometry {
	pts := pointsFromAbs(p.pts[0].Offset, clipped)
	if poly, err := NewPolygonNoInternalHoles(p.hull.plane.N, epsilon, pts...); err == nil && len(poly.holes) > 0 {
		return poly
	}
	return GeometryOf(pts, epsilon)
}

// intersectFlat cuts the polygon by a convex planar shape. In a common plane
// the boundary is clipped by the edges of f; otherwise the section of f by
// the polygon plane is intersected with the polygon, keeping its first piece.
func (p *PolygonNoInternalHoles) intersectFlat(f flat, epsilon float64) Geometry {
	if !p.AABB().Intersects(f.aabb(), epsilon) {
		return nil
	}

	if p.hull.flat().coplanar(f, epsilon) {
		clipped := clip.PolygonAgainstHalfSpaces(absolutes(p.pts), f.edgeHalfSpaces(), epsilon)
		return p.piece(clipped, epsilon)
	}

	section, _ := f.intersectPlane(p.hull.plane, epsilon)
	switch s := section.(type) {
	case *Point:
		if p.contains(s.Abs(), epsilon) {
			return s
		}
	case *LineSegment:
		return p.intersectLocus(s.locus(), epsilon)
	}
	return nil
}

// IntersectTriangle returns the part of t on the polygon. See intersectFlat
// for the pieces kept.
func (p *PolygonNoInternalHoles) IntersectTriangle(t *Triangle, epsilon float64) Geometry {
	return p.intersectFlat(t.flat(), epsilon)
}

// IntersectRectangle returns the part of r on the polygon.
func (p *PolygonNoInternalHoles) IntersectRectangle(r *Rectangle, epsilon float64) Geometry {
	return p.intersectFlat(r.flat(), epsilon)
}

// IntersectConvexArea returns the part of c on the polygon.
func (p *PolygonNoInternalHoles) IntersectConvexArea(c *ConvexArea, epsilon float64) Geometry {
	return p.intersectFlat(c.flat(), epsilon)
}

// Translate moves the polygon by v.
func (p *PolygonNoInternalHoles) Translate(v mgl64.Vec3) {
	for i := range p.pts {
		p.pts[i].Translate(v)
	}
	p.hull.Translate(v)
	for _, h := range p.holes {
		h.Translate(v)
	}
}

// Rotate rotates the polygon about axis.
func (p *PolygonNoInternalHoles) Rotate(axis Ray, theta, epsilon float64) {
	r := newRotation(axis, theta, epsilon)
	for i := range p.pts {
		r.point(&p.pts[i])
	}
	p.hull.Rotate(axis, theta, epsilon)
	for _, h := range p.holes {
		h.Rotate(axis, theta, epsilon)
	}
}
