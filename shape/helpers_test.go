package shape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func vec3ApproxEqual(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func pt(x, y, z float64) Point {
	return PointAt(x, y, z)
}

func mustTriangle(t *testing.T, p, q, r Point) *Triangle {
	t.Helper()
	tri, err := NewTriangle(p, q, r, eps)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	return tri
}

func mustRectangle(t *testing.T, p, q, r, s Point) *Rectangle {
	t.Helper()
	rect, err := NewRectangle(p, q, r, s, eps)
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	return rect
}

func mustTetrahedron(t *testing.T, p, q, r, s Point) *Tetrahedron {
	t.Helper()
	tet, err := NewTetrahedron(p, q, r, s, eps)
	if err != nil {
		t.Fatalf("NewTetrahedron: %v", err)
	}
	return tet
}

func zAxis() Ray {
	return Ray{L: Line{V: mgl64.Vec3{0, 0, 1}}}
}

// hasPoint reports whether want is one of points.
func hasPoint(points []Point, want mgl64.Vec3) bool {
	for _, p := range points {
		if vec3ApproxEqual(p.Abs(), want, 1e-7) {
			return true
		}
	}
	return false
}

func expectPoint(t *testing.T, g Geometry, want mgl64.Vec3) {
	t.Helper()
	p, ok := g.(*Point)
	if !ok {
		t.Fatalf("expected *Point, got %T (%v)", g, g)
	}
	if !vec3ApproxEqual(p.Abs(), want, 1e-7) {
		t.Errorf("point = %v, want %v", p.Abs(), want)
	}
}

func expectSegment(t *testing.T, g Geometry, a, b mgl64.Vec3) {
	t.Helper()
	s, ok := g.(*LineSegment)
	if !ok {
		t.Fatalf("expected *LineSegment, got %T (%v)", g, g)
	}
	got := s.Points()
	if !hasPoint(got, a) || !hasPoint(got, b) {
		t.Errorf("segment = [%v %v], want [%v %v]", got[0].Abs(), got[1].Abs(), a, b)
	}
}

type areal interface {
	Area() float64
}

func expectArea(t *testing.T, g Geometry, want float64) {
	t.Helper()
	a, ok := g.(areal)
	if !ok {
		t.Fatalf("expected a planar piece, got %T (%v)", g, g)
	}
	if got := a.Area(); math.Abs(got-want) > 1e-7 {
		t.Errorf("Area = %v, expected %v", got, want)
	}
}
