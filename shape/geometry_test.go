package shape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestGeometryOf(t *testing.T) {
	t.Run("no point", func(t *testing.T) {
		if g := GeometryOf(nil, eps); g != nil {
			t.Errorf("expected nil, got %v", g)
		}
	})

	t.Run("duplicates of one point", func(t *testing.T) {
		g := GeometryOf([]Point{pt(1, 2, 3), pt(1, 2, 3+1e-12)}, eps)
		expectPoint(t, g, mgl64.Vec3{1, 2, 3})
	})

	t.Run("collinear points give the extreme segment", func(t *testing.T) {
		g := GeometryOf([]Point{pt(1, 0, 0), pt(3, 0, 0), pt(0, 0, 0), pt(2, 0, 0)}, eps)
		expectSegment(t, g, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0})
	})

	t.Run("three points", func(t *testing.T) {
		if _, ok := GeometryOf([]Point{pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)}, eps).(*Triangle); !ok {
			t.Error("expected *Triangle")
		}
	})

	t.Run("interior point is dropped", func(t *testing.T) {
		g := GeometryOf([]Point{pt(0, 0, 0), pt(4, 0, 0), pt(0, 4, 0), pt(1, 1, 0)}, eps)
		if _, ok := g.(*Triangle); !ok {
			t.Errorf("expected *Triangle, got %T", g)
		}
	})

	t.Run("square in a tilted plane", func(t *testing.T) {
		g := GeometryOf([]Point{pt(0, 0, 0), pt(1, 1, 0), pt(1, 1, 2), pt(0, 0, 2)}, eps)
		area, ok := g.(*ConvexArea)
		if !ok {
			t.Fatalf("expected *ConvexArea, got %T", g)
		}
		if a := area.Area(); math.Abs(a-2*math.Sqrt(2)) > eps {
			t.Errorf("Area = %v, expected 2√2", a)
		}
	})
}

func TestGeometryInterfaces(t *testing.T) {
	tri := mustTriangle(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	finite := []FiniteGeometry{
		&Point{},
		&LineSegment{L: Line{V: mgl64.Vec3{1, 0, 0}}},
		tri,
		unitSquare(t),
		unitTetrahedron(t),
		star(t),
	}

	v := mgl64.Vec3{1, 2, 3}
	for _, g := range finite {
		before := g.Centroid().Abs()
		g.Translate(v)
		if !vec3ApproxEqual(g.Centroid().Abs(), before.Add(v), 1e-9) {
			t.Errorf("%T centroid did not follow the translation", g)
		}
		box := g.AABB()
		for _, p := range g.Points() {
			if !box.ContainsPoint(p.Abs()) {
				t.Errorf("%T AABB does not contain %v", g, p.Abs())
			}
		}
		g.Translate(v.Mul(-1))
		if !vec3ApproxEqual(g.Centroid().Abs(), before, 1e-9) {
			t.Errorf("%T translation round trip failed", g)
		}
	}

	var _ Geometry = &Line{}
	var _ Geometry = &Ray{}
	var _ Geometry = &Plane{}
	var _ FiniteGeometry = &ConvexArea{}
}
