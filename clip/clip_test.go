package clip

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vec3ApproxEqual(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func containsVec3(points []mgl64.Vec3, p mgl64.Vec3) bool {
	for _, q := range points {
		if vec3ApproxEqual(p, q, 1e-9) {
			return true
		}
	}
	return false
}

// TestLineIntersectPlane tests line-plane intersection
func TestLineIntersectPlane(t *testing.T) {
	tests := []struct {
		name        string
		p1, p2      mgl64.Vec3
		planePoint  mgl64.Vec3
		planeNormal mgl64.Vec3
		expected    mgl64.Vec3
	}{
		{
			name:        "perpendicular crossing at midpoint",
			p1:          mgl64.Vec3{0, -1, 0},
			p2:          mgl64.Vec3{0, 1, 0},
			planePoint:  mgl64.Vec3{0, 0, 0},
			planeNormal: mgl64.Vec3{0, 1, 0},
			expected:    mgl64.Vec3{0, 0, 0},
		},
		{
			name:        "oblique crossing",
			p1:          mgl64.Vec3{0, 0, 0},
			p2:          mgl64.Vec3{4, 4, 0},
			planePoint:  mgl64.Vec3{1, 0, 0},
			planeNormal: mgl64.Vec3{1, 0, 0},
			expected:    mgl64.Vec3{1, 1, 0},
		},
		{
			name:        "parallel segment returns first point",
			p1:          mgl64.Vec3{0, 1, 0},
			p2:          mgl64.Vec3{5, 1, 0},
			planePoint:  mgl64.Vec3{0, 0, 0},
			planeNormal: mgl64.Vec3{0, 1, 0},
			expected:    mgl64.Vec3{0, 1, 0},
		},
		{
			name:        "crossing beyond the segment is clamped",
			p1:          mgl64.Vec3{0, 1, 0},
			p2:          mgl64.Vec3{0, 2, 0},
			planePoint:  mgl64.Vec3{0, 0, 0},
			planeNormal: mgl64.Vec3{0, 1, 0},
			expected:    mgl64.Vec3{0, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineIntersectPlane(tt.p1, tt.p2, tt.planePoint, tt.planeNormal)
			if !vec3ApproxEqual(got, tt.expected, 1e-9) {
				t.Errorf("LineIntersectPlane() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestPolygonAgainstPlane tests Sutherland-Hodgman on a single plane
func TestPolygonAgainstPlane(t *testing.T) {
	square := []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}

	t.Run("fully inside", func(t *testing.T) {
		result := PolygonAgainstPlane(square, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0}, 1e-9)
		if len(result) != 4 {
			t.Fatalf("expected 4 points, got %d", len(result))
		}
	})

	t.Run("fully outside", func(t *testing.T) {
		result := PolygonAgainstPlane(square, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 0, 0}, 1e-9)
		if len(result) != 0 {
			t.Fatalf("expected no points, got %v", result)
		}
	})

	t.Run("cut in half", func(t *testing.T) {
		result := PolygonAgainstPlane(square, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 0, 0}, 1e-9)
		if len(result) != 4 {
			t.Fatalf("expected 4 points, got %v", result)
		}
		for _, want := range []mgl64.Vec3{{1, 0, 0}, {2, 0, 0}, {2, 2, 0}, {1, 2, 0}} {
			if !containsVec3(result, want) {
				t.Errorf("missing vertex %v in %v", want, result)
			}
		}
	})

	t.Run("corner cut adds a vertex", func(t *testing.T) {
		// Keep x + y <= 3
		n := mgl64.Vec3{-1, -1, 0}.Normalize()
		result := PolygonAgainstPlane(square, mgl64.Vec3{1.5, 1.5, 0}, n, 1e-9)
		if len(result) != 5 {
			t.Fatalf("expected 5 points, got %v", result)
		}
		for _, want := range []mgl64.Vec3{{2, 1, 0}, {1, 2, 0}} {
			if !containsVec3(result, want) {
				t.Errorf("missing vertex %v in %v", want, result)
			}
		}
	})

	t.Run("touching edge keeps no duplicates", func(t *testing.T) {
		result := PolygonAgainstPlane(square, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{1, 0, 0}, 1e-9)
		if len(result) != 2 {
			t.Fatalf("expected the 2 points of the touching edge, got %v", result)
		}
	})

	t.Run("segment is clipped as an open chain", func(t *testing.T) {
		segment := []mgl64.Vec3{{-1, 0, 0}, {1, 0, 0}}
		result := PolygonAgainstPlane(segment, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 1e-9)
		if len(result) != 2 || !containsVec3(result, mgl64.Vec3{0, 0, 0}) || !containsVec3(result, mgl64.Vec3{1, 0, 0}) {
			t.Fatalf("unexpected clipped segment %v", result)
		}
	})

	t.Run("empty polygon", func(t *testing.T) {
		result := PolygonAgainstPlane(nil, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 1e-9)
		if len(result) != 0 {
			t.Fatalf("expected empty result, got %v", result)
		}
	})
}

func TestPolygonAgainstHalfSpaces(t *testing.T) {
	// Unit square region 0 <= x <= 1, 0 <= y <= 1
	region := []HalfSpace{
		{Point: mgl64.Vec3{0, 0, 0}, Normal: mgl64.Vec3{1, 0, 0}},
		{Point: mgl64.Vec3{1, 0, 0}, Normal: mgl64.Vec3{-1, 0, 0}},
		{Point: mgl64.Vec3{0, 0, 0}, Normal: mgl64.Vec3{0, 1, 0}},
		{Point: mgl64.Vec3{0, 1, 0}, Normal: mgl64.Vec3{0, -1, 0}},
	}

	triangle := []mgl64.Vec3{{-1, -1, 0}, {3, -1, 0}, {-1, 3, 0}}
	result := PolygonAgainstHalfSpaces(triangle, region, 1e-9)

	// The triangle covers the whole square (x + y <= 2)
	if len(result) != 4 {
		t.Fatalf("expected the unit square, got %v", result)
	}
	for _, want := range []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}} {
		if !containsVec3(result, want) {
			t.Errorf("missing vertex %v in %v", want, result)
		}
	}

	far := []mgl64.Vec3{{5, 5, 0}, {6, 5, 0}, {5, 6, 0}}
	if got := PolygonAgainstHalfSpaces(far, region, 1e-9); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestInterval(t *testing.T) {
	// Slab 0 <= x <= 2
	slab := []HalfSpace{
		{Point: mgl64.Vec3{0, 0, 0}, Normal: mgl64.Vec3{1, 0, 0}},
		{Point: mgl64.Vec3{2, 0, 0}, Normal: mgl64.Vec3{-1, 0, 0}},
	}

	t.Run("infinite line is clipped to the slab", func(t *testing.T) {
		lo, hi, ok := Interval(mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0}, math.Inf(-1), math.Inf(1), slab, 1e-9)
		if !ok || math.Abs(lo-1) > 1e-12 || math.Abs(hi-3) > 1e-12 {
			t.Errorf("Interval() = [%v, %v] %v, want [1, 3] true", lo, hi, ok)
		}
	})

	t.Run("segment entirely outside", func(t *testing.T) {
		_, _, ok := Interval(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 0, 0}, 0, 1, slab, 1e-9)
		if ok {
			t.Error("expected empty interval")
		}
	})

	t.Run("parallel inside", func(t *testing.T) {
		lo, hi, ok := Interval(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, 0, math.Inf(1), slab, 1e-9)
		if !ok || lo != 0 || !math.IsInf(hi, 1) {
			t.Errorf("Interval() = [%v, %v] %v, want [0, +Inf] true", lo, hi, ok)
		}
	})

	t.Run("parallel outside", func(t *testing.T) {
		_, _, ok := Interval(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{0, 1, 0}, 0, math.Inf(1), slab, 1e-9)
		if ok {
			t.Error("expected empty interval")
		}
	})

	t.Run("touching a boundary collapses to a point", func(t *testing.T) {
		lo, hi, ok := Interval(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{1, 0, 0}, 0, 1, slab, 1e-9)
		if !ok || lo != 0 || hi != 0 {
			t.Errorf("Interval() = [%v, %v] %v, want [0, 0] true", lo, hi, ok)
		}
	})

	t.Run("zero direction", func(t *testing.T) {
		_, _, ok := Interval(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, 0, 1, slab, 1e-9)
		if ok {
			t.Error("zero direction should be rejected")
		}
	})
}

func TestHalfSpaceContains(t *testing.T) {
	h := HalfSpace{Point: mgl64.Vec3{0, 0, 0}, Normal: mgl64.Vec3{0, 0, 1}}
	if !h.Contains(mgl64.Vec3{0, 0, 0}, 0) {
		t.Error("boundary point should be contained")
	}
	if !h.Contains(mgl64.Vec3{5, 5, -1e-10}, 1e-9) {
		t.Error("point within tolerance should be contained")
	}
	if h.Contains(mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Error("point below should not be contained")
	}
}
