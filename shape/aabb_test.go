package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABBOverlaps(t *testing.T) {
	unit := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name     string
		other    AABB
		expected bool
	}{
		{"identical", unit, true},
		{"partial overlap on X", AABB{Min: mgl64.Vec3{0.5, 0, 0}, Max: mgl64.Vec3{2, 1, 1}}, true},
		{"contained", AABB{Min: mgl64.Vec3{0.25, 0.25, 0.25}, Max: mgl64.Vec3{0.75, 0.75, 0.75}}, true},
		{"touching faces", AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}}, true},
		{"touching corners", AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}}, true},
		{"separated on X", AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}}, false},
		{"separated on Y", AABB{Min: mgl64.Vec3{0, -2, 0}, Max: mgl64.Vec3{1, -1, 1}}, false},
		{"separated on Z", AABB{Min: mgl64.Vec3{0, 0, 2}, Max: mgl64.Vec3{1, 1, 3}}, false},
		{"separated on X and Y, overlapping on Z", AABB{Min: mgl64.Vec3{2, 2, 0}, Max: mgl64.Vec3{3, 3, 1}}, false},
		{"flat box crossing", AABB{Min: mgl64.Vec3{-1, -1, 0.5}, Max: mgl64.Vec3{2, 2, 0.5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unit.Overlaps(tt.other); got != tt.expected {
				t.Errorf("Overlaps = %v, expected %v", got, tt.expected)
			}
			// Symmetry
			if got := tt.other.Overlaps(unit); got != tt.expected {
				t.Errorf("Overlaps = %v, expected %v (symmetry test)", got, tt.expected)
			}
		})
	}
}

func TestAABBIntersectsWithEpsilon(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	b := AABB{Min: mgl64.Vec3{1 + 1e-10, 0, 0}, Max: mgl64.Vec3{2, 1, 1}}

	if a.Overlaps(b) {
		t.Error("exact test should reject the gap")
	}
	if !a.Intersects(b, eps) || !b.Intersects(a, eps) {
		t.Error("gap below epsilon should intersect")
	}
	if a.Intersects(b, 1e-11) {
		t.Error("gap above epsilon should not intersect")
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected bool
	}{
		{"center", mgl64.Vec3{0, 0, 0}, true},
		{"corner", mgl64.Vec3{1, 1, 1}, true},
		{"face", mgl64.Vec3{1, 0, 0}, true},
		{"outside X", mgl64.Vec3{1.1, 0, 0}, false},
		{"outside Z", mgl64.Vec3{0, 0, -1.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := box.ContainsPoint(tt.point); result != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tt.point, result, tt.expected)
			}
		})
	}

	if !box.IsIntersectedBy(pt(1+1e-10, 0, 0), eps) {
		t.Error("point within epsilon should intersect")
	}
}

func TestNewAABB(t *testing.T) {
	box := NewAABB(pt(1, -2, 3), pt(-1, 5, 0), pt(0, 0, 4))
	if box.Min != (mgl64.Vec3{-1, -2, 0}) || box.Max != (mgl64.Vec3{1, 5, 4}) {
		t.Errorf("NewAABB = %v", box)
	}

	if empty := NewAABB(); empty != (AABB{}) {
		t.Errorf("NewAABB() = %v, expected the zero box", empty)
	}

	u := box.Union(AABB{Min: mgl64.Vec3{-3, 0, 0}, Max: mgl64.Vec3{0, 0, 10}})
	if u.Min != (mgl64.Vec3{-3, -2, 0}) || u.Max != (mgl64.Vec3{1, 5, 10}) {
		t.Errorf("Union = %v", u)
	}

	e := box.Expand(1)
	if e.Min != (mgl64.Vec3{-2, -3, -1}) || e.Max != (mgl64.Vec3{2, 6, 5}) {
		t.Errorf("Expand = %v", e)
	}
	if c := box.Center(); c != (mgl64.Vec3{0, 1.5, 2}) {
		t.Errorf("Center = %v", c)
	}
	if s := box.Size(); s != (mgl64.Vec3{2, 7, 4}) {
		t.Errorf("Size = %v", s)
	}
}

func TestAABBSupport(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{-1, -2, -3}, Max: mgl64.Vec3{1, 2, 3}}

	tests := []struct {
		direction mgl64.Vec3
		expected  mgl64.Vec3
	}{
		{mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 2, 3}},
		{mgl64.Vec3{-1, 1, -1}, mgl64.Vec3{-1, 2, -3}},
		{mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, -2, 3}},
	}

	for _, tt := range tests {
		if got := box.Support(tt.direction); got != tt.expected {
			t.Errorf("Support(%v) = %v, expected %v", tt.direction, got, tt.expected)
		}
	}

	corners := box.Corners()
	for _, c := range corners {
		if !box.ContainsPoint(c) {
			t.Errorf("corner %v outside the box", c)
		}
	}
	if corners[0] != box.Min || corners[7] != box.Max {
		t.Error("first and last corners should be Min and Max")
	}
}
