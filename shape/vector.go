package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vectors are mgl64.Vec3 values. The helpers below add the epsilon-tolerant
// predicates the kernel needs on top of mgl64's arithmetic.

// IsZero reports whether the magnitude of v is at most epsilon.
func IsZero(v mgl64.Vec3, epsilon float64) bool {
	return v.Dot(v) <= epsilon*epsilon
}

// VectorEquals reports whether u and v differ by at most epsilon in length.
func VectorEquals(u, v mgl64.Vec3, epsilon float64) bool {
	return IsZero(u.Sub(v), epsilon)
}

// IsScalarMultiple reports whether u and v are parallel: the cross product of
// their unit vectors has magnitude at most epsilon. A zero vector is a scalar
// multiple of anything.
func IsScalarMultiple(u, v mgl64.Vec3, epsilon float64) bool {
	lu, lv := u.Len(), v.Len()
	if lu == 0 || lv == 0 {
		return true
	}
	return u.Mul(1/lu).Cross(v.Mul(1/lv)).Len() <= epsilon
}

// Unit returns v scaled to unit length.
func Unit(v mgl64.Vec3) (mgl64.Vec3, error) {
	length := v.Len()
	if length == 0 || math.IsNaN(length) {
		return mgl64.Vec3{}, fmt.Errorf("unit of %v: %w", v, ErrZeroVector)
	}
	return v.Mul(1 / length), nil
}

// Location classifies v into one of 9 locations relative to the origin:
// 0 is the origin itself, 1 the octant where every component is positive or
// zero, 2..8 the other sign combinations (z varies fastest, then y, then x).
func Location(v mgl64.Vec3) int {
	if v[0] == 0 && v[1] == 0 && v[2] == 0 {
		return 0
	}
	location := 1
	if v[2] < 0 {
		location += 1
	}
	if v[1] < 0 {
		location += 2
	}
	if v[0] < 0 {
		location += 4
	}
	return location
}

// tangentBasis returns two unit vectors spanning the plane orthogonal to
// normal, such that t1 × t2 = normal.
func tangentBasis(normal mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	normal = normal.Normalize()

	var t1 mgl64.Vec3
	if math.Abs(normal.X()) > 0.9 {
		t1 = mgl64.Vec3{0, 1, 0}
	} else {
		t1 = mgl64.Vec3{1, 0, 0}
	}

	t1 = t1.Sub(normal.Mul(t1.Dot(normal))).Normalize()
	t2 := normal.Cross(t1).Normalize()

	return t1, t2
}
