// Package numeric provides the epsilon-tolerant scalar predicates the rest of
// the kernel is built on.
//
// Every predicate takes its tolerance as an argument: there is no global
// epsilon. A value within epsilon of a boundary is always considered to be on
// that boundary (inclusive convention).
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ApproxEquals reports whether |a-b| <= epsilon.
func ApproxEquals(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

// ApproxZero reports whether |a| <= epsilon.
func ApproxZero(a, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, 0, epsilon)
}

// Compare returns 0 when a and b are within epsilon of each other, -1 when a
// is smaller and 1 when a is larger.
func Compare(a, b, epsilon float64) int {
	if ApproxEquals(a, b, epsilon) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Sign returns the epsilon-banded sign of a.
func Sign(a, epsilon float64) int {
	return Compare(a, 0, epsilon)
}

// InRange reports whether lo-epsilon <= a <= hi+epsilon.
func InRange(a, lo, hi, epsilon float64) bool {
	return a >= lo-epsilon && a <= hi+epsilon
}

// NormalizeAngle maps theta to [0, 2π).
func NormalizeAngle(theta float64) float64 {
	twoPi := 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}

// IsFullTurn reports whether theta is, within epsilon, a whole number of turns.
func IsFullTurn(theta, epsilon float64) bool {
	theta = NormalizeAngle(theta)
	return theta <= epsilon || 2*math.Pi-theta <= epsilon
}
