package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// locus is the parametric core shared by Line, Ray and LineSegment: the
// points Origin + t*Dir for t in [Lo, Hi]. Bounds may be infinite.
type locus struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
	Lo, Hi float64
	// Offset given to the points built from this locus
	Offset mgl64.Vec3
}

func (lc locus) at(t float64) mgl64.Vec3 {
	return lc.Origin.Add(lc.Dir.Mul(t))
}

// param returns the parameter of the orthogonal projection of v.
func (lc locus) param(v mgl64.Vec3) float64 {
	return v.Sub(lc.Origin).Dot(lc.Dir) / lc.Dir.Dot(lc.Dir)
}

// tolerance converts a distance into a parameter tolerance.
func (lc locus) tolerance(epsilon float64) float64 {
	return epsilon / lc.Dir.Len()
}

func (lc locus) contains(t, epsilon float64) bool {
	tol := lc.tolerance(epsilon)
	return t >= lc.Lo-tol && t <= lc.Hi+tol
}

func (lc locus) clamp(t float64) float64 {
	return math.Max(lc.Lo, math.Min(lc.Hi, t))
}

// lineDistance is the distance from v to the infinite supporting line.
func (lc locus) lineDistance(v mgl64.Vec3) float64 {
	return v.Sub(lc.at(lc.param(v))).Len()
}

// closest returns the point of the locus closest to v.
func (lc locus) closest(v mgl64.Vec3) mgl64.Vec3 {
	return lc.at(lc.clamp(lc.param(v)))
}

func (lc locus) distance(v mgl64.Vec3) float64 {
	return v.Sub(lc.closest(v)).Len()
}

func (lc locus) isIntersectedBy(v mgl64.Vec3, epsilon float64) bool {
	return lc.distance(v) <= epsilon
}

// piece builds the geometry covering [lo, hi] of the locus: a Line, a Ray, a
// LineSegment or a Point.
func (lc locus) piece(lo, hi, epsilon float64) Geometry {
	loInf, hiInf := math.IsInf(lo, -1), math.IsInf(hi, 1)
	switch {
	case loInf && hiInf:
		return &Line{P: pointFromAbs(lc.Offset, lc.Origin), V: lc.Dir}
	case hiInf:
		return &Ray{L: Line{P: pointFromAbs(lc.Offset, lc.at(lo)), V: lc.Dir}}
	case loInf:
		return &Ray{L: Line{P: pointFromAbs(lc.Offset, lc.at(hi)), V: lc.Dir.Mul(-1)}}
	}

	a := pointFromAbs(lc.Offset, lc.at(lo))
	b := pointFromAbs(lc.Offset, lc.at(hi))
	if a.Equals(b, epsilon) {
		return &a
	}
	return &LineSegment{L: Line{P: a, V: b.Abs().Sub(a.Abs())}}
}

// intersectLoci intersects two loci. Non-parallel loci meet in at most one
// point; collinear ones overlap on an interval.
func intersectLoci(a, b locus, epsilon float64) Geometry {
	if IsScalarMultiple(a.Dir, b.Dir, epsilon) {
		return intersectCollinear(a, b, epsilon)
	}

	t, s, err := solveLines(a, b)
	if err != nil {
		return nil
	}
	pa, pb := a.at(t), b.at(s)
	if !VectorEquals(pa, pb, epsilon) {
		return nil
	}
	if !a.contains(t, epsilon) || !b.contains(s, epsilon) {
		return nil
	}
	p := pointFromAbs(a.Offset, a.at(a.clamp(t)))
	return &p
}

func intersectCollinear(a, b locus, epsilon float64) Geometry {
	if a.lineDistance(b.Origin) > epsilon {
		return nil
	}

	// Map b's bounds onto a's parameter.
	t0 := a.param(b.Origin)
	k := b.Dir.Dot(a.Dir) / a.Dir.Dot(a.Dir)
	mapParam := func(s float64) float64 {
		if math.IsInf(s, 0) {
			if k > 0 {
				return s
			}
			return -s
		}
		return t0 + k*s
	}
	b1, b2 := mapParam(b.Lo), mapParam(b.Hi)

	lo := math.Max(a.Lo, math.Min(b1, b2))
	hi := math.Min(a.Hi, math.Max(b1, b2))
	if lo > hi+a.tolerance(epsilon) {
		return nil
	}
	if lo > hi {
		mid := (lo + hi) / 2
		lo, hi = mid, mid
	}
	return a.piece(lo, hi, epsilon)
}

// solveLines solves [Va -Vb][t s]ᵀ = Ob - Oa in the least squares sense: for
// non-parallel lines t and s locate the closest pair of points.
func solveLines(a, b locus) (float64, float64, error) {
	A := mat.NewDense(3, 2, []float64{
		a.Dir[0], -b.Dir[0],
		a.Dir[1], -b.Dir[1],
		a.Dir[2], -b.Dir[2],
	})
	w := b.Origin.Sub(a.Origin)
	rhs := mat.NewVecDense(3, []float64{w[0], w[1], w[2]})

	var x mat.VecDense
	if err := x.SolveVec(A, rhs); err != nil {
		return 0, 0, err
	}
	return x.AtVec(0), x.AtVec(1), nil
}

// shortestSegment returns the closest pair of points between the supporting
// lines of a and b. ok is false for parallel lines.
func shortestSegment(a, b locus, epsilon float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	if IsScalarMultiple(a.Dir, b.Dir, epsilon) {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	t, s, err := solveLines(a, b)
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return a.at(t), b.at(s), true
}
