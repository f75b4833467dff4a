// Package gjk implements the Gilbert-Johnson-Keerthi overlap test for convex
// point sets.
//
// Two convex sets A and B overlap when their Minkowski difference A - B
// contains the origin. GJK never builds that difference: it only asks both
// sets for their support point in a direction, and grows a simplex of at most
// four support points toward the origin until it either encloses it or proves
// that it cannot be reached.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// maxIterations bounds the refinement loop. Polytopes converge in a handful
// of steps; hitting the bound reports no overlap.
const maxIterations = 32

// minTolerance is the distance below which simplex features are degenerate
// when no margin is given.
const minTolerance = 1e-12

// Convex is a convex point set known through its support function: the
// point of the set furthest along direction.
type Convex interface {
	Support(direction mgl64.Vec3) mgl64.Vec3
}

// Simplex holds 1 to 4 support points of the Minkowski difference. The most
// recent point is always Points[Count-1].
type Simplex struct {
	Points [4]mgl64.Vec3
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

func (s *Simplex) set(points ...mgl64.Vec3) {
	s.Count = copy(s.Points[:], points)
}

var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// MinkowskiSupport returns the support point of (A ⊕ margin-ball) - B in
// direction. A positive margin grows A by that distance so that sets closer
// than margin count as overlapping.
func MinkowskiSupport(a, b Convex, direction mgl64.Vec3, margin float64) mgl64.Vec3 {
	supportA := a.Support(direction)
	if margin > 0 {
		if length := direction.Len(); length > 0 {
			supportA = supportA.Add(direction.Mul(margin / length))
		}
	}
	return supportA.Sub(b.Support(direction.Mul(-1)))
}

// Overlap is GJK with a simplex borrowed from SimplexPool.
func Overlap(a, b Convex, margin float64) bool {
	simplex := SimplexPool.Get().(*Simplex)
	defer SimplexPool.Put(simplex)
	simplex.Reset()

	return GJK(a, b, margin, simplex)
}

// GJK reports whether a and b overlap, margin included.
//
// The margin, or minTolerance when it is smaller, is also the distance under
// which the origin counts as lying on a simplex feature.
//
// The simplex is overwritten. When GJK returns true after a full search it
// holds a tetrahedron enclosing the origin.
func GJK(a, b Convex, margin float64, simplex *Simplex) bool {
	tolerance := math.Max(margin, minTolerance)

	// Start from the offset between two opposite support points of each set,
	// a cheap estimate of the direction from A to B.
	direction := b.Support(mgl64.Vec3{1, 0, 0}).Add(b.Support(mgl64.Vec3{-1, 0, 0})).
		Sub(a.Support(mgl64.Vec3{1, 0, 0})).Sub(a.Support(mgl64.Vec3{-1, 0, 0}))
	if direction.LenSqr() <= tolerance*tolerance {
		direction = mgl64.Vec3{1, 0, 0}
	}

	simplex.set(MinkowskiSupport(a, b, direction, margin))
	direction = simplex.Points[0].Mul(-1)

	// The first support point is the origin: the sets touch.
	if direction.LenSqr() <= tolerance*tolerance {
		return true
	}

	for i := 0; i < maxIterations; i++ {
		next := MinkowskiSupport(a, b, direction, margin)

		// The furthest point toward the origin does not pass it, so the
		// origin lies outside the Minkowski difference.
		if next.Dot(direction) < 0 {
			return false
		}

		simplex.Points[simplex.Count] = next
		simplex.Count++

		if containsOrigin(simplex, &direction, tolerance) {
			return true
		}
		if direction.LenSqr() == 0 {
			// The origin is on the current feature.
			return true
		}
	}

	return false
}

// containsOrigin reduces the simplex to its feature closest to the origin and
// points direction at the origin from that feature. Only a tetrahedron, or a
// degenerate feature passing through the origin, reports true.
func containsOrigin(simplex *Simplex, direction *mgl64.Vec3, tolerance float64) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction, tolerance)
	case 3:
		return triangle(simplex, direction, tolerance)
	case 4:
		return tetrahedron(simplex, direction, tolerance)
	}
	return false
}

// line handles the segment simplex [B, A], A being the newest point.
func line(simplex *Simplex, direction *mgl64.Vec3, tolerance float64) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)
	tol2 := tolerance * tolerance

	if ab.LenSqr() <= tol2 {
		if ao.LenSqr() <= tol2 {
			return true
		}
		simplex.set(a)
		*direction = ao
		return false
	}

	// Origin behind A
	if ab.Dot(ao) <= 0 {
		simplex.set(a)
		*direction = ao
		return false
	}

	// Origin past B
	if ab.Dot(ao) >= ab.LenSqr() {
		simplex.set(b)
		*direction = b.Mul(-1)
		return false
	}

	// |ab × ao| / |ab| is the distance from the origin to the segment line.
	cross := ab.Cross(ao)
	if cross.LenSqr() <= tol2*ab.LenSqr() {
		// Origin on the segment
		return true
	}

	*direction = cross.Cross(ab)
	return false
}

// flat reports whether the triangle with edges ab and ac, of normal ab × ac,
// is thinner than tolerance.
func flat(ab, ac, normal mgl64.Vec3, tolerance float64) bool {
	longest := math.Max(math.Max(ab.LenSqr(), ac.LenSqr()), ac.Sub(ab).LenSqr())
	return normal.LenSqr() <= tolerance*tolerance*longest
}

// triangle handles the simplex [C, B, A], A being the newest point.
func triangle(simplex *Simplex, direction *mgl64.Vec3, tolerance float64) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)
	normal := ab.Cross(ac)

	if flat(ab, ac, normal, tolerance) {
		// Collinear: fall back to the newest edge.
		simplex.set(b, a)
		return line(simplex, direction, tolerance)
	}

	if ab.Cross(normal).Dot(ao) > 0 {
		simplex.set(b, a)
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	if normal.Cross(ac).Dot(ao) > 0 {
		simplex.set(c, a)
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	if normal.Dot(ao) > 0 {
		*direction = normal
	} else {
		// Below the face: swap winding so that the normal faces the origin.
		simplex.set(b, c, a)
		*direction = normal.Mul(-1)
	}

	return false
}

// tetrahedron handles the simplex [D, C, B, A], A being the newest point.
// Each face normal is flipped away from the opposite vertex before the
// origin is tested against it.
func tetrahedron(simplex *Simplex, direction *mgl64.Vec3, tolerance float64) bool {
	a := simplex.Points[3]
	b := simplex.Points[2]
	c := simplex.Points[1]
	d := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	// A flat base, or D within tolerance of its plane, leaves no volume.
	normal := ab.Cross(ac)
	height := normal.Dot(ad)
	if flat(ab, ac, normal, tolerance) || height*height <= tolerance*tolerance*normal.LenSqr() {
		simplex.set(c, b, a)
		return triangle(simplex, direction, tolerance)
	}

	abc := outward(normal, ad)
	acd := outward(ac.Cross(ad), ab)
	adb := outward(ad.Cross(ab), ac)

	switch {
	case abc.Dot(ao) > 0:
		simplex.set(c, b, a)
	case acd.Dot(ao) > 0:
		simplex.set(d, c, a)
	case adb.Dot(ao) > 0:
		simplex.set(b, d, a)
	default:
		return true
	}
	return triangle(simplex, direction, tolerance)
}

// outward flips normal when it points toward the opposite vertex.
func outward(normal, toOpposite mgl64.Vec3) mgl64.Vec3 {
	if normal.Dot(toOpposite) > 0 {
		return normal.Mul(-1)
	}
	return normal
}
