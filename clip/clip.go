// Package clip implements Sutherland-Hodgman polygon clipping in 3D.
//
// A polygon is an ordered slice of vertices. It is clipped against a plane
// given by a point and a normal; the kept side is the one the normal points
// to. Clipping a convex polygon successively against every bounding plane of
// a convex region gives the intersection of the two, which is how triangle,
// rectangle and tetrahedron overlaps are computed.
package clip

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// HalfSpace is the closed region {x : Normal·(x-Point) >= 0}.
// Normal is expected to be unit length so that tolerances are distances.
type HalfSpace struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// SignedDistance returns the distance of p to the boundary plane, positive
// inside.
func (h HalfSpace) SignedDistance(p mgl64.Vec3) float64 {
	return p.Sub(h.Point).Dot(h.Normal)
}

// Contains reports whether p is inside the half-space, tolerance included.
func (h HalfSpace) Contains(p mgl64.Vec3, tolerance float64) bool {
	return h.SignedDistance(p) >= -tolerance
}

// PolygonAgainstPlane clips polygon against a single plane.
// Vertices within tolerance of the plane are kept as they are.
func PolygonAgainstPlane(polygon []mgl64.Vec3, planePoint, planeNormal mgl64.Vec3, tolerance float64) []mgl64.Vec3 {
	if len(polygon) == 0 {
		return polygon
	}

	// A single point or a segment is not a closed polygon: only walk the
	// open chain.
	if len(polygon) <= 2 {
		return chainAgainstPlane(polygon, planePoint, planeNormal, tolerance)
	}

	output := make([]mgl64.Vec3, 0, len(polygon)+1)
	for i := 0; i < len(polygon); i++ {
		current := polygon[i]
		next := polygon[(i+1)%len(polygon)]

		currentDist := current.Sub(planePoint).Dot(planeNormal)
		nextDist := next.Sub(planePoint).Dot(planeNormal)

		if currentDist >= -tolerance {
			output = append(output, current)

			// Leaving: add the crossing point
			if nextDist < -tolerance && currentDist > tolerance {
				output = append(output, LineIntersectPlane(current, next, planePoint, planeNormal))
			}
		} else if nextDist > tolerance {
			// Entering
			output = append(output, LineIntersectPlane(current, next, planePoint, planeNormal))
		}
	}

	return output
}

func chainAgainstPlane(chain []mgl64.Vec3, planePoint, planeNormal mgl64.Vec3, tolerance float64) []mgl64.Vec3 {
	if len(chain) == 1 {
		if chain[0].Sub(planePoint).Dot(planeNormal) >= -tolerance {
			return chain
		}
		return nil
	}

	a, b := chain[0], chain[1]
	da := a.Sub(planePoint).Dot(planeNormal)
	db := b.Sub(planePoint).Dot(planeNormal)
	switch {
	case da >= -tolerance && db >= -tolerance:
		return chain
	case da < -tolerance && db < -tolerance:
		return nil
	case da < -tolerance:
		return []mgl64.Vec3{LineIntersectPlane(a, b, planePoint, planeNormal), b}
	default:
		return []mgl64.Vec3{a, LineIntersectPlane(a, b, planePoint, planeNormal)}
	}
}

// PolygonAgainstHalfSpaces clips polygon against each half-space in turn and
// stops early once nothing is left.
func PolygonAgainstHalfSpaces(polygon []mgl64.Vec3, halfSpaces []HalfSpace, tolerance float64) []mgl64.Vec3 {
	output := polygon
	for _, h := range halfSpaces {
		if len(output) == 0 {
			break
		}
		output = PolygonAgainstPlane(output, h.Point, h.Normal, tolerance)
	}
	return output
}

// LineIntersectPlane calculates the intersection between the segment p1-p2
// and a plane. The result is clamped to the segment.
func LineIntersectPlane(p1, p2, planePoint, planeNormal mgl64.Vec3) mgl64.Vec3 {
	dir := p2.Sub(p1)
	dist := p1.Sub(planePoint).Dot(planeNormal)
	denom := dir.Dot(planeNormal)

	if math.Abs(denom) < 1e-15 {
		return p1 // Segment parallel to plane
	}

	t := -dist / denom
	t = math.Max(0, math.Min(1, t))

	return p1.Add(dir.Mul(t))
}

// Interval clips the parametric locus origin + t*direction, t in [lo, hi],
// against the half-spaces (Cyrus-Beck). Infinite bounds are allowed.
//
// ok is false when the clipped interval is empty. tolerance is a distance;
// the returned bounds are not widened by it.
func Interval(origin, direction mgl64.Vec3, lo, hi float64, halfSpaces []HalfSpace, tolerance float64) (float64, float64, bool) {
	length := direction.Len()
	if length == 0 {
		return lo, hi, false
	}
	unit := direction.Mul(1 / length)

	for _, h := range halfSpaces {
		num := h.SignedDistance(origin)
		// Rate of change of the signed distance along the unit direction
		rate := unit.Dot(h.Normal)

		if math.Abs(rate) <= tolerance {
			// Parallel to the boundary plane
			if num < -tolerance {
				return lo, hi, false
			}
			continue
		}

		t := -num / (rate * length)
		if rate > 0 {
			lo = math.Max(lo, t)
		} else {
			hi = math.Min(hi, t)
		}

		if lo > hi+tolerance/length {
			return lo, hi, false
		}
	}

	if lo > hi {
		mid := (lo + hi) / 2
		lo, hi = mid, mid
	}
	return lo, hi, true
}
