package geom3d

import (
	"errors"
	"fmt"

	"github.com/akmonengine/geom3d/shape"
)

// Contact is an overlapping pair of geometries found by FindOverlaps.
type Contact struct {
	A, B int
	// Intersection is the exact intersection, or nil for pairs only known to
	// overlap (two tetrahedra).
	Intersection shape.Geometry
}

// Pair is a pair of indices into the slice given to BroadPhase, A < B.
type Pair struct {
	A, B int
}

// BroadPhase returns the pairs whose bounding boxes, grown by epsilon,
// overlap. This is an O(n²) sweep over every pair, in index order.
func BroadPhase(geometries []shape.FiniteGeometry, epsilon float64) []Pair {
	boxes := make([]shape.AABB, len(geometries))
	for i, g := range geometries {
		boxes[i] = g.AABB().Expand(epsilon)
	}

	var pairs []Pair
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Overlaps(boxes[j]) {
				pairs = append(pairs, Pair{A: i, B: j})
			}
		}
	}
	return pairs
}

// NarrowPhase resolves candidate pairs. A pair that fails is skipped and its
// error joined into the returned error.
func NarrowPhase(geometries []shape.FiniteGeometry, pairs []Pair, epsilon float64) ([]Contact, error) {
	var (
		contacts []Contact
		errs     []error
	)
	for _, p := range pairs {
		contact, ok, err := narrow(geometries[p.A], geometries[p.B], epsilon)
		if err != nil {
			errs = append(errs, fmt.Errorf("pair (%d, %d): %w", p.A, p.B, err))
			continue
		}
		if ok {
			contact.A, contact.B = p.A, p.B
			contacts = append(contacts, contact)
		}
	}
	return contacts, errors.Join(errs...)
}

func narrow(a, b shape.FiniteGeometry, epsilon float64) (Contact, bool, error) {
	g, err := Intersect(a, b, epsilon)
	if err == nil {
		return Contact{Intersection: g}, g != nil, nil
	}
	if !errors.Is(err, ErrUnsupported) {
		return Contact{}, false, err
	}

	ok, err := Overlaps(a, b, epsilon)
	if err != nil {
		return Contact{}, false, err
	}
	return Contact{}, ok, nil
}

// FindOverlaps returns every overlapping pair of geometries in index order.
// Pairs without an algorithm are skipped and reported through the error.
func FindOverlaps(geometries []shape.FiniteGeometry, epsilon float64) ([]Contact, error) {
	for i, g := range geometries {
		if g == nil {
			return nil, fmt.Errorf("geometry %d: nil", i)
		}
	}
	return NarrowPhase(geometries, BroadPhase(geometries, epsilon), epsilon)
}
