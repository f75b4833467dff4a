package shape

import "errors"

// Construction errors. Constructors wrap them with the offending values, test
// with errors.Is.
var (
	ErrZeroVector   = errors.New("zero-length vector")
	ErrCoincident   = errors.New("coincident points")
	ErrCollinear    = errors.New("collinear points")
	ErrCoplanar     = errors.New("coplanar points")
	ErrNotCoplanar  = errors.New("points are not coplanar")
	ErrNotRectangle = errors.New("points do not form a rectangle")
	ErrTooFewPoints = errors.New("too few distinct points")
)
