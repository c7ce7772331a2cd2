package trapezoid

import "errors"

var (
	// ErrIndexOutOfRange indicates a trapezoid index outside the current chain.
	ErrIndexOutOfRange = errors.New("trapezoid: index out of range")

	// ErrBadRange indicates an inverted or negative index window, a negative
	// index gap, or a GapRange that admits no pair.
	ErrBadRange = errors.New("trapezoid: invalid range")

	// ErrNegativeBound indicates a negative distance bound.
	ErrNegativeBound = errors.New("trapezoid: negative bound")
)
