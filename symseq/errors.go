package symseq

import "errors"

var (
	// ErrSequenceTooShort indicates that a symbol, or a pair the morphism
	// produces, did not occur within the base-case window.
	ErrSequenceTooShort = errors.New("symseq: sequence too short for base case")

	// ErrBadLength indicates a word length below 1.
	ErrBadLength = errors.New("symseq: word length must be positive")

	// ErrIndexOutOfRange indicates a negative index or an inverted range.
	ErrIndexOutOfRange = errors.New("symseq: index out of range")
)
