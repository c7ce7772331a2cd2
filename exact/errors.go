package exact

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for exact arithmetic. Match them with errors.Is; the
// concrete error carried by a failed operation is *Error.
var (
	// ErrOverflow indicates a bounded-integer result outside the int64 range.
	ErrOverflow = errors.New("exact: integer overflow")

	// ErrDivision indicates a quotient that is not exact in the operand family.
	ErrDivision = errors.New("exact: inexact division")

	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("exact: division by zero")

	// ErrInsufficientPrecision indicates that the rational brackets of √3 could
	// not decide the ordering of two quadratic values.
	ErrInsufficientPrecision = errors.New("exact: insufficient precision to compare")

	// ErrNotRepresentable indicates a named constant (√3 and multiples) that the
	// family cannot hold exactly.
	ErrNotRepresentable = errors.New("exact: constant not representable")
)

// Error describes a failed arithmetic operation.
type Error struct {
	Op       string   // operation name, e.g. "Int.Mul"
	Operands []string // formatted operands
	Err      error    // one of the sentinels above
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Op, strings.Join(e.Operands, ", "), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// fail panics with an *Error. It is the only way arithmetic leaves a method
// abnormally.
func fail(op string, err error, operands ...fmt.Stringer) {
	ops := make([]string, len(operands))
	for i, o := range operands {
		ops[i] = o.String()
	}
	panic(&Error{Op: op, Operands: ops, Err: err})
}

// Recover converts an arithmetic panic into an error stored in *errp.
// It must be deferred directly:
//
//	func (s *Sequence) Query() (n int, err error) {
//		defer exact.Recover(&err)
//		...
//	}
//
// Panics that do not carry an *Error are re-raised untouched.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	if errp != nil {
		*errp = e
	}
}

// Try runs fn and returns the arithmetic failure it raised, if any.
func Try(fn func()) (err error) {
	defer Recover(&err)
	fn()

	return nil
}
