// SPDX-License-Identifier: MIT

// Package exact - the Scalar capability set and generic helpers.
//
// Contract (every family):
//   - Add/Sub/Mul are exact or fail (Int overflow only).
//   - Div returns the unique exact quotient, or fails with ErrDivision when the
//     family cannot hold it, or ErrDivisionByZero for a zero divisor.
//   - Cmp/Sign are exact; Quadratic may fail with ErrInsufficientPrecision.
//   - GCD has no irrational part; GCD(0, 0) is the unit.
//   - Const(c) returns the named constant or fails with ErrNotRepresentable.

package exact

import "fmt"

// Constant names the values every family is asked to provide.
type Constant int

const (
	Zero Constant = iota
	One
	Two
	Three
	Four
	Five
	Six
	Sqrt3
	TwoSqrt3
	ThreeSqrt3
)

var constantNames = [...]string{"0", "1", "2", "3", "4", "5", "6", "√3", "2√3", "3√3"}

func (c Constant) String() string {
	if c < 0 || int(c) >= len(constantNames) {
		return fmt.Sprintf("Constant(%d)", int(c))
	}

	return constantNames[c]
}

// integer reports the integer value of c and whether c is rational.
// Irrational constants return their √3 coefficient with ok=false.
func (c Constant) integer() (v int64, ok bool) {
	switch c {
	case Sqrt3:
		return 1, false
	case TwoSqrt3:
		return 2, false
	case ThreeSqrt3:
		return 3, false
	default:
		return int64(c), true
	}
}

// Scalar is the capability set shared by all numeric families. S is the
// family itself, so implementations read as `Int implements Scalar[Int]`.
type Scalar[S any] interface {
	Add(S) S
	Sub(S) S
	Mul(S) S
	Div(S) S
	Neg() S
	GCD(S) S
	Cmp(S) int
	Sign() int
	Float64() float64
	Const(Constant) S
	String() string
}

var (
	_ Scalar[Int]                 = Int(0)
	_ Scalar[Float]               = Float(0)
	_ Scalar[Quadratic]           = Quadratic{}
	_ Scalar[Fraction[Int]]       = Fraction[Int]{}
	_ Scalar[Fraction[Quadratic]] = Fraction[Quadratic]{}
)

// C returns the named constant c of family S.
func C[S Scalar[S]](c Constant) S {
	var z S

	return z.Const(c)
}

// FromInt returns n in family S, built from the family's own constants so
// that it works for every implementation.
func FromInt[S Scalar[S]](n int64) S {
	var z S
	switch {
	case n >= 0 && n <= 6:
		return z.Const(Constant(n))
	case n < 0 && n >= -6:
		return z.Const(Constant(-n)).Neg()
	}
	// Horner in base 6 keeps every intermediate representable in Int.
	neg := n < 0
	if neg {
		if n == minInt64 {
			fail("exact.FromInt", ErrOverflow, Int(n))
		}
		n = -n
	}
	six := z.Const(Six)
	var digits []int64
	for n > 0 {
		digits = append(digits, n%6)
		n /= 6
	}
	out := z.Const(Zero)
	for i := len(digits) - 1; i >= 0; i-- {
		out = out.Mul(six).Add(z.Const(Constant(digits[i])))
	}
	if neg {
		out = out.Neg()
	}

	return out
}

// IsZero reports whether x is zero.
func IsZero[S Scalar[S]](x S) bool { return x.Sign() == 0 }

// Equal reports whether a and b are equal.
func Equal[S Scalar[S]](a, b S) bool { return a.Cmp(b) == 0 }

// Min returns the smaller of a and b.
func Min[S Scalar[S]](a, b S) S {
	if b.Cmp(a) < 0 {
		return b
	}

	return a
}

// Max returns the larger of a and b.
func Max[S Scalar[S]](a, b S) S {
	if b.Cmp(a) > 0 {
		return b
	}

	return a
}

// Abs returns |x|.
func Abs[S Scalar[S]](x S) S {
	if x.Sign() < 0 {
		return x.Neg()
	}

	return x
}

// Square returns x·x.
func Square[S Scalar[S]](x S) S { return x.Mul(x) }
