package exact

import (
	"fmt"
	"math"
)

// Rational brackets of √3: consecutive convergents of its continued
// fraction, lowerNum/lowerDen < √3 < upperNum/upperDen. The gap is below
// 2e-13; values whose sign cannot be decided against both brackets fail
// with ErrInsufficientPrecision.
const (
	sqrt3LowerNum Int = 2672279
	sqrt3LowerDen Int = 1542841
	sqrt3UpperNum Int = 3650401
	sqrt3UpperDen Int = 2107560
)

// Quadratic is the exact element A + B√3 of the ring Z[√3].
//
// The pair (A, B) is the canonical representation: since √3 is irrational,
// two values are equal iff both coefficients are equal.
type Quadratic struct {
	A Int // integer part
	B Int // √3 coefficient
}

// Q returns a + b√3.
func Q(a, b int64) Quadratic { return Quadratic{A: Int(a), B: Int(b)} }

func (x Quadratic) String() string {
	if x.B == 0 {
		return x.A.String()
	}
	mag := uint64(x.B)
	if x.B < 0 {
		mag = -mag
	}
	r := "√3"
	if mag != 1 {
		r = fmt.Sprintf("%d√3", mag)
	}
	switch {
	case x.A == 0 && x.B < 0:
		return "-" + r
	case x.A == 0:
		return r
	case x.B < 0:
		return fmt.Sprintf("%d-%s", int64(x.A), r)
	}

	return fmt.Sprintf("%d+%s", int64(x.A), r)
}

// Add returns x+y.
func (x Quadratic) Add(y Quadratic) Quadratic {
	return Quadratic{A: x.A.Add(y.A), B: x.B.Add(y.B)}
}

// Sub returns x-y.
func (x Quadratic) Sub(y Quadratic) Quadratic {
	return Quadratic{A: x.A.Sub(y.A), B: x.B.Sub(y.B)}
}

// Mul returns x·y = (ac + 3bd) + (ad + bc)√3.
func (x Quadratic) Mul(y Quadratic) Quadratic {
	return Quadratic{
		A: x.A.Mul(y.A).Add(Int(3).Mul(x.B.Mul(y.B))),
		B: x.A.Mul(y.B).Add(x.B.Mul(y.A)),
	}
}

// Div returns x/y when the quotient lies in Z[√3]. It multiplies by the
// conjugate of y and divides both coefficients by the norm c²-3d².
func (x Quadratic) Div(y Quadratic) Quadratic {
	if y.A == 0 && y.B == 0 {
		fail("Quadratic.Div", ErrDivisionByZero, x, y)
	}
	if y.B == 0 {
		if x.A%y.A != 0 || x.B%y.A != 0 {
			fail("Quadratic.Div", ErrDivision, x, y)
		}

		return Quadratic{A: x.A.Div(y.A), B: x.B.Div(y.A)}
	}
	norm := y.Norm()
	num := x.Mul(y.Conjugate())
	if num.A%norm != 0 || num.B%norm != 0 {
		fail("Quadratic.Div", ErrDivision, x, y)
	}

	return Quadratic{A: num.A.Div(norm), B: num.B.Div(norm)}
}

// Norm returns a²-3b², never zero for a non-zero value.
func (x Quadratic) Norm() Int {
	return x.A.Mul(x.A).Sub(Int(3).Mul(x.B.Mul(x.B)))
}

// Conjugate returns a-b√3.
func (x Quadratic) Conjugate() Quadratic {
	return Quadratic{A: x.A, B: x.B.Neg()}
}

// Neg returns -x.
func (x Quadratic) Neg() Quadratic {
	return Quadratic{A: x.A.Neg(), B: x.B.Neg()}
}

// GCD returns the greatest common divisor of all four coefficients as a
// rational value; the unit when every coefficient is zero.
func (x Quadratic) GCD(y Quadratic) Quadratic {
	return Quadratic{A: Int(gcd(int64(x.A), int64(x.B), int64(y.A), int64(y.B)))}
}

// Cmp orders x and y exactly.
func (x Quadratic) Cmp(y Quadratic) int {
	if x == y {
		return 0
	}

	return x.Sub(y).Sign()
}

// Sign returns the sign of A + B√3. Mixed-sign coefficients are decided by
// substituting the bracket of √3 that bounds the value away from zero.
func (x Quadratic) Sign() int {
	a, b := x.A, x.B
	switch {
	case b == 0:
		return a.Sign()
	case a == 0:
		return b.Sign()
	case a.Sign() == b.Sign():
		return a.Sign()
	}
	// a and b have opposite signs. For b > 0:
	//   a·lowerDen + b·lowerNum > 0  ⇒  a + b√3 > 0
	//   a·upperDen + b·upperNum < 0  ⇒  a + b√3 < 0
	// For b < 0 the brackets swap roles.
	lo := a.Mul(sqrt3LowerDen).Add(b.Mul(sqrt3LowerNum)).Sign()
	hi := a.Mul(sqrt3UpperDen).Add(b.Mul(sqrt3UpperNum)).Sign()
	if b > 0 {
		if lo > 0 {
			return 1
		}
		if hi < 0 {
			return -1
		}
	} else {
		if hi > 0 {
			return 1
		}
		if lo < 0 {
			return -1
		}
	}
	fail("Quadratic.Sign", ErrInsufficientPrecision, x)

	return 0
}

// Float64 returns the nearest float64 approximation.
func (x Quadratic) Float64() float64 {
	return x.A.Float64() + x.B.Float64()*math.Sqrt(3)
}

// Const returns every named constant exactly.
func (Quadratic) Const(c Constant) Quadratic {
	v, ok := c.integer()
	if ok {
		return Quadratic{A: Int(v)}
	}

	return Quadratic{B: Int(v)}
}
