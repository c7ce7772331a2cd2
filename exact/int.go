package exact

import (
	"math"
	"strconv"
)

const (
	minInt64 = math.MinInt64
	maxInt64 = math.MaxInt64
)

// Int is the bounded-integer family. Its results are those of int64
// arithmetic; any operation whose true result does not fit fails with
// ErrOverflow instead of wrapping. The check happens before the operation.
type Int int64

func (x Int) String() string { return strconv.FormatInt(int64(x), 10) }

// Add returns x+y.
func (x Int) Add(y Int) Int {
	if (y > 0 && x > maxInt64-y) || (y < 0 && x < minInt64-y) {
		fail("Int.Add", ErrOverflow, x, y)
	}

	return x + y
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	if (y < 0 && x > maxInt64+y) || (y > 0 && x < minInt64+y) {
		fail("Int.Sub", ErrOverflow, x, y)
	}

	return x - y
}

// Mul returns x·y.
func (x Int) Mul(y Int) Int {
	if x == 0 || y == 0 {
		return 0
	}
	if !mulFits(int64(x), int64(y)) {
		fail("Int.Mul", ErrOverflow, x, y)
	}

	return x * y
}

// mulFits reports whether a·b is representable, without computing it.
func mulFits(a, b int64) bool {
	switch {
	case a > 0 && b > 0:
		return a <= maxInt64/b
	case a < 0 && b < 0:
		return a >= maxInt64/b
	case a > 0 && b < 0:
		return b >= minInt64/a
	case a < 0 && b > 0:
		return a >= minInt64/b
	}

	return true
}

// Div returns the exact quotient x/y.
func (x Int) Div(y Int) Int {
	if y == 0 {
		fail("Int.Div", ErrDivisionByZero, x, y)
	}
	if x == minInt64 && y == -1 {
		fail("Int.Div", ErrOverflow, x, y)
	}
	if x%y != 0 {
		fail("Int.Div", ErrDivision, x, y)
	}

	return x / y
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x == minInt64 {
		fail("Int.Neg", ErrOverflow, x)
	}

	return -x
}

// GCD returns the non-negative greatest common divisor; GCD(0, 0) is 1.
func (x Int) GCD(y Int) Int {
	return Int(gcd(int64(x), int64(y)))
}

// gcd returns the greatest common divisor of vs, or 1 when every value is
// zero. Magnitudes are taken as uint64 so that MinInt64 has a value; a
// result that does not fit int64 overflows.
func gcd(vs ...int64) int64 {
	var g uint64
	for _, v := range vs {
		u := magnitude(v)
		for u != 0 {
			g, u = u, g%u
		}
	}
	if g == 0 {
		return 1
	}
	if g > maxInt64 {
		fail("Int.GCD", ErrOverflow, Int(vs[0]))
	}

	return int64(g)
}

func magnitude(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}

	return uint64(a)
}

// Cmp returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

// Sign returns the sign of x.
func (x Int) Sign() int { return x.Cmp(0) }

// Float64 returns the nearest float64.
func (x Int) Float64() float64 { return float64(x) }

// Const returns the rational named constants; √3 multiples are not
// representable.
func (Int) Const(c Constant) Int {
	v, ok := c.integer()
	if !ok {
		fail("Int.Const", ErrNotRepresentable, c)
	}

	return Int(v)
}
