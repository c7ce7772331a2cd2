package exact

import (
	"math"
	"strconv"
)

// Float is the floating-point family. It satisfies Scalar so the geometry
// can be evaluated approximately for drawing; it must not be used where an
// answer depends on an exact comparison.
type Float float64

func (x Float) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

func (x Float) Add(y Float) Float { return x + y }
func (x Float) Sub(y Float) Float { return x - y }
func (x Float) Mul(y Float) Float { return x * y }
func (x Float) Neg() Float        { return -x }

// Div returns x/y; a zero divisor fails rather than producing ±Inf.
func (x Float) Div(y Float) Float {
	if y == 0 {
		fail("Float.Div", ErrDivisionByZero, x, y)
	}

	return x / y
}

// GCD is the unit: every non-zero float divides every other.
func (Float) GCD(Float) Float { return 1 }

func (x Float) Cmp(y Float) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

func (x Float) Sign() int        { return x.Cmp(0) }
func (x Float) Float64() float64 { return float64(x) }

// Const returns the nearest float64 to the named constant.
func (Float) Const(c Constant) Float {
	v, ok := c.integer()
	if ok {
		return Float(v)
	}

	return Float(float64(v) * math.Sqrt(3))
}
