package exact_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trapseq/exact"
)

// TestInt_Arithmetic checks exact results well inside the range.
func TestInt_Arithmetic(t *testing.T) {
	a, b := exact.Int(84), exact.Int(-6)

	assert.Equal(t, exact.Int(78), a.Add(b))
	assert.Equal(t, exact.Int(90), a.Sub(b))
	assert.Equal(t, exact.Int(-504), a.Mul(b))
	assert.Equal(t, exact.Int(-14), a.Div(b))
	assert.Equal(t, exact.Int(-84), a.Neg())
	assert.Equal(t, exact.Int(6), a.GCD(b))
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Sign())
	assert.Equal(t, 84.0, a.Float64())
}

// TestInt_Overflow verifies that every operation refuses results outside int64.
func TestInt_Overflow(t *testing.T) {
	maxI, minI := exact.Int(math.MaxInt64), exact.Int(math.MinInt64)
	cases := []struct {
		name string
		fn   func()
	}{
		{"AddPositive", func() { maxI.Add(1) }},
		{"AddNegative", func() { minI.Add(-1) }},
		{"SubPositive", func() { maxI.Sub(-1) }},
		{"SubNegative", func() { minI.Sub(1) }},
		{"MulLarge", func() { exact.Int(1 << 32).Mul(1 << 32) }},
		{"MulNegative", func() { minI.Mul(-1) }},
		{"MulMixed", func() { exact.Int(-(1 << 40)).Mul(1 << 40) }},
		{"NegMin", func() { minI.Neg() }},
		{"DivMin", func() { minI.Div(-1) }},
		{"GCDMin", func() { minI.GCD(0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := exact.Try(tc.fn)
			assert.ErrorIs(t, err, exact.ErrOverflow)
		})
	}
}

// TestInt_BoundaryFits verifies that results exactly at the bounds succeed.
func TestInt_BoundaryFits(t *testing.T) {
	err := exact.Try(func() {
		assert.Equal(t, exact.Int(math.MaxInt64), exact.Int(math.MaxInt64-1).Add(1))
		assert.Equal(t, exact.Int(math.MinInt64), exact.Int(math.MinInt64/2).Mul(2))
		assert.Equal(t, exact.Int(math.MinInt64), exact.Int(-(1 << 31)).Mul(1 << 32))
		assert.Equal(t, exact.Int(math.MinInt64+1), exact.Int(math.MaxInt64).Neg())
	})
	require.NoError(t, err)
}

// TestInt_Division checks inexact and zero divisors.
func TestInt_Division(t *testing.T) {
	assert.ErrorIs(t, exact.Try(func() { exact.Int(7).Div(2) }), exact.ErrDivision)
	assert.ErrorIs(t, exact.Try(func() { exact.Int(7).Div(0) }), exact.ErrDivisionByZero)
	assert.NoError(t, exact.Try(func() { exact.Int(-8).Div(2) }))
}

// TestInt_GCDZero verifies the unit convention for gcd(0, 0).
func TestInt_GCDZero(t *testing.T) {
	assert.Equal(t, exact.Int(1), exact.Int(0).GCD(0))
	assert.Equal(t, exact.Int(5), exact.Int(0).GCD(-5))
}

// TestInt_Const verifies rational constants and the refusal of √3 multiples.
func TestInt_Const(t *testing.T) {
	var z exact.Int
	assert.Equal(t, exact.Int(6), z.Const(exact.Six))
	for _, c := range []exact.Constant{exact.Sqrt3, exact.TwoSqrt3, exact.ThreeSqrt3} {
		err := exact.Try(func() { z.Const(c) })
		assert.ErrorIs(t, err, exact.ErrNotRepresentable, c.String())
	}
}

// TestFromInt checks FromInt across families and magnitudes.
func TestFromInt(t *testing.T) {
	for _, n := range []int64{0, 5, -6, 7, 36, -1234567, 1 << 40} {
		assert.Equal(t, exact.Int(n), exact.FromInt[exact.Int](n))
		assert.Equal(t, exact.Q(n, 0), exact.FromInt[exact.Quadratic](n))
		assert.Equal(t, 0, exact.FromInt[exact.Fraction[exact.Int]](n).Cmp(exact.Whole(exact.Int(n))))
	}
	assert.ErrorIs(t, exact.Try(func() { exact.FromInt[exact.Int](math.MinInt64) }), exact.ErrOverflow)
}

// TestError_Message verifies the formatted error carries op and operands.
func TestError_Message(t *testing.T) {
	err := exact.Try(func() { exact.Int(3).Div(0) })
	require.Error(t, err)
	assert.Equal(t, "Int.Div(3, 0): exact: division by zero", err.Error())

	var e *exact.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "Int.Div", e.Op)
}

// TestRecover_RepanicsForeign verifies that unrelated panics are not swallowed.
func TestRecover_RepanicsForeign(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = exact.Try(func() { panic("boom") })
	})
}

// TestUnwrapped_Panics pins the contract callers rely on: a bare call panics
// with *Error, and Recover in a named-result function returns it instead.
func TestUnwrapped_Panics(t *testing.T) {
	for name, fn := range map[string]func(){
		"overflow":  func() { exact.Int(math.MaxInt64).Mul(2) },
		"division":  func() { exact.Q(1, 0).Div(exact.Q(2, 0)) },
		"byzero":    func() { exact.Whole(exact.Int(1)).Div(exact.Whole(exact.Int(0))) },
		"precision": func() { exact.Q(13623482, -7865521).Sign() },
		"constant":  func() { exact.Int(0).Const(exact.Sqrt3) },
	} {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, fn)

			wrapped := func() (err error) {
				defer exact.Recover(&err)
				fn()

				return nil
			}
			var e *exact.Error
			assert.ErrorAs(t, wrapped(), &e)
		})
	}
}
