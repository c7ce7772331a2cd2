// SPDX-License-Identifier: MIT

// Package exact - Fraction[S], an exact fraction over any Scalar family.
//
// Invariants (hold after every constructor and every operation):
//   - the denominator is positive;
//   - numerator and denominator share no common divisor other than the unit,
//     as reported by the underlying family's GCD.
//
// The zero value is 0/1, so `var f Fraction[Int]` is ready to use.
//
// Equality is decided by cross-multiplication, which is exact even for
// families (such as Quadratic) in which the reduced form is not unique.

package exact

// Fraction is the exact quotient Num/Den of two values of family S.
type Fraction[S Scalar[S]] struct {
	num S
	den S // zero only in the zero value, read as 1
}

// NewFraction returns num/den normalized. It fails with ErrDivisionByZero
// when den is zero.
func NewFraction[S Scalar[S]](num, den S) Fraction[S] {
	if den.Sign() == 0 {
		fail("Fraction.New", ErrDivisionByZero, num, den)
	}

	return Fraction[S]{num: num, den: den}.normalize()
}

// Whole returns v/1.
func Whole[S Scalar[S]](v S) Fraction[S] {
	return Fraction[S]{num: v, den: v.Const(One)}
}

// Num returns the normalized numerator.
func (f Fraction[S]) Num() S { return f.num }

// Den returns the normalized (positive) denominator.
func (f Fraction[S]) Den() S { return f.denom() }

func (f Fraction[S]) denom() S {
	if f.den.Sign() == 0 {
		return f.num.Const(One)
	}

	return f.den
}

// normalize makes the denominator positive and divides out the common
// divisor. GCD(0, d) is d's content, so 0/d becomes 0/1 up to the family's
// notion of a unit; GCD(0, 0) never occurs since den != 0.
func (f Fraction[S]) normalize() Fraction[S] {
	n, d := f.num, f.denom()
	if d.Sign() < 0 {
		n, d = n.Neg(), d.Neg()
	}
	if n.Sign() == 0 {
		return Fraction[S]{num: n, den: d.Const(One)}
	}
	g := n.GCD(d)
	if g.Cmp(g.Const(One)) != 0 {
		n, d = n.Div(g), d.Div(g)
	}

	return Fraction[S]{num: n, den: d}
}

// Normalize returns f in normal form. Every constructor already returns
// normalized values; Normalize is idempotent.
func (f Fraction[S]) Normalize() Fraction[S] { return f.normalize() }

func (f Fraction[S]) String() string {
	d := f.denom()
	if d.Cmp(d.Const(One)) == 0 {
		return f.num.String()
	}

	return "(" + f.num.String() + ")/(" + d.String() + ")"
}

// Add returns f+g.
func (f Fraction[S]) Add(g Fraction[S]) Fraction[S] {
	fd, gd := f.denom(), g.denom()
	if fd.Cmp(gd) == 0 {
		return Fraction[S]{num: f.num.Add(g.num), den: fd}.normalize()
	}

	return Fraction[S]{
		num: f.num.Mul(gd).Add(g.num.Mul(fd)),
		den: fd.Mul(gd),
	}.normalize()
}

// Sub returns f-g.
func (f Fraction[S]) Sub(g Fraction[S]) Fraction[S] { return f.Add(g.Neg()) }

// Mul returns f·g, cross-reducing first to keep intermediates small.
func (f Fraction[S]) Mul(g Fraction[S]) Fraction[S] {
	if f.num.Sign() == 0 || g.num.Sign() == 0 {
		return Fraction[S]{num: f.num.Const(Zero), den: f.num.Const(One)}
	}
	a, b := reduce(f.num, g.denom())
	c, d := reduce(g.num, f.denom())

	return Fraction[S]{num: a.Mul(c), den: d.Mul(b)}.normalize()
}

// reduce divides x and y by their common divisor.
func reduce[S Scalar[S]](x, y S) (S, S) {
	g := x.GCD(y)
	if g.Cmp(g.Const(One)) == 0 {
		return x, y
	}

	return x.Div(g), y.Div(g)
}

// Div returns f/g. It fails with ErrDivisionByZero iff g's numerator is zero.
func (f Fraction[S]) Div(g Fraction[S]) Fraction[S] {
	if g.num.Sign() == 0 {
		fail("Fraction.Div", ErrDivisionByZero, f, g)
	}

	return f.Mul(g.Reciprocal())
}

// Reciprocal returns 1/f (swap, then normalize).
func (f Fraction[S]) Reciprocal() Fraction[S] {
	if f.num.Sign() == 0 {
		fail("Fraction.Reciprocal", ErrDivisionByZero, f)
	}

	return Fraction[S]{num: f.denom(), den: f.num}.normalize()
}

// Neg returns -f.
func (f Fraction[S]) Neg() Fraction[S] {
	return Fraction[S]{num: f.num.Neg(), den: f.denom()}
}

// GCD returns gcd(a, c)/lcm(b, d) for f=a/b, g=c/d: the largest fraction
// dividing both into integers of the family.
func (f Fraction[S]) GCD(g Fraction[S]) Fraction[S] {
	fd, gd := f.denom(), g.denom()
	num := f.num.GCD(g.num)
	lcm := fd.Div(fd.GCD(gd)).Mul(gd)

	return Fraction[S]{num: num, den: lcm}.normalize()
}

// Cmp orders f and g: with positive denominators, sign(a/b - c/d) is
// sign(a·d - c·b).
func (f Fraction[S]) Cmp(g Fraction[S]) int {
	return f.num.Mul(g.denom()).Cmp(g.num.Mul(f.denom()))
}

// Sign returns the sign of the numerator.
func (f Fraction[S]) Sign() int { return f.num.Sign() }

// Float64 returns the nearest float64 approximation.
func (f Fraction[S]) Float64() float64 {
	return f.num.Float64() / f.denom().Float64()
}

// Const returns c/1.
func (f Fraction[S]) Const(c Constant) Fraction[S] {
	return Fraction[S]{num: f.num.Const(c), den: f.num.Const(One)}
}
