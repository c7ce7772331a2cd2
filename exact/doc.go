// Package exact provides the exact numeric tower that every geometric
// computation in trapseq is parameterized over.
//
// 🚀 What is in here?
//
//	A single capability set, Scalar[S], implemented by four families:
//	  • Int         : bounded 64-bit integer; overflow is detected before it happens
//	  • Fraction[S] : exact fraction over any Scalar family, always normalized
//	  • Quadratic   : a + b√3 with Int coefficients, exact equality and ordering
//	  • Float       : float64, for visualization only
//
// ✨ Why generic?
//
//	Geometry (package geom) and the trapezoid engine are written once against
//	Scalar[S]. Picking the family is a compile-time decision:
//
//	  trapezoid.New[exact.Fraction[exact.Quadratic]](49, origin)
//
//	Named constants (1..6, √3, 2√3, 3√3) are read from the family's zero value,
//	so there are no runtime type switches:
//
//	  var z exact.Quadratic
//	  h := z.Const(exact.TwoSqrt3) // 0 + 2√3
//
// ⚠️ Errors: direct callers must wrap arithmetic in Try or Recover.
//
//	Arithmetic methods return plain values so formulas read like formulas.
//	When an operation has no exact answer (overflow, inexact division,
//	division by zero, undecidable √3 comparison, irrational constant in an
//	integer family) the method panics with an *Error that wraps one of the
//	sentinels in errors.go. Package trapezoid and the CLI turn these back
//	into returned errors at every exported operation. Code that calls Add,
//	Div, Cmp or Const itself (geom included) must do the same:
//
//	  err := exact.Try(func() { q = a.Div(b) })
//
//	or, in a function with a named error result:
//
//	  defer exact.Recover(&err)
//
//	after which errors.Is(err, exact.ErrDivision) and friends apply. Any
//	other panic value passes through untouched.
//
// Complexity: every operation is O(1) except GCD (O(log n) Euclid steps).
package exact
