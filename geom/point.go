package geom

import (
	"fmt"

	"github.com/katalvlaran/trapseq/exact"
)

// Point is a location in the plane.
type Point[S exact.Scalar[S]] struct {
	X, Y S
}

// Vector is a displacement in the plane.
type Vector[S exact.Scalar[S]] struct {
	X, Y S
}

// Pt returns the point (x, y).
func Pt[S exact.Scalar[S]](x, y S) Point[S] { return Point[S]{X: x, Y: y} }

// Vec returns the vector (x, y).
func Vec[S exact.Scalar[S]](x, y S) Vector[S] { return Vector[S]{X: x, Y: y} }

// Sub returns the vector from q to p.
func (p Point[S]) Sub(q Point[S]) Vector[S] {
	return Vector[S]{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y)}
}

// Add returns p translated by v.
func (p Point[S]) Add(v Vector[S]) Point[S] {
	return Point[S]{X: p.X.Add(v.X), Y: p.Y.Add(v.Y)}
}

// DistanceSq returns |p−q|².
func (p Point[S]) DistanceSq(q Point[S]) S { return p.Sub(q).Hypot2() }

// Equal reports whether p and q coincide.
func (p Point[S]) Equal(q Point[S]) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Float64s returns the approximate coordinates, for drawing only.
func (p Point[S]) Float64s() (x, y float64) { return p.X.Float64(), p.Y.Float64() }

func (p Point[S]) String() string { return fmt.Sprintf("(%s, %s)", p.X, p.Y) }

func (v Vector[S]) Add(w Vector[S]) Vector[S] { return Vector[S]{X: v.X.Add(w.X), Y: v.Y.Add(w.Y)} }
func (v Vector[S]) Sub(w Vector[S]) Vector[S] { return Vector[S]{X: v.X.Sub(w.X), Y: v.Y.Sub(w.Y)} }
func (v Vector[S]) Neg() Vector[S]            { return Vector[S]{X: v.X.Neg(), Y: v.Y.Neg()} }
func (v Vector[S]) Scale(k S) Vector[S]       { return Vector[S]{X: v.X.Mul(k), Y: v.Y.Mul(k)} }

// Dot returns v·w.
func (v Vector[S]) Dot(w Vector[S]) S { return v.X.Mul(w.X).Add(v.Y.Mul(w.Y)) }

// Cross returns the z component of v×w.
func (v Vector[S]) Cross(w Vector[S]) S { return v.X.Mul(w.Y).Sub(v.Y.Mul(w.X)) }

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vector[S]) Perp() Vector[S] { return Vector[S]{X: v.Y.Neg(), Y: v.X} }

// Hypot2 returns |v|².
func (v Vector[S]) Hypot2() S { return v.Dot(v) }

// IsZero reports whether v is the zero vector.
func (v Vector[S]) IsZero() bool { return v.X.Sign() == 0 && v.Y.Sign() == 0 }

func (v Vector[S]) String() string { return fmt.Sprintf("<%s, %s>", v.X, v.Y) }

// Orientation returns the sign of (b−a)×(c−a): +1 when a, b, c turn
// counter-clockwise, −1 clockwise and 0 when collinear.
func Orientation[S exact.Scalar[S]](a, b, c Point[S]) int {
	return b.Sub(a).Cross(c.Sub(a)).Sign()
}
