package geom

import "math"

// Rect is an axis-aligned float64 box with X0 ≤ X1 and Y0 ≤ Y1. It carries
// approximate bounds for drawing and is never used for decisions.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// EmptyRect returns the identity for Union: it contains nothing.
func EmptyRect() Rect {
	return Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
}

// Empty reports whether r contains no point.
func (r Rect) Empty() bool { return r.X0 > r.X1 || r.Y0 > r.Y1 }

// Include returns the smallest rect containing r and (x, y).
func (r Rect) Include(x, y float64) Rect {
	return Rect{
		X0: math.Min(r.X0, x), Y0: math.Min(r.Y0, y),
		X1: math.Max(r.X1, x), Y1: math.Max(r.Y1, y),
	}
}

// Union returns the smallest rect containing r and o.
func (r Rect) Union(o Rect) Rect {
	if o.Empty() {
		return r
	}

	return r.Include(o.X0, o.Y0).Include(o.X1, o.Y1)
}

// Width returns X1−X0, or 0 for an empty rect.
func (r Rect) Width() float64 {
	if r.Empty() {
		return 0
	}

	return r.X1 - r.X0
}

// Height returns Y1−Y0, or 0 for an empty rect.
func (r Rect) Height() float64 {
	if r.Empty() {
		return 0
	}

	return r.Y1 - r.Y0
}
