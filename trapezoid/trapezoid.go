package trapezoid

import (
	"github.com/katalvlaran/trapseq/exact"
	"github.com/katalvlaran/trapseq/geom"
)

// offset is the displacement (a, b√3) from the entry vertex.
type offset struct{ a, b int8 }

// offsets[t] holds vertices 1..3 of a type-t trapezoid relative to vertex 0.
// Row t+1 is row t rotated by 60°: (a, b) ↦ ((a−3b)/2, (a+b)/2).
var offsets = [Types][3]offset{
	{{1, 1}, {3, 1}, {4, 0}},
	{{-1, 1}, {0, 2}, {2, 2}},
	{{-2, 0}, {-3, 1}, {-2, 2}},
	{{-1, -1}, {-3, -1}, {-4, 0}},
	{{1, -1}, {0, -2}, {-2, -2}},
	{{2, 0}, {3, -1}, {2, -2}},
}

// rootMultiples[n] is the constant n√3.
var rootMultiples = [...]exact.Constant{exact.Zero, exact.Sqrt3, exact.TwoSqrt3}

// vector converts o into family S using named constants only.
func vector[S exact.Scalar[S]](o offset) geom.Vector[S] {
	x := exact.C[S](exact.Constant(abs8(o.a)))
	if o.a < 0 {
		x = x.Neg()
	}
	y := exact.C[S](rootMultiples[abs8(o.b)])
	if o.b < 0 {
		y = y.Neg()
	}

	return geom.Vec(x, y)
}

func abs8(v int8) int {
	if v < 0 {
		return int(-v)
	}

	return int(v)
}

// shape holds the offset vectors of every type converted into one family.
type shape[S exact.Scalar[S]] struct {
	v [Types][3]geom.Vector[S]
}

func newShape[S exact.Scalar[S]]() *shape[S] {
	var sh shape[S]
	for t := range offsets {
		for j, o := range offsets[t] {
			sh.v[t][j] = vector[S](o)
		}
	}

	return &sh
}

// Trapezoid is one link of the chain. V[0] is the entry and V[3] the exit;
// the vertices run clockwise.
type Trapezoid[S exact.Scalar[S]] struct {
	V    [4]geom.Point[S]
	Type Type
}

// NewTrapezoid returns the type-t trapezoid whose entry vertex is start.
// It panics with *exact.Error when S cannot represent √3.
func NewTrapezoid[S exact.Scalar[S]](t Type, start geom.Point[S]) Trapezoid[S] {
	return newShape[S]().place(t%Types, start)
}

func (sh *shape[S]) place(t Type, start geom.Point[S]) Trapezoid[S] {
	tr := Trapezoid[S]{Type: t}
	tr.V[0] = start
	for j, v := range sh.v[t] {
		tr.V[j+1] = start.Add(v)
	}

	return tr
}

// Entry returns V[0].
func (tr Trapezoid[S]) Entry() geom.Point[S] { return tr.V[0] }

// Exit returns V[3], the entry of the next trapezoid.
func (tr Trapezoid[S]) Exit() geom.Point[S] { return tr.V[3] }

// Side returns the segment V[i] → V[i+1 mod 4].
func (tr Trapezoid[S]) Side(i int) geom.LineSegment[S] {
	return geom.Seg(tr.V[i%4], tr.V[(i+1)%4])
}

// Sides returns the four sides in vertex order.
func (tr Trapezoid[S]) Sides() [4]geom.LineSegment[S] {
	var out [4]geom.LineSegment[S]
	for i := range out {
		out[i] = tr.Side(i)
	}

	return out
}

// Contains reports whether p lies in the closed trapezoid.
func (tr Trapezoid[S]) Contains(p geom.Point[S]) bool {
	var pos, neg bool
	for i := 0; i < 4; i++ {
		switch geom.Orientation(tr.V[i], tr.V[(i+1)%4], p) {
		case 1:
			pos = true
		case -1:
			neg = true
		}
		if pos && neg {
			return false
		}
	}

	return true
}

// PiercedBy reports whether the line through a and b meets the closed
// trapezoid.
func (tr Trapezoid[S]) PiercedBy(a, b geom.Point[S]) bool {
	for i := 0; i < 4; i++ {
		if tr.Side(i).IntersectsInfiniteLine(a, b) {
			return true
		}
	}

	return false
}

// Bounds returns the approximate bounding box.
func (tr Trapezoid[S]) Bounds() geom.Rect {
	r := geom.EmptyRect()
	for _, v := range tr.V {
		r = r.Include(v.Float64s())
	}

	return r
}
