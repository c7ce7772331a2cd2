package trapezoid

import (
	"github.com/katalvlaran/trapseq/exact"
	"github.com/katalvlaran/trapseq/geom"
	"github.com/katalvlaran/trapseq/symseq"
)

// Sequence owns a symbol sequence, the derived types and the realized chain.
// Types may run ahead of the chain: recurrence scans need types only.
type Sequence[S exact.Scalar[S]] struct {
	syms  *symseq.Sequence
	types []Type
	chain []Trapezoid[S]
	start geom.Point[S]
	shape *shape[S]
	memo  map[int]*relScan
	opts  options
}

// New returns a chain of count trapezoids whose first entry vertex is start.
// It fails with exact.ErrNotRepresentable for families without √3.
func New[S exact.Scalar[S]](count int, start geom.Point[S], opts ...Option) (seq *Sequence[S], err error) {
	defer exact.Recover(&err)
	if count < 0 {
		return nil, ErrBadRange
	}
	s := &Sequence[S]{
		start: start,
		shape: newShape[S](),
		memo:  make(map[int]*relScan),
	}
	for _, o := range opts {
		o(&s.opts)
	}
	s.syms = symseq.New(count, s.opts.symOpts...)
	s.extend(count)

	return s, nil
}

// Extend grows the chain to at least count trapezoids, continuing from the
// exit of the last one. Existing trapezoids never change.
func (s *Sequence[S]) Extend(count int) (err error) {
	defer exact.Recover(&err)
	if count < 0 {
		return ErrBadRange
	}
	s.extend(count)

	return nil
}

func (s *Sequence[S]) extendTypes(n int) {
	if n <= len(s.types) {
		return
	}
	s.syms.Extend(n)
	for _, x := range s.syms.Symbols()[len(s.types):n] {
		s.types = append(s.types, TypeOf(x))
	}
}

func (s *Sequence[S]) extend(count int) {
	if count <= len(s.chain) {
		return
	}
	s.extendTypes(count)
	at := s.start
	if n := len(s.chain); n > 0 {
		at = s.chain[n-1].Exit()
	}
	for i := len(s.chain); i < count; i++ {
		tr := s.shape.place(s.types[i], at)
		s.chain = append(s.chain, tr)
		at = tr.Exit()
	}
}

// Len returns the number of realized trapezoids.
func (s *Sequence[S]) Len() int { return len(s.chain) }

// Start returns the entry vertex of the first trapezoid.
func (s *Sequence[S]) Start() geom.Point[S] { return s.start }

// At returns trapezoid i of the current chain.
func (s *Sequence[S]) At(i int) (Trapezoid[S], error) {
	if i < 0 || i >= len(s.chain) {
		return Trapezoid[S]{}, ErrIndexOutOfRange
	}

	return s.chain[i], nil
}

// Trapezoids returns the realized chain. The slice aliases internal storage
// and must not be modified.
func (s *Sequence[S]) Trapezoids() []Trapezoid[S] { return s.chain[:len(s.chain):len(s.chain)] }

// Types returns the type of every realized trapezoid, as a copy.
func (s *Sequence[S]) Types() []Type { return append([]Type(nil), s.types[:len(s.chain)]...) }

// Symbols returns the symbols of every realized trapezoid, as a copy.
func (s *Sequence[S]) Symbols() []symseq.Symbol {
	return append([]symseq.Symbol(nil), s.syms.Symbols()[:len(s.chain)]...)
}

// SymbolSequence returns the underlying symbol sequence.
func (s *Sequence[S]) SymbolSequence() *symseq.Sequence { return s.syms }

// Bounds returns the approximate bounding box of the realized chain.
func (s *Sequence[S]) Bounds() geom.Rect {
	r := geom.EmptyRect()
	for _, tr := range s.chain {
		r = r.Union(tr.Bounds())
	}

	return r
}

// window validates the index window [lo, hi] and realizes it.
func (s *Sequence[S]) window(lo, hi int) error {
	if lo < 0 || hi < lo {
		return ErrBadRange
	}
	s.extend(hi + 1)

	return nil
}
