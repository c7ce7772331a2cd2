package symseq

import "slices"

// BaseWindow is the prefix length searched by the length-1 and length-2
// base cases.
const BaseWindow = 1000

// Sequence is the append-only fixed point of the morphism grown from A0.
// Position 7b+j holds Rule(seq[b])[j]; block 0 reads seq[0] = A0, so the
// sequence describes its own expansion.
//
// A Sequence is not safe for concurrent use.
type Sequence struct {
	syms []Symbol
	memo map[int]*scan
	opts options
}

// scan is the memoized recurrence result for one word length.
type scan struct {
	last   int
	firsts []int // first-occurrence starts, increasing
}

// New returns a sequence grown to n symbols.
func New(n int, opts ...Option) *Sequence {
	s := &Sequence{memo: make(map[int]*scan)}
	for _, o := range opts {
		o(&s.opts)
	}
	s.Extend(n)

	return s
}

// Extend grows the sequence to at least n symbols. It continues from the
// last written position, so positions already present never change and the
// result equals a fresh generation of the same length.
func (s *Sequence) Extend(n int) {
	if n <= len(s.syms) {
		return
	}
	s.syms = slices.Grow(s.syms, n-len(s.syms))
	for i := len(s.syms); i < n; i++ {
		src := A0
		if b := i / RuleLen; b > 0 {
			src = s.syms[b]
		}
		s.syms = append(s.syms, rules[src][i%RuleLen])
	}
}

// Len returns the number of generated symbols.
func (s *Sequence) Len() int { return len(s.syms) }

// At returns the symbol at position i, growing the sequence if needed.
func (s *Sequence) At(i int) (Symbol, error) {
	if i < 0 {
		return 0, ErrIndexOutOfRange
	}
	s.Extend(i + 1)

	return s.syms[i], nil
}

// Slice returns a copy of positions [lo, hi), growing the sequence if needed.
func (s *Sequence) Slice(lo, hi int) ([]Symbol, error) {
	if lo < 0 || hi < lo {
		return nil, ErrIndexOutOfRange
	}
	s.Extend(hi)

	return append([]Symbol(nil), s.syms[lo:hi]...), nil
}

// Symbols returns the generated prefix. The slice aliases internal storage
// and must not be modified; its capacity is clipped so appends copy.
func (s *Sequence) Symbols() []Symbol { return s.syms[:len(s.syms):len(s.syms)] }
