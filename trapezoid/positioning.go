package trapezoid

import (
	"slices"

	"github.com/katalvlaran/trapseq/internal/window"
	"github.com/katalvlaran/trapseq/symseq"
)

// relScan is the memoized positioning scan for one run length.
type relScan struct {
	last   int
	firsts []int
}

// PositioningCanonicalString returns the L types starting at start, each
// composed with the inverse of the type at start. Two runs with equal
// positionings are congruent up to rotation and translation.
func (s *Sequence[S]) PositioningCanonicalString(start, l int) (Positioning, error) {
	if l < 1 {
		return nil, symseq.ErrBadLength
	}
	if start < 0 {
		return nil, ErrBadRange
	}
	s.extendTypes(start + l)
	inv := Inverse(s.types[start])
	out := make(Positioning, l)
	for i := range out {
		out[i] = Compose(s.types[start+i], inv)
	}

	return out, nil
}

// IndexOfLastNewRelativePositioning returns the greatest start whose length-L
// positioning occurs nowhere earlier. Equal symbol words have equal
// positionings, so only starts up to IndexOfLastNewSubword(L) are scanned.
func (s *Sequence[S]) IndexOfLastNewRelativePositioning(l int) (int, error) {
	sc, err := s.relScan(l)
	if err != nil {
		return 0, err
	}

	return sc.last, nil
}

// RelativePositioningFirstOccurrences returns every start at which a length-L
// positioning occurs for the first time, in increasing order.
func (s *Sequence[S]) RelativePositioningFirstOccurrences(l int) ([]int, error) {
	sc, err := s.relScan(l)
	if err != nil {
		return nil, err
	}

	return slices.Clone(sc.firsts), nil
}

// CollinearSearchIntervals merges [p, p+L) over every first-occurrence start
// p of a length-L positioning. Every run of L consecutive trapezoids is
// congruent to one lying entirely inside a returned interval.
func (s *Sequence[S]) CollinearSearchIntervals(l int) ([]symseq.Interval, error) {
	sc, err := s.relScan(l)
	if err != nil {
		return nil, err
	}

	return window.Merge(sc.firsts, l), nil
}

func (s *Sequence[S]) relScan(l int) (*relScan, error) {
	if sc, ok := s.memo[l]; ok {
		return sc, nil
	}
	bound, err := s.syms.IndexOfLastNewSubword(l)
	if err != nil {
		return nil, err
	}
	// Positionings are equal iff the successive turns between neighbours
	// are equal, so the scan runs over the L−1 turns of each window.
	s.extendTypes(bound + l)
	turns := make([]Type, bound+l-1)
	for i := range turns {
		turns[i] = Compose(s.types[i+1], Inverse(s.types[i]))
	}
	firsts := window.FirstOccurrences(turns, Types, l-1, bound)
	sc := &relScan{last: firsts[len(firsts)-1], firsts: firsts}
	s.memo[l] = sc

	return sc, nil
}
