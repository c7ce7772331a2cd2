package symseq

import (
	"slices"

	"github.com/katalvlaran/trapseq/internal/window"
)

// Interval is the half-open index range [Lo, Hi).
type Interval = window.Interval

// IndexOfLastNewSymbol returns the position of the last first-occurrence
// among the twelve symbols, searched within the first BaseWindow symbols.
// It fails with ErrSequenceTooShort if a symbol is missing from that prefix.
func (s *Sequence) IndexOfLastNewSymbol() (int, error) {
	sc, err := s.scanLen(1)
	if err != nil {
		return 0, err
	}

	return sc.last, nil
}

// IndexOfLastNewSymbolPair returns the start of the last first-occurrence
// among the length-2 words, searched within the first BaseWindow symbols.
// It fails with ErrSequenceTooShort if a pair inside some rule image, or
// across the seam of two neighbouring images, is missing from that prefix.
func (s *Sequence) IndexOfLastNewSymbolPair() (int, error) {
	sc, err := s.scanLen(2)
	if err != nil {
		return 0, err
	}

	return sc.last, nil
}

// IndexOfLastNewSubword returns the greatest start p such that the length-L
// window at p occurs nowhere before p. Every length-L word of the infinite
// sequence has its first occurrence at or before this index.
func (s *Sequence) IndexOfLastNewSubword(l int) (int, error) {
	sc, err := s.scanLen(l)
	if err != nil {
		return 0, err
	}

	return sc.last, nil
}

// FirstOccurrences returns every start at which a length-L word occurs for
// the first time, in increasing order. The result is a copy.
func (s *Sequence) FirstOccurrences(l int) ([]int, error) {
	sc, err := s.scanLen(l)
	if err != nil {
		return nil, err
	}

	return slices.Clone(sc.firsts), nil
}

// scanLen returns the memoized scan for length l, computing shorter lengths
// first as the bound requires.
func (s *Sequence) scanLen(l int) (*scan, error) {
	if l < 1 {
		return nil, ErrBadLength
	}
	if sc, ok := s.memo[l]; ok {
		return sc, nil
	}
	var (
		sc    *scan
		bound int
		err   error
	)
	switch l {
	case 1:
		sc, err = s.baseSymbols()
		bound = s.opts.window() - 1
	case 2:
		sc, err = s.basePairs()
		bound = s.opts.window() - 2
	default:
		// Every length-l window lies inside the image of a length-m window,
		// and that window recurs by IndexOfLastNewSubword(m); its image starts
		// seven times further along.
		m := (l+RuleLen-1)/RuleLen + 1
		var src *scan
		if src, err = s.scanLen(m); err != nil {
			return nil, err
		}
		bound = RuleLen*src.last + RuleLen - 1
		s.Extend(bound + l)
		firsts := window.FirstOccurrences(s.syms, Alphabet, l, bound)
		sc = &scan{last: firsts[len(firsts)-1], firsts: firsts}
	}
	if err != nil {
		return nil, err
	}
	s.memo[l] = sc
	if s.opts.onScan != nil {
		s.opts.onScan(Progress{Length: l, Bound: bound, Last: sc.last, Words: len(sc.firsts)})
	}

	return sc, nil
}

func (s *Sequence) baseSymbols() (*scan, error) {
	n := s.opts.window()
	s.Extend(n)
	var seen [Alphabet]bool
	var firsts []int
	for i, x := range s.syms[:n] {
		if !seen[x] {
			seen[x] = true
			firsts = append(firsts, i)
		}
	}
	if len(firsts) < Alphabet {
		return nil, ErrSequenceTooShort
	}

	return &scan{last: firsts[len(firsts)-1], firsts: firsts}, nil
}

func (s *Sequence) basePairs() (*scan, error) {
	n := s.opts.window()
	s.Extend(n)
	var seen [Alphabet][Alphabet]bool
	var firsts []int
	for i := 0; i+1 < n; i++ {
		x, y := s.syms[i], s.syms[i+1]
		if !seen[x][y] {
			seen[x][y] = true
			firsts = append(firsts, i)
		}
	}
	for x := range seen {
		for y := range seen[x] {
			if pairs[x][y] && !seen[x][y] {
				return nil, ErrSequenceTooShort
			}
		}
	}

	return &scan{last: firsts[len(firsts)-1], firsts: firsts}, nil
}

// EarliestSubwordMatch returns the smallest q ≤ start whose length-L window
// equals the window at start; start itself when no earlier copy exists.
func (s *Sequence) EarliestSubwordMatch(start, l int) (int, error) {
	if l < 1 {
		return 0, ErrBadLength
	}
	if start < 0 {
		return 0, ErrIndexOutOfRange
	}
	s.Extend(start + l)
	w := s.syms[start : start+l]
	for q := 0; q < start; q++ {
		if slices.Equal(s.syms[q:q+l], w) {
			return q, nil
		}
	}

	return start, nil
}

// CollinearSearchIntervals merges [p, p+L) over every first-occurrence start
// p of a length-L word. Any window of L consecutive symbols is a copy of one
// lying entirely inside a returned interval.
func (s *Sequence) CollinearSearchIntervals(l int) ([]Interval, error) {
	sc, err := s.scanLen(l)
	if err != nil {
		return nil, err
	}

	return window.Merge(sc.firsts, l), nil
}
