package trapezoid

import (
	"github.com/katalvlaran/trapseq/exact"
)

// CountCollinear returns the largest number of trapezoids with indices in
// [lo, hi], all within some k+1 consecutive indices, that one line meets.
// It is the reference for RadialSweepCountCollinear.
//
// Algorithm Outline:
//  1. For every i in [lo, hi] and every j in [i, min(i+k, hi)]:
//  2. For every vertex u of trapezoid i and every vertex v ≠ u of
//     trapezoid j, take the line uv.
//  3. Mark which trapezoids t in [max(lo, j−k), min(hi, i+k)] the line
//     pierces. Only those can share a window of k+1 indices with both i and j.
//  4. Slide a window of k+1 indices over the marks, keeping a running count
//     (add the mark entering, drop the mark leaving), and keep the best.
//
// An optimal line can always be moved onto two vertices of trapezoids it
// meets without losing any of them, so the maximum is exact.
//
// Complexity:
//
//	Time   = O(n·k²) PiercedBy tests: n·(k+1) pairs, 16 lines each, 2k+1 marks per line
//	Memory = O(k), one mark buffer reused by every line
//
// Errors:
//   - ErrBadRange     : if k < 0, lo < 0 or hi < lo.
//   - exact sentinels : if a sign test fails, e.g. exact.ErrInsufficientPrecision.
func (s *Sequence[S]) CountCollinear(lo, hi, k int) (best int, err error) {
	defer exact.Recover(&err)
	if k < 0 {
		return 0, ErrBadRange
	}
	if err = s.window(lo, hi); err != nil {
		return 0, err
	}
	marks := make([]bool, 0, 2*k+1)
	for i := lo; i <= hi; i++ {
		for j := i; j <= min(i+k, hi); j++ {
			wlo, whi := max(lo, j-k), min(hi, i+k)
			for _, u := range s.chain[i].V {
				for _, v := range s.chain[j].V {
					if u.Equal(v) {
						continue
					}
					marks = marks[:0]
					for t := wlo; t <= whi; t++ {
						marks = append(marks, s.chain[t].PiercedBy(u, v))
					}
					best = max(best, bestWindow(marks, k+1))
				}
			}
		}
		s.opts.report("count", i-lo+1, hi-lo+1)
	}

	return best, nil
}

// bestWindow returns the largest number of set marks among width consecutive
// positions, or among all of them when there are fewer.
func bestWindow(marks []bool, width int) int {
	var n, best int
	for t, m := range marks {
		if m {
			n++
		}
		if t >= width && marks[t-width] {
			n--
		}
		best = max(best, n)
	}

	return best
}
