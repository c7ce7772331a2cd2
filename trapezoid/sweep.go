package trapezoid

import (
	"slices"

	"github.com/katalvlaran/trapseq/exact"
	"github.com/katalvlaran/trapseq/geom"
	"github.com/katalvlaran/trapseq/segtree"
)

// SweepResult describes the best line found by a radial sweep: it passes
// through vertex PivotVertex of trapezoid PivotIndex (at PivotPoint) and
// through PartnerPoint, the vertex of trapezoid PartnerIndex whose entry made
// the count peak. PartnerIndex is −1 when the peak was reached by the
// horizontal starting line, with PartnerPoint one unit to the right of the pivot.
type SweepResult[S exact.Scalar[S]] struct {
	Count        int
	PivotIndex   int
	PivotVertex  int
	PivotPoint   geom.Point[S]
	PartnerIndex int
	PartnerPoint geom.Point[S]
}

// event is a trapezoid starting (enter) or stopping (exit) to meet the line
// through the pivot as its direction turns from 0 to π.
type event[S exact.Scalar[S]] struct {
	dir    geom.Vector[S] // normalized to the upper half-plane
	exit   bool
	distSq S
	t      int
	point  geom.Point[S]
}

// upper returns the representative of the line direction w with angle in [0, π).
func upper[S exact.Scalar[S]](w geom.Vector[S]) geom.Vector[S] {
	if y := w.Y.Sign(); y < 0 || (y == 0 && w.X.Sign() < 0) {
		return w.Neg()
	}

	return w
}

// cmpDir orders upper-half-plane directions by angle.
func cmpDir[S exact.Scalar[S]](u, w geom.Vector[S]) int {
	uh, wh := u.Y.Sign() == 0, w.Y.Sign() == 0
	switch {
	case uh && wh:
		return 0
	case uh:
		return -1
	case wh:
		return 1
	}

	return w.Cross(u).Sign()
}

func cmpEvent[S exact.Scalar[S]](a, b event[S]) int {
	if c := cmpDir(a.dir, b.dir); c != 0 {
		return c
	}
	if a.exit != b.exit {
		if a.exit {
			return 1
		}

		return -1
	}
	if c := a.distSq.Cmp(b.distSq); c != 0 {
		return c
	}

	return a.t - b.t
}

// RadialSweepCountCollinear returns the same count as CountCollinear,
// together with a witness line.
//
// Algorithm Outline:
//  1. Every vertex v of every trapezoid i in [lo, hi] is a pivot. Only
//     trapezoids t in [max(lo, i−k), min(hi, i+k)] can share a window with i.
//  2. A trapezoid containing v meets every line through v: mark it active
//     for the whole sweep.
//  3. For any other trapezoid the lines through v that meet it form a closed
//     interval of directions, bounded by its two angularly extreme vertices.
//     Directions are taken modulo π starting from the positive x axis; an
//     interval that wraps past direction 0 starts active.
//  4. Sort the enter and exit events by direction, then enter before exit,
//     then distance from v.
//  5. A lazy segment tree holds, at position s, the number of active
//     trapezoids in [s−k, s]. Activating t adds 1 over [t, t+k]. Sweep the
//     events, updating the tree, and read its maximum after every entry.
//  6. The best maximum over all pivots is the count; the pivot and the
//     vertex whose entry reached it give the witness line.
//
// Complexity:
//
//	Time   = O(n·k·log k): 4n pivots, 2k+1 trapezoids each, sorted once
//	Memory = O(k), one tree and one event buffer per pivot trapezoid
//
// Errors:
//   - ErrBadRange     : if k < 0, lo < 0 or hi < lo.
//   - exact sentinels : if a sign test fails, e.g. exact.ErrInsufficientPrecision.
func (s *Sequence[S]) RadialSweepCountCollinear(lo, hi, k int) (res SweepResult[S], err error) {
	defer exact.Recover(&err)
	if k < 0 {
		return res, ErrBadRange
	}
	if err = s.window(lo, hi); err != nil {
		return res, err
	}
	res = SweepResult[S]{PivotIndex: -1, PartnerIndex: -1}
	var (
		z     S
		right = geom.Vec(z.Const(exact.One), z.Const(exact.Zero))
		evs   []event[S]
	)
	for i := lo; i <= hi; i++ {
		tlo, thi := max(lo, i-k), min(hi, i+k)
		tree, err := segtree.New(tlo, thi)
		if err != nil {
			return res, err
		}
		for vi, v := range s.chain[i].V {
			tree.Reset()
			evs = evs[:0]
			activate := func(t int, d int64) error { return tree.Update(t, min(t+k, thi), d) }
			for t := tlo; t <= thi; t++ {
				tr := s.chain[t]
				if tr.Contains(v) {
					if err := activate(t, 1); err != nil {
						return res, err
					}

					continue
				}
				a, b := extremes(tr, v)
				wa, wb := tr.V[a].Sub(v), tr.V[b].Sub(v)
				enter := event[S]{dir: upper(wa), distSq: wa.Hypot2(), t: t, point: tr.V[a]}
				exit := event[S]{dir: upper(wb), exit: true, distSq: wb.Hypot2(), t: t, point: tr.V[b]}
				if cmpDir(exit.dir, enter.dir) < 0 {
					if err := activate(t, 1); err != nil {
						return res, err
					}
				}
				evs = append(evs, enter, exit)
			}
			slices.SortFunc(evs, cmpEvent[S])

			if c := int(tree.MaxAll()); c > res.Count {
				res = SweepResult[S]{Count: c, PivotIndex: i, PivotVertex: vi, PivotPoint: v,
					PartnerIndex: -1, PartnerPoint: v.Add(right)}
			}
			for _, e := range evs {
				if e.exit {
					if err := activate(e.t, -1); err != nil {
						return res, err
					}

					continue
				}
				if err := activate(e.t, 1); err != nil {
					return res, err
				}
				if c := int(tree.MaxAll()); c > res.Count {
					res = SweepResult[S]{Count: c, PivotIndex: i, PivotVertex: vi, PivotPoint: v,
						PartnerIndex: e.t, PartnerPoint: e.point}
				}
			}
		}
		s.opts.report("sweep", i-lo+1, hi-lo+1)
	}

	return res, nil
}

// extremes returns the vertices of tr seen from v (outside tr) at the
// clockwise and counter-clockwise ends of its angular span.
func extremes[S exact.Scalar[S]](tr Trapezoid[S], v geom.Point[S]) (a, b int) {
	var w [4]geom.Vector[S]
	for j, p := range tr.V {
		w[j] = p.Sub(v)
	}
	a, b = -1, -1
	for x := 0; x < 4; x++ {
		cw, ccw := true, true
		for y := 0; y < 4; y++ {
			c := w[x].Cross(w[y]).Sign()
			cw = cw && c >= 0
			ccw = ccw && c <= 0
		}
		if cw && a < 0 {
			a = x
		}
		if ccw && b < 0 {
			b = x
		}
	}

	return a, b
}

// MaxCollinear returns the best sweep over the whole infinite chain for
// index gap k.
//
// Algorithm Outline:
//  1. Every run of k+1 consecutive trapezoids is congruent to one lying
//     inside CollinearSearchIntervals(k+1).
//  2. Run RadialSweepCountCollinear(iv.Lo, iv.Hi−1, k) on each interval and
//     keep the best result.
//
// Complexity:
//
//	Time   = O(B·L) for the positioning scan, B = IndexOfLastNewSubword(k+1)
//	         and L = k+1, plus O(m·k·log k) for sweeps covering m trapezoids
//	Memory = O(B) for the scanned prefix
//
// Errors:
//   - ErrBadRange                : if k < 0.
//   - symseq.ErrSequenceTooShort : if a recurrence base case fails.
//   - exact sentinels            : as for RadialSweepCountCollinear.
func (s *Sequence[S]) MaxCollinear(k int) (best SweepResult[S], err error) {
	if k < 0 {
		return best, ErrBadRange
	}
	ivs, err := s.CollinearSearchIntervals(k + 1)
	if err != nil {
		return best, err
	}
	best.PivotIndex, best.PartnerIndex = -1, -1
	for n, iv := range ivs {
		r, err := s.RadialSweepCountCollinear(iv.Lo, iv.Hi-1, k)
		if err != nil {
			return best, err
		}
		if r.Count > best.Count {
			best = r
		}
		s.opts.report("max", n+1, len(ivs))
	}

	return best, nil
}
