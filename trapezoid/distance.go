package trapezoid

import "github.com/katalvlaran/trapseq/exact"

// MinDistanceSq returns the squared distance between trapezoids i and j:
// zero when their boundaries touch, otherwise the least vertex-to-side
// distance in either direction. Side distances divide, so S must be a
// fraction family for a general answer.
func (s *Sequence[S]) MinDistanceSq(i, j int) (d S, err error) {
	defer exact.Recover(&err)
	a, b, err := s.pair(i, j)
	if err != nil {
		return d, err
	}

	return minDistanceSq(a, b), nil
}

// MaxDistanceSq returns the largest squared distance between a vertex of
// trapezoid i and a vertex of trapezoid j.
func (s *Sequence[S]) MaxDistanceSq(i, j int) (d S, err error) {
	defer exact.Recover(&err)
	a, b, err := s.pair(i, j)
	if err != nil {
		return d, err
	}

	return maxDistanceSq(a, b), nil
}

func (s *Sequence[S]) pair(i, j int) (a, b Trapezoid[S], err error) {
	if a, err = s.At(i); err != nil {
		return a, b, err
	}
	b, err = s.At(j)

	return a, b, err
}

func minDistanceSq[S exact.Scalar[S]](a, b Trapezoid[S]) S {
	for _, sa := range a.Sides() {
		for _, sb := range b.Sides() {
			if sa.Intersects(sb) {
				var z S

				return z.Const(exact.Zero)
			}
		}
	}
	var (
		best S
		set  bool
	)
	for _, pair := range [2][2]Trapezoid[S]{{a, b}, {b, a}} {
		for _, v := range pair[0].V {
			for _, side := range pair[1].Sides() {
				d := side.DistanceSq(v)
				if !set || d.Cmp(best) < 0 {
					best, set = d, true
				}
			}
		}
	}

	return best
}

func maxDistanceSq[S exact.Scalar[S]](a, b Trapezoid[S]) S {
	best := a.V[0].DistanceSq(b.V[0])
	for _, u := range a.V {
		for _, v := range b.V {
			best = exact.Max(best, u.DistanceSq(v))
		}
	}

	return best
}

// GapRange selects the pairs (i, i+g) with Start ≤ i and i+g ≤ End, for
// every gap g in [GapMin, GapMax].
type GapRange struct {
	Start  int `json:"start" yaml:"start"`
	End    int `json:"end" yaml:"end"`
	GapMin int `json:"gap_min" yaml:"gap_min"`
	GapMax int `json:"gap_max" yaml:"gap_max"`
}

func (r GapRange) validate() error {
	if r.Start < 0 || r.End < r.Start || r.GapMin < 1 || r.GapMax < r.GapMin || r.GapMax > r.End-r.Start {
		return ErrBadRange
	}

	return nil
}

// gapExtreme folds dist over every pair at gap g, keeping the value that
// better satisfies keep.
func (s *Sequence[S]) gapExtreme(r GapRange, g int, dist func(a, b Trapezoid[S]) S, keep func(cand, cur S) bool) S {
	best := dist(s.chain[r.Start], s.chain[r.Start+g])
	for i := r.Start + 1; i+g <= r.End; i++ {
		if d := dist(s.chain[i], s.chain[i+g]); keep(d, best) {
			best = d
		}
	}

	return best
}

func larger[S exact.Scalar[S]](cand, cur S) bool  { return cand.Cmp(cur) > 0 }
func smaller[S exact.Scalar[S]](cand, cur S) bool { return cand.Cmp(cur) < 0 }

// assertGaps runs check for every gap in r, stopping at the first failure.
func (s *Sequence[S]) assertGaps(r GapRange, bound S, check func(g int, boundSq S) bool) (ok bool, err error) {
	defer exact.Recover(&err)
	if err = r.validate(); err != nil {
		return false, err
	}
	if bound.Sign() < 0 {
		return false, ErrNegativeBound
	}
	s.extend(r.End + 1)
	boundSq := bound.Mul(bound)
	for g := r.GapMin; g <= r.GapMax; g++ {
		if !check(g, boundSq) {
			return false, nil
		}
		s.opts.report("assert", g-r.GapMin+1, r.GapMax-r.GapMin+1)
	}

	return true, nil
}

// AssertBoundedMaxDistance reports whether, for every gap g in r, no two
// trapezoids g apart are farther than bound·g: max d² ≤ bound²·g².
func (s *Sequence[S]) AssertBoundedMaxDistance(r GapRange, bound S) (bool, error) {
	return s.assertGaps(r, bound, func(g int, boundSq S) bool {
		hi := s.gapExtreme(r, g, maxDistanceSq[S], larger[S])
		gSq := exact.FromInt[S](int64(g) * int64(g))

		return hi.Cmp(boundSq.Mul(gSq)) <= 0
	})
}

// AssertBoundedMinDistance reports whether, for every gap g in r, any two
// trapezoids g apart are at least bound·g apart: min d² ≥ bound²·g².
func (s *Sequence[S]) AssertBoundedMinDistance(r GapRange, bound S) (bool, error) {
	return s.assertGaps(r, bound, func(g int, boundSq S) bool {
		lo := s.gapExtreme(r, g, minDistanceSq[S], smaller[S])
		gSq := exact.FromInt[S](int64(g) * int64(g))

		return lo.Cmp(boundSq.Mul(gSq)) >= 0
	})
}

// AssertBoundedRatio reports whether, for every gap g in r, the largest
// distance at that gap is at most bound times the smallest:
// max d² ≤ bound²·min d². Touching trapezoids make the ratio unbounded.
func (s *Sequence[S]) AssertBoundedRatio(r GapRange, bound S) (bool, error) {
	return s.assertGaps(r, bound, func(g int, boundSq S) bool {
		hi := s.gapExtreme(r, g, maxDistanceSq[S], larger[S])
		lo := s.gapExtreme(r, g, minDistanceSq[S], smaller[S])

		return hi.Cmp(boundSq.Mul(lo)) <= 0
	})
}

// GapExtremes returns, for every gap in r, the smallest and largest squared
// distance between trapezoids that far apart.
func (s *Sequence[S]) GapExtremes(r GapRange) (minSq, maxSq []S, err error) {
	defer exact.Recover(&err)
	if err = r.validate(); err != nil {
		return nil, nil, err
	}
	s.extend(r.End + 1)
	for g := r.GapMin; g <= r.GapMax; g++ {
		minSq = append(minSq, s.gapExtreme(r, g, minDistanceSq[S], smaller[S]))
		maxSq = append(maxSq, s.gapExtreme(r, g, maxDistanceSq[S], larger[S]))
	}

	return minSq, maxSq, nil
}
