package trapezoid

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trapseq/exact"
	"github.com/katalvlaran/trapseq/geom"
)

// reversed returns a sequence holding the first n trapezoids of s in
// reverse index order. It must not be extended.
func reversed[S exact.Scalar[S]](s *Sequence[S], n int) *Sequence[S] {
	r := *s
	r.chain = slices.Clone(s.chain[:n])
	slices.Reverse(r.chain)
	r.memo = make(map[int]*relScan)

	return &r
}

// TestCollinear_ReversalSymmetric relabels t as n−1−t inside each window:
// the geometry is unchanged, so both counts must be too.
func TestCollinear_ReversalSymmetric(t *testing.T) {
	const n = 40
	s, err := New(n, geom.Pt(exact.Q(0, 0), exact.Q(0, 0)))
	require.NoError(t, err)
	rev := reversed(s, n)

	cases := []struct{ lo, hi, k int }{
		{0, 6, 6},
		{0, 39, 3},
		{0, 39, 7},
		{5, 30, 2},
		{12, 20, 8},
		{17, 17, 0},
	}
	for _, tc := range cases {
		fwd, err := s.CountCollinear(tc.lo, tc.hi, tc.k)
		require.NoError(t, err)
		back, err := rev.CountCollinear(n-1-tc.hi, n-1-tc.lo, tc.k)
		require.NoError(t, err)
		assert.Equal(t, fwd, back, "naive %+v", tc)

		fs, err := s.RadialSweepCountCollinear(tc.lo, tc.hi, tc.k)
		require.NoError(t, err)
		bs, err := rev.RadialSweepCountCollinear(n-1-tc.hi, n-1-tc.lo, tc.k)
		require.NoError(t, err)
		assert.Equal(t, fs.Count, bs.Count, "sweep %+v", tc)
		assert.Equal(t, fwd, bs.Count, "naive vs sweep %+v", tc)
		require.GreaterOrEqual(t, bs.PivotIndex, n-1-tc.hi)
	}
	assert.Equal(t, n, rev.Len(), "queries inside the window do not extend")
}

func TestBestWindow(t *testing.T) {
	m := []bool{true, false, true, true, false, true}
	assert.Equal(t, 2, bestWindow(m, 2))
	assert.Equal(t, 3, bestWindow(m, 4))
	assert.Equal(t, 4, bestWindow(m, 10))
	assert.Equal(t, 1, bestWindow(m, 1))
	assert.Zero(t, bestWindow(nil, 3))
}
