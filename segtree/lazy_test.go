package segtree_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trapseq/segtree"
)

func TestLazy_Basic(t *testing.T) {
	tr, err := segtree.New(-3, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, tr.Len())
	assert.Equal(t, -3, tr.Lo())
	assert.Equal(t, 4, tr.Hi())

	require.NoError(t, tr.Update(-3, 0, 2))
	require.NoError(t, tr.Update(-1, 4, 1))

	m, err := tr.Max(-3, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), m)
	assert.Equal(t, int64(3), tr.MaxAll())

	m, err = tr.Max(1, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m)

	s, err := tr.Sum(-3, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2*4+1*6), s)

	tr.Reset()
	assert.Equal(t, int64(0), tr.MaxAll())
}

func TestLazy_Errors(t *testing.T) {
	_, err := segtree.New(5, 4)
	assert.ErrorIs(t, err, segtree.ErrRange)
	_, err = segtree.NewFrom(0, nil)
	assert.ErrorIs(t, err, segtree.ErrRange)

	tr, err := segtree.New(0, 9)
	require.NoError(t, err)
	assert.ErrorIs(t, tr.Update(3, 2, 1), segtree.ErrRange)
	assert.ErrorIs(t, tr.Update(-1, 2, 1), segtree.ErrRange)
	_, err = tr.Max(0, 10)
	assert.ErrorIs(t, err, segtree.ErrRange)
	_, err = tr.Sum(4, 3)
	assert.ErrorIs(t, err, segtree.ErrRange)
}

// TestLazy_MatchesBruteForce runs random updates and queries against a plain
// slice and compares every position.
func TestLazy_MatchesBruteForce(t *testing.T) {
	const lo, n = 7, 37
	rng := rand.New(rand.NewSource(1))

	seed := make([]int64, n)
	for i := range seed {
		seed[i] = rng.Int63n(21) - 10
	}
	tr, err := segtree.NewFrom(lo, seed)
	require.NoError(t, err)
	ref := append([]int64(nil), seed...)

	for step := 0; step < 2000; step++ {
		l := lo + rng.Intn(n)
		r := l + rng.Intn(lo+n-l)
		switch rng.Intn(3) {
		case 0:
			d := rng.Int63n(11) - 5
			require.NoError(t, tr.Update(l, r, d))
			for i := l; i <= r; i++ {
				ref[i-lo] += d
			}
		case 1:
			got, err := tr.Max(l, r)
			require.NoError(t, err)
			want := ref[l-lo]
			for i := l; i <= r; i++ {
				want = max(want, ref[i-lo])
			}
			require.Equal(t, want, got, "step %d max[%d,%d]", step, l, r)
		default:
			got, err := tr.Sum(l, r)
			require.NoError(t, err)
			var want int64
			for i := l; i <= r; i++ {
				want += ref[i-lo]
			}
			require.Equal(t, want, got, "step %d sum[%d,%d]", step, l, r)
		}
	}

	got := make([]int64, n)
	for i := range got {
		got[i], err = tr.Sum(lo+i, lo+i)
		require.NoError(t, err)
	}
	if diff := cmp.Diff(ref, got); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
}
