package symseq_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trapseq/symseq"
)

func TestRule_FixedPointPrefix(t *testing.T) {
	r := symseq.Rule(symseq.A0)
	assert.Equal(t, symseq.A0, r[0], "Rule(A0) must start with A0")

	s := symseq.New(symseq.RuleLen)
	assert.Equal(t, r[:], s.Symbols())
}

// TestRule_EveryLetterOccurs counts letters over a long prefix: all twelve
// occur, each many times, and B5 is the last newcomer.
func TestRule_EveryLetterOccurs(t *testing.T) {
	var count [symseq.Alphabet]int
	first := make(map[symseq.Symbol]int)
	for i, x := range symseq.New(100_000).Symbols() {
		count[x]++
		if _, ok := first[x]; !ok {
			first[x] = i
		}
	}
	for x, n := range count {
		assert.Greater(t, n, 100, "%v", symseq.Symbol(x))
	}
	assert.Equal(t, 214, first[symseq.B5])
	assert.Equal(t, 30, first[symseq.B2])

	// The 12→6 map folds letters together: both kinds share every direction.
	for x := symseq.Symbol(0); x < symseq.Directions; x++ {
		assert.Equal(t, symseq.Direction(x), symseq.Direction(x+symseq.Directions))
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, symseq.B1, symseq.NewSymbol(symseq.KindB, 7))
	assert.Equal(t, symseq.A5, symseq.NewSymbol(symseq.KindA, -1))
	assert.Equal(t, "B3", symseq.B3.String())
	assert.Equal(t, "Symbol(12)", symseq.Symbol(12).String())
	assert.Equal(t, 3, symseq.Direction(symseq.B3))
	assert.Equal(t, symseq.KindB, symseq.B0.Kind())
}

// TestSequence_SelfDescribing checks position 7b+j against Rule(seq[b])[j].
func TestSequence_SelfDescribing(t *testing.T) {
	s := symseq.New(700)
	syms := s.Symbols()
	for i := symseq.RuleLen; i < len(syms); i++ {
		r := symseq.Rule(syms[i/symseq.RuleLen])
		require.Equal(t, r[i%symseq.RuleLen], syms[i], "position %d", i)
	}
}

// TestSequence_PrefixStable grows one sequence in uneven steps and compares
// it with a single generation.
func TestSequence_PrefixStable(t *testing.T) {
	grown := symseq.New(3)
	for _, n := range []int{3, 10, 9, 50, 343, 344, 1000} {
		before, err := grown.Slice(0, grown.Len())
		require.NoError(t, err)
		grown.Extend(n)
		after, err := grown.Slice(0, len(before))
		require.NoError(t, err)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Fatalf("prefix changed growing to %d (-before +after):\n%s", n, diff)
		}
	}
	fresh := symseq.New(1000)
	if diff := cmp.Diff(fresh.Symbols(), grown.Symbols()); diff != "" {
		t.Fatalf("incremental growth differs from fresh generation:\n%s", diff)
	}
}

func TestSequence_Accessors(t *testing.T) {
	s := symseq.New(0)
	assert.Zero(t, s.Len())

	x, err := s.At(20)
	require.NoError(t, err)
	assert.Equal(t, 21, s.Len(), "At grows the sequence")
	assert.Less(t, x, symseq.Symbol(symseq.Alphabet))

	sl, err := s.Slice(5, 30)
	require.NoError(t, err)
	assert.Len(t, sl, 25)
	sl[0] = symseq.B0
	y, _ := s.At(5)
	assert.NotEqual(t, symseq.B0, y, "Slice returns a copy")

	_, err = s.At(-1)
	assert.ErrorIs(t, err, symseq.ErrIndexOutOfRange)
	_, err = s.Slice(4, 3)
	assert.ErrorIs(t, err, symseq.ErrIndexOutOfRange)

	view := s.Symbols()
	assert.Equal(t, len(view), cap(view))
}

func TestWithProgress_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "symseq: WithProgress(nil)", func() { symseq.WithProgress(nil) })
}
