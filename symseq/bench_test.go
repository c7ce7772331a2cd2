package symseq_test

import (
	"testing"

	"github.com/katalvlaran/trapseq/symseq"
)

func BenchmarkExtend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		symseq.New(100_000)
	}
}

// BenchmarkIndexOfLastNewSubword measures a cold memo at a length too long
// for an exact uint64 key.
func BenchmarkIndexOfLastNewSubword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := symseq.New(0)
		if _, err := s.IndexOfLastNewSubword(40); err != nil {
			b.Fatal(err)
		}
	}
}
