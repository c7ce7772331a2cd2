package trapezoid_test

import (
	"testing"

	"github.com/katalvlaran/trapseq/trapezoid"
)

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := trapezoid.New(10_000, origin[Q]()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountCollinear(b *testing.B) {
	s, err := trapezoid.New(49, origin[Q]())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.CountCollinear(0, 48, 13); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRadialSweepCountCollinear(b *testing.B) {
	s, err := trapezoid.New(49, origin[Q]())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.RadialSweepCountCollinear(0, 48, 13); err != nil {
			b.Fatal(err)
		}
	}
}
