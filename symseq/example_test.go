package symseq_test

import (
	"fmt"

	"github.com/katalvlaran/trapseq/symseq"
)

func ExampleSequence() {
	s := symseq.New(14)
	fmt.Println(s.Symbols())

	last, _ := s.IndexOfLastNewSubword(3)
	fmt.Println("every 3-letter word appears by", last)
	// Output:
	// [A0 A5 B3 B4 B0 A0 B1 A4 A1 A1 A0 A3 A2 B3]
	// every 3-letter word appears by 4115
}
