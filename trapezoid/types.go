package trapezoid

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/trapseq/symseq"
)

// Type is the orientation of a trapezoid in 60° steps.
type Type uint8

// Types is the number of orientations.
const Types = 6

// Identity is the neutral element of Compose.
const Identity Type = 0

// compose is the orientation algebra: rotations compose by adding angles.
var compose = [Types][Types]Type{
	{0, 1, 2, 3, 4, 5},
	{1, 2, 3, 4, 5, 0},
	{2, 3, 4, 5, 0, 1},
	{3, 4, 5, 0, 1, 2},
	{4, 5, 0, 1, 2, 3},
	{5, 0, 1, 2, 3, 4},
}

var inverse = [Types]Type{0, 5, 4, 3, 2, 1}

// Compose returns the orientation a followed by b.
func Compose(a, b Type) Type { return compose[a%Types][b%Types] }

// Inverse returns the orientation t⁻¹ with Compose(t, t⁻¹) = Identity.
func Inverse(t Type) Type { return inverse[t%Types] }

// TypeOf returns the orientation of the trapezoid drawn for s.
func TypeOf(s symseq.Symbol) Type { return Type(symseq.Direction(s)) }

// Positioning is a run of types expressed relative to its first element.
type Positioning []Type

func (p Positioning) String() string {
	var b strings.Builder
	for _, t := range p {
		b.WriteString(strconv.Itoa(int(t)))
	}

	return b.String()
}
