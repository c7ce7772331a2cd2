package symseq

import "fmt"

// Symbol is a letter of the generating alphabet: Kind·6 + direction, where
// the direction counts 60° steps counter-clockwise from the positive x axis.
type Symbol uint8

// Kind distinguishes the two letter families of the morphism.
type Kind uint8

const (
	KindA Kind = iota
	KindB
)

const (
	// Alphabet is the number of distinct symbols.
	Alphabet = 12
	// Directions is the number of orientations; Direction maps onto [0, Directions).
	Directions = 6
	// RuleLen is the length of every morphism image.
	RuleLen = 7
)

const (
	A0 Symbol = iota
	A1
	A2
	A3
	A4
	A5
	B0
	B1
	B2
	B3
	B4
	B5
)

// rules is the morphism. Every letter occurs in the fixed point grown from
// A0; the last one to appear, B5, first shows up at position 214.
var rules = [Alphabet][RuleLen]Symbol{
	A0: {A0, A5, B3, B4, B0, A0, B1},
	A1: {B0, A1, B1, A3, A0, B0, A2},
	A2: {A4, A1, B4, A3, B4, B0, A0},
	A3: {B4, B1, B0, B0, A1, A5, A5},
	A4: {B1, B1, B0, B4, A2, B1, B1},
	A5: {A4, A1, A1, A0, A3, A2, B3},
	B0: {A5, A5, B2, B1, A5, A0, A0},
	B1: {B0, B1, A1, B0, A0, A5, B1},
	B2: {A4, A5, A2, A2, B5, A3, B0},
	B3: {A1, A3, A2, B4, B3, A5, A5},
	B4: {A5, A3, A2, B1, A3, B4, A3},
	B5: {B0, A1, B1, A0, A4, A1, A3},
}

// NewSymbol returns the symbol of kind k pointing in direction dir (mod 6).
func NewSymbol(k Kind, dir int) Symbol {
	dir %= Directions
	if dir < 0 {
		dir += Directions
	}

	return Symbol(int(k)*Directions + dir)
}

// Kind returns the letter family of s.
func (s Symbol) Kind() Kind { return Kind(s / Directions) }

// Direction returns the orientation of s in 60° steps.
func (s Symbol) Direction() int { return int(s % Directions) }

func (s Symbol) String() string {
	if s >= Alphabet {
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}

	return fmt.Sprintf("%c%d", "AB"[s.Kind()], s.Direction())
}

// Rule returns the 7-symbol image of s.
func Rule(s Symbol) [RuleLen]Symbol { return rules[s%Alphabet] }

// Direction is the 12→6 map from symbols to trapezoid orientations.
func Direction(s Symbol) int { return s.Direction() }

// pairs marks the length-2 words of the sequence: those inside a rule
// image, and those across the seam where the image of x meets the image of
// the letter after x.
var pairs = seams()

func seams() (p [Alphabet][Alphabet]bool) {
	for _, r := range rules {
		for i := 1; i < RuleLen; i++ {
			p[r[i-1]][r[i]] = true
		}
	}
	for changed := true; changed; {
		changed = false
		for x := range p {
			for y := range p[x] {
				if !p[x][y] {
					continue
				}
				a, b := rules[x][RuleLen-1], rules[y][0]
				if !p[a][b] {
					p[a][b], changed = true, true
				}
			}
		}
	}

	return p
}
