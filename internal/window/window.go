// Package window finds the first occurrence of every fixed-length window of
// a digit string and merges those occurrences into covering intervals.
//
// Windows are compared exactly: while base^L fits in a uint64 the key is the
// window read as a base-`base` number, updated in O(1) per step. Beyond that
// the same polynomial is kept modulo 2^64 with an odd multiplier, and a key
// hit counts only after the windows compare equal digit by digit.
package window

import (
	"bytes"
	"math"
	"slices"
)

// mix is the odd multiplier of the wrapped polynomial key.
const mix = 0x9e3779b97f4a7c15

// Interval is the half-open index range [Lo, Hi).
type Interval struct {
	Lo int `json:"lo" yaml:"lo"`
	Hi int `json:"hi" yaml:"hi"`
}

// Len returns Hi−Lo.
func (iv Interval) Len() int { return iv.Hi - iv.Lo }

// Contains reports whether Lo ≤ i < Hi.
func (iv Interval) Contains(i int) bool { return iv.Lo <= i && i < iv.Hi }

// fits reports whether base^n ≤ MaxUint64.
func fits(base uint64, n int) bool {
	limit := uint64(math.MaxUint64)
	for ; n > 0; n-- {
		if limit < base {
			return false
		}
		limit /= base
	}

	return true
}

// FirstOccurrences returns, in increasing order, every start p ≤ bound whose
// length-n window digits[p:p+n] does not occur at any earlier start. Every
// digit must be < base, and len(digits) ≥ bound+n.
func FirstOccurrences[D ~uint8](digits []D, base uint64, n, bound int) []int {
	if bound < 0 {
		return nil
	}
	if n == 0 {
		return []int{0}
	}
	if fits(base, n) {
		return rolling(digits, base, n, bound)
	}

	return fingerprinted(digits, n, bound)
}

func rolling[D ~uint8](digits []D, base uint64, n, bound int) []int {
	top := uint64(1) // base^(n-1)
	for i := 1; i < n; i++ {
		top *= base
	}
	var key uint64
	for _, d := range digits[:n] {
		key = key*base + uint64(d)
	}
	seen := map[uint64]struct{}{key: {}}
	out := []int{0}
	for p := 1; p <= bound; p++ {
		key = (key-uint64(digits[p-1])*top)*base + uint64(digits[p+n-1])
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	return out
}

// Merge covers every [p, p+n) for p in starts (increasing) with maximal
// disjoint intervals. Touching intervals are joined.
func Merge(starts []int, n int) []Interval {
	var out []Interval
	for _, p := range starts {
		if k := len(out) - 1; k >= 0 && p <= out[k].Hi {
			out[k].Hi = max(out[k].Hi, p+n)

			continue
		}
		out = append(out, Interval{Lo: p, Hi: p + n})
	}

	return out
}

// fingerprinted is rolling with keys that wrap. Every start with a given key
// is kept, and a window is new unless one of them holds the same digits.
func fingerprinted[D ~uint8](digits []D, n, bound int) []int {
	raw := make([]byte, bound+n)
	for i := range raw {
		raw[i] = byte(digits[i])
	}
	top := uint64(1) // mix^(n-1)
	for i := 1; i < n; i++ {
		top *= mix
	}
	var key uint64
	for _, d := range raw[:n] {
		key = key*mix + uint64(d)
	}
	seen := map[uint64][]int{key: {0}}
	out := []int{0}
	for p := 1; p <= bound; p++ {
		key = (key-uint64(raw[p-1])*top)*mix + uint64(raw[p+n-1])
		w := raw[p : p+n]
		same := func(q int) bool { return bytes.Equal(raw[q:q+n], w) }
		if slices.ContainsFunc(seen[key], same) {
			continue
		}
		seen[key] = append(seen[key], p)
		out = append(out, p)
	}

	return out
}
