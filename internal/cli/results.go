package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/trapseq/symseq"
	"github.com/katalvlaran/trapseq/trapezoid"
)

type symbolsResult struct {
	Symbols []string `json:"symbols" yaml:"symbols"`
	Types   []int    `json:"types" yaml:"types"`
}

func (r *symbolsResult) text(w io.Writer) {
	fmt.Fprintln(w, strings.Join(r.Symbols, " "))
	fmt.Fprintln(w, strings.Trim(fmt.Sprint(r.Types), "[]"))
}

type subwordResult struct {
	Length  int `json:"length" yaml:"length"`
	LastNew int `json:"last_new" yaml:"last_new"`
	Words   int `json:"words" yaml:"words"`
}

func (r *subwordResult) text(w io.Writer) {
	fmt.Fprintf(w, "length %d: %d words, last new at %d\n", r.Length, r.Words, r.LastNew)
}

type matchResult struct {
	Start       int      `json:"start" yaml:"start"`
	Length      int      `json:"length" yaml:"length"`
	Word        []string `json:"word" yaml:"word"`
	Earliest    int      `json:"earliest" yaml:"earliest"`
	Positioning string   `json:"positioning" yaml:"positioning"`
}

func (r *matchResult) text(w io.Writer) {
	fmt.Fprintf(w, "%s at %d first occurs at %d (positioning %s)\n",
		strings.Join(r.Word, " "), r.Start, r.Earliest, r.Positioning)
}

type intervalsResult struct {
	Kind      string            `json:"kind" yaml:"kind"`
	Length    int               `json:"length" yaml:"length"`
	LastNew   int               `json:"last_new" yaml:"last_new"`
	Covered   int               `json:"covered" yaml:"covered"`
	Intervals []symseq.Interval `json:"intervals" yaml:"intervals"`
}

func (r *intervalsResult) text(w io.Writer) {
	fmt.Fprintf(w, "%s length %d: last new at %d, %d intervals covering %d\n",
		r.Kind, r.Length, r.LastNew, len(r.Intervals), r.Covered)
	for _, iv := range r.Intervals {
		fmt.Fprintf(w, "  [%d, %d)\n", iv.Lo, iv.Hi)
	}
}

const (
	algoNaive = "naive"
	algoSweep = "sweep"
	algoMax   = "max"
)

type lineInfo struct {
	PivotIndex   int    `json:"pivot_index" yaml:"pivot_index"`
	PivotVertex  int    `json:"pivot_vertex" yaml:"pivot_vertex"`
	PivotPoint   string `json:"pivot_point" yaml:"pivot_point"`
	PartnerIndex int    `json:"partner_index" yaml:"partner_index"`
	PartnerPoint string `json:"partner_point" yaml:"partner_point"`
}

type collinearResult struct {
	Algo  string    `json:"algo" yaml:"algo"`
	Lo    int       `json:"lo" yaml:"lo"`
	Hi    int       `json:"hi" yaml:"hi"`
	K     int       `json:"k" yaml:"k"`
	Count int       `json:"count" yaml:"count"`
	Line  *lineInfo `json:"line,omitempty" yaml:"line,omitempty"`
}

func (r *collinearResult) fill(count int, l *lineInfo) {
	r.Count = count
	if count > 0 {
		r.Line = l
	}
}

func (r *collinearResult) text(w io.Writer) {
	if r.Algo == algoMax {
		fmt.Fprintf(w, "gap %d: at most %d trapezoids on one line\n", r.K, r.Count)
	} else {
		fmt.Fprintf(w, "[%d, %d] gap %d: %d trapezoids on one line\n", r.Lo, r.Hi, r.K, r.Count)
	}
	if l := r.Line; l != nil {
		fmt.Fprintf(w, "  through %s (trapezoid %d vertex %d) and %s", l.PivotPoint, l.PivotIndex, l.PivotVertex, l.PartnerPoint)
		if l.PartnerIndex >= 0 {
			fmt.Fprintf(w, " (trapezoid %d)", l.PartnerIndex)
		}
		fmt.Fprintln(w)
	}
}

type distanceResult struct {
	I     int     `json:"i" yaml:"i"`
	J     int     `json:"j" yaml:"j"`
	MinSq string  `json:"min_sq" yaml:"min_sq"`
	MaxSq string  `json:"max_sq" yaml:"max_sq"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

func (r *distanceResult) text(w io.Writer) {
	fmt.Fprintf(w, "%d-%d: min² %s, max² %s\n", r.I, r.J, r.MinSq, r.MaxSq)
}

const (
	boundMax   = "max"
	boundMin   = "min"
	boundRatio = "ratio"
)

type boundCheck struct {
	Kind  string `json:"kind" yaml:"kind"`
	Bound string `json:"bound" yaml:"bound"`
	Holds bool   `json:"holds" yaml:"holds"`
}

type gapExtreme struct {
	Gap   int    `json:"gap" yaml:"gap"`
	MinSq string `json:"min_sq" yaml:"min_sq"`
	MaxSq string `json:"max_sq" yaml:"max_sq"`
}

type boundsResult struct {
	Range    trapezoid.GapRange `json:"range" yaml:"range"`
	Checks   []boundCheck       `json:"checks,omitempty" yaml:"checks,omitempty"`
	Extremes []gapExtreme       `json:"extremes,omitempty" yaml:"extremes,omitempty"`
}

func (r *boundsResult) text(w io.Writer) {
	fmt.Fprintf(w, "trapezoids [%d, %d], gaps %d..%d\n", r.Range.Start, r.Range.End, r.Range.GapMin, r.Range.GapMax)
	for _, c := range r.Checks {
		fmt.Fprintf(w, "  %-5s %-10s %t\n", c.Kind, c.Bound, c.Holds)
	}
	for _, e := range r.Extremes {
		fmt.Fprintf(w, "  gap %3d: min² %s, max² %s\n", e.Gap, e.MinSq, e.MaxSq)
	}
}

type versionResult struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Go      string `json:"go" yaml:"go"`
}

func (r *versionResult) text(w io.Writer) {
	fmt.Fprintf(w, "trapseq %s (%s, %s)\n", r.Version, r.Commit, r.Go)
}
