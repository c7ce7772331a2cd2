package cli

import (
	"fmt"
	"io"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/trapseq/exact"
	"github.com/katalvlaran/trapseq/geom"
	"github.com/katalvlaran/trapseq/internal/config"
	"github.com/katalvlaran/trapseq/internal/logging"
	"github.com/katalvlaran/trapseq/render"
	"github.com/katalvlaran/trapseq/symseq"
	"github.com/katalvlaran/trapseq/trapezoid"
)

// engine hides the scalar family behind family-free results, so commands are
// written once.
type engine interface {
	symbols() *symseq.Sequence
	types(n int) ([]trapezoid.Type, error)
	positioning(start, l int) (trapezoid.Positioning, error)
	lastNewPositioning(l int) (int, error)
	positioningIntervals(l int) ([]symseq.Interval, error)
	collinear(algo string, lo, hi, k int) (*collinearResult, error)
	distance(i, j int) (*distanceResult, error)
	bounds(r trapezoid.GapRange, checks []boundCheck) (*boundsResult, error)
	render(w io.Writer, count int, o render.Options) error
}

type engineKey struct {
	scalar         string
	startX, startY int64
}

type engineOf[S exact.Scalar[S]] struct {
	seq *trapezoid.Sequence[S]
}

// newEngine builds the engine for cfg's family and start point. Progress
// from the library is logged at Debug.
func newEngine(cfg *config.Config, log *zap.Logger) (engine, error) {
	switch cfg.Scalar {
	case config.ScalarFraction:
		return newEngineOf[exact.Fraction[exact.Quadratic]](cfg, log)
	case config.ScalarQuadratic:
		return newEngineOf[exact.Quadratic](cfg, log)
	case config.ScalarFloat:
		return newEngineOf[exact.Float](cfg, log)
	}

	return nil, fmt.Errorf("unknown scalar family %q", cfg.Scalar)
}

func newEngineOf[S exact.Scalar[S]](cfg *config.Config, log *zap.Logger) (engine, error) {
	var start geom.Point[S]
	err := exact.Try(func() {
		start = geom.Pt(
			exact.FromInt[S](cfg.StartX),
			exact.FromInt[S](cfg.StartY).Mul(exact.C[S](exact.Sqrt3)),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("start point: %w", err)
	}

	hook := logging.Progress(log, cfg.Scalar)
	seq, err := trapezoid.New(cfg.Length, start,
		trapezoid.WithProgress(func(p trapezoid.Progress) { hook(p.Op, p.Done, p.Total) }),
		trapezoid.WithSymbolOptions(symseq.WithProgress(func(p symseq.Progress) {
			log.Debug("subword scan",
				zap.Int("length", p.Length),
				zap.Int("bound", p.Bound),
				zap.Int("last", p.Last),
				zap.Int("words", p.Words),
			)
		})),
	)
	if err != nil {
		return nil, err
	}

	return &engineOf[S]{seq: seq}, nil
}

func (e *engineOf[S]) symbols() *symseq.Sequence { return e.seq.SymbolSequence() }

func (e *engineOf[S]) types(n int) ([]trapezoid.Type, error) {
	if err := e.seq.Extend(n); err != nil {
		return nil, err
	}

	return e.seq.Types()[:n], nil
}

func (e *engineOf[S]) positioning(start, l int) (trapezoid.Positioning, error) {
	return e.seq.PositioningCanonicalString(start, l)
}

func (e *engineOf[S]) lastNewPositioning(l int) (int, error) {
	return e.seq.IndexOfLastNewRelativePositioning(l)
}

func (e *engineOf[S]) positioningIntervals(l int) ([]symseq.Interval, error) {
	return e.seq.CollinearSearchIntervals(l)
}

func (e *engineOf[S]) collinear(algo string, lo, hi, k int) (*collinearResult, error) {
	res := &collinearResult{Algo: algo, Lo: lo, Hi: hi, K: k}
	switch algo {
	case algoNaive:
		n, err := e.seq.CountCollinear(lo, hi, k)
		if err != nil {
			return nil, err
		}
		res.Count = n

		return res, nil
	case algoSweep:
		r, err := e.seq.RadialSweepCountCollinear(lo, hi, k)
		if err != nil {
			return nil, err
		}
		res.fill(r.Count, line(r))

		return res, nil
	case algoMax:
		r, err := e.seq.MaxCollinear(k)
		if err != nil {
			return nil, err
		}
		res.Lo, res.Hi = 0, -1
		res.fill(r.Count, line(r))

		return res, nil
	}

	return nil, fmt.Errorf("unknown algorithm %q; expected naive|sweep|max", algo)
}

func line[S exact.Scalar[S]](r trapezoid.SweepResult[S]) *lineInfo {
	return &lineInfo{
		PivotIndex:   r.PivotIndex,
		PivotVertex:  r.PivotVertex,
		PivotPoint:   r.PivotPoint.String(),
		PartnerIndex: r.PartnerIndex,
		PartnerPoint: r.PartnerPoint.String(),
	}
}

func (e *engineOf[S]) distance(i, j int) (*distanceResult, error) {
	lo, err := e.seq.MinDistanceSq(i, j)
	if err != nil {
		return nil, err
	}
	hi, err := e.seq.MaxDistanceSq(i, j)
	if err != nil {
		return nil, err
	}

	return &distanceResult{
		I: i, J: j,
		MinSq: lo.String(), MaxSq: hi.String(),
		Min: lo.Float64(), Max: hi.Float64(),
	}, nil
}

func (e *engineOf[S]) bounds(r trapezoid.GapRange, checks []boundCheck) (*boundsResult, error) {
	res := &boundsResult{Range: r}
	if len(checks) == 0 {
		lo, hi, err := e.seq.GapExtremes(r)
		if err != nil {
			return nil, err
		}
		for i := range lo {
			res.Extremes = append(res.Extremes, gapExtreme{
				Gap:   r.GapMin + i,
				MinSq: lo[i].String(),
				MaxSq: hi[i].String(),
			})
		}

		return res, nil
	}

	for _, c := range checks {
		b, err := parseScalar[S](c.Bound)
		if err != nil {
			return nil, fmt.Errorf("--%s %s: %w", c.Kind, c.Bound, err)
		}
		var assert func(trapezoid.GapRange, S) (bool, error)
		switch c.Kind {
		case boundMax:
			assert = e.seq.AssertBoundedMaxDistance
		case boundMin:
			assert = e.seq.AssertBoundedMinDistance
		default:
			assert = e.seq.AssertBoundedRatio
		}
		ok, err := assert(r, b)
		if err != nil {
			return nil, err
		}
		c.Holds = ok
		res.Checks = append(res.Checks, c)
	}

	return res, nil
}

func (e *engineOf[S]) render(w io.Writer, count int, o render.Options) error {
	if err := e.seq.Extend(count); err != nil {
		return err
	}

	return render.PNG(w, e.seq.Trapezoids()[:count], o)
}

// parseScalar reads an integer, decimal or p/q fraction into family S. A
// value the family cannot hold exactly is an error.
func parseScalar[S exact.Scalar[S]](s string) (v S, err error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return v, fmt.Errorf("not a number: %q", s)
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return v, fmt.Errorf("number too large: %q", s)
	}
	num, den := r.Num().Int64(), r.Denom().Int64()
	err = exact.Try(func() {
		v = exact.FromInt[S](num).Div(exact.FromInt[S](den))
	})

	return v, err
}
