package cli

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/trapseq/render"
	"github.com/katalvlaran/trapseq/trapezoid"
)

// ints parses every argument as a non-negative integer.
func ints(args []string, names ...string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%s: want a non-negative integer, got %q", names[i], s)
		}
		out[i] = v
	}

	return out, nil
}

func newSymbolsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <n>",
		Short: "Print the first n symbols and trapezoid types",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := ints(args, "n")
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			types, err := e.types(v[0])
			if err != nil {
				return err
			}
			res := &symbolsResult{Symbols: make([]string, 0, v[0]), Types: make([]int, 0, v[0])}
			syms, err := e.symbols().Slice(0, v[0])
			if err != nil {
				return err
			}
			for i, s := range syms {
				res.Symbols = append(res.Symbols, s.String())
				res.Types = append(res.Types, int(types[i]))
			}

			return a.emit(res)
		},
	}
}

func newSubwordCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subword <L>",
		Short: "Index by which every length-L subword has appeared",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := ints(args, "L")
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			syms := e.symbols()
			last, err := syms.IndexOfLastNewSubword(v[0])
			if err != nil {
				return err
			}
			firsts, err := syms.FirstOccurrences(v[0])
			if err != nil {
				return err
			}

			return a.emit(&subwordResult{Length: v[0], LastNew: last, Words: len(firsts)})
		},
	}
}

func newMatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match <start> <L>",
		Short: "Earliest copy of the length-L subword at start",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := ints(args, "start", "L")
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			start, l := v[0], v[1]
			q, err := e.symbols().EarliestSubwordMatch(start, l)
			if err != nil {
				return err
			}
			word, err := e.symbols().Slice(start, start+l)
			if err != nil {
				return err
			}
			pos, err := e.positioning(start, l)
			if err != nil {
				return err
			}
			res := &matchResult{Start: start, Length: l, Earliest: q, Positioning: pos.String()}
			for _, s := range word {
				res.Word = append(res.Word, s.String())
			}

			return a.emit(res)
		},
	}
}

func newIntervalsCommand(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "intervals <L>",
		Short: "Intervals that contain a copy of every length-L run",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := ints(args, "L")
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			l := v[0]
			res := &intervalsResult{Kind: kind, Length: l}
			switch kind {
			case "positioning":
				if res.LastNew, err = e.lastNewPositioning(l); err != nil {
					return err
				}
				if res.Intervals, err = e.positioningIntervals(l); err != nil {
					return err
				}
			case "subword":
				if res.LastNew, err = e.symbols().IndexOfLastNewSubword(l); err != nil {
					return err
				}
				if res.Intervals, err = e.symbols().CollinearSearchIntervals(l); err != nil {
					return err
				}
			default:
				return fmt.Errorf("--kind %q: expected positioning|subword", kind)
			}
			for _, iv := range res.Intervals {
				res.Covered += iv.Len()
			}

			return a.emit(res)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "positioning", "equivalence used (positioning, subword)")

	return cmd
}

func newCollinearCommand(a *app) *cobra.Command {
	var algo string
	cmd := &cobra.Command{
		Use:   "collinear (<lo> <hi> <k> | --algo max <k>)",
		Short: "Most trapezoids one line meets, with index gap at most k",
		Long: "collinear counts the largest set of trapezoids, within index window\n" +
			"[lo, hi] and pairwise at most k apart, that one straight line meets.\n" +
			"--algo max answers for the whole infinite chain.",
		Args: cobra.RangeArgs(1, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			var names []string
			switch {
			case algo == algoMax && len(args) == 1:
				names = []string{"k"}
			case algo != algoMax && len(args) == 3:
				names = []string{"lo", "hi", "k"}
			default:
				return fmt.Errorf("--algo %s: wrong number of arguments; see --help", algo)
			}
			v, err := ints(args, names...)
			if err != nil {
				return err
			}
			if algo == algoMax {
				v = []int{0, 0, v[0]}
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			res, err := e.collinear(algo, v[0], v[1], v[2])
			if err != nil {
				return err
			}
			a.log.Info("collinear", zap.String("algo", algo), zap.Int("count", res.Count))

			return a.emit(res)
		},
	}
	cmd.Flags().StringVar(&algo, "algo", algoSweep, "algorithm (naive, sweep, max)")

	return cmd
}

func newDistanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <i> <j>",
		Short: "Squared minimum and maximum distance between two trapezoids",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := ints(args, "i", "j")
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			res, err := e.distance(v[0], v[1])
			if err != nil {
				return err
			}

			return a.emit(res)
		},
	}
}

func newBoundsCommand(a *app) *cobra.Command {
	var maxB, minB, ratioB string
	cmd := &cobra.Command{
		Use:   "bounds <start> <end> <gap-min> <gap-max>",
		Short: "Check distance growth bounds per gap, or list gap extremes",
		Long: "bounds checks, for every gap g in [gap-min, gap-max] and every pair of\n" +
			"trapezoids g apart within [start, end]:\n" +
			"  --max B    distance ≤ B·g\n" +
			"  --min B    distance ≥ B·g\n" +
			"  --ratio B  largest ≤ B · smallest distance at that gap\n" +
			"Bounds are integers, decimals or p/q fractions. Without a bound the\n" +
			"squared extremes of every gap are listed.",
		Args: cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := ints(args, "start", "end", "gap-min", "gap-max")
			if err != nil {
				return err
			}
			r := trapezoid.GapRange{Start: v[0], End: v[1], GapMin: v[2], GapMax: v[3]}
			var checks []boundCheck
			for _, c := range []boundCheck{{Kind: boundMax, Bound: maxB}, {Kind: boundMin, Bound: minB}, {Kind: boundRatio, Bound: ratioB}} {
				if c.Bound != "" {
					checks = append(checks, c)
				}
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			res, err := e.bounds(r, checks)
			if err != nil {
				return err
			}

			return a.emit(res)
		},
	}
	f := cmd.Flags()
	f.StringVar(&maxB, "max", "", "upper bound on distance per unit gap")
	f.StringVar(&minB, "min", "", "lower bound on distance per unit gap")
	f.StringVar(&ratioB, "ratio", "", "bound on largest/smallest distance per gap")

	return cmd
}

func newRenderCommand(a *app) *cobra.Command {
	var inset float32
	cmd := &cobra.Command{
		Use:   "render <file.png>",
		Short: "Draw the first --length trapezoids as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			o := render.Options{
				Width:  a.cfg.Render.Width,
				Height: a.cfg.Render.Height,
				Margin: a.cfg.Render.Margin,
				Inset:  inset,
			}
			if err := e.render(f, a.cfg.Length, o); err != nil {
				f.Close()

				return fmt.Errorf("render %s: %w", args[0], err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.Info("rendered", zap.String("file", args[0]), zap.Int("trapezoids", a.cfg.Length))

			return nil
		},
	}
	f := cmd.Flags()
	f.Int("width", 1024, "image width in pixels")
	f.Int("height", 1024, "image height in pixels")
	f.Int("margin", 16, "blank border in pixels")
	f.Float32Var(&inset, "inset", 0.15, "fraction each tile shrinks to show outlines (0 for solid)")

	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.emit(&versionResult{Version: Version, Commit: Commit, Go: runtime.Version()})
		},
	}
}
