// Package cli is the trapseq command tree: configuration, logging, output
// formatting and the interactive loop around the library packages.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/trapseq/internal/config"
	"github.com/katalvlaran/trapseq/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// app carries state shared by every command of one process. Engines are
// cached per family and start point so that memoized scans survive across
// REPL lines.
type app struct {
	in          io.Reader
	out, errOut io.Writer

	configPath string
	cfg        *config.Config
	log        *zap.Logger

	engines map[engineKey]engine
	inREPL  bool
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:      in,
		out:     out,
		errOut:  errOut,
		engines: make(map[engineKey]engine),
	}
}

// setup resolves configuration and logging for cmd. It runs before every
// command, including each REPL line.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, a.errOut)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}

// engine returns the cached engine for the current configuration.
func (a *app) engine() (engine, error) {
	key := engineKey{scalar: a.cfg.Scalar, startX: a.cfg.StartX, startY: a.cfg.StartY}
	if e, ok := a.engines[key]; ok {
		return e, nil
	}
	e, err := newEngine(a.cfg, a.log)
	if err != nil {
		return nil, err
	}
	a.engines[key] = e
	a.log.Debug("engine ready",
		zap.String("scalar", key.scalar),
		zap.Int64("start_x", key.startX),
		zap.Int64("start_y", key.startY),
		zap.Int("length", a.cfg.Length),
	)

	return e, nil
}

func (a *app) emit(v any) error { return write(a.out, a.cfg.Output, v) }

// newRootCommand builds a fresh command tree over a.
func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trapseq",
		Short: "Explore the morphic symbol sequence and its trapezoid chain exactly",
		Long: "trapseq generates the fixed point of a 12-letter, 7-symbol morphism,\n" +
			"realizes it as a chain of congruent trapezoids and answers recurrence,\n" +
			"collinearity and distance questions in exact arithmetic.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", a.configPath, "YAML config file")
	pf.String("scalar", config.DefaultScalar, "scalar family (fraction, quadratic, float)")
	pf.IntP("length", "n", config.DefaultLength, "initial chain length")
	pf.Int64("start-x", 0, "start point x")
	pf.Int64("start-y", 0, "start point y, in multiples of √3")
	pf.StringP("output", "o", config.DefaultOutput, "output format (text, json, yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")

	cmd.AddCommand(
		newSymbolsCommand(a),
		newSubwordCommand(a),
		newMatchCommand(a),
		newIntervalsCommand(a),
		newCollinearCommand(a),
		newDistanceCommand(a),
		newBoundsCommand(a),
		newRenderCommand(a),
		newVersionCommand(a),
	)
	if !a.inREPL {
		cmd.AddCommand(newREPLCommand(a))
	}

	return cmd
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := newApp(in, out, errOut)
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		report(a, err)

		return 1
	}

	return 0
}

// report prints err, logging it too once a logger exists.
func report(a *app, err error) {
	if a.log != nil {
		a.log.Debug("command failed", zap.Error(err))
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(a.errOut, "interrupted")

		return
	}
	fmt.Fprintln(a.errOut, "error:", err)
}
