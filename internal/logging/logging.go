// Package logging builds the zap logger used by the trapseq command.
//
// The library packages never log. They report progress through callbacks,
// which the command turns into Debug entries via Progress.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the minimum level and the encoding.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `mapstructure:"level" yaml:"level" json:"level"`
	// Format is json or console. Empty means console.
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// ParseLevel converts a level name into a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}

	return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
}

// New returns a logger writing to w. Console output omits timestamps so that
// interactive sessions stay readable.
func New(cfg Config, w io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "json":
		ec := zap.NewProductionEncoderConfig()
		ec.TimeKey = "ts"
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	case "", "console":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zap.New(core), nil
}

// Progress returns a callback logging each report at Debug under op.
// The returned function matches the progress hooks of symseq and trapezoid
// once their fields are unpacked by the caller.
func Progress(l *zap.Logger, op string) func(stage string, done, total int) {
	return func(stage string, done, total int) {
		if ce := l.Check(zapcore.DebugLevel, "progress"); ce != nil {
			ce.Write(
				zap.String("op", op),
				zap.String("stage", stage),
				zap.Int("done", done),
				zap.Int("total", total),
			)
		}
	}
}
