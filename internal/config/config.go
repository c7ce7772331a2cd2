// Package config loads trapseq settings with viper: defaults, then an
// optional YAML file, then TRAPSEQ_* environment variables, then flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/trapseq/internal/logging"
)

const envPrefix = "TRAPSEQ"

// Scalar families selectable for the engine.
const (
	ScalarFraction  = "fraction"
	ScalarQuadratic = "quadratic"
	ScalarFloat     = "float"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Default values.
const (
	DefaultScalar = ScalarQuadratic
	DefaultLength = 2401
	DefaultOutput = OutputText
	DefaultWidth  = 1024
	DefaultHeight = 1024
	DefaultMargin = 16
)

// Render sizes the PNG canvas.
type Render struct {
	Width  int `mapstructure:"width" yaml:"width" json:"width"`
	Height int `mapstructure:"height" yaml:"height" json:"height"`
	Margin int `mapstructure:"margin" yaml:"margin" json:"margin"`
}

// Config is the resolved command configuration.
type Config struct {
	Scalar string `mapstructure:"scalar" yaml:"scalar" json:"scalar"`
	Length int    `mapstructure:"length" yaml:"length" json:"length"`
	// The chain starts at (StartX, StartY·√3).
	StartX int64          `mapstructure:"start_x" yaml:"start_x" json:"start_x"`
	StartY int64          `mapstructure:"start_y" yaml:"start_y" json:"start_y"`
	Output string         `mapstructure:"output" yaml:"output" json:"output"`
	Log    logging.Config `mapstructure:"log" yaml:"log" json:"log"`
	Render Render         `mapstructure:"render" yaml:"render" json:"render"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"scalar":     "scalar",
	"length":     "length",
	"start-x":    "start_x",
	"start-y":    "start_y",
	"output":     "output",
	"log-level":  "log.level",
	"log-format": "log.format",
	"width":      "render.width",
	"height":     "render.height",
	"margin":     "render.margin",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("scalar", DefaultScalar)
	v.SetDefault("length", DefaultLength)
	v.SetDefault("start_x", 0)
	v.SetDefault("start_y", 0)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("render.width", DefaultWidth)
	v.SetDefault("render.height", DefaultHeight)
	v.SetDefault("render.margin", DefaultMargin)

	return v
}

// Load resolves the configuration. path may be empty; flags may be nil.
// Only flags the user actually set override lower layers.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Scalar = strings.ToLower(cfg.Scalar)
	cfg.Output = strings.ToLower(cfg.Output)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown names and non-positive sizes.
func (c *Config) Validate() error {
	switch c.Scalar {
	case ScalarFraction, ScalarQuadratic, ScalarFloat:
	default:
		return fmt.Errorf("config: scalar %q is invalid; expected fraction|quadratic|float", c.Scalar)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("config: output %q is invalid; expected text|json|yaml", c.Output)
	}
	if c.Length < 0 {
		return fmt.Errorf("config: length must be ≥ 0, got %d", c.Length)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	if c.Render.Width < 1 || c.Render.Height < 1 {
		return fmt.Errorf("config: render size %dx%d must be positive", c.Render.Width, c.Render.Height)
	}
	if c.Render.Margin < 0 || 2*c.Render.Margin >= min(c.Render.Width, c.Render.Height) {
		return fmt.Errorf("config: render.margin %d does not fit %dx%d", c.Render.Margin, c.Render.Width, c.Render.Height)
	}

	return nil
}
