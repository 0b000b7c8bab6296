package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/tabopt/solver"
)

// Keys understood by Load.
const (
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyJournalPath = "journal_path"
	KeyTolerance   = "tolerance"
	KeyRoundScale  = "round_scale"
	KeyMetricsFile = "metrics_file"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TABOPT"

// Config is the resolved configuration.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// LogFormat is json or console.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// JournalPath is the solve log; empty disables journaling.
	JournalPath string `mapstructure:"journal_path" yaml:"journal_path"`

	// Tolerance is the simplex reduced-cost tolerance.
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`

	// RoundScale snaps reported values to 1/RoundScale; 0 disables rounding.
	RoundScale float64 `mapstructure:"round_scale" yaml:"round_scale"`

	// MetricsFile receives the Prometheus text dump after a run; empty disables it.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	so := solver.DefaultOptions()

	return Config{
		LogLevel:   "info",
		LogFormat:  "console",
		Tolerance:  so.Tolerance,
		RoundScale: so.RoundScale,
	}
}

// New returns a viper instance carrying the defaults and the environment
// binding. Callers may bind flags on it before Decode.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyJournalPath, d.JournalPath)
	v.SetDefault(KeyTolerance, d.Tolerance)
	v.SetDefault(KeyRoundScale, d.RoundScale)
	v.SetDefault(KeyMetricsFile, d.MetricsFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (if non-empty) over the defaults and environment, then
// validates the result.
func Load(path string) (Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return Decode(v)
}

// Decode unmarshals and validates a prepared viper instance.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log_format must be json or console, got %q", c.LogFormat))
	}
	if c.Tolerance <= 0 || c.Tolerance >= 1 {
		errs = append(errs, fmt.Errorf("tolerance must be in (0, 1), got %g", c.Tolerance))
	}
	if c.RoundScale < 0 {
		errs = append(errs, fmt.Errorf("round_scale must be >= 0, got %g", c.RoundScale))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// SolverOptions projects the solver settings.
func (c Config) SolverOptions() solver.Options {
	return solver.Options{Tolerance: c.Tolerance, RoundScale: c.RoundScale}
}
