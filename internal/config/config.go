// Package config provides the configuration management for the spiral tool.
// It defines the configuration structure, parses command-line arguments with
// environment overrides, and validates the result.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/spiral/internal/errors"
	"github.com/agbru/spiral/internal/logging"
)

// EnvPrefix is the prefix for all environment variables used by spiral.
const EnvPrefix = "SPIRAL_"

// Output modes.
const (
	ModeGrid  = "grid"
	ModeList  = "list"
	ModeJSON  = "json"
	ModeCount = "count"
)

// Modes lists every output mode.
var Modes = []string{ModeGrid, ModeList, ModeJSON, ModeCount}

// Default configuration values.
const (
	// DefaultMetric walks every registered walker.
	DefaultMetric = "all"
	// DefaultMax is the default number of rings, center included.
	DefaultMax = 4
	// DefaultMode is the default output mode.
	DefaultMode = ModeGrid
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = time.Minute
	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"
	// MaxGridDistance is the largest max distance the grid mode renders.
	MaxGridDistance = 64
	// MaxKeptPoints bounds the points a walker may keep in memory in the
	// grid, list and json modes.
	MaxKeptPoints = 1 << 20
	// MaxListDistance is the largest max distance whose square spiral,
	// (2m-1)² points, fits in MaxKeptPoints.
	MaxListDistance = 512
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Metric is a registered walker name or "all".
	Metric string
	// X and Y are the center of the spiral.
	X, Y int64
	// Max is the number of rings to walk, center included.
	Max int64
	// Mode selects the output format: grid, list, json or count.
	Mode string
	// Limit caps the number of points per walker. 0 means no cap.
	Limit int
	// Timeout sets the maximum duration of the run.
	Timeout time.Duration
	// NoColor disables colored output. NO_COLOR is honored as well.
	NoColor bool
	// Quiet suppresses banners, summaries and the spinner.
	Quiet bool
	// LogLevel is the zerolog level for diagnostics on stderr.
	LogLevel string
	// ShowVersion prints the version and exits.
	ShowVersion bool
	// Completion, if set, prints the completion script for that shell.
	Completion string
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableWalkers: The registered walker names.
//
// Returns:
//   - error: A ValidationError or ConfigError if the configuration is
//     invalid, nil otherwise.
func (c AppConfig) Validate(availableWalkers []string) error {
	if c.Max < 1 {
		return apperrors.NewValidationError("max", "must be at least 1", c.Max)
	}
	if c.Limit < 0 {
		return apperrors.NewValidationError("limit", "cannot be negative", c.Limit)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if !slices.Contains(Modes, c.Mode) {
		return apperrors.NewConfigError("unrecognized mode: '%s'. Valid modes are: [%s]", c.Mode, strings.Join(Modes, ", "))
	}
	if c.Mode == ModeGrid && c.Max > MaxGridDistance {
		return apperrors.NewConfigError("grid mode renders at most %d rings, got %d; use -mode list or count", MaxGridDistance, c.Max)
	}
	if c.Mode != ModeCount && c.Max > MaxListDistance && (c.Limit == 0 || c.Limit > MaxKeptPoints) {
		return apperrors.NewConfigError("%s mode keeps every point in memory: max %d exceeds %d; set -limit to at most %d or use -mode count",
			c.Mode, c.Max, MaxListDistance, MaxKeptPoints)
	}
	if c.Metric != DefaultMetric && !slices.Contains(availableWalkers, c.Metric) {
		return apperrors.NewConfigError("unrecognized metric: '%s'. Valid metrics are: 'all' or [%s]", c.Metric, strings.Join(availableWalkers, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewValidationError("log-level", err.Error(), c.LogLevel)
	}
	return nil
}

// Walkers returns the walker names selected by Metric.
func (c AppConfig) Walkers(availableWalkers []string) []string {
	if c.Metric == DefaultMetric {
		return availableWalkers
	}
	return []string{c.Metric}
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// Flags not set explicitly fall back to SPIRAL_* environment variables,
// then to the defaults.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//   - availableWalkers: The registered walker names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: flag.ErrHelp for -h, otherwise a parsing or validation error.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableWalkers []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	metricHelp := fmt.Sprintf("Walker to run: 'all' (default) or one of [%s].", strings.Join(availableWalkers, ", "))

	config := AppConfig{}
	fs.StringVar(&config.Metric, "metric", DefaultMetric, metricHelp)
	fs.Int64Var(&config.X, "x", 0, "X coordinate of the center.")
	fs.Int64Var(&config.Y, "y", 0, "Y coordinate of the center.")
	fs.Int64Var(&config.Max, "max", DefaultMax, "Number of rings to walk, center included.")
	fs.StringVar(&config.Mode, "mode", DefaultMode, "Output mode: grid, list, json or count.")
	fs.IntVar(&config.Limit, "limit", 0, "Maximum number of points per walker (0 for no limit).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level: debug, info, warn, error or disabled.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print the version and exit.")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish, powershell) and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)

	config.Metric = strings.ToLower(strings.TrimSpace(config.Metric))
	config.Mode = strings.ToLower(strings.TrimSpace(config.Mode))
	config.Completion = strings.ToLower(strings.TrimSpace(config.Completion))
	if config.ShowVersion || config.Completion != "" {
		return config, nil
	}
	if err := config.Validate(availableWalkers); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n", fs.Name())
		fmt.Fprintln(out, "Walks the grid points around a center in concentric rings.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Flags:")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEvery flag can also be set with a %s-prefixed environment variable\n", EnvPrefix)
		fmt.Fprintf(out, "(for example %sMAX=10); explicit flags take precedence.\n", EnvPrefix)
	}
}
