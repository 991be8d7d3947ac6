package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// EnvPrefix is the prefix for all environment variables read by the
// application.
const EnvPrefix = "FIBBENCH_"

// Default values for the suite configuration.
const (
	DefaultSizes      = "S,M,L"
	DefaultResultsDir = "results"
	DefaultLogLevel   = "warn"
	DefaultGCMode     = "default"
	DefaultRuns       = 5
)

// SuiteConfig aggregates the suite's configuration parameters.
type SuiteConfig struct {
	// Sizes lists the size presets to run, in order.
	Sizes []string
	// Runs is the number of repetitions per size; each run stores its own
	// control output file.
	Runs int
	// ResultsDir receives the control output files and summaries.
	ResultsDir string
	// MetaFile is an optional YAML file overriding the benchmark metadata.
	MetaFile string
	// MetricsFile is an optional Prometheus textfile destination.
	MetricsFile string
	// Quiet suppresses the spinner and the summary table.
	Quiet bool
	// NoColor disables color output.
	NoColor bool
	// LogLevel is the zerolog level name for stderr logs.
	LogLevel string
	// GCMode is "default" or "disabled"; disabled turns the garbage
	// collector off while each size is measured.
	GCMode string
}

// LogLevel returns the harness log level from FIBBENCH_LOG_LEVEL, or
// DefaultLogLevel when unset.
func LogLevel() string {
	return getEnvString("LOG_LEVEL", DefaultLogLevel)
}

// ParseSuiteConfig parses the suite's command-line flags and applies
// environment overrides for flags that were not set explicitly.
//
// Parameters:
//   - programName: The program name, used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for flag errors and usage.
//
// Returns:
//   - SuiteConfig: The resolved configuration.
//   - error: flag.ErrHelp for -h/--help, or a ConfigError.
func ParseSuiteConfig(programName string, args []string, errWriter io.Writer) (SuiteConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := SuiteConfig{}
	var sizes string
	fs.StringVar(&sizes, "sizes", DefaultSizes, "Comma-separated size presets to run (S, M, L).")
	fs.IntVar(&cfg.Runs, "runs", DefaultRuns, "Number of runs per size.")
	fs.StringVar(&cfg.ResultsDir, "results", DefaultResultsDir, "Directory receiving control output and summaries.")
	fs.StringVar(&cfg.MetaFile, "meta", "", "Optional YAML benchmark metadata file.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Optional Prometheus textfile to write stage gauges to.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress progress and the summary table.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable color output.")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error).")
	fs.StringVar(&cfg.GCMode, "gc", DefaultGCMode, "Garbage collector while measuring (default, disabled).")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\nRuns the Fibonacci benchmark over the size presets.\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return SuiteConfig{}, err
	}
	if fs.NArg() > 0 {
		return SuiteConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, &sizes, fs)
	cfg.Sizes = splitList(sizes)

	if err := cfg.Validate(); err != nil {
		return SuiteConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for semantic errors.
func (c SuiteConfig) Validate() error {
	if len(c.Sizes) == 0 {
		return apperrors.NewConfigError("at least one size is required")
	}
	if c.Runs < 1 {
		return apperrors.NewConfigError("runs must be at least 1, got %d", c.Runs)
	}
	if c.ResultsDir == "" {
		return apperrors.NewConfigError("results directory must not be empty")
	}
	switch c.GCMode {
	case "default", "disabled":
	default:
		return apperrors.NewConfigError("unknown gc mode %q (want default or disabled)", c.GCMode)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToUpper(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
