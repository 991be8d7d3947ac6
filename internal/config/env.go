// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FIBBENCH_ prefix) to the CLI flag
// it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(c *SuiteConfig, sizes *string, v string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"SIZES", "sizes", func(_ *SuiteConfig, sizes *string, v string) {
		*sizes = v
	}},
	{"RUNS", "runs", func(c *SuiteConfig, _ *string, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Runs = parsed
		}
	}},
	{"RESULTS", "results", func(c *SuiteConfig, _ *string, v string) {
		c.ResultsDir = v
	}},
	{"META", "meta", func(c *SuiteConfig, _ *string, v string) {
		c.MetaFile = v
	}},
	{"METRICS_FILE", "metrics-file", func(c *SuiteConfig, _ *string, v string) {
		c.MetricsFile = v
	}},
	{"LOG_LEVEL", "log-level", func(c *SuiteConfig, _ *string, v string) {
		c.LogLevel = v
	}},
	{"GC", "gc", func(c *SuiteConfig, _ *string, v string) {
		c.GCMode = v
	}},
	{"QUIET", "quiet", func(c *SuiteConfig, _ *string, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"NO_COLOR", "no-color", func(c *SuiteConfig, _ *string, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with FIBBENCH_):
//   - SIZES, RUNS, RESULTS, META, METRICS_FILE, LOG_LEVEL, GC, QUIET, NO_COLOR
func applyEnvOverrides(cfg *SuiteConfig, sizes *string, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, sizes, val)
		}
	}
}
