package config

import (
	"errors"
	"flag"
	"io"
	"reflect"
	"testing"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

func TestParseSuiteConfig_Defaults(t *testing.T) {
	cfg, err := ParseSuiteConfig("fibbench-suite", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseSuiteConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg.Sizes, []string{"S", "M", "L"}) {
		t.Errorf("Sizes = %v", cfg.Sizes)
	}
	if cfg.ResultsDir != DefaultResultsDir || cfg.LogLevel != DefaultLogLevel || cfg.GCMode != DefaultGCMode || cfg.Runs != DefaultRuns {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Quiet || cfg.NoColor || cfg.MetaFile != "" || cfg.MetricsFile != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseSuiteConfig_Flags(t *testing.T) {
	args := []string{"-sizes", "s, l", "-results", "out", "-metrics-file", "out/fib.prom", "-quiet", "-no-color", "-gc", "disabled", "-runs", "2"}
	cfg, err := ParseSuiteConfig("fibbench-suite", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseSuiteConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg.Sizes, []string{"S", "L"}) {
		t.Errorf("Sizes = %v", cfg.Sizes)
	}
	if cfg.ResultsDir != "out" || cfg.MetricsFile != "out/fib.prom" || !cfg.Quiet || !cfg.NoColor || cfg.GCMode != "disabled" || cfg.Runs != 2 {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestParseSuiteConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FIBBENCH_SIZES", "M")
	t.Setenv("FIBBENCH_RESULTS", "env-results")
	t.Setenv("FIBBENCH_QUIET", "yes")
	t.Setenv("FIBBENCH_LOG_LEVEL", "debug")
	t.Setenv("FIBBENCH_GC", "disabled")
	t.Setenv("FIBBENCH_RUNS", "3")

	t.Run("env applies when flag unset", func(t *testing.T) {
		cfg, err := ParseSuiteConfig("fibbench-suite", nil, io.Discard)
		if err != nil {
			t.Fatalf("ParseSuiteConfig: %v", err)
		}
		if !reflect.DeepEqual(cfg.Sizes, []string{"M"}) || cfg.ResultsDir != "env-results" || !cfg.Quiet || cfg.LogLevel != "debug" || cfg.GCMode != "disabled" || cfg.Runs != 3 {
			t.Errorf("env overrides not applied: %+v", cfg)
		}
	})

	t.Run("flag wins over env", func(t *testing.T) {
		cfg, err := ParseSuiteConfig("fibbench-suite", []string{"-results", "flag-results"}, io.Discard)
		if err != nil {
			t.Fatalf("ParseSuiteConfig: %v", err)
		}
		if cfg.ResultsDir != "flag-results" {
			t.Errorf("ResultsDir = %q, want flag-results", cfg.ResultsDir)
		}
	})
}

func TestParseSuiteConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		isHelp bool
	}{
		{"help", []string{"-h"}, true},
		{"unknown flag", []string{"-threads", "4"}, false},
		{"positional argument", []string{"S"}, false},
		{"empty sizes", []string{"-sizes", " , "}, false},
		{"empty results", []string{"-results", ""}, false},
		{"unknown gc mode", []string{"-gc", "off"}, false},
		{"zero runs", []string{"-runs", "0"}, false},
		{"non-numeric runs", []string{"-runs", "many"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSuiteConfig("fibbench-suite", tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, flag.ErrHelp); got != tt.isHelp {
				t.Errorf("errors.Is(err, flag.ErrHelp) = %v, want %v", got, tt.isHelp)
			}
		})
	}

	t.Run("positional argument is a config error", func(t *testing.T) {
		_, err := ParseSuiteConfig("fibbench-suite", []string{"S"}, io.Discard)
		if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
			t.Errorf("expected config error, got %v", err)
		}
	})
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.fallback); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.fallback, got, tt.want)
		}
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("FIBBENCH_LOG_LEVEL", "")
	if got := LogLevel(); got != DefaultLogLevel {
		t.Errorf("LogLevel() = %q, want %q", got, DefaultLogLevel)
	}
	t.Setenv("FIBBENCH_LOG_LEVEL", "debug")
	if got := LogLevel(); got != "debug" {
		t.Errorf("LogLevel() = %q, want debug", got)
	}
}

func TestParseSuiteConfig_InvalidRunsEnvIsIgnored(t *testing.T) {
	t.Setenv("FIBBENCH_RUNS", "lots")
	cfg, err := ParseSuiteConfig("fibbench-suite", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseSuiteConfig: %v", err)
	}
	if cfg.Runs != DefaultRuns {
		t.Errorf("Runs = %d, want %d", cfg.Runs, DefaultRuns)
	}
}
