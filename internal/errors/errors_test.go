// Package apperrors provides tests for application error types.
package apperrors

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"testing"
)

func TestUsageError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      UsageError
		expected string
	}{
		{"no arguments", UsageError{Got: 0, Want: 2}, "expected 2 arguments, got 0"},
		{"one argument", UsageError{Got: 1, Want: 2}, "expected 2 arguments, got 1"},
		{"too many arguments", UsageError{Got: 3, Want: 2}, "expected 2 arguments, got 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	_, cause := strconv.ParseUint("abc", 10, 64)
	err := ParseError{Arg: "n", Value: "abc", Cause: cause}

	t.Run("Error names argument and value", func(t *testing.T) {
		t.Parallel()
		want := `invalid value "abc" for n: ` + cause.Error()
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("errors.Is finds strconv.ErrSyntax", func(t *testing.T) {
		t.Parallel()
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Error("errors.Is should find strconv.ErrSyntax in the chain")
		}
	})

	t.Run("errors.As works through wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("reading arguments: %w", err)
		var parseErr ParseError
		if !errors.As(wrapped, &parseErr) {
			t.Fatal("expected error to be ParseError type")
		}
		if parseErr.Arg != "n" {
			t.Errorf("expected Arg %q, got %q", "n", parseErr.Arg)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("unknown size %q", "XL")
	if err.Error() != `unknown size "XL"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
}

func TestIOError(t *testing.T) {
	t.Parallel()
	err := IOError{Path: "results/stage_summary.csv", Cause: fs.ErrPermission}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should find fs.ErrPermission in the chain")
	}
	if err.Error() != "results/stage_summary.csv: permission denied" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wraps with message", func(t *testing.T) {
		t.Parallel()
		base := errors.New("disk full")
		err := WrapError(base, "writing %s", "metrics.prom")
		if err.Error() != "writing metrics.prom: disk full" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should unwrap to base")
		}
	})
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", UsageError{Got: 1, Want: 2}, ExitErrorUsage},
		{"parse", ParseError{Arg: "m", Value: "x", Cause: strconv.ErrSyntax}, ExitErrorInput},
		{"wrapped parse", WrapError(ParseError{Arg: "n", Value: "-1", Cause: strconv.ErrSyntax}, "args"), ExitErrorInput},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"io", IOError{Path: "x", Cause: fs.ErrNotExist}, ExitErrorIO},
		{"unknown", errors.New("boom"), ExitErrorIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
