package config

import (
	"errors"
	"strconv"
	"testing"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		args    []string
		want    HarnessArgs
		wantErr int
	}{
		{"valid", []string{"10", "1"}, HarnessArgs{N: 10, M: 1}, apperrors.ExitSuccess},
		{"zeros", []string{"0", "0"}, HarnessArgs{}, apperrors.ExitSuccess},
		{"max uint64", []string{"18446744073709551615", "5"}, HarnessArgs{N: 18446744073709551615, M: 5}, apperrors.ExitSuccess},
		{"no args", nil, HarnessArgs{}, apperrors.ExitErrorUsage},
		{"one arg", []string{"10"}, HarnessArgs{}, apperrors.ExitErrorUsage},
		{"three args", []string{"10", "1", "2"}, HarnessArgs{}, apperrors.ExitErrorUsage},
		{"help is just an argument", []string{"--help"}, HarnessArgs{}, apperrors.ExitErrorUsage},
		{"non-numeric n", []string{"ten", "1"}, HarnessArgs{}, apperrors.ExitErrorInput},
		{"non-numeric m", []string{"10", "x"}, HarnessArgs{}, apperrors.ExitErrorInput},
		{"negative n", []string{"-1", "1"}, HarnessArgs{}, apperrors.ExitErrorInput},
		{"decimal m", []string{"10", "1.5"}, HarnessArgs{}, apperrors.ExitErrorInput},
		{"overflow", []string{"18446744073709551616", "1"}, HarnessArgs{}, apperrors.ExitErrorInput},
		{"empty string", []string{"", "1"}, HarnessArgs{}, apperrors.ExitErrorInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseArgs(tt.args)
			if code := apperrors.ExitCodeFor(err); code != tt.wantErr {
				t.Fatalf("ParseArgs(%q) exit code = %d (err %v), want %d", tt.args, code, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseArgs_ParseErrorDetails(t *testing.T) {
	t.Parallel()
	_, err := ParseArgs([]string{"10", "abc"})

	var parseErr apperrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if parseErr.Arg != "m" || parseErr.Value != "abc" {
		t.Errorf("ParseError = %+v, want Arg m and Value abc", parseErr)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("ParseError should unwrap to strconv.ErrSyntax")
	}
}
