package config

import (
	"strconv"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// HarnessArgCount is the number of positional arguments the harness takes.
const HarnessArgCount = 2

// HarnessArgs holds the two positional harness arguments.
type HarnessArgs struct {
	// N is the Fibonacci index.
	N uint64
	// M is the repetition count of the linear stages.
	M uint64
}

// ParseArgs parses exactly two non-negative base-10 integers, n then m.
// args must not include the program name.
//
// Returns:
//   - apperrors.UsageError if the argument count is wrong.
//   - apperrors.ParseError if either argument is not a uint64.
func ParseArgs(args []string) (HarnessArgs, error) {
	if len(args) != HarnessArgCount {
		return HarnessArgs{}, apperrors.UsageError{Got: len(args), Want: HarnessArgCount}
	}
	n, err := parseUint("n", args[0])
	if err != nil {
		return HarnessArgs{}, err
	}
	m, err := parseUint("m", args[1])
	if err != nil {
		return HarnessArgs{}, err
	}
	return HarnessArgs{N: n, M: m}, nil
}

func parseUint(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, apperrors.ParseError{Arg: name, Value: s, Cause: err}
	}
	return v, nil
}
