package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess     = 0 // Indicates successful execution.
	ExitErrorUsage  = 1 // Indicates a wrong number of arguments.
	ExitErrorInput  = 2 // Indicates a malformed numeric argument.
	ExitErrorConfig = 4 // Indicates a configuration error.
	ExitErrorIO     = 5 // Indicates a failure reading or writing a file.
)

// UsageError reports that the program was invoked with the wrong number of
// positional arguments.
type UsageError struct {
	// Got is the number of positional arguments received.
	Got int
	// Want is the number of positional arguments expected.
	Want int
}

// Error returns a formatted message describing the argument count mismatch.
func (e UsageError) Error() string {
	return fmt.Sprintf("expected %d arguments, got %d", e.Want, e.Got)
}

// ParseError reports a positional argument that is not a non-negative
// integer. It keeps the strconv error as its cause.
type ParseError struct {
	// Arg is the name of the argument (e.g. "n").
	Arg string
	// Value is the text that failed to parse.
	Value string
	// Cause is the underlying parse error.
	Cause error
}

// Error returns a formatted message naming the argument and its value.
func (e ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Arg, e.Cause)
}

// Unwrap returns the underlying parse error.
func (e ParseError) Unwrap() error { return e.Cause }

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// IOError wraps a filesystem failure together with the path involved.
type IOError struct {
	Path  string
	Cause error
}

func (e IOError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Cause) }

func (e IOError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the process exit code. Unknown errors are
// reported as I/O failures since that is the only remaining class.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usageErr UsageError
	if errors.As(err, &usageErr) {
		return ExitErrorUsage
	}
	var parseErr ParseError
	if errors.As(err, &parseErr) {
		return ExitErrorInput
	}
	var configErr ConfigError
	if errors.As(err, &configErr) {
		return ExitErrorConfig
	}
	return ExitErrorIO
}
