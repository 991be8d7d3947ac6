// Package apperrors defines structured application error types and the
// process exit codes they map to, allowing a clear distinction between
// usage errors, malformed input, configuration and I/O failures.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that carry a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors
