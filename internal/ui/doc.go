// Package ui provides theme and color support for the suite's terminal output.
// It defines color schemes for plain ANSI output and for lipgloss-rendered
// tables, and honors NO_COLOR.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
