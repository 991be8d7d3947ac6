// Package cli renders suite progress and summaries for the terminal.
package cli
