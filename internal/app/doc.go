// Package app wires the harness together: it reads the positional
// arguments, runs the benchmark driver and prints the control output.
package app
