// Package bench times the Fibonacci strategies and accumulates the checksums
// that keep repeated work observable. It also owns the six-line control
// output format printed by the harness and read back by the suite.
package bench
