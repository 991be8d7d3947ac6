// Package suite runs the benchmark driver over the canonical size presets
// and stores what each run printed, the per-stage runtimes extracted from
// it, a description of the machine and, optionally, Prometheus gauges.
package suite
