// Package metrics collects runtime memory snapshots around benchmark runs and
// exposes stage measurements as Prometheus gauges.
package metrics
