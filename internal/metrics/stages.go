package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/fibbench/internal/bench"
)

// StageMetrics exposes suite measurements as Prometheus gauges on a private
// registry, so repeated construction in tests never collides.
type StageMetrics struct {
	registry  *prometheus.Registry
	seconds   *prometheus.GaugeVec
	values    *prometheus.GaugeVec
	allocated *prometheus.GaugeVec
	gcCycles  *prometheus.GaugeVec
}

// NewStageMetrics creates and registers the stage gauges.
func NewStageMetrics() *StageMetrics {
	m := &StageMetrics{
		registry: prometheus.NewRegistry(),
		seconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fibbench",
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of a benchmark stage.",
		}, []string{"size", "run", "stage"}),
		values: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fibbench",
			Name:      "stage_value",
			Help:      "Naive result or checksum produced by a benchmark stage.",
		}, []string{"size", "run", "stage"}),
		allocated: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fibbench",
			Name:      "run_allocated_bytes",
			Help:      "Bytes allocated during one run of a size.",
		}, []string{"size", "run"}),
		gcCycles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fibbench",
			Name:      "run_gc_cycles",
			Help:      "GC cycles completed during one run of a size.",
		}, []string{"size", "run"}),
	}
	m.registry.MustRegister(m.seconds, m.values, m.allocated, m.gcCycles)
	return m
}

// Observe records one run's report and memory delta. The "Total" stage is
// the sum of the three stage durations.
func (m *StageMetrics) Observe(size string, run int, report bench.Report, mem MemoryDelta) {
	r := strconv.Itoa(run)
	for _, s := range report.Stages() {
		m.seconds.WithLabelValues(size, r, s.Name).Set(s.Elapsed.Seconds())
		m.values.WithLabelValues(size, r, s.Name).Set(float64(s.Value))
	}
	m.seconds.WithLabelValues(size, r, "Total").Set(report.Total().Seconds())
	m.allocated.WithLabelValues(size, r).Set(float64(mem.Allocated))
	m.gcCycles.WithLabelValues(size, r).Set(float64(mem.GCCycles))
}

// Gatherer returns the registry holding the gauges.
func (m *StageMetrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile writes the gauges in the text exposition format, suitable
// for the node_exporter textfile collector.
func (m *StageMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
