package suite

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibbench/internal/bench"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/metrics"
	"github.com/agbru/fibbench/internal/sysmon"
)

const tracerName = "github.com/agbru/fibbench/internal/suite"

// Result is the outcome of one run of one size.
type Result struct {
	Size Size
	// Run is the 1-based repetition index within the size.
	Run         int
	Report      bench.Report
	Memory      metrics.MemoryDelta
	Runtimes    []StageRuntime
	ControlFile string
	// System is a CPU and memory sample taken right after the run.
	System sysmon.Stats
}

// Reporter receives suite progress. Implementations live in the
// presentation layer; NullReporter discards everything.
type Reporter interface {
	// SizeStarted is called before each run of a size is measured.
	SizeStarted(size Size, run int)
	// SizeFinished is called once a run's control output is stored.
	SizeFinished(res Result)
	// Summary is called once all artifacts are written.
	Summary(meta Meta, results []Result, specs []sysmon.Spec)
}

// NullReporter is a no-op implementation of Reporter.
type NullReporter struct{}

func (NullReporter) SizeStarted(Size, int) {}
func (NullReporter) SizeFinished(Result) {}
func (NullReporter) Summary(Meta, []Result, []sysmon.Spec) {}

// Options configures a Runner.
type Options struct {
	// Sizes are run in order.
	Sizes []Size
	// Runs is the number of repetitions per size; values below 1 mean 1.
	Runs int
	// ResultsDir receives the artifacts.
	ResultsDir string
	// MetricsFile, when set, receives the Prometheus textfile.
	MetricsFile string
	// GC selects the collector behavior while a size runs.
	GC GCMode
}

// Runner measures each size sequentially, then writes the artifacts.
type Runner struct {
	opts     Options
	meta     Meta
	driver   *bench.Driver
	reporter Reporter
	logger   logging.Logger
	memory   *metrics.MemoryCollector
	gauges   *metrics.StageMetrics
	describe func() []sysmon.Spec
	sample   func() sysmon.Stats
	tracer   trace.Tracer
}

// RunnerOption configures a Runner during construction.
type RunnerOption func(*Runner)

// WithDriver sets the benchmark driver.
func WithDriver(d *bench.Driver) RunnerOption { return func(r *Runner) { r.driver = d } }

// WithReporter sets the progress reporter.
func WithReporter(rep Reporter) RunnerOption { return func(r *Runner) { r.reporter = rep } }

// WithLogger sets the logger.
func WithLogger(l logging.Logger) RunnerOption { return func(r *Runner) { r.logger = l } }

// WithSystemProbes replaces sysmon.Describe and sysmon.Sample, mainly for tests.
func WithSystemProbes(describe func() []sysmon.Spec, sample func() sysmon.Stats) RunnerOption {
	return func(r *Runner) { r.describe, r.sample = describe, sample }
}

// NewRunner creates a Runner for meta with the given options.
func NewRunner(meta Meta, opts Options, ropts ...RunnerOption) *Runner {
	r := &Runner{
		opts:     opts,
		meta:     meta,
		reporter: NullReporter{},
		memory:   metrics.NewMemoryCollector(),
		gauges:   metrics.NewStageMetrics(),
		describe: sysmon.Describe,
		sample:   sysmon.Sample,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range ropts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewDefaultLogger()
	}
	if r.driver == nil {
		r.driver = bench.NewDriver(bench.WithLogger(r.logger))
	}
	return r
}

// Gauges returns the Prometheus gauges filled by Run.
func (r *Runner) Gauges() *metrics.StageMetrics { return r.gauges }

// Runs returns the effective number of repetitions per size.
func (r *Runner) Runs() int { return max(r.opts.Runs, 1) }

// Run measures every size and writes the artifacts. Sizes never run
// concurrently so one measurement cannot disturb another.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := os.MkdirAll(r.opts.ResultsDir, 0o755); err != nil {
		return nil, apperrors.IOError{Path: r.opts.ResultsDir, Cause: err}
	}

	runs := r.Runs()
	results := make([]Result, 0, len(r.opts.Sizes)*runs)
	for _, size := range r.opts.Sizes {
		for run := 1; run <= runs; run++ {
			res, err := r.runSize(ctx, size, run)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}

	specs := r.describe()
	if err := r.writeArtifacts(ctx, results, specs); err != nil {
		return results, err
	}
	r.reporter.Summary(r.meta, results, specs)
	return results, nil
}

func (r *Runner) runSize(ctx context.Context, size Size, run int) (Result, error) {
	ctx, span := r.tracer.Start(ctx, "suite.size", trace.WithAttributes(
		attribute.String("size", size.Name),
		attribute.Int("run", run),
	))
	defer span.End()

	r.reporter.SizeStarted(size, run)
	r.logger.Info("running size",
		logging.String("size", size.Name),
		logging.Int("run", run),
		logging.Uint64("n", size.N),
		logging.Uint64("m", size.M),
	)

	gc := newGCController(r.opts.GC, r.logger)
	gc.Begin()
	before := r.memory.Snapshot()
	report := r.driver.Run(ctx, size.N, size.M)
	delta := r.memory.Snapshot().Since(before)
	gc.End()

	var buf bytes.Buffer
	if err := report.WriteControlOutput(&buf); err != nil {
		return Result{}, apperrors.WrapError(err, "size %s", size.Name)
	}
	path := filepath.Join(r.opts.ResultsDir, ControlFileName(size.Name, run))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Result{}, apperrors.IOError{Path: path, Cause: err}
	}

	// Runtimes come from the stored file, not the in-memory report, so the
	// summary reflects exactly what was recorded.
	f, err := os.Open(path)
	if err != nil {
		return Result{}, apperrors.IOError{Path: path, Cause: err}
	}
	defer f.Close()
	runtimes, err := ExtractStageRuntimes(f)
	if err != nil {
		return Result{}, apperrors.IOError{Path: path, Cause: err}
	}

	r.gauges.Observe(size.Name, run, report, delta)
	res := Result{
		Size:        size,
		Run:         run,
		Report:      report,
		Memory:      delta,
		Runtimes:    runtimes,
		ControlFile: path,
		System:      r.sample(),
	}
	span.SetAttributes(attribute.Float64("total.seconds", report.Total().Seconds()))
	r.logger.Debug("size finished",
		logging.String("size", size.Name),
		logging.Int("run", run),
		logging.Duration("total", report.Total()),
		logging.Uint64("allocated", delta.Allocated),
		logging.Float64("cpu_percent", res.System.CPUPercent),
		logging.Float64("mem_percent", res.System.MemPercent),
	)
	r.reporter.SizeFinished(res)
	return res, nil
}

// ControlFileName names the file holding a size's control output.
func ControlFileName(size string, run int) string {
	return fmt.Sprintf("stdout_run_%s_%d.txt", size, run)
}

func (r *Runner) writeArtifacts(ctx context.Context, results []Result, specs []sysmon.Spec) error {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		path := filepath.Join(r.opts.ResultsDir, StageSummaryFile)
		return writeFileWith(path, func(f *os.File) error { return WriteStageSummary(f, results) })
	})
	g.Go(func() error {
		path := filepath.Join(r.opts.ResultsDir, SystemSpecsFile)
		return writeFileWith(path, func(f *os.File) error { return WriteSystemSpecs(f, r.meta, r.Runs(), specs) })
	})
	if r.opts.MetricsFile != "" {
		g.Go(func() error {
			if err := r.gauges.WriteTextfile(r.opts.MetricsFile); err != nil {
				return apperrors.IOError{Path: r.opts.MetricsFile, Cause: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Error("writing artifacts", err)
		return err
	}
	return nil
}

func writeFileWith(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.IOError{Path: path, Cause: err}
	}
	if err := write(f); err != nil {
		f.Close()
		return apperrors.IOError{Path: path, Cause: err}
	}
	if err := f.Close(); err != nil {
		return apperrors.IOError{Path: path, Cause: err}
	}
	return nil
}
