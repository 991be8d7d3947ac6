package bench

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/logging"
)

const tracerName = "github.com/agbru/fibbench/internal/bench"

// Driver runs the three benchmark stages in order.
type Driver struct {
	clock     Clock
	logger    logging.Logger
	tracer    trace.Tracer
	naive     fibonacci.Calculator
	tailrec   fibonacci.Calculator
	iterative fibonacci.Calculator
}

// Option configures a Driver during construction.
type Option func(*Driver)

// WithClock sets the time source used to measure stages.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithLogger sets the logger that receives one debug entry per stage.
func WithLogger(l logging.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithTracer overrides the OpenTelemetry tracer. By default the global
// provider is used, which is a no-op unless the process installs one.
func WithTracer(t trace.Tracer) Option {
	return func(d *Driver) { d.tracer = t }
}

// WithRegistry takes the three stage strategies from reg, in the order
// reg.List reports them. reg must hold exactly three strategies; NewDriver
// panics otherwise.
func WithRegistry(reg *fibonacci.Registry) Option {
	return func(d *Driver) { d.useRegistry(reg) }
}

// WithCalculators replaces the strategies run by each stage.
func WithCalculators(naive, tailrec, iterative fibonacci.Calculator) Option {
	return func(d *Driver) {
		d.naive, d.tailrec, d.iterative = naive, tailrec, iterative
	}
}

// NewDriver creates a Driver using the system clock and the strategies of
// fibonacci.NewDefaultRegistry.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{clock: SystemClock{}}
	d.useRegistry(fibonacci.NewDefaultRegistry())
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.NewDefaultLogger()
	}
	if d.tracer == nil {
		d.tracer = otel.Tracer(tracerName)
	}
	return d
}

func (d *Driver) useRegistry(reg *fibonacci.Registry) {
	keys := reg.List()
	if len(keys) != 3 {
		panic(fmt.Sprintf("bench: registry holds %d strategies, want 3", len(keys)))
	}
	d.naive = reg.MustGet(keys[0])
	d.tailrec = reg.MustGet(keys[1])
	d.iterative = reg.MustGet(keys[2])
}

// Run executes the naive stage once, then the tail-recursive and iterative
// stages m times each, and returns the measurements. The context only
// carries tracing information; Run is not cancellable.
func (d *Driver) Run(ctx context.Context, n, m uint64) Report {
	ctx, span := d.tracer.Start(ctx, "bench.Run", trace.WithAttributes(
		attribute.Int64("fib.n", int64(n)),
		attribute.Int64("fib.m", int64(m)),
	))
	defer span.End()

	if n > fibonacci.MaxExactIndex {
		d.logger.Debug("n exceeds the exact uint64 range, results wrap modulo 2^64",
			logging.Uint64("n", n),
			logging.Int("max_exact", fibonacci.MaxExactIndex),
		)
	}
	if n > fibonacci.NaivePracticalLimit {
		d.logger.Debug("naive stage grows exponentially and may take very long",
			logging.Uint64("n", n),
			logging.Int("practical_limit", fibonacci.NaivePracticalLimit),
		)
	}

	return Report{
		N:             n,
		M:             m,
		Naive:         d.TimeOnce(ctx, StageNaive, d.naive, n),
		TailRecursive: d.TimeRepeated(ctx, StageTailRec, d.tailrec, n, m),
		Iterative:     d.TimeRepeated(ctx, StageIterative, d.iterative, n, m),
	}
}

// TimeOnce measures a single call of calc on n.
func (d *Driver) TimeOnce(ctx context.Context, stage string, calc fibonacci.Calculator, n uint64) StageResult {
	_, span := d.tracer.Start(ctx, stage)
	defer span.End()

	start := d.clock.Now()
	result := calc.Fib(n)
	elapsed := d.clock.Now().Sub(start)

	res := StageResult{Name: stage, Elapsed: elapsed, Value: result}
	d.record(span, res, n, 1)
	return res
}

// TimeRepeated measures m calls of calc on n, folding every result into a
// fresh checksum.
func (d *Driver) TimeRepeated(ctx context.Context, stage string, calc fibonacci.Calculator, n, m uint64) StageResult {
	_, span := d.tracer.Start(ctx, stage)
	defer span.End()

	var sum Checksum
	start := d.clock.Now()
	for range m {
		sum = sum.Add(calc.Fib(n))
	}
	elapsed := d.clock.Now().Sub(start)

	res := StageResult{Name: stage, Elapsed: elapsed, Value: sum.Value()}
	d.record(span, res, n, m)
	return res
}

func (d *Driver) record(span trace.Span, res StageResult, n, m uint64) {
	span.SetAttributes(
		attribute.Int64("fib.n", int64(n)),
		attribute.Int64("fib.repetitions", int64(m)),
		attribute.Float64("stage.seconds", res.Elapsed.Seconds()),
	)
	d.logger.Debug("stage finished",
		logging.String("stage", res.Name),
		logging.Uint64("n", n),
		logging.Uint64("m", m),
		logging.Duration("elapsed", res.Elapsed),
		logging.Uint64("value", res.Value),
	)
}
