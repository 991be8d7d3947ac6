package fibonacci

// Calculator is a single strategy for computing F(n).
type Calculator interface {
	// Name returns a human-readable name used in reports and logs.
	Name() string
	// Fib returns F(n) modulo 2^64.
	Fib(n uint64) uint64
}

// NaiveRecursive computes F(n) by the defining recurrence.
type NaiveRecursive struct{}

// Name implements Calculator.
func (NaiveRecursive) Name() string { return "Naive Recursion" }

// Fib implements Calculator.
func (NaiveRecursive) Fib(n uint64) uint64 { return Naive(n) }

// TailRecursive carries the result in accumulators through n recursive calls.
type TailRecursive struct{}

// Name implements Calculator.
func (TailRecursive) Name() string { return "Tail Recursion" }

// Fib implements Calculator.
func (TailRecursive) Fib(n uint64) uint64 { return TailRec(n) }

// Iterative runs the recurrence as a bounded loop.
type Iterative struct{}

// Name implements Calculator.
func (Iterative) Name() string { return "Iterative" }

// Fib implements Calculator.
func (Iterative) Fib(n uint64) uint64 { return Iter(n) }

// Verify interface compliance.
var (
	_ Calculator = NaiveRecursive{}
	_ Calculator = TailRecursive{}
	_ Calculator = Iterative{}
)
