package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Range Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxExactIndex is the largest n for which F(n) fits in a uint64.
	// F(93) = 12200160415121876738; F(94) and above wrap modulo 2^64.
	MaxExactIndex = 93

	// NaivePracticalLimit is a soft bound for the naive strategy. The call
	// count grows as phi^n, so F(50) already takes minutes on current CPUs.
	// It is informational only and never enforced.
	NaivePracticalLimit = 50
)
