package fibonacci

// Naive computes F(n) = F(n-1) + F(n-2) with F(0) = 0 and F(1) = 1.
// It performs O(phi^n) calls and exists to exhibit worst-case cost.
func Naive(n uint64) uint64 {
	if n < 2 {
		return n
	}
	return Naive(n-1) + Naive(n-2)
}
