package fibonacci

// TailRec computes F(n) by carrying (a, b) = (F(k), F(k+1)) through n
// recursive steps. The Go compiler does not eliminate tail calls, so the
// stack grows linearly with n; the runtime grows goroutine stacks on demand
// up to the configured maximum (1 GB on 64-bit platforms by default).
func TailRec(n uint64) uint64 {
	return tailrec(n, 0, 1)
}

func tailrec(n, a, b uint64) uint64 {
	if n == 0 {
		return a
	}
	return tailrec(n-1, b, a+b)
}
