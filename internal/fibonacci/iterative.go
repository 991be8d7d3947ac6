package fibonacci

// Iter computes F(n) in n loop steps over two locals.
func Iter(n uint64) uint64 {
	var a, b uint64 = 0, 1
	for ; n > 0; n-- {
		a, b = b, a+b
	}
	return a
}
