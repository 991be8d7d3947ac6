// Command generate-golden writes internal/fibonacci/testdata/golden.json:
// F(n) for 0 <= n <= maxN, exact and reduced modulo 2^64.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
)

const defaultMaxN = 200

// fibBig computes F(n) exactly by iteration. It is the oracle for the
// golden file and is deliberately independent of the package under test.
func fibBig(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for range n {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

// wrapped reduces x modulo 2^64, the value a uint64 computation yields.
func wrapped(x *big.Int) uint64 {
	mask := new(big.Int).Lsh(big.NewInt(1), 64)
	return new(big.Int).Mod(x, mask).Uint64()
}

// writeGolden writes one entry per line so diffs stay readable.
func writeGolden(w io.Writer, maxN uint64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "{\n")
	fmt.Fprintf(bw, "  \"description\": \"F(n) for 0 <= n <= %d, exact and reduced modulo 2^64\",\n", maxN)
	fmt.Fprintf(bw, "  \"max_n\": %d,\n", maxN)
	fmt.Fprintf(bw, "  \"entries\": [\n")
	for n := uint64(0); n <= maxN; n++ {
		f := fibBig(n)
		sep := ","
		if n == maxN {
			sep = ""
		}
		fmt.Fprintf(bw, "    {\"n\": %d, \"exact\": %q, \"wrapped\": %d}%s\n", n, f.String(), wrapped(f), sep)
	}
	fmt.Fprintf(bw, "  ]\n}\n")
	return bw.Flush()
}

func main() {
	out := flag.String("o", "internal/fibonacci/testdata/golden.json", "output path")
	maxN := flag.Uint64("max", defaultMaxN, "largest index to record")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := writeGolden(f, *maxN); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d entries to %s\n", *maxN+1, *out)
}
