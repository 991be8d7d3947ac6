package bench

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestChecksum_Add(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		start Checksum
		add   uint64
		want  uint64
	}{
		{"zero plus zero", 0, 0, 0},
		{"small value", 0, 55, 55},
		{"accumulates", 55, 55, 110},
		{"reaches modulus", 1, ChecksumModulus - 1, 0},
		{"wraps past modulus", Checksum(ChecksumModulus - 1), 2, 1},
		{"max uint64 does not overflow", Checksum(ChecksumModulus - 1), ^uint64(0), (ChecksumModulus - 1 + (^uint64(0))%ChecksumModulus) % ChecksumModulus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.start.Add(tt.add).Value(); got != tt.want {
				t.Errorf("Checksum(%d).Add(%d) = %d, want %d", tt.start, tt.add, got, tt.want)
			}
		})
	}
}

// TestChecksum_RepeatedAdd_PropertyBased verifies that adding f m times
// equals (m * f) mod 2147483647 computed exactly.
func TestChecksum_RepeatedAdd_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("m additions of f equal m*f mod p", prop.ForAll(
		func(f uint64, m uint64) bool {
			var sum Checksum
			for range m {
				sum = sum.Add(f)
			}
			want := new(big.Int).Mul(new(big.Int).SetUint64(f), new(big.Int).SetUint64(m))
			want.Mod(want, new(big.Int).SetUint64(ChecksumModulus))
			return sum.Value() == want.Uint64()
		},
		gen.UInt64(),
		gen.UInt64Range(0, 2000),
	))

	properties.Property("checksum stays below the modulus", prop.ForAll(
		func(start uint64, v uint64) bool {
			return Checksum(start%ChecksumModulus).Add(v).Value() < ChecksumModulus
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
