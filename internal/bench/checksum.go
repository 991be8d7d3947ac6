package bench

// ChecksumModulus bounds the rolling checksum (2^31 - 1).
const ChecksumModulus uint64 = 2147483647

// Checksum is a running sum reduced modulo ChecksumModulus after every
// addition. Its only purpose is to consume every repeated result.
type Checksum uint64

// Add folds v into the checksum. v is reduced first so the sum never
// exceeds 2*ChecksumModulus and cannot overflow.
func (c Checksum) Add(v uint64) Checksum {
	return Checksum((uint64(c) + v%ChecksumModulus) % ChecksumModulus)
}

// Value returns the checksum as a plain integer.
func (c Checksum) Value() uint64 { return uint64(c) }
