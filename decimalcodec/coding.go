package decimalcodec

import "sync/atomic"

// Coding selects which wire representation a decimal codec uses for the
// significand: a plain binary integer, or three-digits-per-declet
// densely packed decimal.
type Coding int32

const (
	// BinaryIntegerDecimal carries the significand as a base-2 integer.
	BinaryIntegerDecimal Coding = iota
	// DenselyPackedDecimal carries the significand as 10-bit declets,
	// three decimal digits each (see the combination package).
	DenselyPackedDecimal
)

// String names the coding.
func (c Coding) String() string {
	if c == DenselyPackedDecimal {
		return "densely-packed-decimal"
	}
	return "binary-integer-decimal"
}

var defaultCoding atomic.Int32

func init() {
	defaultCoding.Store(int32(BinaryIntegerDecimal))
}

// DefaultCoding returns the process-wide default coding Encode/Decode
// use when the root package's convenience wrappers don't specify one.
func DefaultCoding() Coding {
	return Coding(defaultCoding.Load())
}

// SetDefaultCoding changes the process-wide default coding. Changing it
// concurrently with an in-flight encode/decode yields an unspecified
// but well-formed result, matching rounding.SetDefault's contract.
func SetDefaultCoding(c Coding) {
	defaultCoding.Store(int32(c))
}
