// Package ieee754 ties together the binary and decimal interchange
// codecs with the library's two process-wide mutable defaults (the
// rounding mode binarycodec/decimalcodec consult when rounding is
// unavoidable, and the BID/DPD coding decimalcodec consults when the
// caller doesn't pick one explicitly), and exposes the nine standard
// interchange formats as ready-to-use codec instances.
//
// The defaults themselves are owned by the packages that consume them
// (rounding.Default/SetDefault, decimalcodec.DefaultCoding/SetDefaultCoding);
// this package only re-exports them under names that read naturally at
// the call site of a library user who imports nothing but "ieee754".
package ieee754

import (
	"github.com/Synt4xErr0r4/ieee754-go/decimalcodec"
	"github.com/Synt4xErr0r4/ieee754-go/rounding"
)

// DefaultRounding returns the process-wide rounding mode binarycodec
// and decimalcodec fall back to whenever a value doesn't fit exactly.
func DefaultRounding() rounding.Mode {
	return rounding.Default()
}

// SetDefaultRounding changes the process-wide default rounding mode.
// Changing it concurrently with an in-flight encode/decode yields an
// unspecified but well-formed result.
func SetDefaultRounding(m rounding.Mode) {
	rounding.SetDefault(m)
}

// DefaultCoding returns the process-wide coding decimalcodec.Encode and
// decimalcodec.Decode use when not told BID or DPD explicitly.
func DefaultCoding() decimalcodec.Coding {
	return decimalcodec.DefaultCoding()
}

// SetDefaultCoding changes the process-wide default decimal coding.
func SetDefaultCoding(c decimalcodec.Coding) {
	decimalcodec.SetDefaultCoding(c)
}

// Re-export the coding constants so a caller only needs this package's
// import to select a coding.
const (
	BinaryIntegerDecimal = decimalcodec.BinaryIntegerDecimal
	DenselyPackedDecimal = decimalcodec.DenselyPackedDecimal
)

// Re-export the rounding modes for the same reason.
const (
	TiesToEven       = rounding.TiesToEven
	TiesAwayFromZero = rounding.TiesAwayFromZero
	TowardZero       = rounding.TowardZero
	TowardPositive   = rounding.TowardPositive
	TowardNegative   = rounding.TowardNegative
)
