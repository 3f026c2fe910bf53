// Package formats lists the parameter records of the nine standard
// IEEE 754-2008 interchange formats. These are not separate Go types:
// each constructor just returns a binarycodec.Params or
// decimalcodec.Params pre-filled with that format's widths, leaving
// construction of an actual *binarycodec.Codec / *decimalcodec.Codec
// to the caller (or to the root package's convenience wrappers).
package formats

import (
	"github.com/Synt4xErr0r4/ieee754-go/binarycodec"
	"github.com/Synt4xErr0r4/ieee754-go/decimalcodec"
)

// Binary16 returns the half-precision binary format's parameters.
func Binary16() binarycodec.Params {
	return binarycodec.Params{E: 5, P: 10, Implicit: true}
}

// Binary32 returns the single-precision binary format's parameters.
func Binary32() binarycodec.Params {
	return binarycodec.Params{E: 8, P: 23, Implicit: true}
}

// Binary64 returns the double-precision binary format's parameters.
func Binary64() binarycodec.Params {
	return binarycodec.Params{E: 11, P: 52, Implicit: true}
}

// Binary80 returns the x87 extended-precision binary format's
// parameters. Unlike the other binary formats, its leading significand
// bit is stored explicitly rather than implied.
func Binary80() binarycodec.Params {
	return binarycodec.Params{E: 15, P: 63, Implicit: false}
}

// Binary128 returns the quadruple-precision binary format's parameters.
func Binary128() binarycodec.Params {
	return binarycodec.Params{E: 15, P: 112, Implicit: true}
}

// Binary256 returns the octuple-precision binary format's parameters.
func Binary256() binarycodec.Params {
	return binarycodec.Params{E: 19, P: 236, Implicit: true}
}

// Decimal32 returns the decimal32 interchange format's parameters.
func Decimal32() decimalcodec.Params {
	return decimalcodec.Params{C: 11, T: 20}
}

// Decimal64 returns the decimal64 interchange format's parameters.
func Decimal64() decimalcodec.Params {
	return decimalcodec.Params{C: 13, T: 50}
}

// Decimal128 returns the decimal128 interchange format's parameters.
func Decimal128() decimalcodec.Params {
	return decimalcodec.Params{C: 17, T: 110}
}
