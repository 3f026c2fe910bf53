package ieee754

import (
	"github.com/Synt4xErr0r4/ieee754-go/binarycodec"
	"github.com/Synt4xErr0r4/ieee754-go/decimalcodec"
	"github.com/Synt4xErr0r4/ieee754-go/formats"
)

// The nine standard formats, built once at package init time rather
// than on every call: their parameters are fixed literals, so there's
// nothing to gain from lazy construction, and a package-level *Codec
// is safe to share across goroutines (see binarycodec/decimalcodec's
// eager-construction discipline).
var (
	binary16  = mustBinary(formats.Binary16())
	binary32  = mustBinary(formats.Binary32())
	binary64  = mustBinary(formats.Binary64())
	binary80  = mustBinary(formats.Binary80())
	binary128 = mustBinary(formats.Binary128())
	binary256 = mustBinary(formats.Binary256())

	decimal32  = mustDecimal(formats.Decimal32())
	decimal64  = mustDecimal(formats.Decimal64())
	decimal128 = mustDecimal(formats.Decimal128())
)

func mustBinary(p binarycodec.Params) *binarycodec.Codec {
	c, err := binarycodec.New(p)
	if err != nil {
		panic(err)
	}
	return c
}

func mustDecimal(p decimalcodec.Params) *decimalcodec.Codec {
	c, err := decimalcodec.New(p)
	if err != nil {
		panic(err)
	}
	return c
}

// Binary16 returns the shared half-precision binary codec.
func Binary16() *binarycodec.Codec { return binary16 }

// Binary32 returns the shared single-precision binary codec.
func Binary32() *binarycodec.Codec { return binary32 }

// Binary64 returns the shared double-precision binary codec.
func Binary64() *binarycodec.Codec { return binary64 }

// Binary80 returns the shared x87 extended-precision binary codec.
func Binary80() *binarycodec.Codec { return binary80 }

// Binary128 returns the shared quadruple-precision binary codec.
func Binary128() *binarycodec.Codec { return binary128 }

// Binary256 returns the shared octuple-precision binary codec.
func Binary256() *binarycodec.Codec { return binary256 }

// Decimal32 returns the shared decimal32 codec.
func Decimal32() *decimalcodec.Codec { return decimal32 }

// Decimal64 returns the shared decimal64 codec.
func Decimal64() *decimalcodec.Codec { return decimal64 }

// Decimal128 returns the shared decimal128 codec.
func Decimal128() *decimalcodec.Codec { return decimal128 }
