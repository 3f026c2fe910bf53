package decimalcodec_test

import (
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Synt4xErr0r4/ieee754-go/decimalcodec"
	"github.com/Synt4xErr0r4/ieee754-go/decnum"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

func decimal32(t *testing.T) *decimalcodec.Codec {
	c, err := decimalcodec.New(decimalcodec.Params{C: 11, T: 20})
	require.NoError(t, err)
	return c
}

func decimal64(t *testing.T) *decimalcodec.Codec {
	c, err := decimalcodec.New(decimalcodec.Params{C: 13, T: 50})
	require.NoError(t, err)
	return c
}

func decimal128(t *testing.T) *decimalcodec.Codec {
	c, err := decimalcodec.New(decimalcodec.Params{C: 17, T: 110})
	require.NoError(t, err)
	return c
}

func hex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad hex literal: " + s)
	}
	return v
}

func TestInvalidParams(t *testing.T) {
	type TC struct {
		Params decimalcodec.Params
		Mark   error
	}

	tcs := []TC{
		{decimalcodec.Params{C: 5, T: 20}, oops.New("combination size below minimum")},
		{decimalcodec.Params{C: 32, T: 20}, oops.New("combination size above maximum")},
		{decimalcodec.Params{C: 11, T: 0}, oops.New("significand size must be positive")},
		{decimalcodec.Params{C: 11, T: 21}, oops.New("significand size must be a multiple of 10")},
	}

	for _, tc := range tcs {
		c, err := decimalcodec.New(tc.Params)
		if !assert.Error(t, err, tc.Mark) {
			t.Logf("unexpectedly constructed: %s", spew.Sdump(c))
		}
		require.ErrorIs(t, err, value.ErrInvalidParameter, tc.Mark)
	}
}

func TestDecimal32SpecialPatterns(t *testing.T) {
	c := decimal32(t)

	posInf, _ := value.NewInfinity(value.Positive)
	pattern, err := c.EncodeBID(posInf)
	require.NoError(t, err)
	require.Equal(t, hex("78000000"), pattern)

	qnan, _ := value.NewQuietNaN(value.Positive)
	pattern, err = c.EncodeBID(qnan)
	require.NoError(t, err)
	require.Equal(t, hex("7C000000"), pattern)

	negZero, _ := value.NewFinite(value.Negative, decnum.Zero())
	pattern, err = c.EncodeBID(negZero)
	require.NoError(t, err)
	require.Equal(t, hex("80000000"), pattern)
}

func TestDecimal64SpecialPatterns(t *testing.T) {
	c := decimal64(t)

	posInf, _ := value.NewInfinity(value.Positive)
	pattern, err := c.EncodeBID(posInf)
	require.NoError(t, err)
	require.Equal(t, hex("7800000000000000"), pattern)

	qnan, _ := value.NewQuietNaN(value.Positive)
	pattern, err = c.EncodeBID(qnan)
	require.NoError(t, err)
	require.Equal(t, hex("7C00000000000000"), pattern)

	negZero, _ := value.NewFinite(value.Negative, decnum.Zero())
	pattern, err = c.EncodeBID(negZero)
	require.NoError(t, err)
	require.Equal(t, hex("8000000000000000"), pattern)
}

func TestDecimal128SpecialPatterns(t *testing.T) {
	c := decimal128(t)

	posInf, _ := value.NewInfinity(value.Positive)
	pattern, err := c.EncodeBID(posInf)
	require.NoError(t, err)
	require.Equal(t, hex("78000000000000000000000000000000"), pattern)

	qnan, _ := value.NewQuietNaN(value.Positive)
	pattern, err = c.EncodeBID(qnan)
	require.NoError(t, err)
	require.Equal(t, hex("7C000000000000000000000000000000"), pattern)

	negZero, _ := value.NewFinite(value.Negative, decnum.Zero())
	pattern, err = c.EncodeBID(negZero)
	require.NoError(t, err)
	require.Equal(t, hex("80000000000000000000000000000000"), pattern)
}

func TestBIDRoundTripValues(t *testing.T) {
	c := decimal32(t)

	mag := decnum.FromParts(big.NewInt(1234567), -2) // 12345.67

	v, err := value.NewFinite(value.Positive, mag)
	require.NoError(t, err)

	encoded, err := c.EncodeBID(v)
	require.NoError(t, err)

	decoded, err := c.DecodeBID(encoded)
	require.NoError(t, err)
	decodedMag, err := decoded.Magnitude()
	require.NoError(t, err)
	require.Zero(t, decodedMag.Cmp(mag))
}

func TestDPDRoundTripValues(t *testing.T) {
	c := decimal32(t)

	mag := decnum.FromParts(big.NewInt(1234567), -2) // 12345.67

	v, err := value.NewFinite(value.Negative, mag.Neg())
	require.NoError(t, err)

	encoded, err := c.EncodeDPD(v)
	require.NoError(t, err)

	decoded, err := c.DecodeDPD(encoded)
	require.NoError(t, err)
	require.True(t, decoded.Sign() == value.Negative)
	decodedMag, err := decoded.Magnitude()
	require.NoError(t, err)
	require.Zero(t, decodedMag.Cmp(mag))
}

func TestBIDAndDPDAgreeOnMagnitude(t *testing.T) {
	c := decimal32(t)

	mag := decnum.FromParts(big.NewInt(9876543), 3)
	v, err := value.NewFinite(value.Positive, mag)
	require.NoError(t, err)

	bidPattern, err := c.EncodeBID(v)
	require.NoError(t, err)
	dpdPattern, err := c.EncodeDPD(v)
	require.NoError(t, err)

	bidDecoded, err := c.DecodeBID(bidPattern)
	require.NoError(t, err)
	dpdDecoded, err := c.DecodeDPD(dpdPattern)
	require.NoError(t, err)

	bidMag, err := bidDecoded.Magnitude()
	require.NoError(t, err)
	dpdMag, err := dpdDecoded.Magnitude()
	require.NoError(t, err)

	require.Zero(t, bidMag.Cmp(dpdMag))
}

func TestNegativeZeroDistinctFromPositiveZero(t *testing.T) {
	c := decimal32(t)

	posZero, _ := value.NewFinite(value.Positive, decnum.Zero())
	negZero, _ := value.NewFinite(value.Negative, decnum.Zero())

	posPattern, err := c.EncodeBID(posZero)
	require.NoError(t, err)
	negPattern, err := c.EncodeBID(negZero)
	require.NoError(t, err)

	require.NotEqual(t, posPattern, negPattern)

	decodedPos, err := c.DecodeBID(posPattern)
	require.NoError(t, err)
	decodedNeg, err := c.DecodeBID(negPattern)
	require.NoError(t, err)

	require.True(t, decodedPos.IsPositiveZero())
	require.True(t, decodedNeg.IsNegativeZero())
}

func TestOverflowToInfinity(t *testing.T) {
	c := decimal32(t)

	// 9999999 * 10^100 exceeds decimal32's exponent span.
	mag := decnum.FromParts(big.NewInt(9999999), 100)
	v, err := value.NewFinite(value.Positive, mag)
	require.NoError(t, err)

	pattern, err := c.EncodeBID(v)
	require.NoError(t, err)
	require.True(t, c.IsInfinity(pattern))
	require.True(t, c.IsPositiveInfinity(pattern))
}

func TestBiasAndExponentRange(t *testing.T) {
	c := decimal32(t)
	require.Equal(t, 101, c.Bias())

	eMin, eMax := c.ExponentRange()
	require.Equal(t, -94, eMin)
	require.Equal(t, 97, eMax)
}
