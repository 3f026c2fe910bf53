package binarycodec_test

import (
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Synt4xErr0r4/ieee754-go/binarycodec"
	"github.com/Synt4xErr0r4/ieee754-go/decnum"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

func mustCodec(t *testing.T, p binarycodec.Params) *binarycodec.Codec {
	c, err := binarycodec.New(p)
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
		Params binarycodec.Params
		Mark   error
	}

	tcs := []TC{
		{binarycodec.Params{E: 0, P: 10, Implicit: true}, oops.New("exponent size must be positive")},
		{binarycodec.Params{E: 32, P: 10, Implicit: true}, oops.New("exponent size must be at most 31")},
		{binarycodec.Params{E: 5, P: 0, Implicit: true}, oops.New("significand size must be positive")},
	}

	for _, tc := range tcs {
		c, err := binarycodec.New(tc.Params)
		if !assert.Error(t, err, tc.Mark) {
			t.Logf("unexpectedly constructed: %s", spew.Sdump(c))
		}
		require.ErrorIs(t, err, value.ErrInvalidParameter, tc.Mark)
	}
}

func TestBinary16SpecialPatterns(t *testing.T) {
	c := mustCodec(t, binarycodec.Params{E: 5, P: 10, Implicit: true})

	posInf, err := value.NewInfinity(value.Positive)
	require.NoError(t, err)
	pattern, err := c.Encode(posInf)
	require.NoError(t, err)
	require.Equal(t, hex("7C00"), pattern)

	qnan, err := value.NewQuietNaN(value.Positive)
	require.NoError(t, err)
	pattern, err = c.Encode(qnan)
	require.NoError(t, err)
	require.Equal(t, hex("7E01"), pattern)

	negZero, err := value.NewFinite(value.Negative, zeroMag())
	require.NoError(t, err)
	pattern, err = c.Encode(negZero)
	require.NoError(t, err)
	require.Equal(t, hex("8000"), pattern)
}

func TestBinary16OverflowToInfinity(t *testing.T) {
	c := mustCodec(t, binarycodec.Params{E: 5, P: 10, Implicit: true})

	// 131072 = 2^17 is an exact integer, so it never enters the
	// fraction-rounding loop, and exceeds binary16's exponent range.
	v, err := value.NewFinite(value.Positive, decnum.FromInt64(131072))
	require.NoError(t, err)

	pattern, err := c.Encode(v)
	require.NoError(t, err)
	require.True(t, c.IsPositiveInfinity(pattern))
}

func TestBinary32SpecialPatterns(t *testing.T) {
	c := mustCodec(t, binarycodec.Params{E: 8, P: 23, Implicit: true})

	posInf, _ := value.NewInfinity(value.Positive)
	pattern, err := c.Encode(posInf)
	require.NoError(t, err)
	require.Equal(t, hex("7F800000"), pattern)

	qnan, _ := value.NewQuietNaN(value.Positive)
	pattern, err = c.Encode(qnan)
	require.NoError(t, err)
	require.Equal(t, hex("7FC00001"), pattern)

	negZero, _ := value.NewFinite(value.Negative, zeroMag())
	pattern, err = c.Encode(negZero)
	require.NoError(t, err)
	require.Equal(t, hex("80000000"), pattern)
}

func TestBinary64SpecialPatterns(t *testing.T) {
	c := mustCodec(t, binarycodec.Params{E: 11, P: 52, Implicit: true})

	posInf, _ := value.NewInfinity(value.Positive)
	pattern, err := c.Encode(posInf)
	require.NoError(t, err)
	require.Equal(t, hex("7FF0000000000000"), pattern)

	qnan, _ := value.NewQuietNaN(value.Positive)
	pattern, err = c.Encode(qnan)
	require.NoError(t, err)
	require.Equal(t, hex("7FF8000000000001"), pattern)

	negZero, _ := value.NewFinite(value.Negative, zeroMag())
	pattern, err = c.Encode(negZero)
	require.NoError(t, err)
	require.Equal(t, hex("8000000000000000"), pattern)
}

func TestBitPatternRoundTrip(t *testing.T) {
	c := mustCodec(t, binarycodec.Params{E: 8, P: 23, Implicit: true})

	patterns := []*big.Int{
		hex("7F800000"),
		hex("FF800000"),
		hex("7FC00001"),
		hex("FFC00001"),
		hex("7F800001"),
		big.NewInt(0),
		hex("80000000"),
		hex("3F800000"), // 1.0
		hex("C0000000"), // -2.0
		hex("00000001"), // min subnormal
	}

	for _, p := range patterns {
		v, err := c.Decode(p)
		require.NoError(t, err)
		got, err := c.Encode(v)
		require.NoError(t, err)
		require.Equal(t, p, got, "round trip of %x", p)
	}
}

func TestValueRoundTripOne(t *testing.T) {
	c := mustCodec(t, binarycodec.Params{E: 8, P: 23, Implicit: true})

	one, err := value.NewFinite(value.Positive, oneMag())
	require.NoError(t, err)

	pattern, err := c.Encode(one)
	require.NoError(t, err)
	require.Equal(t, hex("3F800000"), pattern)

	decoded, err := c.Decode(pattern)
	require.NoError(t, err)
	mag, err := decoded.Magnitude()
	require.NoError(t, err)
	require.Zero(t, mag.Cmp(oneMag()))
}

func TestExponentRangeAndBias(t *testing.T) {
	c := mustCodec(t, binarycodec.Params{E: 8, P: 23, Implicit: true})
	require.Equal(t, 127, c.Bias())

	eMin, eMax := c.ExponentRange()
	require.Equal(t, -125, eMin)
	require.Equal(t, 128, eMax)
}

func zeroMag() decnum.Decimal { return decnum.Zero() }

func oneMag() decnum.Decimal { return decnum.FromInt64(1) }
