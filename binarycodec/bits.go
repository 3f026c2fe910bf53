package binarycodec

import (
	"math/big"

	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

// Exponent extracts the biased exponent field from an encoded pattern.
func (c *Codec) Exponent(pattern *big.Int) *big.Int {
	return bigmath.Extract(pattern, c.p+c.offset, c.e)
}

// UnbiasedExponent extracts the exponent field and removes the bias.
func (c *Codec) UnbiasedExponent(pattern *big.Int) *big.Int {
	return new(big.Int).Sub(c.Exponent(pattern), big.NewInt(int64(c.bias)))
}

// Significand extracts the stored significand bits, excluding any
// explicit leading bit.
func (c *Codec) Significand(pattern *big.Int) *big.Int {
	return bigmath.Extract(pattern, 0, c.p)
}

// FullSignificand extracts the significand bits including an explicit
// leading bit, if this format has one.
func (c *Codec) FullSignificand(pattern *big.Int) *big.Int {
	return bigmath.Extract(pattern, 0, c.p+c.offset)
}

// IsNegative reports whether the pattern's sign bit is set.
func (c *Codec) IsNegative(pattern *big.Int) bool {
	return bigmath.Bit(pattern, c.e+c.p+c.offset)
}

// IsPositive reports whether the pattern's sign bit is clear.
func (c *Codec) IsPositive(pattern *big.Int) bool {
	return !c.IsNegative(pattern)
}

func (c *Codec) expIsAllOnes(pattern *big.Int) bool {
	return c.Exponent(pattern).Cmp(bigmath.Mask(c.e)) == 0
}

// IsInfinity reports whether the pattern encodes +/-infinity.
func (c *Codec) IsInfinity(pattern *big.Int) bool {
	return c.expIsAllOnes(pattern) && c.Significand(pattern).Sign() == 0
}

// IsPositiveInfinity reports whether the pattern encodes +infinity.
func (c *Codec) IsPositiveInfinity(pattern *big.Int) bool {
	return c.IsPositive(pattern) && c.IsInfinity(pattern)
}

// IsNegativeInfinity reports whether the pattern encodes -infinity.
func (c *Codec) IsNegativeInfinity(pattern *big.Int) bool {
	return c.IsNegative(pattern) && c.IsInfinity(pattern)
}

// IsNaN reports whether the pattern encodes a NaN of either kind.
func (c *Codec) IsNaN(pattern *big.Int) bool {
	return c.expIsAllOnes(pattern) && c.Significand(pattern).Sign() != 0
}

// IsQuietNaN reports whether the pattern encodes a quiet NaN.
func (c *Codec) IsQuietNaN(pattern *big.Int) bool {
	return c.IsNaN(pattern) && bigmath.Bit(c.Significand(pattern), c.p-1)
}

// IsSignalingNaN reports whether the pattern encodes a signaling NaN.
func (c *Codec) IsSignalingNaN(pattern *big.Int) bool {
	return c.IsNaN(pattern) && !bigmath.Bit(c.Significand(pattern), c.p-1)
}

// PositiveInfinity returns the +infinity bit pattern.
func (c *Codec) PositiveInfinity() *big.Int {
	return new(big.Int).Set(c.posInf)
}

// NegativeInfinity returns the -infinity bit pattern.
func (c *Codec) NegativeInfinity() *big.Int {
	return new(big.Int).Set(c.negInf)
}

// signedInfinity returns the infinity pattern for the given sign.
func (c *Codec) signedInfinity(sign value.Sign) *big.Int {
	if sign == value.Negative {
		return c.NegativeInfinity()
	}
	return c.PositiveInfinity()
}

// QuietNaN returns a quiet NaN pattern with the given sign: the exponent
// field is all ones, the MSB of the significand is set (quiet), and the
// lowest bit is set (a nonzero payload, by this library's convention).
func (c *Codec) QuietNaN(sign value.Sign) *big.Int {
	pattern := bigmath.ShiftLeft(bigmath.Mask(c.e+c.offset), c.p)
	pattern = bigmath.SetBit(pattern, c.p-1, 1)
	pattern = bigmath.SetBit(pattern, 0, 1)
	if sign == value.Negative {
		pattern = bigmath.SetBit(pattern, c.e+c.p+c.offset, 1)
	}
	return pattern
}

// SignalingNaN returns a signaling NaN pattern with the given sign: the
// MSB of the significand is clear and the lowest bit is set.
func (c *Codec) SignalingNaN(sign value.Sign) *big.Int {
	pattern := bigmath.ShiftLeft(bigmath.Mask(c.e+c.offset), c.p)
	pattern = bigmath.SetBit(pattern, 0, 1)
	if sign == value.Negative {
		pattern = bigmath.SetBit(pattern, c.e+c.p+c.offset, 1)
	}
	return pattern
}

// Zero returns the signed zero pattern.
func (c *Codec) Zero(sign value.Sign) *big.Int {
	if sign == value.Negative {
		return bigmath.ShiftLeft(bigmath.One, c.e+c.p+c.offset)
	}
	return big.NewInt(0)
}
