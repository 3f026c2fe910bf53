package decimalcodec

import (
	"math/big"

	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

// The combination field's top 5 bits (i.e. the 6-bit combination
// identifier combination.Classify consumes, minus its
// signaling-bit), and the position of the sign within a combination
// identifier shifted all the way out to the full field's width.
const (
	maskInfinity uint64 = 0b11110
	maskNaN      uint64 = 0b11111
	maskNegative uint64 = 0b100000
)

// Combination extracts the full combination field.
func (c *Codec) Combination(pattern *big.Int) *big.Int {
	return bigmath.Extract(pattern, c.significandBits, c.combinationBits)
}

// Significand extracts the trailing significand field.
func (c *Codec) Significand(pattern *big.Int) *big.Int {
	return bigmath.Extract(pattern, 0, c.significandBits)
}

// IsNegative reports whether the pattern's sign bit is set.
func (c *Codec) IsNegative(pattern *big.Int) bool {
	return bigmath.Bit(pattern, c.significandBits+c.combinationBits)
}

// IsPositive reports whether the pattern's sign bit is clear.
func (c *Codec) IsPositive(pattern *big.Int) bool {
	return !c.IsNegative(pattern)
}

// IsInfinity reports whether the pattern encodes +/-infinity.
func (c *Codec) IsInfinity(pattern *big.Int) bool {
	top5 := bigmath.ShiftRight(c.Combination(pattern), c.combinationBits-5)
	return top5.Cmp(big.NewInt(int64(maskInfinity))) == 0
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
	top5 := bigmath.ShiftRight(c.Combination(pattern), c.combinationBits-5)
	return top5.Cmp(big.NewInt(int64(maskNaN))) == 0
}

// IsQuietNaN reports whether the pattern encodes a quiet NaN.
func (c *Codec) IsQuietNaN(pattern *big.Int) bool {
	return c.IsNaN(pattern) && !bigmath.Bit(pattern, c.significandBits+c.combinationBits-6)
}

// IsSignalingNaN reports whether the pattern encodes a signaling NaN.
func (c *Codec) IsSignalingNaN(pattern *big.Int) bool {
	return c.IsNaN(pattern) && bigmath.Bit(pattern, c.significandBits+c.combinationBits-6)
}

// PositiveInfinity returns the +infinity bit pattern.
func (c *Codec) PositiveInfinity() *big.Int {
	return bigmath.ShiftLeft(big.NewInt(int64(maskInfinity)), c.combinationBits-5+c.significandBits)
}

// NegativeInfinity returns the -infinity bit pattern.
func (c *Codec) NegativeInfinity() *big.Int {
	return bigmath.ShiftLeft(big.NewInt(int64(maskInfinity|maskNegative)), c.combinationBits-5+c.significandBits)
}

func (c *Codec) signedInfinity(sign value.Sign) *big.Int {
	if sign == value.Negative {
		return c.NegativeInfinity()
	}
	return c.PositiveInfinity()
}

// QuietNaN returns a quiet NaN pattern with the given sign.
func (c *Codec) QuietNaN(sign value.Sign) *big.Int {
	m := maskNaN
	if sign == value.Negative {
		m |= maskNegative
	}
	return bigmath.ShiftLeft(big.NewInt(int64(m)), c.combinationBits-5+c.significandBits)
}

// SignalingNaN returns a signaling NaN pattern with the given sign.
func (c *Codec) SignalingNaN(sign value.Sign) *big.Int {
	m := maskNaN
	if sign == value.Negative {
		m |= maskNegative
	}
	m = m<<1 | 1
	return bigmath.ShiftLeft(big.NewInt(int64(m)), c.combinationBits-6+c.significandBits)
}

// NaN returns a NaN pattern with the given sign (quiet, by convention).
func (c *Codec) NaN(sign value.Sign) *big.Int {
	return c.QuietNaN(sign)
}

// Zero returns the signed zero pattern.
func (c *Codec) Zero(sign value.Sign) *big.Int {
	if sign == value.Negative {
		return bigmath.ShiftLeft(big.NewInt(int64(maskNegative)), c.combinationBits-5+c.significandBits)
	}
	return big.NewInt(0)
}
