package decimalcodec

import (
	"math/big"

	"github.com/Synt4xErr0r4/ieee754-go/combination"
	"github.com/Synt4xErr0r4/ieee754-go/decnum"
	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

// Decode converts a bit pattern back to a value.Value using the
// process-wide default coding (see DefaultCoding/SetDefaultCoding).
// Decode never fails for a pattern of the correct width.
func (c *Codec) Decode(pattern *big.Int) (value.Value, error) {
	if DefaultCoding() == DenselyPackedDecimal {
		return c.DecodeDPD(pattern)
	}
	return c.DecodeBID(pattern)
}

// DecodeBID decodes a pattern whose significand was carried as a plain
// base-2 integer (binary integer decimal).
func (c *Codec) DecodeBID(pattern *big.Int) (value.Value, error) {
	sign := signOf(c.IsNegative(pattern))

	comb := c.Combination(pattern)
	combID := uint8(bigmath.ShiftRight(comb, c.combinationBits-6).Int64())
	significandField := c.Significand(pattern)

	cat := combination.Classify(combID)
	if cat.IsSpecial() {
		return specialValue(cat, sign)
	}

	var exponent, digit int
	expMask := bigmath.Mask(c.combinationBits - 3)

	if cat == combination.FiniteHigh {
		digit = 0b1000 | int(bigmath.And(comb, bigmath.One).Int64())
		exponent = int(bigmath.And(bigmath.ShiftRight(comb, 1), expMask).Int64())
	} else {
		digit = int(bigmath.And(comb, big.NewInt(0b111)).Int64())
		exponent = int(bigmath.And(bigmath.ShiftRight(comb, 3), expMask).Int64())
	}

	significand := bigmath.Or(bigmath.ShiftLeft(big.NewInt(int64(digit)), c.significandBits), significandField)

	if digitCount(significand) > c.significandDigits {
		significand = big.NewInt(0)
	}

	result := decnum.FromBigInt(significand)
	result, err := result.Mul(decnum.FromParts(big.NewInt(1), int32(exponent-c.bias)))
	if err != nil {
		return value.Value{}, Error.Wrap(err)
	}
	result = result.StripTrailingZeros()

	return value.UncheckedFinite(sign, result), nil
}

// DecodeDPD decodes a pattern whose significand was carried as densely
// packed decimal (three digits per 10-bit declet).
func (c *Codec) DecodeDPD(pattern *big.Int) (value.Value, error) {
	sign := signOf(c.IsNegative(pattern))

	comb := c.Combination(pattern)
	combID := uint8(bigmath.ShiftRight(comb, c.combinationBits-6).Int64())
	significandField := c.Significand(pattern)

	cat := combination.Classify(combID)
	if cat.IsSpecial() {
		return specialValue(cat, sign)
	}

	combIDBI := bigmath.ShiftRight(comb, c.combinationBits-6)
	expMask := bigmath.Mask(c.combinationBits - 5)

	var exponent, digit int

	if cat == combination.FiniteHigh {
		digit = 0b1000 | int(bigmath.And(bigmath.ShiftRight(combIDBI, 1), bigmath.One).Int64())
		hi := bigmath.ShiftLeft(bigmath.And(bigmath.ShiftRight(comb, c.combinationBits-4), big.NewInt(0b11)), c.combinationBits-5)
		exponent = int(bigmath.Or(bigmath.And(comb, expMask), hi).Int64())
	} else {
		digit = int(bigmath.And(bigmath.ShiftRight(combIDBI, 1), big.NewInt(0b111)).Int64())
		hi := bigmath.ShiftLeft(bigmath.ShiftRight(comb, c.combinationBits-2), c.combinationBits-5)
		exponent = int(bigmath.Or(bigmath.And(comb, expMask), hi).Int64())
	}

	trueSignificand := big.NewInt(int64(digit))

	for i := 0; i < c.significandBits; i += 10 {
		block := bigmath.And(bigmath.ShiftRight(significandField, c.significandBits-i-10), bigmath.Mask(10))
		digits := combination.DecodeBlock(uint16(block.Int64()))
		trueSignificand = new(big.Int).Add(new(big.Int).Mul(trueSignificand, big.NewInt(1000)), big.NewInt(int64(digits)))
	}

	result := decnum.FromBigInt(trueSignificand)
	result, err := result.Mul(decnum.FromParts(big.NewInt(1), int32(exponent-c.bias)))
	if err != nil {
		return value.Value{}, Error.Wrap(err)
	}
	result = result.StripTrailingZeros()

	return value.UncheckedFinite(sign, result), nil
}

func signOf(negative bool) value.Sign {
	if negative {
		return value.Negative
	}
	return value.Positive
}

// digitCount returns the number of base-10 digits of v (0 has 1 digit),
// used to detect an out-of-range BID significand, which this format
// treats as zero rather than rejecting.
func digitCount(v *big.Int) int {
	d := decnum.FromBigInt(v).StripTrailingZeros()
	return int(d.Precision()) - int(d.Scale())
}
