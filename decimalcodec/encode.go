package decimalcodec

import (
	"math/big"

	"github.com/Synt4xErr0r4/ieee754-go/combination"
	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

// Encode converts v to its bit pattern using the process-wide default
// coding (see DefaultCoding/SetDefaultCoding). Overflow (significand
// scale exceeds this format's exponent span) produces signed infinity;
// neither overflow nor the significant-digit truncation it may require
// before that is an error.
func (c *Codec) Encode(v value.Value) (*big.Int, error) {
	if DefaultCoding() == DenselyPackedDecimal {
		return c.EncodeDPD(v)
	}
	return c.EncodeBID(v)
}

// EncodeBID encodes v using binary integer decimal: the significand is
// carried as a plain base-2 integer.
func (c *Codec) EncodeBID(v value.Value) (*big.Int, error) {
	special, pattern, unscaled, scale, err := c.encodeCommon(v)
	if err != nil {
		return nil, err
	}
	if special {
		return pattern, nil
	}

	encoded := bigmath.And(unscaled, bigmath.Mask(c.significandBits))
	mostSignificant := bigmath.ShiftRight(unscaled, c.significandBits).Int64()

	biasedScale := scale + c.bias

	var comb *big.Int
	var shift int
	if mostSignificant > 7 {
		comb = big.NewInt(0b11)
		shift = 1
	} else {
		comb = big.NewInt(0)
		shift = 3
	}

	comb = bigmath.ShiftLeft(comb, c.combinationBits-3)
	comb = bigmath.Or(comb, big.NewInt(int64(biasedScale)))
	comb = bigmath.ShiftLeft(comb, shift)
	comb = bigmath.Or(comb, big.NewInt(mostSignificant&7))

	encoded = bigmath.Or(encoded, bigmath.ShiftLeft(comb, c.significandBits))

	if v.Sign() == value.Negative {
		encoded = bigmath.Or(encoded, bigmath.ShiftLeft(bigmath.One, c.significandBits+c.combinationBits))
	}

	return encoded, nil
}

// EncodeDPD encodes v using densely packed decimal: the significand is
// packed three digits at a time into 10-bit declets via the combination
// package.
func (c *Codec) EncodeDPD(v value.Value) (*big.Int, error) {
	special, pattern, unscaled, scale, err := c.encodeCommon(v)
	if err != nil {
		return nil, err
	}
	if special {
		return pattern, nil
	}

	encoded := big.NewInt(0)
	rem := new(big.Int).Set(unscaled)

	for i := 0; i < c.significandBits; i += 10 {
		digs := leastSignificantDigits(rem)
		rem = new(big.Int).Quo(rem, big.NewInt(1000))

		block := combination.EncodeBlock(digs[2], digs[1], digs[0])
		encoded = bigmath.Or(encoded, bigmath.ShiftLeft(big.NewInt(int64(block)), i))
	}

	mostSignificant := leastSignificantDigits(rem)[0]

	biasedScale := scale + c.bias
	expBitWidth := c.combinationBits - 5
	expHigh := biasedScale >> uint(expBitWidth)
	expLow := biasedScale & int(bigmath.Mask(expBitWidth).Int64())

	var comb int
	if mostSignificant > 7 {
		comb = 0b11000 | expHigh<<1
	} else {
		comb = expHigh << 3
	}
	comb = (comb | mostSignificant&7) << expBitWidth
	comb |= expLow

	encoded = bigmath.Or(encoded, bigmath.ShiftLeft(big.NewInt(int64(comb)), c.significandBits))

	if v.Sign() == value.Negative {
		encoded = bigmath.Or(encoded, bigmath.ShiftLeft(bigmath.One, c.significandBits+c.combinationBits))
	}

	return encoded, nil
}

// encodeCommon handles every value that doesn't need the BID/DPD-specific
// significand packing: specials (infinity, NaN, zero) are fully encoded
// here; finite values are reduced to (unscaled coefficient, base-10
// scale) after rounding to this format's digit count and clamping the
// scale to its representable exponent span.
func (c *Codec) encodeCommon(v value.Value) (special bool, pattern *big.Int, unscaled *big.Int, scale int, err error) {
	switch v.Category() {
	case value.Infinity:
		return true, c.signedInfinity(v.Sign()), nil, 0, nil
	case value.QuietNaN:
		return true, c.QuietNaN(v.Sign()), nil, 0, nil
	case value.SignalingNaN:
		return true, c.SignalingNaN(v.Sign()), nil, 0, nil
	}

	if v.IsZero() {
		return true, c.Zero(v.Sign()), nil, 0, nil
	}

	magnitude, err := v.Magnitude()
	if err != nil {
		return false, nil, nil, 0, Error.Wrap(err)
	}
	mag := magnitude.StripTrailingZeros()

	maxDigits := c.significandDigits
	prec := int(mag.Precision())

	if prec > maxDigits {
		mag, err = truncate(mag, prec-maxDigits)
		if err != nil {
			return false, nil, nil, 0, err
		}
	}

	maxExp := c.exponentSpan >> 1
	minExp := 2 - maxExp - maxDigits
	exp := int(mag.RawExponent())

	if exp > maxExp {
		return true, c.signedInfinity(v.Sign()), nil, 0, nil
	}

	if exp < minExp {
		mag, err = truncate(mag, minExp-exp)
		if err != nil {
			return false, nil, nil, 0, err
		}
		exp = int(mag.RawExponent())
	}

	return false, nil, mag.UnscaledValue(), exp, nil
}

// leastSignificantDigits returns the 3 least significant base-10 digits
// of v, least significant first.
func leastSignificantDigits(v *big.Int) [3]int {
	var digs [3]int
	rem := new(big.Int).Set(v)
	ten := big.NewInt(10)

	for i := 0; i < 3; i++ {
		cleared := new(big.Int).Quo(rem, ten)
		digs[i] = int(new(big.Int).Sub(rem, new(big.Int).Mul(cleared, ten)).Int64())
		rem = cleared
	}

	return digs
}
