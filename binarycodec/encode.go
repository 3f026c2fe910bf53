package binarycodec

import (
	"math/big"

	"github.com/Synt4xErr0r4/ieee754-go/decnum"
	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
	"github.com/Synt4xErr0r4/ieee754-go/rounding"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

var one = decnum.FromInt64(1)

// Encode converts a value.Value to its W-bit pattern for this format.
// Overflow produces signed infinity; underflow through the subnormal
// range produces signed zero. Neither is an error — encode never fails
// for a well-formed Value.
func (c *Codec) Encode(v value.Value) (*big.Int, error) {
	switch v.Category() {
	case value.Infinity:
		return c.signedInfinity(v.Sign()), nil
	case value.QuietNaN:
		return c.QuietNaN(v.Sign()), nil
	case value.SignalingNaN:
		return c.SignalingNaN(v.Sign()), nil
	}

	if v.IsZero() {
		return c.Zero(v.Sign()), nil
	}

	magnitude, err := v.Magnitude()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	significand := magnitude.IntegerPart()
	fraction, err := magnitude.FractionalPart()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	exp := significand.BitLen() - 1
	viaFraction := exp < 0
	zeros := 0

	// An integer magnitude alone can already exceed this format's
	// exponent range (e.g. an exact power of two with no fractional
	// part, so the rounding loop below never runs to catch it via its
	// own post-rounding overflow check).
	if exp >= c.eMax {
		return c.signedInfinity(v.Sign()), nil
	}

	var requireRounding, guard, round, sticky bool

	// An integer part wider than the P+1-bit significand is rounded here,
	// since the fraction loop below only ever appends bits.
	if extra := significand.BitLen() - (c.p + 1); extra > 0 {
		requireRounding = true
		guard = bigmath.Bit(significand, extra)
		round = bigmath.Bit(significand, extra-1)
		sticky = !fraction.IsZero() || bigmath.Extract(significand, 0, extra-1).Sign() != 0
		significand = bigmath.ShiftRight(significand, extra)
		fraction = decnum.Zero()
	}

	for !fraction.IsZero() {
		doubled, err := fraction.Double()
		if err != nil {
			return nil, Error.Wrap(err)
		}
		fraction = doubled

		integerPart := 0
		if fraction.Cmp(one) >= 0 {
			integerPart = 1
		}

		bitCount := significand.BitLen()
		significandLength := bitCount
		if zeros > -c.eMin {
			significandLength += zeros + c.eMin
		}

		if significandLength > c.p {
			requireRounding = true
			guard = bigmath.Bit(significand, 0)
			round = integerPart == 1
			sticky = fraction.Cmp(one) != 0
			break
		}

		significand = bigmath.ShiftLeft(significand, 1)

		if integerPart == 1 {
			significand = bigmath.SetBit(significand, 0, 1)
			fraction, err = fraction.Sub(one)
			if err != nil {
				return nil, Error.Wrap(err)
			}
		} else if bitCount == 0 {
			zeros++
		}
	}

	mode := rounding.Default()

	if requireRounding && mode.RoundBinary(v.Sign() == value.Negative, guard, round, sticky) {
		bits := significand.BitLen()
		significand = bigmath.Add(significand, bigmath.One)
		newBits := significand.BitLen()

		if bits < newBits {
			if newBits > c.p+1 {
				significand = bigmath.SetBit(significand, newBits-1, 0)
			}
			exp++

			if exp > c.eMax {
				return c.signedInfinity(v.Sign()), nil
			}
		}
	}

	length := significand.BitLen()

	if viaFraction {
		exp -= zeros
	}

	signBit := 0
	if v.Sign() == value.Negative {
		signBit = 1
	}

	if exp < c.eMin {
		if length == 0 {
			return c.Zero(v.Sign()), nil
		}
		pattern := bigmath.ShiftLeft(big.NewInt(int64(signBit)), c.e+c.p+c.offset)
		shift := c.p - c.eMin + exp - length + 2
		return bigmath.Or(pattern, bigmath.ShiftLeft(significand, shift)), nil
	}

	if c.implicit && length > 0 {
		significand = bigmath.SetBit(significand, length-1, 0)
	}

	result := bigmath.ShiftLeft(big.NewInt(int64(signBit)), c.e)
	result = bigmath.Or(result, big.NewInt(int64(exp+c.bias)))
	result = bigmath.ShiftLeft(result, c.p+c.offset)
	result = bigmath.Or(result, bigmath.ShiftLeft(significand, c.p-length+1))

	if !c.implicit {
		result = bigmath.SetBit(result, c.p, 1)
	}

	return result, nil
}
