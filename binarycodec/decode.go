package binarycodec

import (
	"math/big"

	"github.com/Synt4xErr0r4/ieee754-go/decnum"
	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

// Decode converts a W-bit pattern back to a value.Value. Decode never
// fails for a pattern of the correct width; it always produces one of:
// a finite value, signed infinity, or a quiet/signaling NaN.
func (c *Codec) Decode(pattern *big.Int) (value.Value, error) {
	negative := c.IsNegative(pattern)
	sign := value.Positive
	if negative {
		sign = value.Negative
	}

	significand := c.FullSignificand(pattern)
	exponent := c.Exponent(pattern)
	exp := int(exponent.Int64())

	subnormal := false

	if exp == 0 {
		if significand.Sign() == 0 {
			return value.UncheckedFinite(sign, decnum.Zero()), nil
		}
		exp = 1 - c.bias
		subnormal = true
	} else if c.expIsAllOnes(pattern) {
		if c.IsInfinity(pattern) {
			return value.NewInfinity(sign)
		}
		if c.IsQuietNaN(pattern) {
			return value.NewQuietNaN(sign)
		}
		return value.NewSignalingNaN(sign)
	} else {
		exp -= c.bias
	}

	result := decnum.Zero()
	var err error

	if c.implicit {
		if !subnormal {
			result = decnum.FromInt64(1)
		}
	} else if bigmath.Bit(significand, c.p) {
		result = decnum.FromInt64(1)
	}

	for i := 0; i < c.p; i++ {
		if bigmath.Bit(significand, c.p-i-1) {
			term, err2 := pow2(-i - 1)
			if err2 != nil {
				return value.Value{}, Error.Wrap(err2)
			}
			result, err = result.Add(term)
			if err != nil {
				return value.Value{}, Error.Wrap(err)
			}
		}
	}

	scale, err := pow2(exp)
	if err != nil {
		return value.Value{}, Error.Wrap(err)
	}
	result, err = result.Mul(scale)
	if err != nil {
		return value.Value{}, Error.Wrap(err)
	}
	result = result.StripTrailingZeros()

	return value.UncheckedFinite(sign, result), nil
}
