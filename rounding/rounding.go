// Package rounding implements the IEEE 754 rounding modes used by the
// binary and decimal codecs when a conversion must discard precision.
package rounding

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/zeebo/errs"
)

// Error is the error class for the rounding package.
var Error = errs.Class("rounding")

// Mode identifies one of the five IEEE 754 rounding modes.
//
//	SGF   DISC
//	+---+ +-------+
//	... G R SSSS...
//
// G is the least significant retained bit (guard), R is the first
// discarded bit (round), and S is the OR of every bit below R (sticky).
type Mode uint8

const (
	// TiesToEven rounds to the nearest representable value; on an exact
	// tie, rounds to the value whose least significant bit is 0.
	TiesToEven Mode = iota
	// TiesAwayFromZero rounds to the nearest representable value; on an
	// exact tie, rounds away from zero.
	TiesAwayFromZero
	// TowardZero truncates any discarded bits (round toward zero).
	TowardZero
	// TowardPositive rounds toward positive infinity (ceiling).
	TowardPositive
	// TowardNegative rounds toward negative infinity (floor).
	TowardNegative
)

// String returns the canonical name of the rounding mode.
func (m Mode) String() string {
	switch m {
	case TiesToEven:
		return "ties-to-even"
	case TiesAwayFromZero:
		return "ties-away-from-zero"
	case TowardZero:
		return "toward-zero"
	case TowardPositive:
		return "toward-positive"
	case TowardNegative:
		return "toward-negative"
	default:
		return "unknown"
	}
}

// apdMode maps a Mode to the equivalent apd.Rounder, used by RoundDecimal.
func (m Mode) apdMode() apd.Rounder {
	switch m {
	case TiesToEven:
		return apd.RoundHalfEven
	case TiesAwayFromZero:
		return apd.RoundHalfUp
	case TowardZero:
		return apd.RoundDown
	case TowardPositive:
		return apd.RoundCeiling
	case TowardNegative:
		return apd.RoundFloor
	default:
		return apd.RoundHalfEven
	}
}

// RoundBinary reports whether the truncated significand should be
// incremented by one ulp, given the sign of the value and the guard,
// round and sticky bits produced by the significand-generation loop.
//
//	mode             formula
//	ties-to-even     (G && R) || (R && S)
//	ties-away-zero   R
//	toward-zero      false
//	toward-positive  !negative && (R || S)
//	toward-negative   negative && (R || S)
func (m Mode) RoundBinary(negative, guard, round, sticky bool) bool {
	switch m {
	case TiesToEven:
		return (guard && round) || (round && sticky)
	case TiesAwayFromZero:
		return round
	case TowardZero:
		return false
	case TowardPositive:
		return !negative && (round || sticky)
	case TowardNegative:
		return negative && (round || sticky)
	default:
		return (guard && round) || (round && sticky)
	}
}

// RoundDecimal rounds an arbitrary-precision decimal to an integer (scale
// zero) using this mode's decimal rounding rule: ties-to-even maps to
// half-even, ties-away to half-up, toward-zero to truncation,
// toward-positive to ceiling, toward-negative to floor.
func (m Mode) RoundDecimal(value *apd.Decimal) (*apd.Decimal, error) {
	return m.RoundDecimalToExponent(value, 0)
}

// RoundDecimalToExponent rounds value so its exponent becomes exponent
// (i.e. it drops every digit below that decimal place), applying this
// mode's rounding rule to the dropped digits. It generalizes RoundDecimal,
// which is the exponent == 0 case, and is what a decimal codec uses to
// truncate a significand down to a format's digit count.
func (m Mode) RoundDecimalToExponent(value *apd.Decimal, exponent int32) (*apd.Decimal, error) {
	ctx := &apd.Context{
		Precision:   uint32(value.NumDigits()) + 16,
		Rounding:    m.apdMode(),
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
	}

	result := new(apd.Decimal)
	_, err := ctx.Quantize(result, value, exponent)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return result, nil
}
