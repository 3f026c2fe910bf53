// Package value implements the abstract floating-point value model: a
// tagged sum of a finite (signed, arbitrary-precision) magnitude,
// signed infinity, and quiet/signaling NaN. Values are immutable after
// construction; codecs consult the category and magnitude, never mutate
// them.
package value

import (
	"fmt"

	"github.com/zeebo/errs"

	"github.com/Synt4xErr0r4/ieee754-go/decnum"
)

// Error is the error class for the value package.
var Error = errs.Class("value")

// Sentinel errors for the taxonomy spec.md §7 names.
var (
	// ErrInvalidSign is returned when a sign other than +1/-1 is supplied,
	// or when the supplied sign disagrees with a nonzero magnitude's sign.
	ErrInvalidSign = Error.New("invalid sign")

	// ErrCategoryMismatch is returned when a finite-only operation is
	// invoked on a non-finite value, or vice versa.
	ErrCategoryMismatch = Error.New("category mismatch")

	// ErrNotFinite is returned when the magnitude of a non-finite value
	// is requested.
	ErrNotFinite = Error.New("value is not finite")

	// ErrInvalidParameter is returned by a codec constructor when a
	// format parameter (exponent/combination/significand width) is out
	// of the range that format family supports.
	ErrInvalidParameter = Error.New("invalid format parameter")
)

// Category tags the four kinds of value this model can hold.
type Category uint8

const (
	Finite Category = iota
	Infinity
	QuietNaN
	SignalingNaN
)

// String names the category.
func (c Category) String() string {
	switch c {
	case Finite:
		return "finite"
	case Infinity:
		return "infinity"
	case QuietNaN:
		return "quiet-nan"
	case SignalingNaN:
		return "signaling-nan"
	default:
		return "unknown"
	}
}

// Sign is either Positive or Negative; there is no "unsigned" value.
type Sign int8

const (
	Positive Sign = 1
	Negative Sign = -1
)

// String renders the sign as "+" or "-".
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Value is the abstract floating-point value: sign, category, and (for
// the finite category only) an arbitrary-precision magnitude.
//
// Invariants (spec.md §3):
//   - category == Finite ⇒ magnitude is present; if magnitude != 0,
//     sign(magnitude) == value's sign.
//   - category != Finite ⇒ magnitude is absent (zero Decimal, ignored).
//   - signed zero is meaningful only for category == Finite: Positive
//     magnitude-0 and Negative magnitude-0 are distinct values.
type Value struct {
	sign      Sign
	category  Category
	magnitude decnum.Decimal
}

func validateSign(s Sign) error {
	if s != Positive && s != Negative {
		return fmt.Errorf("sign must be +1 or -1, got %d: %w", s, ErrInvalidSign)
	}
	return nil
}

// NewFinite constructs a finite value with the given sign and magnitude.
// It returns ErrInvalidSign if sign is neither Positive nor Negative, or
// if the magnitude is nonzero and its sign disagrees with sign.
//
// NewFinite does not apply any format's overflow-to-infinity convention;
// a magnitude above a format's maximum becomes infinity only when a codec
// (binarycodec/decimalcodec) encodes the value.
func NewFinite(sign Sign, magnitude decnum.Decimal) (Value, error) {
	if err := validateSign(sign); err != nil {
		return Value{}, err
	}
	if !magnitude.IsZero() {
		wantNeg := sign == Negative
		if magnitude.Sign() < 0 != wantNeg {
			return Value{}, fmt.Errorf(
				"sign %v disagrees with nonzero magnitude %s: %w", sign, magnitude, ErrInvalidSign)
		}
	}
	return UncheckedFinite(sign, magnitude), nil
}

// UncheckedFinite constructs a finite value without validating that sign
// agrees with magnitude's sign. It is reserved for codec-internal use:
// deriving max/min/min-subnormal constants before the codec's overflow
// check (which depends on those constants) can be exercised, and for
// constructing values whose magnitude is already known non-negative
// (e.g. |m|, for which sign is supplied separately). It must not be
// exposed outside this module's codec packages.
func UncheckedFinite(sign Sign, magnitude decnum.Decimal) Value {
	return Value{sign: sign, category: Finite, magnitude: magnitude.Abs()}
}

func special(sign Sign, category Category) (Value, error) {
	if err := validateSign(sign); err != nil {
		return Value{}, err
	}
	return Value{sign: sign, category: category}, nil
}

// NewInfinity constructs signed infinity.
func NewInfinity(sign Sign) (Value, error) {
	return special(sign, Infinity)
}

// NewQuietNaN constructs a quiet NaN carrying the given sign. The sign
// of a NaN has no numerical meaning but is preserved through encode and
// decode, matching IEEE 754's bit-exact round-trip requirement.
func NewQuietNaN(sign Sign) (Value, error) {
	return special(sign, QuietNaN)
}

// NewSignalingNaN constructs a signaling NaN carrying the given sign.
func NewSignalingNaN(sign Sign) (Value, error) {
	return special(sign, SignalingNaN)
}

// Sign returns the value's sign bit. This is always well-defined, even
// for NaNs and infinities.
func (v Value) Sign() Sign { return v.sign }

// Category returns the value's tag.
func (v Value) Category() Category { return v.category }

// Magnitude returns the finite value's absolute value. It returns
// ErrNotFinite if the value is not finite.
func (v Value) Magnitude() (decnum.Decimal, error) {
	if v.category != Finite {
		return decnum.Decimal{}, fmt.Errorf("category is %s: %w", v.category, ErrNotFinite)
	}
	return v.magnitude, nil
}

// IsFinite reports whether the value is neither infinite nor NaN.
func (v Value) IsFinite() bool { return v.category == Finite }

// IsZero reports whether the value is finite with zero magnitude
// (either signed zero).
func (v Value) IsZero() bool {
	return v.category == Finite && v.magnitude.IsZero()
}

// IsPositiveZero reports whether the value is +0.
func (v Value) IsPositiveZero() bool {
	return v.IsZero() && v.sign == Positive
}

// IsNegativeZero reports whether the value is -0.
func (v Value) IsNegativeZero() bool {
	return v.IsZero() && v.sign == Negative
}

// IsNaN reports whether the value is quiet or signaling NaN.
func (v Value) IsNaN() bool {
	return v.category == QuietNaN || v.category == SignalingNaN
}

// IsQuietNaN reports whether the value is a quiet NaN.
func (v Value) IsQuietNaN() bool { return v.category == QuietNaN }

// IsSignalingNaN reports whether the value is a signaling NaN.
func (v Value) IsSignalingNaN() bool { return v.category == SignalingNaN }

// IsInfinity reports whether the value is signed infinity.
func (v Value) IsInfinity() bool { return v.category == Infinity }

// IsPositiveInfinity reports whether the value is +∞.
func (v Value) IsPositiveInfinity() bool {
	return v.category == Infinity && v.sign == Positive
}

// IsNegativeInfinity reports whether the value is -∞.
func (v Value) IsNegativeInfinity() bool {
	return v.category == Infinity && v.sign == Negative
}

// String renders the value for diagnostics; it is not a wire format.
func (v Value) String() string {
	switch v.category {
	case Infinity:
		return v.sign.String() + "Inf"
	case QuietNaN:
		return v.sign.String() + "qNaN"
	case SignalingNaN:
		return v.sign.String() + "sNaN"
	default:
		if v.sign == Negative {
			return "-" + v.magnitude.String()
		}
		return v.magnitude.String()
	}
}
