// Package decnum adapts github.com/cockroachdb/apd's arbitrary-precision
// decimal into the "Decimal number (primitive)" spec.md's data model
// describes: an unscaled integer plus a scale, with subtraction,
// multiplication, reciprocal, division, integer truncation and
// scale/precision introspection. Infinities and NaNs are never
// represented here; value.Value carries those as separate tag variants.
package decnum

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/zeebo/errs"
)

// Error is the error class for the decnum package.
var Error = errs.Class("decnum")

// Context is the arithmetic context used for every operation in this
// package: unlimited-for-practical-purposes precision, rounding ties to
// even. The binary and decimal codecs need exact fractional-bit doubling,
// not early rounding, so Precision is generous rather than fixed to any
// one interchange format's digit count.
var Context = &apd.Context{
	Precision:   1000,
	Rounding:    apd.RoundHalfEven,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
}

var (
	zero = apd.New(0, 0)
	one  = apd.New(1, 0)
	two  = apd.New(2, 0)
	ten  = apd.New(10, 0)
)

// Decimal wraps an *apd.Decimal in Finite form.
type Decimal struct {
	v *apd.Decimal
}

// New wraps an existing apd.Decimal. The caller must not mutate it
// afterwards; Decimal's operations always allocate a fresh result.
func New(v *apd.Decimal) Decimal {
	return Decimal{v: v}
}

// Zero is the additive identity.
func Zero() Decimal { return Decimal{v: apd.New(0, 0)} }

// FromInt64 constructs a Decimal from a plain integer.
func FromInt64(v int64) Decimal {
	return Decimal{v: apd.New(v, 0)}
}

// FromBigInt constructs a Decimal equal to v (scale 0).
func FromBigInt(v *big.Int) Decimal {
	return FromParts(v, 0)
}

// FromParts constructs a Decimal exactly equal to coeff * 10^exponent,
// with no rounding: unlike Reciprocal/Quo, this never goes through the
// arithmetic context, so it is the exact way to build a power of ten
// (positive or negative exponent) that a decimal codec's combination
// field implies.
func FromParts(coeff *big.Int, exponent int32) Decimal {
	d := new(apd.Decimal)
	d.Coeff.SetMathBigInt(new(big.Int).Abs(coeff))
	d.Negative = coeff.Sign() < 0
	d.Exponent = exponent
	return Decimal{v: d}
}

// Raw returns the underlying apd.Decimal. The returned value must be
// treated as read-only.
func (d Decimal) Raw() *apd.Decimal {
	if d.v == nil {
		return zero
	}
	return d.v
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	return d.Raw().Sign()
}

// IsZero reports whether the value is exactly zero.
func (d Decimal) IsZero() bool {
	return d.Raw().IsZero()
}

// Abs returns the absolute value.
func (d Decimal) Abs() Decimal {
	r := new(apd.Decimal)
	r.Abs(d.Raw())
	return Decimal{v: r}
}

// Neg returns the negation.
func (d Decimal) Neg() Decimal {
	r := new(apd.Decimal)
	r.Neg(d.Raw())
	return Decimal{v: r}
}

// Cmp compares two decimals numerically.
func (d Decimal) Cmp(o Decimal) int {
	return d.Raw().Cmp(o.Raw())
}

// Sub returns d - o, exactly (the context's precision is generous enough
// that subtraction of same-magnitude operands never truncates in
// practice for the values this library constructs).
func (d Decimal) Sub(o Decimal) (Decimal, error) {
	r := new(apd.Decimal)
	if _, err := Context.Sub(r, d.Raw(), o.Raw()); err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	return Decimal{v: r}, nil
}

// Add returns d + o.
func (d Decimal) Add(o Decimal) (Decimal, error) {
	r := new(apd.Decimal)
	if _, err := Context.Add(r, d.Raw(), o.Raw()); err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	return Decimal{v: r}, nil
}

// Mul returns d * o.
func (d Decimal) Mul(o Decimal) (Decimal, error) {
	r := new(apd.Decimal)
	if _, err := Context.Mul(r, d.Raw(), o.Raw()); err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	return Decimal{v: r}, nil
}

// Double returns d * 2, used by the binary codec's fraction-doubling loop.
func (d Decimal) Double() (Decimal, error) {
	return d.Mul(Decimal{v: two})
}

// Reciprocal returns 1 / d.
func (d Decimal) Reciprocal(precision uint32) (Decimal, error) {
	ctx := &apd.Context{Precision: precision, Rounding: apd.RoundHalfEven, MaxExponent: apd.MaxExponent, MinExponent: apd.MinExponent}
	r := new(apd.Decimal)
	if _, err := ctx.Quo(r, one, d.Raw()); err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	return Decimal{v: r}, nil
}

// Quo returns d / o at the given precision.
func (d Decimal) Quo(o Decimal, precision uint32) (Decimal, error) {
	ctx := &apd.Context{Precision: precision, Rounding: apd.RoundHalfEven, MaxExponent: apd.MaxExponent, MinExponent: apd.MinExponent}
	r := new(apd.Decimal)
	if _, err := ctx.Quo(r, d.Raw(), o.Raw()); err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	return Decimal{v: r}, nil
}

// StripTrailingZeros removes trailing zero digits from the coefficient,
// adjusting the exponent accordingly (apd's Reduce).
func (d Decimal) StripTrailingZeros() Decimal {
	r := new(apd.Decimal)
	r.Reduce(d.Raw())
	return Decimal{v: r}
}

// Scale returns the number of digits after the decimal point (negative
// exponent), matching java.math.BigDecimal.scale()'s convention.
func (d Decimal) Scale() int32 {
	return -d.Raw().Exponent
}

// Precision returns the number of significant decimal digits.
func (d Decimal) Precision() int64 {
	return d.Raw().NumDigits()
}

// UnscaledValue returns the decimal's coefficient (always non-negative):
// the integer c such that |d| == c * 10^RawExponent().
func (d Decimal) UnscaledValue() *big.Int {
	return new(big.Int).Set(coeffBigInt(d.Raw()))
}

// RawExponent returns the base-10 exponent e such that |d| ==
// UnscaledValue() * 10^e. It is the negation of Scale().
func (d Decimal) RawExponent() int32 {
	return d.Raw().Exponent
}

// coeffBigInt exposes the unscaled coefficient as a *big.Int.
func coeffBigInt(v *apd.Decimal) *big.Int {
	return v.Coeff.MathBigInt()
}

// IntegerPart returns floor(|d|) as a big.Int (truncation toward zero of
// the absolute value), used by the binary codec to seed its significand.
func (d Decimal) IntegerPart() *big.Int {
	v := d.Raw()
	coeff := new(big.Int).Set(coeffBigInt(v))

	switch {
	case v.Exponent == 0:
		return coeff
	case v.Exponent > 0:
		return coeff.Mul(coeff, pow10(int(v.Exponent)))
	default:
		return coeff.Quo(coeff, pow10(int(-v.Exponent)))
	}
}

// FractionalPart returns |d| - IntegerPart(d), a value in [0, 1), with
// trailing zeros stripped.
func (d Decimal) FractionalPart() (Decimal, error) {
	abs := d.Abs()
	whole := FromBigInt(abs.IntegerPart())
	frac, err := abs.Sub(whole)
	if err != nil {
		return Decimal{}, err
	}
	return frac.Abs().StripTrailingZeros(), nil
}

// BitLen returns the bit length of floor(|d|).
func (d Decimal) BitLen() int {
	return d.IntegerPart().BitLen()
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// String renders the value using apd's default decimal formatting.
func (d Decimal) String() string {
	return d.Raw().String()
}
