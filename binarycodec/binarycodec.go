// Package binarycodec implements the IEEE 754-2008 binary interchange
// format codec, parameterized by exponent width, significand width, and
// whether the leading significand bit is implicit. A Codec encodes a
// value.Value to its W-bit pattern and decodes a pattern back, and
// memoizes the format's derived constants (max/min/epsilon/exponent
// range) at construction time.
package binarycodec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/Synt4xErr0r4/ieee754-go/decnum"
	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

// Error is the error class for the binarycodec package.
var Error = errs.Class("binarycodec")

// precision is the decimal precision used for the reciprocal and
// power-of-two computations this codec performs internally. It is
// generous enough that stripping trailing zeros afterwards always
// yields an exact result for every format this library supports.
const precision = 1200

// Params describes one binary interchange format.
type Params struct {
	// E is the number of exponent bits (1 <= E <= 31).
	E int
	// P is the number of significand bits (P >= 1).
	P int
	// Implicit indicates the leading significand bit is implied rather
	// than stored (true for every IEEE binary format except x87 80-bit
	// extended precision).
	Implicit bool
}

// Codec encodes and decodes values for one binary interchange format.
type Codec struct {
	e, p     int
	implicit bool
	offset   int
	bias     int

	eMin, eMax     int
	e10Min, e10Max int
	decimalDigits  int

	posInf *big.Int
	negInf *big.Int

	minSubnormal decnum.Decimal
	minNormal    decnum.Decimal
	maxValue     decnum.Decimal
	epsilon      decnum.Decimal
}

// New validates params and constructs a Codec, eagerly computing every
// memoized constant (max, min-normal, min-subnormal, epsilon, exponent
// ranges) before returning. Eager computation, rather than lazy
// memoization behind a mutex, is what makes a *Codec safe to share
// across goroutines immediately after construction (see the ambient
// concurrency model).
func New(p Params) (*Codec, error) {
	if p.E < 1 {
		return nil, Error.Wrap(fmt.Errorf("illegal non-positive exponent size: %w", value.ErrInvalidParameter))
	}
	if p.E > 31 {
		return nil, Error.Wrap(fmt.Errorf("exponent size is too big: %w", value.ErrInvalidParameter))
	}
	if p.P < 1 {
		return nil, Error.Wrap(fmt.Errorf("illegal non-positive significand size: %w", value.ErrInvalidParameter))
	}

	c := &Codec{e: p.E, p: p.P, implicit: p.Implicit}
	if !p.Implicit {
		c.offset = 1
	}
	c.bias = (1 << uint(c.e-1)) - 1
	c.eMin = 2 - c.bias
	c.eMax = (1 << uint(c.e)) - 1 - c.bias

	c.posInf = bigmath.ShiftLeft(bigmath.Mask(c.e+c.offset), c.p)
	c.negInf = bigmath.Or(
		bigmath.ShiftLeft(bigmath.One, c.e+c.offset+c.p),
		c.posInf,
	)

	if err := c.initConstants(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Codec) initConstants() error {
	exp1, err := pow2(c.eMin - 1)
	if err != nil {
		return err
	}
	c.minNormal = exp1

	mant, err := pow2(-c.p)
	if err != nil {
		return err
	}
	c.minSubnormal, err = exp1.Mul(mant)
	if err != nil {
		return err
	}

	expMax, err := pow2(c.eMax - 1)
	if err != nil {
		return err
	}
	twoMinusMant, err := decnum.FromInt64(2).Sub(mant)
	if err != nil {
		return err
	}
	c.maxValue, err = twoMinusMant.Mul(expMax)
	if err != nil {
		return err
	}

	rawOne := bigmath.ShiftLeft(bigmath.Mask(c.e-1), c.p+c.offset)
	if !c.implicit {
		rawOne = bigmath.SetBit(rawOne, c.p-1+c.offset, 1)
	}
	rawOne = bigmath.SetBit(rawOne, 0, 1)

	oneEps, err := c.Decode(rawOne)
	if err != nil {
		return err
	}
	oneEpsMag, err := oneEps.Magnitude()
	if err != nil {
		return err
	}
	c.epsilon, err = oneEpsMag.Sub(decnum.FromInt64(1))
	if err != nil {
		return err
	}

	c.e10Min = digitExponent(c.minNormal)
	c.e10Max = digitExponent(c.maxValue)

	c.decimalDigits = int(math.Floor(float64(c.p-1+c.offset) * math.Log10(2)))

	return nil
}

// digitExponent returns floor(log10(|d|)) for a nonzero decimal d,
// computed as NumDigits() - 1 - scale (precision - scale - 1, matching
// java.math.BigDecimal's precision()/scale() identity).
func digitExponent(d decnum.Decimal) int {
	stripped := d.StripTrailingZeros()
	return int(stripped.Precision()) - int(stripped.Scale()) - 1
}

// pow2 computes 2^n as an exact decimal, n may be negative.
func pow2(n int) (decnum.Decimal, error) {
	if n == 0 {
		return decnum.FromInt64(1), nil
	}
	if n < 0 {
		p, err := pow2(-n)
		if err != nil {
			return decnum.Decimal{}, err
		}
		return p.Reciprocal(precision)
	}
	return decnum.FromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(n))), nil
}

// ExponentBits returns E.
func (c *Codec) ExponentBits() int { return c.e }

// SignificandBits returns P.
func (c *Codec) SignificandBits() int { return c.p }

// IsImplicit reports whether the leading significand bit is implicit.
func (c *Codec) IsImplicit() bool { return c.implicit }

// Bias returns the exponent bias, 2^(E-1) - 1.
func (c *Codec) Bias() int { return c.bias }

// Width returns the total bit width of the encoded pattern.
func (c *Codec) Width() int { return c.e + c.p + c.offset + 1 }

// ExponentRange returns (e_min, e_max) = (2 - bias, bias + 1): the
// exponent range of normal values written as 0.1xxx (base 2) * 2^e
// (for binary32, -125 and 128).
func (c *Codec) ExponentRange() (int, int) { return c.eMin, c.eMax }

// Decimal10ExponentRange returns floor(log10(MinNormalValue())) and
// floor(log10(MaxValue())), the base-10 exponents of the smallest normal
// and the largest finite magnitude in scientific notation (for binary32,
// -38 and 38).
func (c *Codec) Decimal10ExponentRange() (int, int) { return c.e10Min, c.e10Max }

// DecimalDigits returns floor((P - 1 + offset) * log10(2)), the number
// of decimal digits that round-trip through this format without loss.
func (c *Codec) DecimalDigits() int { return c.decimalDigits }

// MaxValue returns the largest finite magnitude representable.
func (c *Codec) MaxValue() decnum.Decimal { return c.maxValue }

// MinNormalValue returns the smallest positive normal magnitude.
func (c *Codec) MinNormalValue() decnum.Decimal { return c.minNormal }

// MinSubnormalValue returns the smallest positive subnormal magnitude.
func (c *Codec) MinSubnormalValue() decnum.Decimal { return c.minSubnormal }

// Epsilon returns the smallest epsilon > 0 such that 1 + epsilon > 1 in
// this format.
func (c *Codec) Epsilon() decnum.Decimal { return c.epsilon }
