// Package decimalcodec implements the IEEE 754-2008 decimal interchange
// format codec, parameterized by combination-field width and trailing
// significand width. Unlike the binary family, a decimal interchange
// value can be carried on the wire in either of two codings for the
// significand (binary integer decimal, or densely packed decimal); a
// Codec can encode and decode in both, and SPEC_FULL.md's ambient
// default-coding selector picks which one Encode/Decode use when the
// caller doesn't say.
package decimalcodec

import (
	"fmt"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/Synt4xErr0r4/ieee754-go/combination"
	"github.com/Synt4xErr0r4/ieee754-go/decnum"
	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
	"github.com/Synt4xErr0r4/ieee754-go/rounding"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

// Error is the error class for the decimalcodec package.
var Error = errs.Class("decimalcodec")

// Params describes one decimal interchange format.
type Params struct {
	// C is the number of combination field bits (6 <= C <= 31).
	C int
	// T is the number of trailing significand bits (T >= 1, T % 10 == 0).
	T int
}

// Codec encodes and decodes values for one decimal interchange format.
type Codec struct {
	combinationBits int
	significandBits int

	significandDigits int
	exponentSpan      int
	bias              int
	eMin, eMax        int

	minSubnormal decnum.Decimal
	minNormal    decnum.Decimal
	maxValue     decnum.Decimal
	epsilon      decnum.Decimal
}

// New validates params and constructs a Codec, eagerly computing every
// memoized constant (min-subnormal, min-normal, max, epsilon) before
// returning, the same eager-construction discipline binarycodec.New
// uses, for the same reason: a *Codec is then safe to share across
// goroutines with no mutex in the hot path.
func New(p Params) (*Codec, error) {
	if p.C < 6 {
		return nil, Error.Wrap(fmt.Errorf("illegal combination size < 6: %w", value.ErrInvalidParameter))
	}
	if p.C > 31 {
		return nil, Error.Wrap(fmt.Errorf("combination size is too big: %w", value.ErrInvalidParameter))
	}
	if p.T < 1 {
		return nil, Error.Wrap(fmt.Errorf("illegal non-positive significand size: %w", value.ErrInvalidParameter))
	}
	if p.T%10 != 0 {
		return nil, Error.Wrap(fmt.Errorf("significand size must be a multiple of 10: %w", value.ErrInvalidParameter))
	}

	c := &Codec{combinationBits: p.C, significandBits: p.T}
	c.significandDigits = 1 + p.T/10*3
	c.exponentSpan = (1 << uint(p.C-5)) * 3
	c.bias = c.significandDigits - 2 + (c.exponentSpan >> 1)

	span := c.exponentSpan >> 1
	c.eMin = 2 - span
	c.eMax = 1 + span

	if err := c.initConstants(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Codec) initConstants() error {
	minSub, err := c.DecodeBID(big.NewInt(1))
	if err != nil {
		return err
	}
	c.minSubnormal, err = minSub.Magnitude()
	if err != nil {
		return err
	}

	minNormalPattern := bigmath.ShiftLeft(bigmath.One, c.significandBits+c.combinationBits-5)
	minNormal, err := c.DecodeDPD(minNormalPattern)
	if err != nil {
		return err
	}
	c.minNormal, err = minNormal.Magnitude()
	if err != nil {
		return err
	}

	maxValuePattern := bigmath.Or(
		bigmath.ShiftLeft(big.NewInt(0b111), c.significandBits+c.combinationBits-3),
		bigmath.Mask(c.significandBits+c.combinationBits-4),
	)
	maxValue, err := c.DecodeDPD(maxValuePattern)
	if err != nil {
		return err
	}
	c.maxValue, err = maxValue.Magnitude()
	if err != nil {
		return err
	}

	expBitWidth := c.combinationBits - 5
	epsBias := c.bias - c.significandDigits + 1
	lo := epsBias & int(bigmath.Mask(expBitWidth).Int64())
	hi := epsBias >> uint(expBitWidth)

	epsPattern := bigmath.ShiftLeft(big.NewInt(int64(hi)), 3)
	epsPattern = bigmath.Or(epsPattern, bigmath.One)
	epsPattern = bigmath.ShiftLeft(epsPattern, expBitWidth)
	epsPattern = bigmath.Or(epsPattern, big.NewInt(int64(lo)))
	epsPattern = bigmath.ShiftLeft(epsPattern, c.significandBits)
	epsPattern = bigmath.Or(epsPattern, bigmath.One)

	epsValue, err := c.DecodeDPD(epsPattern)
	if err != nil {
		return err
	}
	epsMag, err := epsValue.Magnitude()
	if err != nil {
		return err
	}
	c.epsilon, err = epsMag.Sub(decnum.FromInt64(1))
	if err != nil {
		return err
	}

	return nil
}

// CombinationBits returns C.
func (c *Codec) CombinationBits() int { return c.combinationBits }

// SignificandBits returns T.
func (c *Codec) SignificandBits() int { return c.significandBits }

// Bias returns the exponent bias.
func (c *Codec) Bias() int { return c.bias }

// SignificandDigits returns the maximum number of base-10 digits a
// significand may carry in this format.
func (c *Codec) SignificandDigits() int { return c.significandDigits }

// Width returns the total bit width of the encoded pattern (sign bit +
// combination field + trailing significand).
func (c *Codec) Width() int { return 1 + c.combinationBits + c.significandBits }

// ExponentRange returns (e_min, e_max) = (2 - span/2, 1 + span/2), with
// span = ExponentSpan(): the exponent range of normal values written as
// 0.d1d2... * 10^e with d1 != 0 (for decimal32, -94 and 97).
func (c *Codec) ExponentRange() (int, int) { return c.eMin, c.eMax }

// ExponentSpan returns 2^(C-5) * 3, the number of exponent values this
// format's combination field can encode.
func (c *Codec) ExponentSpan() int { return c.exponentSpan }

// MaxValue returns the largest finite magnitude representable.
func (c *Codec) MaxValue() decnum.Decimal { return c.maxValue }

// MinNormalValue returns the smallest positive normal magnitude.
func (c *Codec) MinNormalValue() decnum.Decimal { return c.minNormal }

// MinSubnormalValue returns the smallest positive subnormal magnitude.
func (c *Codec) MinSubnormalValue() decnum.Decimal { return c.minSubnormal }

// Epsilon returns the smallest epsilon > 0 such that 1 + epsilon > 1 in
// this format.
func (c *Codec) Epsilon() decnum.Decimal { return c.epsilon }

// truncate drops the n least significant digits of d's coefficient,
// rounding according to the process-wide default rounding mode (the
// same ambient default binarycodec.Encode consults), and strips any
// trailing zeros the rounding produced.
func truncate(d decnum.Decimal, n int) (decnum.Decimal, error) {
	raw := d.Raw()
	rounded, err := rounding.Default().RoundDecimalToExponent(raw, raw.Exponent+int32(n))
	if err != nil {
		return decnum.Decimal{}, Error.Wrap(err)
	}
	return decnum.New(rounded).StripTrailingZeros(), nil
}

func specialValue(cat combination.Category, sign value.Sign) (value.Value, error) {
	switch cat {
	case combination.Infinity:
		return value.NewInfinity(sign)
	case combination.QuietNaN:
		return value.NewQuietNaN(sign)
	case combination.SignalingNaN:
		return value.NewSignalingNaN(sign)
	default:
		return value.Value{}, Error.New("category %d is not special", cat)
	}
}
