package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Synt4xErr0r4/ieee754-go/decnum"
	"github.com/Synt4xErr0r4/ieee754-go/value"
)

func TestNewFiniteSignAgreement(t *testing.T) {
	_, err := value.NewFinite(value.Positive, decnum.FromInt64(-5))
	require.Error(t, err)

	v, err := value.NewFinite(value.Negative, decnum.FromInt64(-5))
	require.NoError(t, err)
	require.True(t, v.IsFinite())
	require.Equal(t, value.Negative, v.Sign())
}

func TestSignedZeroDistinct(t *testing.T) {
	pos, err := value.NewFinite(value.Positive, decnum.Zero())
	require.NoError(t, err)
	neg, err := value.NewFinite(value.Negative, decnum.Zero())
	require.NoError(t, err)

	require.True(t, pos.IsPositiveZero())
	require.False(t, pos.IsNegativeZero())
	require.True(t, neg.IsNegativeZero())
	require.False(t, neg.IsPositiveZero())
	require.True(t, pos.IsZero())
	require.True(t, neg.IsZero())
}

func TestInvalidSignRejected(t *testing.T) {
	_, err := value.NewInfinity(value.Sign(0))
	require.Error(t, err)
}

func TestCategoryPredicates(t *testing.T) {
	inf, err := value.NewInfinity(value.Positive)
	require.NoError(t, err)
	require.True(t, inf.IsInfinity())
	require.True(t, inf.IsPositiveInfinity())
	require.False(t, inf.IsNegativeInfinity())
	require.False(t, inf.IsFinite())

	qnan, err := value.NewQuietNaN(value.Negative)
	require.NoError(t, err)
	require.True(t, qnan.IsNaN())
	require.True(t, qnan.IsQuietNaN())
	require.False(t, qnan.IsSignalingNaN())

	snan, err := value.NewSignalingNaN(value.Positive)
	require.NoError(t, err)
	require.True(t, snan.IsNaN())
	require.True(t, snan.IsSignalingNaN())
	require.False(t, snan.IsQuietNaN())
}

func TestMagnitudeNotFiniteError(t *testing.T) {
	inf, err := value.NewInfinity(value.Positive)
	require.NoError(t, err)

	_, err = inf.Magnitude()
	require.Error(t, err)
}

func TestUncheckedFiniteBypassesSignCheck(t *testing.T) {
	// UncheckedFinite takes the absolute value and the supplied sign
	// unconditionally; it is how codec-internal bootstrap constants are
	// derived before the codec's own overflow check can run.
	v := value.UncheckedFinite(value.Negative, decnum.FromInt64(5))
	require.True(t, v.IsFinite())
	require.Equal(t, value.Negative, v.Sign())
}
