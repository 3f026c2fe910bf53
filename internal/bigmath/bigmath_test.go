package bigmath_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Synt4xErr0r4/ieee754-go/internal/bigmath"
)

func TestMask(t *testing.T) {
	require.Equal(t, big.NewInt(0), bigmath.Mask(0))
	require.Equal(t, big.NewInt(1), bigmath.Mask(1))
	require.Equal(t, big.NewInt(0b1111), bigmath.Mask(4))
}

func TestExtractAndPlace(t *testing.T) {
	v := big.NewInt(0b1011_0110)
	require.Equal(t, big.NewInt(0b0110), bigmath.Extract(v, 0, 4))
	require.Equal(t, big.NewInt(0b1011), bigmath.Extract(v, 4, 4))

	acc := big.NewInt(0)
	acc = bigmath.Place(acc, big.NewInt(0b0110), 0)
	acc = bigmath.Place(acc, big.NewInt(0b1011), 4)
	require.Equal(t, v, acc)
}

func TestBitAndSetBit(t *testing.T) {
	v := big.NewInt(0b0101)
	require.True(t, bigmath.Bit(v, 0))
	require.False(t, bigmath.Bit(v, 1))

	v2 := bigmath.SetBit(v, 1, 1)
	require.Equal(t, big.NewInt(0b0111), v2)
	// original not mutated
	require.Equal(t, big.NewInt(0b0101), v)
}

func TestShifts(t *testing.T) {
	v := big.NewInt(1)
	require.Equal(t, big.NewInt(8), bigmath.ShiftLeft(v, 3))
	require.Zero(t, big.NewInt(0).Cmp(bigmath.ShiftRight(v, 1)))
}
