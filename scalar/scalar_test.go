package scalar_test

import (
	"math"
	"testing"

	"deedles.dev/gmath/scalar"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, scalar.Min(1, 2))
	require.Equal(t, 1, scalar.Min(2, 1))
	require.Equal(t, 2, scalar.Max(1, 2))
	require.Equal(t, 2, scalar.Max(2, 1))
	require.Equal(t, -3.5, scalar.Min(-3.5, 0.0))
	require.Equal(t, 0.0, scalar.Max(-3.5, 0.0))
}

func TestMinMaxSecondOperandWins(t *testing.T) {
	// On a tie neither comparison holds, so the second operand is
	// returned for both queries. NaN behaves the same way.
	a, b := 5.0, 5.0
	require.Equal(t, b, scalar.Min(a, b))
	require.Equal(t, b, scalar.Max(a, b))

	nan := math.NaN()
	require.Equal(t, 1.0, scalar.Min(nan, 1.0))
	require.Equal(t, 1.0, scalar.Max(nan, 1.0))
	require.True(t, math.IsNaN(scalar.Min(1.0, nan)))
	require.True(t, math.IsNaN(scalar.Max(1.0, nan)))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 5, scalar.Clamp(5, 0, 10))
	require.Equal(t, 0, scalar.Clamp(-5, 0, 10))
	require.Equal(t, 10, scalar.Clamp(15, 0, 10))
	require.Equal(t, 0.25, scalar.Clamp(0.25, 0.0, 1.0))
}

func TestClampInvertedBounds(t *testing.T) {
	// The value is bounded above by hi first and below by lo second,
	// so inverted bounds resolve to lo.
	require.Equal(t, 10, scalar.Clamp(5, 10, 0))
	require.Equal(t, 10, scalar.Clamp(-100, 10, 0))
}

func TestLerp(t *testing.T) {
	require.Equal(t, 2.0, scalar.Lerp(2.0, 6.0, 0.0))
	require.Equal(t, 6.0, scalar.Lerp(2.0, 6.0, 1.0))
	require.Equal(t, 4.0, scalar.Lerp(2.0, 6.0, 0.5))
	require.Equal(t, 10.0, scalar.Lerp(2.0, 6.0, 2.0))
	require.Equal(t, -2.0, scalar.Lerp(2.0, 6.0, -1.0))
}

func TestIlog(t *testing.T) {
	require.Equal(t, int32(3), scalar.Ilog(int32(8), 2))
	require.Equal(t, int32(0), scalar.Ilog(int32(1), 2))
	require.Equal(t, 2, scalar.Ilog(9, 3))
	require.Equal(t, 2, scalar.Ilog(999, 10))
	require.Equal(t, 3, scalar.Ilog(1000, 10))
	require.Equal(t, uint8(7), scalar.Ilog(uint8(255), 2))
}

func TestIlogPanics(t *testing.T) {
	require.Panics(t, func() { scalar.Ilog(0, 2) })
	require.Panics(t, func() { scalar.Ilog(-8, 2) })
	require.Panics(t, func() { scalar.Ilog(8, 1) })
	require.Panics(t, func() { scalar.Ilog(8, 0) })
}

func TestAbsEqual(t *testing.T) {
	require.True(t, scalar.AbsEqual(1.0, 1.0, 0.0))
	require.True(t, scalar.AbsEqual(1.0, 1.0+1e-9, 1e-6))
	require.False(t, scalar.AbsEqual(1.0, 1.001, 1e-6))
	require.False(t, scalar.AbsEqual(math.NaN(), math.NaN(), 1e-6))
}

func TestRelativeEqual(t *testing.T) {
	require.True(t, scalar.RelativeEqual(1e9, 1e9+1, 1e-6, 1e-6))
	require.False(t, scalar.RelativeEqual(1.0, 2.0, 1e-6, 1e-6))
	require.True(t, scalar.RelativeEqual(0.0, 1e-9, 1e-6, 1e-12))
	require.True(t, scalar.RelativeEqual(-4.0, -4.0, 0.0, 0.0))
}
