package geom_test

import (
	"testing"

	"deedles.dev/gmath/geom"
	"github.com/stretchr/testify/require"
)

func TestVec2Arithmetic(t *testing.T) {
	require.Equal(t, geom.V2(4, 6), geom.V2(1, 2).Add(geom.V2(3, 4)))
	require.Equal(t, geom.V2(-2, -2), geom.V2(1, 2).Sub(geom.V2(3, 4)))
}

func TestVec2Projections(t *testing.T) {
	v := geom.V2(3, 7)
	require.Equal(t, geom.V2(3, 0), v.OfX())
	require.Equal(t, geom.V2(0, 7), v.OfY())
	require.Equal(t, geom.V2(5, 0), geom.OnX(5))
	require.Equal(t, geom.V2(0, 5), geom.OnY(5))
}

func TestVec2Cast(t *testing.T) {
	require.Equal(t, geom.V2(1, 2), geom.CastV2[int](geom.V2(1.9, 2.2)))
	require.Equal(t, geom.V2(1.0, 2.0), geom.CastV2[float64](geom.V2(1, 2)))
}

func TestVec2String(t *testing.T) {
	require.Equal(t, "(1, 2)", geom.V2(1, 2).String())
}
