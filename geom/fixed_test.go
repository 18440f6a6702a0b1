package geom_test

import (
	"image"
	"testing"

	"deedles.dev/gmath/geom"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestImageRect(t *testing.T) {
	r := geom.FromComponents(1, 2, 3, 4)
	require.Equal(t, image.Rect(1, 2, 4, 6), geom.ImageRect(r))
	require.Equal(t, r, geom.FromImageRect(geom.ImageRect(r)))
}

func TestFixedRect(t *testing.T) {
	require.Equal(t, fixed.P(1, 2), geom.FixedPoint(geom.V2(1.0, 2.0)))
	require.Equal(t, fixed.Point26_6{X: 32, Y: 96}, geom.FixedPoint(geom.V2(0.5, 1.5)))

	got := geom.FixedRect(geom.FromComponents(0.0, 0.0, 1.0, 0.5))
	require.Equal(t, fixed.Rectangle26_6{
		Min: fixed.Point26_6{},
		Max: fixed.Point26_6{X: 64, Y: 32},
	}, got)
}
