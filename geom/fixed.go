package geom

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// ImageRect converts r to an image.Rectangle.
func ImageRect(r Rect2[int]) image.Rectangle {
	end := r.End()
	return image.Rect(r.Pos.X, r.Pos.Y, end.X, end.Y)
}

// FromImageRect converts an image.Rectangle to a Rect2.
func FromImageRect(r image.Rectangle) Rect2[int] {
	return FromOffsets(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// FixedPoint converts v to 26.6 fixed point, rounding each component
// to the nearest representable value.
func FixedPoint(v Vec2[float64]) fixed.Point26_6 {
	return fixed.Point26_6{X: fixedRound(v.X), Y: fixedRound(v.Y)}
}

// FixedRect converts r to a 26.6 fixed-point rectangle spanning from
// its origin to its end.
func FixedRect(r Rect2[float64]) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: FixedPoint(r.Pos), Max: FixedPoint(r.End())}
}

func fixedRound(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}
