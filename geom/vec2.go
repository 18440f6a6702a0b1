package geom

import (
	"fmt"

	"deedles.dev/gmath/scalar"
)

// Vec2 is a two dimensional vector with scalar components.
type Vec2[T scalar.Scalar] struct {
	X, Y T
}

// V2 is a shorthand for constructing a Vec2.
func V2[T scalar.Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// OnX returns a vector of length a along the X axis.
func OnX[T scalar.Scalar](a T) Vec2[T] {
	return Vec2[T]{X: a}
}

// OnY returns a vector of length a along the Y axis.
func OnY[T scalar.Scalar](a T) Vec2[T] {
	return Vec2[T]{Y: a}
}

// Add returns the vector v+o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the vector v-o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// OfX returns v's projection onto the X axis.
func (v Vec2[T]) OfX() Vec2[T] {
	return Vec2[T]{X: v.X}
}

// OfY returns v's projection onto the Y axis.
func (v Vec2[T]) OfY() Vec2[T] {
	return Vec2[T]{Y: v.Y}
}

// CastV2 converts a Vec2 to a Vec2 of a different scalar type.
func CastV2[U, T scalar.Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
