// Package scalar provides generic arithmetic and interpolation over
// primitive numeric types.
//
// Operations are organized as a hierarchy of constraints: [Scalar] is
// satisfied by every primitive numeric type, [Integer] and [Signed]
// narrow it, and [Float] narrows [Signed] further. A type that
// satisfies a narrower constraint always satisfies the wider ones.
package scalar

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that every function in this
// package and in package geom can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer type, signed or unsigned.
type Integer interface {
	constraints.Integer
}

// Signed is a constraint for any type that can represent negative
// values. The curve interpolation functions require it.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Float is a constraint for any floating-point type.
type Float interface {
	constraints.Float
}

// Min returns the smaller of a and b. Unlike the builtin min, it is
// defined by a single comparison: when neither operand compares less,
// including when either is NaN, b is returned.
func Min[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b. When neither operand compares
// greater, including when either is NaN, b is returned.
func Max[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp bounds v above by hi and then below by lo, in that order. When
// lo > hi the result is lo.
func Clamp[T Scalar](v, lo, hi T) T {
	return Max(Min(v, hi), lo)
}

// Lerp linearly interpolates from a to b, sampling at t. t is not
// clamped, so values outside [0, 1] extrapolate.
func Lerp[T Scalar](a, b, t T) T {
	return a + (b-a)*t
}
