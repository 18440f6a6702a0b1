package geom

import (
	"fmt"
	"iter"

	"deedles.dev/gmath/scalar"
)

// Rect2 is a 2D rectangle with an origin corner and a size. The origin
// is conventionally the top-left corner in screen space. A negative
// size is representable; operations that need a normalized rectangle
// call [Rect2.Abs] first.
type Rect2[T scalar.Scalar] struct {
	Pos, Size Vec2[T]
}

// R2 is a shorthand for constructing a Rect2 from a position and size.
func R2[T scalar.Scalar](pos, size Vec2[T]) Rect2[T] {
	return Rect2[T]{Pos: pos, Size: size}
}

// FromOffsets returns the rectangle whose sides are offset from the
// origin by the given amounts.
func FromOffsets[T scalar.Scalar](left, top, right, bottom T) Rect2[T] {
	return Rect2[T]{Pos: V2(left, top), Size: V2(right-left, bottom-top)}
}

// FromComponents returns the rectangle with origin (x, y) and the
// given width and height.
func FromComponents[T scalar.Scalar](x, y, width, height T) Rect2[T] {
	return Rect2[T]{Pos: V2(x, y), Size: V2(width, height)}
}

// EncompassPoints returns the tightest rectangle containing every
// point in points. It panics if points is empty.
func EncompassPoints[T scalar.Scalar](points []Vec2[T]) Rect2[T] {
	if len(points) == 0 {
		panic("geom: encompass of empty point set")
	}

	left, top := points[0].X, points[0].Y
	right, bottom := left, top
	for _, p := range points[1:] {
		left = scalar.Min(left, p.X)
		top = scalar.Min(top, p.Y)
		right = scalar.Max(right, p.X)
		bottom = scalar.Max(bottom, p.Y)
	}
	return FromOffsets(left, top, right, bottom)
}

// EncompassSeq is like [EncompassPoints] but consumes points from an
// iterator. It panics if the sequence yields nothing.
func EncompassSeq[T scalar.Scalar](points iter.Seq[Vec2[T]]) Rect2[T] {
	var left, top, right, bottom T
	seen := false
	for p := range points {
		if !seen {
			left, top, right, bottom = p.X, p.Y, p.X, p.Y
			seen = true
			continue
		}
		left = scalar.Min(left, p.X)
		top = scalar.Min(top, p.Y)
		right = scalar.Max(right, p.X)
		bottom = scalar.Max(bottom, p.Y)
	}
	if !seen {
		panic("geom: encompass of empty point set")
	}
	return FromOffsets(left, top, right, bottom)
}

// X returns the x component of r's origin.
func (r Rect2[T]) X() T { return r.Pos.X }

// Y returns the y component of r's origin.
func (r Rect2[T]) Y() T { return r.Pos.Y }

// Width returns r's width.
func (r Rect2[T]) Width() T { return r.Size.X }

// Height returns r's height.
func (r Rect2[T]) Height() T { return r.Size.Y }

// End returns the corner of r opposite its origin, Pos+Size.
func (r Rect2[T]) End() Vec2[T] {
	return r.Pos.Add(r.Size)
}

// Vertex returns one of r's corners. Index 0 is the origin and the
// remaining corners follow in the order +width, +size, +height.
// Vertex panics for an index outside [0, 3].
func (r Rect2[T]) Vertex(idx int) Vec2[T] {
	switch idx {
	case 0:
		return r.Pos
	case 1:
		return r.Pos.Add(r.Size.OfX())
	case 2:
		return r.Pos.Add(r.Size)
	case 3:
		return r.Pos.Add(r.Size.OfY())
	}
	panic("geom: vertex index out of bounds")
}

// LongestAxis returns the axis along which r is longest. On a tie it
// returns AxisX.
func (r Rect2[T]) LongestAxis() Axis {
	if r.Size.Y > r.Size.X {
		return AxisY
	}
	return AxisX
}

// ShortestAxis returns the axis along which r is shortest. On a tie it
// returns AxisX.
func (r Rect2[T]) ShortestAxis() Axis {
	if r.Size.Y < r.Size.X {
		return AxisY
	}
	return AxisX
}

// AxisLength returns r's size along the given axis. It panics if axis
// is AxisNone.
func (r Rect2[T]) AxisLength(axis Axis) T {
	switch axis {
	case AxisX:
		return r.Size.X
	case AxisY:
		return r.Size.Y
	}
	panic("geom: axis cannot be None")
}

// ExpandToInclude returns a copy of r grown the minimal amount
// necessary to contain point. Neither the origin nor the end ever
// moves inward.
func (r Rect2[T]) ExpandToInclude(point Vec2[T]) Rect2[T] {
	origin := r.Pos
	end := r.End()

	if point.X < origin.X {
		origin.X = point.X
	}
	if point.Y < origin.Y {
		origin.Y = point.Y
	}
	if point.X > end.X {
		end.X = point.X
	}
	if point.Y > end.Y {
		end.Y = point.Y
	}

	return Rect2[T]{Pos: origin, Size: end.Sub(origin)}
}

// GrowSide returns a copy of r with one edge moved outward by amount,
// keeping the opposite edge fixed.
func (r Rect2[T]) GrowSide(side Side, amount T) Rect2[T] {
	switch side {
	case SideTop:
		return Rect2[T]{Pos: r.Pos.Sub(OnY(amount)), Size: r.Size.Add(OnY(amount))}
	case SideBottom:
		return Rect2[T]{Pos: r.Pos, Size: r.Size.Add(OnY(amount))}
	case SideLeft:
		return Rect2[T]{Pos: r.Pos.Sub(OnX(amount)), Size: r.Size.Add(OnX(amount))}
	case SideRight:
		return Rect2[T]{Pos: r.Pos, Size: r.Size.Add(OnX(amount))}
	}
	panic("geom: unknown side")
}

// Intersects reports whether r and other overlap. When
// includingBorders is true, rectangles that only touch at an edge
// count as intersecting.
func (r Rect2[T]) Intersects(other Rect2[T], includingBorders bool) bool {
	if includingBorders {
		if r.Pos.X > other.Pos.X+other.Size.X {
			return false
		}
		if r.Pos.X+r.Size.X < other.Pos.X {
			return false
		}
		if r.Pos.Y > other.Pos.Y+other.Size.Y {
			return false
		}
		if r.Pos.Y+r.Size.Y < other.Pos.Y {
			return false
		}
		return true
	}

	if r.Pos.X >= other.Pos.X+other.Size.X {
		return false
	}
	if r.Pos.X+r.Size.X <= other.Pos.X {
		return false
	}
	if r.Pos.Y >= other.Pos.Y+other.Size.Y {
		return false
	}
	if r.Pos.Y+r.Size.Y <= other.Pos.Y {
		return false
	}
	return true
}

// Abs returns a copy of r covering the same region but with a
// non-negative size.
func (r Rect2[T]) Abs() Rect2[T] {
	pos, size := r.Pos, r.Size
	if size.X < 0 {
		pos.X += size.X
		size.X = -size.X
	}
	if size.Y < 0 {
		pos.Y += size.Y
		size.Y = -size.Y
	}
	return Rect2[T]{Pos: pos, Size: size}
}

// CastR2 converts a Rect2 to a Rect2 of a different scalar type.
func CastR2[U, T scalar.Scalar](r Rect2[T]) Rect2[U] {
	return Rect2[U]{Pos: CastV2[U](r.Pos), Size: CastV2[U](r.Size)}
}

func (r Rect2[T]) String() string {
	return fmt.Sprintf("Rect2(%v, %v)", r.Pos, r.Size)
}
