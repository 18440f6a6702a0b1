// Package geom provides generic 2D vector and rectangle types.
//
// It is patterned after image.Point and image.Rectangle, but it is
// generic over the scalar type of its components and extends their
// capabilities with interpolation-friendly constructors, directional
// growth, and tiling layout helpers. Integer rectangles stay integer:
// no operation implicitly converts to floating point.
package geom

// Axis identifies one of the orthogonal directions a 2D value can be
// decomposed along. AxisNone is an invalid sentinel that must never
// reach an operation requiring a concrete axis.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "None"
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	}
	return "Unknown"
}

// Side identifies one edge of a rectangle for directional growth.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return "Unknown"
}
