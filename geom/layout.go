package geom

import (
	"iter"

	"deedles.dev/gmath/scalar"
	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally, the left one w wide.
func hsplit[T scalar.Scalar](r Rect2[T], w T) (left, right Rect2[T]) {
	left = R2(r.Pos, V2(w, r.Size.Y))
	right = R2(r.Pos.Add(OnX(w)), V2(r.Size.X-w, r.Size.Y))
	return left, right
}

func hsplitHalf[T scalar.Scalar](r Rect2[T]) (left, right Rect2[T]) {
	return hsplit(r, r.Size.X/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the top one h tall.
func vsplit[T scalar.Scalar](r Rect2[T], h T) (top, bottom Rect2[T]) {
	top = R2(r.Pos, V2(r.Size.X, h))
	bottom = R2(r.Pos.Add(OnY(h)), V2(r.Size.X, r.Size.Y-h))
	return top, bottom
}

func vsplitHalf[T scalar.Scalar](r Rect2[T]) (top, bottom Rect2[T]) {
	return vsplit(r, r.Size.Y/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rect2[float64], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T scalar.Scalar](tiles []Rect2[T], r Rect2[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T scalar.Scalar](numtiles int, r Rect2[T]) iter.Seq[Rect2[T]] {
	return func(yield func(Rect2[T]) bool) {
		split, next := hsplitHalf[T], vsplitHalf[T]

		for range numtiles - 1 {
			c, n := split(r)
			if !yield(c) {
				return
			}

			r = n
			split, next = next, split
		}

		yield(r)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[T scalar.Scalar](tiles []Rect2[T], r Rect2[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T scalar.Scalar](numtiles int, r Rect2[T]) iter.Seq[Rect2[T]] {
	return func(yield func(Rect2[T]) bool) {
		first, rem := hsplit(r, 2*r.Size.X/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rect2[float64], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T scalar.Scalar](tiles []Rect2[T], r Rect2[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T scalar.Scalar](numtiles int, r Rect2[T]) iter.Seq[Rect2[T]] {
	return func(yield func(Rect2[T]) bool) {
		shift := OnY(r.Size.Y / T(numtiles))
		c, _ := vsplit(r, shift.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = R2(c.Pos.Add(shift), c.Size)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect2[float64], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
// ----------
// |  |  |  |
// ----------
func TileEvenHorizontally[T scalar.Scalar](tiles []Rect2[T], r Rect2[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T scalar.Scalar](numtiles int, r Rect2[T]) iter.Seq[Rect2[T]] {
	return func(yield func(Rect2[T]) bool) {
		shift := OnX(r.Size.X / T(numtiles))
		c, _ := hsplit(r, shift.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = R2(c.Pos.Add(shift), c.Size)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T scalar.Scalar](tiles []Rect2[T], r Rect2[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T scalar.Scalar](numtiles int, r Rect2[T], cols int) iter.Seq[Rect2[T]] {
	return func(yield func(Rect2[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack[T scalar.Scalar](first Rect2[T]) iter.Seq[Rect2[T]] {
	return func(yield func(Rect2[T]) bool) {
		shift := OnY(first.Abs().Size.Y)
		for {
			if !yield(first) {
				return
			}
			first = R2(first.Pos.Add(shift), first.Size)
		}
	}
}

func insertTilesFromSeq[T scalar.Scalar](tiles []Rect2[T], s iter.Seq[Rect2[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
