// Package collision resolves an axis-aligned body against a tile grid and a
// set of collectible rectangles. It has no dependencies on ebitengine,
// donburi, or the map format.
//
// All coordinates are y-up: a rectangle's (X, Y) is its bottom-left corner.
package collision

import "math"

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64 { return r.X + r.Width }
func (r Rect) Top() float64   { return r.Y + r.Height }

// Overlaps reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Intersect returns the overlap of a and b. The second result is false when
// the rectangles do not overlap, in which case the returned Rect is zero.
func Intersect(a, b Rect) (Rect, bool) {
	if !a.Overlaps(b) {
		return Rect{}, false
	}
	x := math.Max(a.X, b.X)
	y := math.Max(a.Y, b.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Min(a.Right(), b.Right()) - x,
		Height: math.Min(a.Top(), b.Top()) - y,
	}, true
}

// CellRect is the world rectangle covered by a grid cell.
func CellRect(cellX, cellY int, cellSize float64) Rect {
	return Rect{
		X:      float64(cellX) * cellSize,
		Y:      float64(cellY) * cellSize,
		Width:  cellSize,
		Height: cellSize,
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
