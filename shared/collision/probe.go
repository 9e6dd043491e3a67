package collision

import "math"

// Corner names the neighbourhood slot a probed cell was taken from.
type Corner int

const (
	BottomLeft Corner = iota
	TopRight
	BottomRight
	TopLeft
	// Spanned marks cells produced by ProbeAABB.
	Spanned
)

func (c Corner) String() string {
	switch c {
	case BottomLeft:
		return "bottom-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case TopLeft:
		return "top-left"
	case Spanned:
		return "spanned"
	}
	return "unknown"
}

// Candidate is a cell the body may overlap. Solid is only meaningful after
// FilterSolid.
type Candidate struct {
	CellX, CellY int
	Corner       Corner
	Solid        bool
}

// Probe returns the cells around the bottom-left corner (x, y) that a body
// one cell in size can overlap, in the order bottom-left, top-right,
// bottom-right, top-left. Neighbours are only included when the matching
// coordinate is not aligned to the grid, so an aligned body yields exactly
// one candidate and a fully unaligned one yields four.
//
// The 2x2 neighbourhood only covers bodies no larger than a cell; see Covers
// and ProbeAABB.
func Probe(x, y, cellSize float64) []Candidate {
	fx := x / cellSize
	fy := y / cellSize
	cx := int(math.Floor(fx))
	cy := int(math.Floor(fy))
	splitX := fx != math.Floor(fx)
	splitY := fy != math.Floor(fy)

	cands := make([]Candidate, 0, 4)
	cands = append(cands, Candidate{CellX: cx, CellY: cy, Corner: BottomLeft})
	if splitX && splitY {
		cands = append(cands, Candidate{CellX: cx + 1, CellY: cy + 1, Corner: TopRight})
	}
	if splitX {
		cands = append(cands, Candidate{CellX: cx + 1, CellY: cy, Corner: BottomRight})
	}
	if splitY {
		cands = append(cands, Candidate{CellX: cx, CellY: cy + 1, Corner: TopLeft})
	}
	return cands
}

// Covers reports whether Probe's 2x2 neighbourhood is guaranteed to contain
// every cell a body of the given size overlaps.
func Covers(width, height, cellSize float64) bool {
	return width <= cellSize && height <= cellSize
}

// ProbeAABB enumerates every cell r overlaps, bottom row first, left to
// right. Use it for bodies larger than a cell.
func ProbeAABB(r Rect, cellSize float64) []Candidate {
	x0 := int(math.Floor(r.X / cellSize))
	y0 := int(math.Floor(r.Y / cellSize))
	x1 := int(math.Ceil(r.Right()/cellSize)) - 1
	y1 := int(math.Ceil(r.Top()/cellSize)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	cands := make([]Candidate, 0, (x1-x0+1)*(y1-y0+1))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			cands = append(cands, Candidate{CellX: cx, CellY: cy, Corner: Spanned})
		}
	}
	return cands
}

// FilterSolid keeps the solid candidates, preserving order. The input slice
// is reused.
func FilterSolid(grid TileGrid, cands []Candidate) []Candidate {
	out := cands[:0]
	for _, c := range cands {
		if !grid.Solid(c.CellX, c.CellY) {
			continue
		}
		c.Solid = true
		out = append(out, c)
	}
	return out
}
