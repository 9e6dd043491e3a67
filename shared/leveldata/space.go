package leveldata

import (
	"fmt"

	"github.com/automoto/pete/shared/collision"
	"github.com/solarlune/resolv"
)

const tagSolid = "solid"

// TileSpace is a collision.TileGrid backed by a resolv.Space holding one
// object per solid tile. Cell coordinates of the space match the y-up grid.
type TileSpace struct {
	Space    *resolv.Space
	width    int
	height   int
	cellSize float64
}

var _ collision.TileGrid = (*TileSpace)(nil)

// NewTileSpace creates an empty space of width x height cells.
func NewTileSpace(width, height, cellSize int) (*TileSpace, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTileSize, cellSize)
	}
	return &TileSpace{
		Space:    resolv.NewSpace(width*cellSize, height*cellSize, cellSize, cellSize),
		width:    width,
		height:   height,
		cellSize: float64(cellSize),
	}, nil
}

// AddSolid places a solid tile at a y-up cell coordinate.
func (ts *TileSpace) AddSolid(cellX, cellY int) {
	if cellX < 0 || cellX >= ts.width || cellY < 0 || cellY >= ts.height {
		return
	}
	r := collision.CellRect(cellX, cellY, ts.cellSize)
	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, tagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
	ts.Space.Add(obj)
}

func (ts *TileSpace) CellSize() float64 { return ts.cellSize }
func (ts *TileSpace) Width() int        { return ts.width }
func (ts *TileSpace) Height() int       { return ts.height }

func (ts *TileSpace) Solid(cellX, cellY int) bool {
	cell := ts.Space.Cell(cellX, cellY)
	if cell == nil {
		return false
	}
	return cell.ContainsTags(tagSolid)
}

// SolidRects returns the world rectangles of every solid tile.
func (ts *TileSpace) SolidRects() []collision.Rect {
	objs := ts.Space.Objects()
	rects := make([]collision.Rect, 0, len(objs))
	for _, o := range objs {
		if !o.HasTags(tagSolid) {
			continue
		}
		rects = append(rects, collision.Rect{X: o.X, Y: o.Y, Width: o.W, Height: o.H})
	}
	return rects
}
