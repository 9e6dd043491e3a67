package collision

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidGrid = errors.New("collision: invalid grid")

// TileGrid is a read-only view of a tile layer. Solid must report false for
// coordinates outside [0, Width()) x [0, Height()).
type TileGrid interface {
	CellSize() float64
	Width() int
	Height() int
	Solid(cellX, cellY int) bool
}

// LevelWidth is the layer width in pixels.
func LevelWidth(g TileGrid) float64 {
	return float64(g.Width()) * g.CellSize()
}

// ValidateCellSize rejects cell sizes the probe cannot divide by.
func ValidateCellSize(cellSize float64) error {
	if math.IsNaN(cellSize) || math.IsInf(cellSize, 0) || cellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive and finite, got %v", ErrInvalidGrid, cellSize)
	}
	return nil
}

// Grid is a dense in-memory TileGrid, row 0 at the bottom.
type Grid struct {
	width, height int
	cellSize      float64
	solid         []bool
}

func NewGrid(width, height int, cellSize float64) (*Grid, error) {
	if err := ValidateCellSize(cellSize); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidGrid, width, height)
	}
	return &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		solid:    make([]bool, width*height),
	}, nil
}

func (g *Grid) CellSize() float64 { return g.cellSize }
func (g *Grid) Width() int        { return g.width }
func (g *Grid) Height() int       { return g.height }

func (g *Grid) inside(cellX, cellY int) bool {
	return cellX >= 0 && cellX < g.width && cellY >= 0 && cellY < g.height
}

func (g *Grid) Solid(cellX, cellY int) bool {
	if !g.inside(cellX, cellY) {
		return false
	}
	return g.solid[cellY*g.width+cellX]
}

// SetSolid marks a cell. Out-of-range coordinates are ignored.
func (g *Grid) SetSolid(cellX, cellY int, solid bool) {
	if !g.inside(cellX, cellY) {
		return
	}
	g.solid[cellY*g.width+cellX] = solid
}
