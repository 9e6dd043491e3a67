// Package leveldata parses TMX levels into collision data. It has no
// dependencies on ebitengine or donburi.
//
// Tiled maps are y-down. Everything returned here is already flipped to the
// y-up coordinates used by the collision package: row 0 is the bottom row of
// the tile layer and object positions are bottom-left corners.
package leveldata

import (
	"errors"

	"github.com/automoto/pete/shared/collision"
)

var (
	ErrNoTileLayer     = errors.New("leveldata: no tile layer")
	ErrNonSquareTiles  = errors.New("leveldata: tiles must be square")
	ErrUnknownLevel    = errors.New("leveldata: unknown level")
	ErrNoLevelsInDir   = errors.New("leveldata: no .tmx files")
	ErrInvalidTileSize = errors.New("leveldata: invalid tile size")
)

// Level holds everything the simulation needs from a TMX file.
type Level struct {
	Name string
	Path string

	Tiles *TileSpace

	// Acorns are the collectibles in the order they appear in the map.
	Acorns []collision.Collectible

	Spawn    SpawnPoint
	HasSpawn bool

	MapWidth  int // pixels
	MapHeight int // pixels
}

// SpawnPoint is the bottom-left corner Pete starts at.
type SpawnPoint struct {
	X, Y float64
}

// Options names the map layers to read.
type Options struct {
	// TileLayer is the collision layer. Empty selects the first tile layer.
	TileLayer string
	// CollectableLayer is the object group holding acorns.
	CollectableLayer string
	// SpawnLayer is an optional object group; its first object is the spawn.
	SpawnLayer string
	// AcornWidth and AcornHeight are used for objects without a size.
	AcornWidth  float64
	AcornHeight float64
}

func DefaultOptions() Options {
	return Options{
		CollectableLayer: "Collectables",
		SpawnLayer:       "PlayerSpawn",
		AcornWidth:       16,
		AcornHeight:      16,
	}
}

// Contains reports whether r lies inside the map.
func (l *Level) Contains(r collision.Rect) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.X+r.Width <= float64(l.MapWidth) &&
		r.Y+r.Height <= float64(l.MapHeight)
}
