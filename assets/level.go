package assets

import (
	"fmt"
	"io/fs"

	"github.com/automoto/pete/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Level pairs the collision data of a map with its pre-rendered tiles.
type Level struct {
	*leveldata.Level
	// Background is the map as drawn by Tiled, y-down, MapWidth x MapHeight.
	Background *ebiten.Image
}

// LoadLevel parses tmxPath and renders its visible tile layers once.
func LoadLevel(fsys fs.FS, tmxPath string, opts leveldata.Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data, err := leveldata.FromMap(levelMap, tmxPath, opts)
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", tmxPath, err)
	}
	if err := renderer.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmxPath, err)
	}

	level := &Level{
		Level:      data,
		Background: ebiten.NewImageFromImage(renderer.Result),
	}
	renderer.Clear()
	return level, nil
}
