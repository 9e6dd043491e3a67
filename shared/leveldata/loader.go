package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/pete/shared/collision"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file from fsys. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(levelMap, tmxPath, opts)
}

// FromMap converts an already parsed map.
func FromMap(levelMap *tiled.Map, tmxPath string, opts Options) (*Level, error) {
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%w: %dx%d in %s", ErrNonSquareTiles, levelMap.TileWidth, levelMap.TileHeight, tmxPath)
	}

	layer := findTileLayer(levelMap, opts.TileLayer)
	if layer == nil {
		return nil, fmt.Errorf("%w %q in %s", ErrNoTileLayer, opts.TileLayer, tmxPath)
	}

	tiles, err := NewTileSpace(levelMap.Width, levelMap.Height, levelMap.TileWidth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	// Tiled stores rows top to bottom.
	for row := 0; row < levelMap.Height; row++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[row*levelMap.Width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			tiles.AddSolid(x, levelMap.Height-1-row)
		}
	}

	level := &Level{
		Name:      LevelName(tmxPath),
		Path:      tmxPath,
		Tiles:     tiles,
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	mapH := float64(level.MapHeight)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case opts.CollectableLayer:
			for _, o := range og.Objects {
				w, h := o.Width, o.Height
				if w <= 0 {
					w = opts.AcornWidth
				}
				if h <= 0 {
					h = opts.AcornHeight
				}
				level.Acorns = append(level.Acorns, collision.Collectible{
					ID:     int(o.ID),
					X:      o.X,
					Y:      objectBottom(o, h, mapH),
					Width:  w,
					Height: h,
				})
			}
		case opts.SpawnLayer:
			if len(og.Objects) == 0 || level.HasSpawn {
				continue
			}
			o := og.Objects[0]
			level.Spawn = SpawnPoint{X: o.X, Y: objectBottom(o, o.Height, mapH)}
			level.HasSpawn = true
		}
	}

	return level, nil
}

// objectBottom flips a Tiled object's y to the y-up bottom edge. Tile objects
// (with a gid) are anchored at their bottom-left corner in Tiled, everything
// else at the top-left.
func objectBottom(o *tiled.Object, height, mapHeight float64) float64 {
	if o.GID != 0 {
		return mapHeight - o.Y
	}
	return mapHeight - o.Y - height
}

func findTileLayer(levelMap *tiled.Map, name string) *tiled.Layer {
	for _, layer := range levelMap.Layers {
		if name == "" || layer.Name == name {
			return layer
		}
	}
	return nil
}

// LevelName is the file stem of a level path.
func LevelName(tmxPath string) string {
	return strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
}

// Summary describes one level for a level list.
type Summary struct {
	Name   string
	Path   string
	Acorns int
	// Err is set when the level failed to load; the other levels still list.
	Err error
}

// Summarize loads every level in levelsDir and reports its acorn count.
func Summarize(fsys fs.FS, levelsDir string, opts Options) ([]Summary, error) {
	names, err := ListLevels(fsys, levelsDir)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(names))
	for _, name := range names {
		s := Summary{Name: name, Path: levelsDir + "/" + name + ".tmx"}
		if lvl, err := LoadLevel(fsys, s.Path, opts); err != nil {
			s.Err = err
		} else {
			s.Acorns = len(lvl.Acorns)
		}
		out = append(out, s)
	}
	return out, nil
}

// ListLevels returns the sorted stem names of the .tmx files in levelsDir.
func ListLevels(fsys fs.FS, levelsDir string) ([]string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevelsInDir, levelsDir)
	}

	names := make([]string, 0, len(matches))
	for _, path := range matches {
		names = append(names, LevelName(path))
	}
	sort.Strings(names)
	return names, nil
}

// ResolvePath maps a level name (with or without .tmx) to its path inside
// levelsDir, failing if the file is not there.
func ResolvePath(fsys fs.FS, levelsDir, name string) (string, error) {
	path := levelsDir + "/" + LevelName(name) + ".tmx"
	if _, err := fs.Stat(fsys, path); err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrUnknownLevel, name, err)
	}
	return path, nil
}
