package factory

import (
	"github.com/automoto/pete/archetypes"
	"github.com/automoto/pete/assets"
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/collision"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, NewLevelData(level))
	components.LevelComplete.Set(entry, &components.LevelCompleteData{})

	// Acorns bob up and down together.
	tw := gween.NewSequence()
	h, d := cfg.World.BobHeight, cfg.World.BobDuration/2
	tw.Add(
		gween.New(0, h, d, ease.InOutSine),
		gween.New(h, 0, d, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Bob.Set(entry, &components.BobData{Sequence: tw})

	return entry
}

// NewLevelData wires a loaded level into a collision step sized for Pete and
// a fresh set of live acorns.
func NewLevelData(level *assets.Level) *components.LevelData {
	step := collision.NewStep(level.Tiles, cfg.Pete.Width, cfg.Pete.Height)
	if step.FullProbe {
		log.Info().
			Float64("cellSize", level.Tiles.CellSize()).
			Float64("width", cfg.Pete.Width).
			Float64("height", cfg.Pete.Height).
			Msg("pete is larger than a cell, probing every overlapped cell")
	}
	return &components.LevelData{
		Current: level,
		Step:    step,
		Pickups: collision.NewPickups(level.Acorns),
	}
}

// SpawnPoint is where Pete starts: the map's spawn object or the centre of
// the screen.
func SpawnPoint(level *assets.Level) (x, y float64) {
	if level.HasSpawn {
		return level.Spawn.X, level.Spawn.Y
	}
	return float64(cfg.C.Width) / 2, float64(cfg.C.Height) / 2
}
