package systems

import (
	"github.com/automoto/pete/components"
	"github.com/automoto/pete/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions keeps Pete inside the level and pushes him out of solid
// tiles.
func UpdateCollisions(ecs *ecs.ECS) {
	entry, ok := tags.Pete.First(ecs.World)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	if level == nil || level.Current == nil {
		return
	}

	pete := components.Pete.Get(entry)
	body := components.Body.Get(entry)
	wasGrounded := pete.Landed

	if level.Reloaded {
		level.Reloaded = false
		wasGrounded = false
		pete.LastProbe = pete.LastProbe[:0]
	}

	res := level.Step.Run(body)
	pete.LastProbe = append(pete.LastProbe[:0], res.Probed...)
	pete.Landed = res.Landed

	if res.Landed && !wasGrounded {
		log.Debug().Float64("x", body.X).Float64("y", body.Y).Msg("pete landed")
	}
}

// GetLevel returns the current level data, or nil before one is loaded.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
