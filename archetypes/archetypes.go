package archetypes

import (
	"github.com/automoto/pete/components"
	"github.com/automoto/pete/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Draw layers, back to front.
const (
	LayerDefault ecs.LayerID = iota
	LayerHUD
	LayerDebug
)

var (
	Pete = newArchetype(
		tags.Pete,
		components.Pete,
		components.Body,
		components.Animation,
	)
	Level = newArchetype(
		components.Level,
		components.LevelComplete,
		components.Bob,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
		components.Debug,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
