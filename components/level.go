package components

import (
	"github.com/automoto/pete/assets"
	"github.com/automoto/pete/shared/collision"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *assets.Level
	Step    collision.Step
	// Pickups owns the live acorns. Collected acorns leave it for good.
	Pickups *collision.Pickups
	// Reloaded is set for one frame after a hot reload swapped the level.
	Reloaded bool
}

var Level = donburi.NewComponentType[LevelData]()
