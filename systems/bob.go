package systems

import (
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBob advances the acorn bob tween by one tick.
func UpdateBob(e *ecs.ECS) {
	entry, ok := components.Bob.First(e.World)
	if !ok {
		return
	}
	bob := components.Bob.Get(entry)
	if bob.Sequence == nil {
		return
	}
	bob.Offset, _, _ = bob.Sequence.Update(1 / float32(cfg.C.TPS))
}
