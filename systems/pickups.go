package systems

import (
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/collision"
	"github.com/automoto/pete/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects every acorn Pete overlaps after collision
// resolution. The level is complete when none are left.
func UpdatePickups(ecs *ecs.ECS) {
	entry, ok := tags.Pete.First(ecs.World)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	if level == nil || level.Pickups == nil {
		return
	}
	body := components.Body.Get(entry)

	level.Pickups.Collect(body.Rect(), func(c collision.Collectible) {
		PlaySFX(ecs, cfg.SoundAcorn)
		log.Debug().Int("id", c.ID).Int("left", level.Pickups.Len()).Msg("acorn collected")
	})

	if level.Pickups.Len() == 0 && level.Pickups.Total() > 0 {
		completeLevel(ecs, level.Pickups.Collected())
	}
}

func completeLevel(ecs *ecs.ECS, collected int) {
	lc := GetOrCreateLevelComplete(ecs)
	if lc.IsComplete {
		return
	}
	lc.IsComplete = true
	lc.Collected = collected
	lc.NewBest = RecordBest(collected)
	lc.Best = BestAcorns()

	log.Info().Int("acorns", collected).Bool("newBest", lc.NewBest).Msg("level complete")
}
