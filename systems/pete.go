package systems

import (
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/movement"
	"github.com/automoto/pete/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePete turns input into velocity and moves Pete. Collision runs next.
func UpdatePete(ecs *ecs.ECS) {
	entry, ok := tags.Pete.First(ecs.World)
	if !ok {
		return
	}
	pete := components.Pete.Get(entry)
	body := components.Body.Get(entry)
	input := getOrCreateInput(ecs)

	intent := movement.Intent{
		Left:  input.Action(cfg.ActionMoveLeft).Pressed,
		Right: input.Action(cfg.ActionMoveRight).Pressed,
		Jump:  input.Action(cfg.ActionJump).Pressed,
	}

	if pete.Controller.Update(body, intent, 1/float64(cfg.C.TPS)) {
		PlaySFX(ecs, cfg.SoundJump)
	}
	body.Integrate()
}
