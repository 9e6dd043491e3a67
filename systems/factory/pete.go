package factory

import (
	"github.com/automoto/pete/archetypes"
	"github.com/automoto/pete/assets/animations"
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/collision"
	"github.com/automoto/pete/shared/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Pete sheet layout: stand/walk, walk, jump up, jump down.
const (
	frameStanding = 0
	frameWalk     = 1
	frameJumpUp   = 2
	frameJumpDown = 3
)

// CreatePete spawns Pete with his bottom-left corner at (x, y).
func CreatePete(ecs *ecs.ECS, x, y float64, frames []*ebiten.Image) (*donburi.Entry, error) {
	body, err := collision.NewBody(x, y, cfg.Pete.Width, cfg.Pete.Height)
	if err != nil {
		return nil, err
	}

	pete := archetypes.Pete.Spawn(ecs)
	components.Body.Set(pete, body)
	components.Pete.SetValue(pete, components.PeteData{
		Controller: movement.NewController(movement.Params{
			MaxXSpeed:       cfg.Pete.MaxXSpeed,
			MaxYSpeed:       cfg.Pete.MaxYSpeed,
			MaxJumpDistance: cfg.Pete.MaxJumpDistance,
		}),
	})
	components.Animation.Set(pete, GenerateAnimations(frames, cfg.Pete.FrameDuration))

	return pete, nil
}

// GenerateAnimations maps Pete's movement states onto sheet frames. Sheets
// with fewer frames fall back to the first one.
func GenerateAnimations(frames []*ebiten.Image, frameDuration float64) *components.AnimationData {
	pick := func(i int) int {
		if i < len(frames) {
			return i
		}
		return frameStanding
	}
	return &components.AnimationData{
		Frames:   frames,
		Standing: animations.NewAnimation(frameDuration, false, frameStanding),
		Walking:  animations.NewAnimation(frameDuration, true, frameStanding, pick(frameWalk)),
		JumpUp:   animations.NewAnimation(frameDuration, false, pick(frameJumpUp)),
		JumpDown: animations.NewAnimation(frameDuration, false, pick(frameJumpDown)),
	}
}
