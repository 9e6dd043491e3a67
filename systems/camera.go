package systems

import (
	"github.com/automoto/pete/components"
	"github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/gamemath"
	"github.com/automoto/pete/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows Pete horizontally. The view never scrolls vertically.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Pete.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)

	level := GetLevel(e)
	if level == nil || level.Current == nil {
		return
	}

	screenWidth := float64(config.C.Width)
	levelWidth := float64(level.Current.MapWidth)

	x := gamemath.FollowX(camera.Position.X, body.X, screenWidth, levelWidth)
	camera.Position.X = gamemath.ClampCameraX(x, screenWidth, levelWidth)
}

// cameraX returns the camera centre, or the centre of the screen without one.
func cameraX(e *ecs.ECS) float64 {
	if entry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(entry).Position.X
	}
	return float64(config.C.Width) / 2
}
