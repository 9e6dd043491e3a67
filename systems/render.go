package systems

import (
	"github.com/automoto/pete/assets/animations"
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/collision"
	"github.com/automoto/pete/shared/gamemath"
	"github.com/automoto/pete/shared/movement"
	"github.com/automoto/pete/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// AcornImage is set by the game scene once assets are loaded.
var AcornImage *ebiten.Image

func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.BackgroundColor)

	level := GetLevel(e)
	if level == nil || level.Current == nil || level.Current.Background == nil {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	camX := cameraX(e)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(
		gamemath.ScreenX(0, camX, width),
		gamemath.ScreenY(0, float64(level.Current.MapHeight), height),
	)
	screen.DrawImage(level.Current.Background, drawOp)
}

// DrawSprites draws the live acorns, then Pete on top.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	camX := cameraX(e)

	if level := GetLevel(e); level != nil && level.Pickups != nil && AcornImage != nil {
		var bob float64
		if entry, ok := components.Bob.First(e.World); ok {
			bob = float64(components.Bob.Get(entry).Offset)
		}
		minX, maxX := camX-width/2, camX+width/2
		for _, acorn := range level.Pickups.Live() {
			if acorn.X+acorn.Width < minX || acorn.X > maxX {
				continue
			}
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(
				gamemath.ScreenX(acorn.X, camX, width),
				gamemath.ScreenY(acorn.Y+bob, acorn.Height, height),
			)
			screen.DrawImage(AcornImage, drawOp)
		}
	}

	entry, ok := tags.Pete.First(e.World)
	if !ok {
		return
	}
	anim := components.Animation.Get(entry)
	if len(anim.Frames) == 0 {
		return
	}
	pete := components.Pete.Get(entry)
	body := components.Body.Get(entry)

	frame := anim.Frames[peteFrame(anim, pete.Controller, body)]
	fw := float64(frame.Bounds().Dx())
	fh := float64(frame.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if !pete.Controller.FacingRight {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(fw, 0)
	}
	drawOp.GeoM.Translate(
		gamemath.ScreenX(body.X, camX, width),
		gamemath.ScreenY(body.Y, fh, height),
	)
	screen.DrawImage(frame, drawOp)
}

// peteFrame picks the sheet index for Pete's movement state.
func peteFrame(anim *components.AnimationData, c *movement.Controller, body *collision.Body) int {
	var a *animations.Animation
	switch c.State(body) {
	case movement.Airborne:
		a = anim.JumpDown
		if body.VelocityY > 0 {
			a = anim.JumpUp
		}
	case movement.Walking:
		a = anim.Walking
	default:
		a = anim.Standing
	}

	i := a.Frame(c.StateTime)
	if i < 0 || i >= len(anim.Frames) {
		return 0
	}
	return i
}
