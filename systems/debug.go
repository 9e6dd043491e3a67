package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/collision"
	"github.com/automoto/pete/shared/gamemath"
	"github.com/automoto/pete/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the solid tiles in view, Pete's collision box and the
// cells probed this frame.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(entry).Overlay {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	camX := cameraX(e)

	outline := func(r collision.Rect, c color.Color) {
		x := float32(gamemath.ScreenX(r.X, camX, width))
		y := float32(gamemath.ScreenY(r.Y, r.Height, height))
		vector.StrokeRect(screen, x, y, float32(r.Width), float32(r.Height), 1, c, false)
	}

	level := GetLevel(e)
	peteEntry, ok := tags.Pete.First(e.World)
	if !ok || level == nil || level.Current == nil {
		return
	}
	pete := components.Pete.Get(peteEntry)
	body := components.Body.Get(peteEntry)
	cellSize := level.Current.Tiles.CellSize()

	left, right := camX-width/2, camX+width/2
	for _, r := range level.Current.Tiles.SolidRects() {
		if r.X+r.Width < left || r.X > right {
			continue
		}
		outline(r, cfg.Debug.TileColor)
	}

	for _, c := range pete.LastProbe {
		clr := cfg.Debug.ProbeColor
		if c.Solid {
			clr = cfg.Debug.SolidColor
		}
		outline(collision.CellRect(c.CellX, c.CellY, cellSize), clr)
	}
	outline(body.Rect(), cfg.Debug.BodyColor)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"TPS %.0f  x %.1f y %.1f  vx %.0f vy %.0f  grounded %v  probe %d",
		ebiten.ActualTPS(), body.X, body.Y, body.VelocityX, body.VelocityY, body.Grounded, len(pete.LastProbe),
	), int(cfg.HUD.Margin), int(height)-int(cfg.HUD.Margin)-16)
}
