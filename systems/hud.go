package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var faces = map[fonts.FontName]*text.GoXFace{}

func faceFor(name fonts.FontName) *text.GoXFace {
	if f, ok := faces[name]; ok {
		return f
	}
	f := text.NewGoXFace(name.Get())
	faces[name] = f
	return f
}

// DrawHUD shows the acorn count and the best score.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(e)
	if level == nil || level.Pickups == nil {
		return
	}

	margin := cfg.HUD.Margin
	acorns := fmt.Sprintf("Acorns %d/%d", level.Pickups.Collected(), level.Pickups.Total())
	drawShadowed(screen, acorns, margin, margin, cfg.HUD.TextColor)

	best := fmt.Sprintf("Best %d", BestAcorns())
	face := faceFor(fonts.Bold)
	w, _ := text.Measure(best, face, 0)
	drawShadowed(screen, best, float64(screen.Bounds().Dx())-margin-w, margin, cfg.HUD.TextColor)

	if IsMuted(e) {
		drawShadowed(screen, "MUTED", margin, margin+cfg.HUD.FontSize*1.5, cfg.HUD.TextColor)
	}
}

func drawShadowed(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	face := faceFor(fonts.Bold)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+1, y+1)
	op.ColorScale.ScaleWithColor(cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, op)

	op.GeoM.Reset()
	op.GeoM.Translate(x, y)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
