package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateLevelComplete returns the singleton LevelComplete component,
// creating it if needed.
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// RestartRequested reports whether the restart action was pressed this frame.
func RestartRequested(e *ecs.ECS) bool {
	return getOrCreateInput(e).Action(cfg.ActionRestart).JustPressed
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	lc := GetOrCreateLevelComplete(e)
	if !lc.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	y := height/2 - cfg.HUD.TitleSize*2
	drawCentered(screen, cfg.HUD.CompleteMsg, fonts.Title, width, y, cfg.HUD.TextColor)

	y += cfg.HUD.TitleSize * 1.5
	score := fmt.Sprintf("Acorns: %d   Best: %d", lc.Collected, lc.Best)
	if lc.NewBest {
		score += "   NEW BEST!"
	}
	drawCentered(screen, score, fonts.Bold, width, y, cfg.HUD.TextColor)

	y += cfg.HUD.FontSize * 2
	drawCentered(screen, cfg.HUD.RestartHint, fonts.Regular, width, y, cfg.HUD.TextColor)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, width, y float64, clr color.Color) {
	face := faceFor(name)
	w, _ := text.Measure(s, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate((width-w)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
