package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pete/assets"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LoadingScene loads one asset per frame behind a progress bar, then hands
// the loaded bundle to the game scene.
type LoadingScene struct {
	sceneChanger SceneChanger
	opts         GameOptions
	loader       *assets.Loader
	once         sync.Once

	bar    *gween.Tween
	shown  float32
	target float32
}

func NewLoadingScene(sc SceneChanger, opts GameOptions) *LoadingScene {
	return &LoadingScene{sceneChanger: sc, opts: opts}
}

func (ls *LoadingScene) configure() {
	sfx := make([]string, 0, len(cfg.Sound.SFXPaths))
	for _, path := range cfg.Sound.SFXPaths {
		sfx = append(sfx, path)
	}

	ls.loader = assets.NewLoader(ls.opts.FS, systems.InitAudio(ls.opts.FS), assets.LoaderOptions{
		LevelPath:   ls.opts.LevelPath,
		Level:       ls.opts.LevelOptions,
		FrameWidth:  cfg.Pete.FrameWidth,
		FrameHeight: cfg.Pete.FrameHeight,
		SFX:         sfx,
		Music:       cfg.Sound.Theme,
	})
	log.Info().Str("level", ls.opts.LevelPath).Msg("loading assets")
}

func (ls *LoadingScene) Update() error {
	ls.once.Do(ls.configure)

	done, err := ls.loader.Update()
	if err != nil {
		return err
	}

	if target := float32(ls.loader.Progress()); target != ls.target {
		ls.target = target
		ls.bar = gween.New(ls.shown, target, cfg.Loading.EaseSeconds, ease.OutQuad)
	}
	finished := true
	if ls.bar != nil {
		ls.shown, finished = ls.bar.Update(1 / float32(cfg.C.TPS))
	}

	if done && finished {
		log.Info().Msg("assets loaded")
		ls.sceneChanger.ChangeScene(NewGameScene(ls.sceneChanger, ls.loader.Bundle, ls.opts))
	}
	return nil
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	barW, barH := cfg.Loading.BarWidth, cfg.Loading.BarHeight
	x := float32((w - barW) / 2)
	y := float32((h - barH) / 2)

	vector.FillRect(screen, x, y, float32(barW), float32(barH), cfg.Loading.BarColor, false)
	vector.FillRect(screen, x, y, float32(barW)*ls.shown, float32(barH), cfg.Loading.FillColor, false)
}
