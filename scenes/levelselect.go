package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/leveldata"
	"github.com/automoto/pete/systems"
	"github.com/automoto/pete/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// LevelSelectScene lists the levels in the asset directory and starts the
// chosen one.
type LevelSelectScene struct {
	sceneChanger SceneChanger
	opts         GameOptions
	selectUI     *ui.LevelSelectUI
	once         sync.Once
	chosen       *ui.LevelEntry
	err          error
}

func NewLevelSelectScene(sc SceneChanger, opts GameOptions) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, opts: opts}
}

func (s *LevelSelectScene) configure() {
	sums, err := leveldata.Summarize(s.opts.FS, cfg.World.LevelsDir, s.opts.LevelOptions)
	if err != nil {
		s.err = err
		return
	}

	entries := make([]ui.LevelEntry, 0, len(sums))
	for _, sum := range sums {
		entry := ui.LevelEntry{Name: sum.Name, Path: sum.Path, Acorns: sum.Acorns}
		if sum.Err != nil {
			log.Warn().Err(sum.Err).Str("level", sum.Name).Msg("level failed to load")
			entry.Acorns = -1
		}
		entries = append(entries, entry)
	}

	s.selectUI, s.err = ui.NewLevelSelectUI(entries, systems.BestAcorns(), func(entry ui.LevelEntry) {
		s.chosen = &entry
	})
}

func (s *LevelSelectScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		s.selectUI.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.selectUI.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.selectUI.Play()
	}
	s.selectUI.Update()

	if s.chosen != nil {
		log.Info().Str("level", s.chosen.Name).Msg("level chosen")
		opts := s.opts
		opts.LevelPath = s.chosen.Path
		s.sceneChanger.ChangeScene(NewLoadingScene(s.sceneChanger, opts))
	}
	return nil
}

func (s *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 40, 24, 255})
	if s.selectUI == nil {
		return
	}
	s.selectUI.UI.Draw(screen)
}
