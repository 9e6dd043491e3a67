package scenes

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/automoto/pete/archetypes"
	"github.com/automoto/pete/assets"
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/automoto/pete/shared/leveldata"
	"github.com/automoto/pete/systems"
	"github.com/automoto/pete/systems/factory"
	"github.com/automoto/pete/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOptions are the command line choices the scenes need.
type GameOptions struct {
	FS           fs.FS
	LevelPath    string
	LevelOptions leveldata.Options
	// Watcher is optional; when set, edits to the level file reload it.
	Watcher *leveldata.Watcher
}

// GameScene plays one level until every acorn is collected.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	bundle       assets.Bundle
	opts         GameOptions
	once         sync.Once
	err          error
}

func NewGameScene(sc SceneChanger, bundle assets.Bundle, opts GameOptions) *GameScene {
	return &GameScene{sceneChanger: sc, bundle: bundle, opts: opts}
}

func (gs *GameScene) Update() error {
	gs.once.Do(gs.configure)
	if gs.err != nil {
		return gs.err
	}

	gs.reloadChangedLevel()
	gs.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		systems.StopMusic()
		gs.sceneChanger.ChangeScene(NewLevelSelectScene(gs.sceneChanger, gs.opts))
		return nil
	}

	if systems.RestartRequested(gs.ecs) {
		log.Info().Msg("restarting level")
		gs.configure()
	}
	return gs.err
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateToggles)

	// Pete moves, then collides with tiles, then picks up acorns.
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdatePete))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdatePickups))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateCamera))

	ecs.AddSystem(systems.UpdateBob)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawSprites)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawLevelComplete)
	ecs.AddRenderer(archetypes.LayerDebug, systems.DrawDebug)

	gs.ecs = ecs

	level := gs.bundle.Level
	systems.AcornImage = gs.bundle.Acorn

	factory.CreateInput(ecs)
	music, sfx, muted := systems.AudioSettings()
	factory.CreateAudio(ecs, music, sfx, muted)
	factory.CreateLevel(ecs, level)
	factory.CreateCamera(ecs)

	x, y := factory.SpawnPoint(level)
	if _, err := factory.CreatePete(ecs, x, y, gs.bundle.PeteFrames); err != nil {
		gs.err = err
		return
	}

	systems.PlayMusic(cfg.Sound.Theme)

	log.Info().
		Str("level", level.Name).
		Int("acorns", len(level.Acorns)).
		Float64("spawnX", x).
		Float64("spawnY", y).
		Msg("level started")
}

// reloadChangedLevel swaps in a fresh copy of the level when the watcher saw
// the file change. Acorns reset; Pete keeps his place unless it is no longer
// inside the map. A broken file leaves the running level alone.
func (gs *GameScene) reloadChangedLevel() {
	if gs.opts.Watcher == nil {
		return
	}

	for _, err := range gs.opts.Watcher.DrainErrors() {
		log.Warn().Err(err).Msg("level watcher error")
	}

	changed := false
	for _, path := range gs.opts.Watcher.Drain() {
		if filepath.Base(path) == filepath.Base(gs.opts.LevelPath) {
			changed = true
		}
	}
	if !changed {
		return
	}

	level, err := assets.LoadLevel(gs.opts.FS, gs.opts.LevelPath, gs.opts.LevelOptions)
	if err != nil {
		log.Warn().Err(err).Str("level", gs.opts.LevelPath).Msg("reload failed, keeping current level")
		return
	}

	gs.bundle.Level = level
	entry, ok := components.Level.First(gs.ecs.World)
	if !ok {
		return
	}
	data := factory.NewLevelData(level)
	data.Reloaded = true
	components.Level.Set(entry, data)
	components.LevelComplete.Set(entry, &components.LevelCompleteData{})

	if pete, ok := tags.Pete.First(gs.ecs.World); ok {
		body := components.Body.Get(pete)
		if !level.Contains(body.Rect()) {
			x, y := factory.SpawnPoint(level)
			body.SetPosition(x, y)
			log.Debug().Float64("x", x).Float64("y", y).Msg("pete moved to spawn")
		}
	}
	log.Info().Str("level", level.Name).Int("acorns", len(level.Acorns)).Msg("level reloaded")
}
