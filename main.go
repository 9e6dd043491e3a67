package main

import (
	"flag"
	"image"
	"os"
	"path/filepath"

	"github.com/automoto/pete/assets"
	"github.com/automoto/pete/config"
	"github.com/automoto/pete/fonts"
	"github.com/automoto/pete/scenes"
	"github.com/automoto/pete/shared/leveldata"
	"github.com/automoto/pete/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(opts scenes.GameOptions, chooseLevel bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if chooseLevel {
		g.scene = scenes.NewLevelSelectScene(g, opts)
	} else {
		g.scene = scenes.NewLoadingScene(g, opts)
	}

	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func levelOptions() leveldata.Options {
	return leveldata.Options{
		TileLayer:        config.World.TileLayer,
		CollectableLayer: config.World.CollectableLayer,
		SpawnLayer:       config.World.SpawnLayer,
		AcornWidth:       config.World.AcornWidth,
		AcornHeight:      config.World.AcornHeight,
	}
}

func main() {
	levelName := flag.String("level", "", "level to play, by name (defaults to the configured level)")
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	assetsDir := flag.String("assets", "", "read assets from this directory instead of the embedded copy")
	watch := flag.Bool("watch", false, "reload the level when its .tmx file changes (needs -assets)")
	debug := flag.Bool("debug", false, "verbose logging and the collision overlay")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("bad config")
		}
	}
	if *debug {
		config.Debug.Verbose = true
		config.Debug.Overlay = true
	}
	if config.Debug.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	systems.ApplyAudioConfig()
	systems.ResolveBindings()

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleSize); err != nil {
		log.Fatal().Err(err).Msg("fonts")
	}

	if err := systems.InitPersistence("pete"); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}

	fsys := assets.Open(*assetsDir)

	name := *levelName
	chooseLevel := false
	if name == "" {
		name = config.World.DefaultLevel
		levels, err := leveldata.ListLevels(fsys, config.World.LevelsDir)
		chooseLevel = err == nil && len(levels) > 1
	}
	levelPath, err := leveldata.ResolvePath(fsys, config.World.LevelsDir, name)
	if err != nil {
		if levels, lerr := leveldata.ListLevels(fsys, config.World.LevelsDir); lerr == nil {
			log.Error().Strs("available", levels).Msg("unknown level")
		}
		log.Fatal().Err(err).Msg("level")
	}

	opts := scenes.GameOptions{
		FS:           fsys,
		LevelPath:    levelPath,
		LevelOptions: levelOptions(),
	}

	if *watch {
		if *assetsDir == "" {
			log.Fatal().Msg("-watch needs -assets so there is a directory to watch")
		}
		w, err := leveldata.NewWatcher(filepath.Join(*assetsDir, config.World.LevelsDir))
		if err != nil {
			log.Fatal().Err(err).Msg("level watcher")
		}
		defer w.Close()
		opts.Watcher = w
		log.Info().Str("dir", *assetsDir).Msg("watching levels")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts, chooseLevel)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
