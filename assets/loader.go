package assets

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/automoto/pete/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// Bundle is everything the game scene needs once loading finishes.
type Bundle struct {
	PeteFrames []*ebiten.Image
	Acorn      *ebiten.Image
	Level      *Level
	Audio      *AudioLoader
}

type job struct {
	name     string
	optional bool
	run      func() error
}

// Loader loads queued assets one per Update so a loading screen can draw
// progress between them.
type Loader struct {
	jobs   []job
	next   int
	err    error
	images *ImageLoader
	Bundle Bundle
}

// LoaderOptions says what to queue.
type LoaderOptions struct {
	LevelPath   string
	Level       leveldata.Options
	FrameWidth  int
	FrameHeight int
	SFX         []string
	Music       string
}

// NewLoader queues the sprites, the level and the sounds. audio may be nil,
// in which case sounds are skipped.
func NewLoader(fsys fs.FS, audio *AudioLoader, opts LoaderOptions) *Loader {
	l := &Loader{
		images: NewImageLoader(fsys),
		Bundle: Bundle{Audio: audio},
	}

	l.add(PeteImage, false, func() error {
		sheet, err := l.images.Load(PeteImage)
		if err != nil {
			return err
		}
		l.Bundle.PeteFrames = SplitFrames(sheet, opts.FrameWidth, opts.FrameHeight)
		if len(l.Bundle.PeteFrames) == 0 {
			return fmt.Errorf("%s: no %dx%d frames", PeteImage, opts.FrameWidth, opts.FrameHeight)
		}
		return nil
	})
	l.add(AcornImage, false, func() error {
		img, err := l.images.Load(AcornImage)
		l.Bundle.Acorn = img
		return err
	})
	l.add(opts.LevelPath, false, func() error {
		level, err := LoadLevel(fsys, opts.LevelPath, opts.Level)
		l.Bundle.Level = level
		return err
	})

	if audio != nil {
		for _, path := range opts.SFX {
			l.add(path, true, func() error { return audio.PreloadSFX(path) })
		}
		if opts.Music != "" {
			l.add(opts.Music, true, func() error {
				_, err := fs.Stat(fsys, opts.Music)
				return err
			})
		}
	}
	return l
}

func (l *Loader) add(name string, optional bool, run func() error) {
	l.jobs = append(l.jobs, job{name: name, optional: optional, run: run})
}

// Update runs the next queued job. It returns true once everything is loaded.
// A failed required job stops the loader and its error is returned from then
// on; failed optional jobs are logged and skipped.
func (l *Loader) Update() (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if l.Done() {
		return true, nil
	}

	j := l.jobs[l.next]
	start := time.Now()
	if err := j.run(); err != nil {
		if !j.optional {
			l.err = fmt.Errorf("load %s: %w", j.name, err)
			return false, l.err
		}
		log.Warn().Err(err).Str("asset", j.name).Msg("optional asset unavailable")
	} else {
		log.Debug().Str("asset", j.name).Dur("took", time.Since(start)).Msg("asset loaded")
	}
	l.next++
	return l.Done(), nil
}

func (l *Loader) Done() bool {
	return l.next >= len(l.jobs)
}

// Progress is the loaded fraction in [0, 1].
func (l *Loader) Progress() float64 {
	if len(l.jobs) == 0 {
		return 1
	}
	return float64(l.next) / float64(len(l.jobs))
}
