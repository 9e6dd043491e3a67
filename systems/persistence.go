package systems

import (
	"github.com/automoto/pete/shared/progress"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

var gdataManager *gdata.Manager
var saved = &progress.SavedProgress{}

// InitPersistence initializes the gdata manager and loads saved progress.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	saved = &progress.SavedProgress{
		MusicVolume: globalMusicVolume,
		SFXVolume:   globalSFXVolume,
	}

	p, err := progress.Load(m)
	if err != nil {
		log.Warn().Err(err).Msg("could not load saved progress")
		return nil
	}
	if p != nil {
		saved = p
		ApplySavedSettings(p)
		log.Info().Int("best", p.BestAcorns).Msg("saved progress loaded")
	}
	return nil
}

// ApplySavedSettings applies loaded audio settings before any scene exists.
func ApplySavedSettings(p *progress.SavedProgress) {
	globalMusicVolume = p.MusicVolume
	globalSFXVolume = p.SFXVolume
	globalMuted = p.Muted
}

func BestAcorns() int {
	return saved.BestAcorns
}

// RecordBest stores a new best score and reports whether it beat the old one.
func RecordBest(collected int) bool {
	if !saved.RecordBest(collected) {
		return false
	}
	save()
	return true
}

func SaveAudioSettings(music, sfx float64, muted bool) {
	saved.MusicVolume = music
	saved.SFXVolume = sfx
	saved.Muted = muted
	save()
}

func save() {
	if gdataManager == nil {
		return
	}
	if err := progress.Save(gdataManager, saved); err != nil {
		log.Warn().Err(err).Msg("could not save progress")
	}
}
