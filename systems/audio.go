package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/pete/assets"
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context on first use and returns the loader
// reading from fsys.
func InitAudio(fsys fs.FS) *assets.AudioLoader {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
	})
	return globalAudioLoader
}

// ApplyAudioConfig resets the volumes to the configured defaults.
func ApplyAudioConfig() {
	globalMusicVolume = cfg.Audio.DefaultMusicVol
	globalSFXVolume = cfg.Audio.DefaultSFXVol
}

// UpdateAudio plays the sound effects queued this frame.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect for UpdateAudio.
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

func playSFX(soundID cfg.SoundID) {
	if globalAudioLoader == nil || globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player := loadSFX(globalAudioLoader, path)
	if player == nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

type sfxLoader interface {
	LoadSFX(path string) (*audio.Player, error)
}

// loadSFX returns nil and logs a warning when path cannot be played.
func loadSFX(l sfxLoader, path string) *audio.Player {
	player, err := l.LoadSFX(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("sound effect unavailable")
		return nil
	}
	return player
}

// PlayMusic starts playing music with the given path (looping)
func PlayMusic(musicPath string) {
	if globalAudioLoader == nil || globalMusicKey == musicPath {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		log.Warn().Err(err).Str("path", musicPath).Msg("music unavailable")
		return
	}

	player.SetVolume(musicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// StopMusic stops and releases the music player
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
}

func musicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

// SetMuted silences music and effects, keeping the volumes for unmute.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(musicVolume())
	}
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).Muted = muted
	}
	SaveAudioSettings(globalMusicVolume, globalSFXVolume, muted)
	log.Debug().Bool("muted", muted).Msg("audio mute toggled")
}

func IsMuted(e *ecs.ECS) bool {
	if entry, ok := components.Audio.First(e.World); ok {
		return components.Audio.Get(entry).Muted
	}
	return globalMuted
}

// AudioSettings returns the current global volumes for a new scene.
func AudioSettings() (music, sfx float64, muted bool) {
	return globalMusicVolume, globalSFXVolume, globalMuted
}
