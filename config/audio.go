package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundAcorn
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int     `yaml:"sample_rate"`
	DefaultMusicVol float64 `yaml:"music_volume"`
	DefaultSFXVol   float64 `yaml:"sfx_volume"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Theme             string             `yaml:"theme"`
	SFXPaths          map[SoundID]string `yaml:"-"`
	VolumeMultipliers map[SoundID]float64 `yaml:"-"`
}

var Audio AudioConfig
var Sound SoundConfig

func resetAudio() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		Theme: "audio/peteTheme.wav",
		SFXPaths: map[SoundID]string{
			SoundJump:  "audio/jump.wav",
			SoundAcorn: "audio/acorn.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundJump: 0.6,
		},
	}
}
