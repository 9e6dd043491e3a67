package factory

import (
	"github.com/automoto/pete/archetypes"
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateInput(ecs *ecs.ECS) {
	input := archetypes.Input.Spawn(ecs)
	components.Input.Set(input, &components.InputData{})
	components.Debug.Set(input, &components.DebugData{Overlay: cfg.Debug.Overlay})
}

// CreateAudio records the current volumes; muting zeroes both.
func CreateAudio(ecs *ecs.ECS, musicVol, sfxVol float64, muted bool) {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.Set(audio, &components.AudioData{
		MusicVolume: musicVol,
		SFXVolume:   sfxVol,
		Muted:       muted,
	})
}
