package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed pete.yaml
var DefaultYAML []byte

var ErrInvalidConfig = errors.New("config: invalid value")

// File is the YAML layout accepted by Load. Keys left out of a file keep
// their current values.
type File struct {
	Screen  Config              `yaml:"screen"`
	Pete    PeteConfig          `yaml:"pete"`
	World   WorldConfig         `yaml:"world"`
	Audio   AudioConfig         `yaml:"audio"`
	Theme   string              `yaml:"theme"`
	Loading LoadingConfig       `yaml:"loading"`
	HUD     HUDConfig           `yaml:"hud"`
	Debug   DebugConfig         `yaml:"debug"`
	Input   map[string][]string `yaml:"input"` // action name -> key names
}

// LoadFile overlays the YAML file at path onto the current config.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Apply(data)
}

// Load overlays a YAML file from fsys onto the current config.
func Load(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Apply(data)
}

// Apply decodes data over the current values. Nothing changes unless the
// whole document decodes and validates.
func Apply(data []byte) error {
	f := current()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	bindings, err := f.bindings()
	if err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	screen := f.Screen
	C = &screen
	Pete = f.Pete
	World = f.World
	Audio = f.Audio
	Sound.Theme = f.Theme
	Loading = f.Loading
	HUD = f.HUD
	Debug = f.Debug
	Input.Bindings = bindings
	return nil
}

func current() File {
	input := make(map[string][]string, len(Input.Bindings))
	for id, b := range Input.Bindings {
		input[id.String()] = append([]string(nil), b.Keys...)
	}
	return File{
		Screen:  *C,
		Pete:    Pete,
		World:   World,
		Audio:   Audio,
		Theme:   Sound.Theme,
		Loading: Loading,
		HUD:     HUD,
		Debug:   Debug,
		Input:   input,
	}
}

// bindings replaces the keys of each named action, keeping gamepad buttons.
func (f File) bindings() (map[ActionID]InputBinding, error) {
	out := make(map[ActionID]InputBinding, len(Input.Bindings))
	for id, b := range Input.Bindings {
		out[id] = b
	}
	for name, keys := range f.Input {
		id, ok := ActionByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidConfig, name)
		}
		b := out[id]
		b.Keys = keys
		out[id] = b
	}
	return out, nil
}

func (f File) validate() error {
	switch {
	case f.Screen.Width <= 0 || f.Screen.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, f.Screen.Width, f.Screen.Height)
	case f.Screen.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, f.Screen.TPS)
	case f.Pete.Width <= 0 || f.Pete.Height <= 0:
		return fmt.Errorf("%w: pete size %vx%v", ErrInvalidConfig, f.Pete.Width, f.Pete.Height)
	case f.Pete.MaxXSpeed < 0 || f.Pete.MaxYSpeed < 0 || f.Pete.MaxJumpDistance < 0:
		return fmt.Errorf("%w: negative pete speed", ErrInvalidConfig)
	case f.World.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, f.World.CellSize)
	case f.Audio.DefaultMusicVol < 0 || f.Audio.DefaultMusicVol > 1 ||
		f.Audio.DefaultSFXVol < 0 || f.Audio.DefaultSFXVol > 1:
		return fmt.Errorf("%w: volume out of [0,1]", ErrInvalidConfig)
	}
	return nil
}
