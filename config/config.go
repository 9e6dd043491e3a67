package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// PeteConfig contains the player character's size and speeds. Speeds are
// pixels per tick.
type PeteConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MaxXSpeed       float64 `yaml:"max_x_speed"`
	MaxYSpeed       float64 `yaml:"max_y_speed"`
	MaxJumpDistance float64 `yaml:"max_jump_distance"`

	// Sprite sheet layout
	FrameWidth    int     `yaml:"frame_width"`
	FrameHeight   int     `yaml:"frame_height"`
	FrameDuration float64 `yaml:"frame_duration"` // seconds per walk frame
}

// WorldConfig describes the level files and how they are read.
type WorldConfig struct {
	CellSize         int    `yaml:"cell_size"`
	LevelsDir        string `yaml:"levels_dir"`
	DefaultLevel     string `yaml:"default_level"`
	TileLayer        string `yaml:"tile_layer"` // empty means the first layer
	CollectableLayer string `yaml:"collectable_layer"`
	SpawnLayer       string `yaml:"spawn_layer"`

	AcornWidth  float64 `yaml:"acorn_width"`
	AcornHeight float64 `yaml:"acorn_height"`

	// Acorns bob up and down by BobHeight pixels every BobDuration seconds.
	BobHeight   float32 `yaml:"bob_height"`
	BobDuration float32 `yaml:"bob_duration"`

	BackgroundColor color.RGBA `yaml:"-"`
}

// LoadingConfig contains the loading screen progress bar layout
type LoadingConfig struct {
	BarWidth    float64 `yaml:"bar_width"`
	BarHeight   float64 `yaml:"bar_height"`
	EaseSeconds float32 `yaml:"ease_seconds"`

	BarColor  color.RGBA `yaml:"-"`
	FillColor color.RGBA `yaml:"-"`
}

// HUDConfig contains heads-up display layout values
type HUDConfig struct {
	Margin      float64 `yaml:"margin"`
	FontSize    float64 `yaml:"font_size"`
	TitleSize   float64 `yaml:"title_size"`
	CompleteMsg string  `yaml:"complete_message"`
	RestartHint string  `yaml:"restart_hint"`

	TextColor   color.RGBA `yaml:"-"`
	ShadowColor color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Draw collision rectangles
	Verbose bool `yaml:"verbose"` // Debug level logging

	BodyColor  color.RGBA `yaml:"-"`
	ProbeColor color.RGBA `yaml:"-"`
	SolidColor color.RGBA `yaml:"-"`
	TileColor  color.RGBA `yaml:"-"`
}

// Global configuration instances
var C *Config
var Pete PeteConfig
var World WorldConfig
var Loading LoadingConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	SkyBlue      = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for Pete facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every config var to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 480,
		TPS:    60,
		Title:  "Pete",
	}

	Pete = PeteConfig{
		Width:           16,
		Height:          15,
		MaxXSpeed:       2,
		MaxYSpeed:       2,
		MaxJumpDistance: 3 * 15, // three body heights

		FrameWidth:    16,
		FrameHeight:   15,
		FrameDuration: 0.25,
	}

	World = WorldConfig{
		CellSize:         16,
		LevelsDir:        "levels",
		DefaultLevel:     "pete",
		CollectableLayer: "Collectables",
		SpawnLayer:       "PlayerSpawn",
		AcornWidth:       16,
		AcornHeight:      16,
		BobHeight:        2,
		BobDuration:      0.6,
		BackgroundColor:  SkyBlue,
	}

	Loading = LoadingConfig{
		BarWidth:    100,
		BarHeight:   25,
		EaseSeconds: 0.2,
		BarColor:    DarkGray,
		FillColor:   White,
	}

	HUD = HUDConfig{
		Margin:      8,
		FontSize:    16,
		TitleSize:   28,
		CompleteMsg: "ALL ACORNS COLLECTED!",
		RestartHint: "Press R to play again",
		TextColor:   White,
		ShadowColor: Black,
	}

	Debug = DebugConfig{
		BodyColor:  Green,
		ProbeColor: Yellow,
		SolidColor: Red,
		TileColor:  DarkGray,
	}

	resetAudio()
	resetInput()
}
