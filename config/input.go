package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRestart
	ActionToggleDebug
	ActionToggleMute
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionJump:        "jump",
	ActionRestart:     "restart",
	ActionToggleDebug: "toggle_debug",
	ActionToggleMute:  "toggle_mute",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName is the inverse of ActionID.String.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name && ActionID(id) != ActionNone {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}

// InputBinding represents the keys and buttons bound to an action. Keys use
// ebiten key names ("ArrowLeft", "A", "Space"); buttons are standard gamepad
// button names ("RightBottom").
type InputBinding struct {
	Keys           []string
	GamepadButtons []string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func resetInput() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:           []string{"ArrowLeft", "A"},
				GamepadButtons: []string{"LeftLeft"},
			},
			ActionMoveRight: {
				Keys:           []string{"ArrowRight", "D"},
				GamepadButtons: []string{"LeftRight"},
			},
			ActionJump: {
				Keys:           []string{"ArrowUp", "W", "Space"},
				GamepadButtons: []string{"RightBottom"},
			},
			ActionRestart: {
				Keys:           []string{"R"},
				GamepadButtons: []string{"CenterRight"},
			},
			ActionToggleDebug: {
				Keys: []string{"F1"},
			},
			ActionToggleMute: {
				Keys: []string{"M"},
			},
		},
	}
}
