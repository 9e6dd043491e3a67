package systems

import (
	"github.com/automoto/pete/components"
	cfg "github.com/automoto/pete/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var gamepadButtonNames = map[string]ebiten.StandardGamepadButton{
	"RightBottom": ebiten.StandardGamepadButtonRightBottom,
	"RightRight":  ebiten.StandardGamepadButtonRightRight,
	"RightLeft":   ebiten.StandardGamepadButtonRightLeft,
	"RightTop":    ebiten.StandardGamepadButtonRightTop,
	"LeftLeft":    ebiten.StandardGamepadButtonLeftLeft,
	"LeftRight":   ebiten.StandardGamepadButtonLeftRight,
	"LeftTop":     ebiten.StandardGamepadButtonLeftTop,
	"LeftBottom":  ebiten.StandardGamepadButtonLeftBottom,
	"CenterLeft":  ebiten.StandardGamepadButtonCenterLeft,
	"CenterRight": ebiten.StandardGamepadButtonCenterRight,
}

type resolvedBinding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

// Bindings resolved from config names. Rebuilt by ResolveBindings.
var bindings [cfg.ActionCount]resolvedBinding

// ResolveBindings turns the configured key and button names into ebiten
// values. Unknown names are logged and skipped.
func ResolveBindings() {
	bindings = [cfg.ActionCount]resolvedBinding{}
	for id, b := range cfg.Input.Bindings {
		if id <= cfg.ActionNone || id >= cfg.ActionCount {
			continue
		}
		var rb resolvedBinding
		for _, name := range b.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				log.Warn().Str("action", id.String()).Str("key", name).Msg("unknown key name")
				continue
			}
			rb.keys = append(rb.keys, k)
		}
		for _, name := range b.GamepadButtons {
			btn, ok := gamepadButtonNames[name]
			if !ok {
				log.Warn().Str("action", id.String()).Str("button", name).Msg("unknown gamepad button")
				continue
			}
			rb.buttons = append(rb.buttons, btn)
		}
		bindings[id] = rb
	}
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePete in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id := range bindings {
		b := &bindings[id]
		for _, key := range b.keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[id] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[id] = true
				}
			}
		}
	}

	left, right := analogStick(gamepadIDs)
	input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || left
	input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || right
}

// analogStick reads the left stick of every standard gamepad.
func analogStick(ids []ebiten.GamepadID) (left, right bool) {
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -cfg.Input.AnalogDeadzone {
			left = true
		}
		if x > cfg.Input.AnalogDeadzone {
			right = true
		}
	}
	return left, right
}

// UpdateToggles flips the debug overlay and mute on key press.
func UpdateToggles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if input.Action(cfg.ActionToggleDebug).JustPressed {
		if entry, ok := components.Debug.First(ecs.World); ok {
			d := components.Debug.Get(entry)
			d.Overlay = !d.Overlay
			log.Debug().Bool("overlay", d.Overlay).Msg("debug overlay toggled")
		}
	}
	if input.Action(cfg.ActionToggleMute).JustPressed {
		SetMuted(ecs, !IsMuted(ecs))
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Input, components.Debug))
		components.Input.SetValue(ent, components.InputData{})
		components.Debug.SetValue(ent, components.DebugData{Overlay: cfg.Debug.Overlay})
	}

	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
