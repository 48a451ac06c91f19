package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

// Movement actions are declared in priority order: when several are held,
// the first one wins.
const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionInteract
	ActionFire
	ActionSkill
	ActionHookshot
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// MoveActions lists the directional actions in priority order.
var MoveActions = [4]ActionID{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight}

// ActionNames are the stable identifiers used when bindings are saved.
var ActionNames = map[ActionID]string{
	ActionMoveUp:    "up",
	ActionMoveDown:  "down",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionInteract:  "interact",
	ActionFire:      "fire",
	ActionSkill:     "skill",
	ActionHookshot:  "hookshot",
	ActionRestart:   "restart",
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// DefaultBindings returns a fresh copy of the built-in key map.
func DefaultBindings() map[ActionID]InputBinding {
	return map[ActionID]InputBinding{
		ActionMoveUp: {
			Keys:                   []ebiten.Key{ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		ActionMoveDown: {
			Keys:                   []ebiten.Key{ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		ActionInteract: {
			Keys: []ebiten.Key{ebiten.KeyI},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionFire: {
			Keys: []ebiten.Key{ebiten.KeyF},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		ActionSkill: {
			Keys: []ebiten.Key{ebiten.KeyJ},
			// Y / Triangle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
		},
		ActionHookshot: {
			Keys: []ebiten.Key{ebiten.KeyH},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		},
		ActionRestart: {
			Keys: []ebiten.Key{ebiten.KeyR},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
	}
}

func init() {
	Input = InputConfig{
		Bindings: DefaultBindings(),
	}
}
