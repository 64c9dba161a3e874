package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical music control action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleMusic
	ActionFadeMusic
	ActionVolumeUp
	ActionVolumeDown
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

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

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleMusic: {
				Keys: []ebiten.Key{ebiten.KeyM, ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionFadeMusic: {
				Keys: []ebiten.Key{ebiten.KeyF},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionVolumeUp: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionVolumeDown: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
		},
	}
}
