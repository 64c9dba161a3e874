package systems

import (
	"github.com/automoto/musicbox/components"
	cfg "github.com/automoto/musicbox/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMusicControls creates the system mapping input actions onto the
// music controller. onQuit runs when the quit action is pressed.
func NewUpdateMusicControls(onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if applyMusicActions(e, input) && onQuit != nil {
			onQuit()
		}
	}
}

// applyMusicActions handles the actions pressed this frame and reports
// whether quit was requested.
func applyMusicActions(e *ecs.ECS, input *components.InputData) (quit bool) {
	if GetAction(input, cfg.ActionToggleMusic).JustPressed {
		ToggleMusic(e)
	}

	if GetAction(input, cfg.ActionFadeMusic).JustPressed {
		FadeOutMusic(e)
	}

	// Volume keys are ignored mid-fade; the fade owns the volume until it ends.
	if !MusicController().Fading() {
		step := cfg.Audio.MusicVolumeStep
		if GetAction(input, cfg.ActionVolumeUp).JustPressed {
			SetMusicVolume(e, GetMusicVolume()+step)
		}
		if GetAction(input, cfg.ActionVolumeDown).JustPressed {
			SetMusicVolume(e, GetMusicVolume()-step)
		}
	}

	return GetAction(input, cfg.ActionQuit).JustPressed
}
