package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/musicbox/config"
	"github.com/automoto/musicbox/store"
	"github.com/automoto/musicbox/systems"
	"github.com/automoto/musicbox/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Quitter allows scenes to end the game loop
type Quitter interface {
	Quit()
}

// MusicScene displays the music panel and starts the background track
type MusicScene struct {
	ecs     *ecs.ECS
	musicUI *ui.MusicUI
	quitter Quitter
	once    sync.Once
}

// NewMusicScene creates a new music scene
func NewMusicScene(q Quitter) *MusicScene {
	return &MusicScene{quitter: q}
}

func (ms *MusicScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.musicUI.Update()
}

func (ms *MusicScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.musicUI.UI.Draw(screen)
	ms.ecs.Draw(screen)
}

func (ms *MusicScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to advance fades before input is handled)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMusicControls(ms.quit))

	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawMusicHUD)

	ms.musicUI = ui.NewMusicUI(
		systems.GetOrCreateMusic(ms.ecs),
		store.MusicEnabled,
		func() { systems.ToggleMusic(ms.ecs) },
		func() { systems.FadeOutMusic(ms.ecs) },
		func() { systems.SetMusicVolume(ms.ecs, systems.GetMusicVolume()+cfg.Audio.MusicVolumeStep) },
		func() { systems.SetMusicVolume(ms.ecs, systems.GetMusicVolume()-cfg.Audio.MusicVolumeStep) },
	)

	// Start background music
	systems.StartMusic(ms.ecs)
}

func (ms *MusicScene) quit() {
	ms.musicUI.Close()
	if ms.quitter != nil {
		ms.quitter.Quit()
	}
}
