package components

import (
	"github.com/automoto/musicbox/music"
	"github.com/yohamta/donburi"
)

// MusicData mirrors the music controller for renderers (singleton component)
type MusicData struct {
	Enabled bool        // musicEnabled flag
	Blocked bool        // Last play request refused by the platform
	Fading  bool        // Fade-out in progress
	Volume  float64     // 0.0 - 1.0, current handle volume
	State   music.State // Handle lifecycle state
}

var Music = donburi.NewComponentType[MusicData]()
