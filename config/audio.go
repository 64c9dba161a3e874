package config

import (
	"os"
	"time"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	MusicVolumeStep   float64       // change per volume key press
	MusicFadeDuration time.Duration // default fade-out length
	MusicFadeSteps    int           // discrete volume updates per fade
	MusicFadeMinStep  time.Duration // lower bound on the delay between steps
}

// SoundConfig maps logical music tracks to asset paths
type SoundConfig struct {
	AssetRoot string // directory static assets are served from
	Music     string // looping background track
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.35,
		MusicVolumeStep:   0.05,
		MusicFadeDuration: 600 * time.Millisecond,
		MusicFadeSteps:    20,
		MusicFadeMinStep:  10 * time.Millisecond,
	}

	Sound = SoundConfig{
		AssetRoot: "static",
		Music:     "/music.mp3",
	}
	if root := os.Getenv("MUSIC_ASSET_ROOT"); root != "" {
		Sound.AssetRoot = root
	}
}
