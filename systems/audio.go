package systems

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/musicbox/assets"
	"github.com/automoto/musicbox/components"
	cfg "github.com/automoto/musicbox/config"
	"github.com/automoto/musicbox/music"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalClock        *music.FrameClock
	globalMusic        *music.Controller
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context and music controller (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalClock = music.NewFrameClock()

		var host music.Host
		if cfg.Debug.NoAudio {
			log.Printf("[audio] audio disabled, music controls are no-ops")
		} else {
			globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
			globalAudioLoader = assets.NewDirAudioLoader(globalAudioContext, cfg.Sound.AssetRoot)
			host = music.NewEbitenHost(globalAudioContext, globalAudioLoader)
		}

		opts := music.DefaultOptions()
		opts.Scheduler = globalClock
		globalMusic = music.NewController(host, opts)
	})
}

// UseMusicController replaces the global controller and the clock driving
// its fades. Must be called before any other audio function.
func UseMusicController(c *music.Controller, clock *music.FrameClock) {
	audioInitOnce.Do(func() {})
	globalMusic = c
	globalClock = clock
}

// MusicController returns the global music controller
func MusicController() *music.Controller {
	initGlobalAudio()
	return globalMusic
}

// PreloadMusic reads the music asset at startup so the first start does not
// block on disk.
func PreloadMusic() {
	initGlobalAudio()

	if globalAudioLoader == nil {
		return
	}
	if err := globalAudioLoader.Preload(cfg.Sound.Music); err != nil {
		log.Printf("[audio] preload %s: %v", cfg.Sound.Music, err)
	}
}

// UpdateAudio advances music fades by one tick and mirrors the controller
// into the Music component.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	globalClock.Advance(tickDuration())

	data := GetOrCreateMusic(e)
	syncMusicData(data)
}

func tickDuration() time.Duration {
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

func syncMusicData(data *components.MusicData) {
	data.Enabled = globalMusic.Enabled()
	data.Blocked = globalMusic.Blocked()
	data.Fading = globalMusic.Fading()
	data.Volume = globalMusic.Volume()
	data.State = globalMusic.State()
}

// StartMusic starts (or resumes) the background track
func StartMusic(e *ecs.ECS) {
	initGlobalAudio()
	globalMusic.Start()
	syncMusicData(GetOrCreateMusic(e))
}

// StopMusic immediately stops the background track and rewinds it
func StopMusic(e *ecs.ECS) {
	initGlobalAudio()
	globalMusic.Stop()
	syncMusicData(GetOrCreateMusic(e))
}

// ToggleMusic starts the music when it is disabled and stops it otherwise
func ToggleMusic(e *ecs.ECS) {
	initGlobalAudio()
	if globalMusic.Enabled() {
		globalMusic.Stop()
	} else {
		globalMusic.Start()
	}
	syncMusicData(GetOrCreateMusic(e))
}

// FadeOutMusic starts a music fade out transition of the default length
func FadeOutMusic(e *ecs.ECS) {
	initGlobalAudio()
	globalMusic.FadeOutDefault()
	syncMusicData(GetOrCreateMusic(e))
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	initGlobalAudio()
	globalMusic.SetVolume(volume)
	syncMusicData(GetOrCreateMusic(e))
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	initGlobalAudio()
	return globalMusic.Volume()
}

// GetOrCreateMusic returns the singleton Music component for this ECS, creating it if needed
func GetOrCreateMusic(e *ecs.ECS) *components.MusicData {
	initGlobalAudio()

	entry, ok := components.Music.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Music))
		components.Music.SetValue(entry, components.MusicData{
			Enabled: globalMusic.Enabled(),
			Volume:  globalMusic.Volume(),
			State:   globalMusic.State(),
		})
	}
	return components.Music.Get(entry)
}
