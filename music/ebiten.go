package music

import (
	"fmt"
	"time"

	"github.com/automoto/musicbox/assets"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenHost opens looping ebiten audio players through an AudioLoader.
type EbitenHost struct {
	context *audio.Context
	loader  *assets.AudioLoader
}

// NewEbitenHost returns a host for ctx. A nil context yields a host that
// reports itself unavailable, which is how headless runs disable music.
func NewEbitenHost(ctx *audio.Context, loader *assets.AudioLoader) *EbitenHost {
	return &EbitenHost{context: ctx, loader: loader}
}

// Available implements Host.
func (h *EbitenHost) Available() bool {
	return h != nil && h.context != nil && h.loader != nil
}

// Open implements Host.
func (h *EbitenHost) Open(src string) (Handle, error) {
	if !h.Available() {
		return nil, ErrNoAudio
	}
	player, err := h.loader.LoadMusic(src)
	if err != nil {
		return nil, fmt.Errorf("open music %s: %w", src, err)
	}
	return &ebitenHandle{player: player, context: h.context}, nil
}

type ebitenHandle struct {
	player  *audio.Player
	context *audio.Context
}

// Play starts the player. Until the context is ready (browsers need a user
// gesture first) the request is queued and ErrPlaybackBlocked is returned.
func (e *ebitenHandle) Play() error {
	e.player.Play()
	if !e.context.IsReady() {
		return ErrPlaybackBlocked
	}
	return nil
}

// IsPlaying reports whether the track is audible: a play request queued
// behind an unready context does not count.
func (e *ebitenHandle) IsPlaying() bool {
	return e.player.IsPlaying() && e.context.IsReady()
}

func (e *ebitenHandle) Pause()                  { e.player.Pause() }
func (e *ebitenHandle) Rewind() error           { return e.player.Rewind() }
func (e *ebitenHandle) SetVolume(v float64)     { e.player.SetVolume(v) }
func (e *ebitenHandle) Volume() float64         { return e.player.Volume() }
func (e *ebitenHandle) Position() time.Duration { return e.player.Position() }
func (e *ebitenHandle) Close() error            { return e.player.Close() }
