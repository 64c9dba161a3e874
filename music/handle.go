package music

import (
	"errors"
	"time"
)

var (
	// ErrPlaybackBlocked is returned by Handle.Play when the platform refuses
	// to start audio, usually because the user has not interacted yet.
	ErrPlaybackBlocked = errors.New("music: playback blocked until user interaction")

	// ErrNoAudio is returned by Host.Open when no audio output exists.
	ErrNoAudio = errors.New("music: no audio output available")
)

// Handle is a single looping playback resource.
type Handle interface {
	Play() error
	Pause()
	Rewind() error
	SetVolume(v float64)
	Volume() float64
	IsPlaying() bool
	Position() time.Duration
}

// Host opens playback handles. Available reports whether an audio output
// exists at all; when it does not, the controller does nothing.
type Host interface {
	Available() bool
	Open(src string) (Handle, error)
}
