package music

import (
	"errors"
	"time"
)

type fakeHandle struct {
	volume    float64
	playing   bool
	position  time.Duration
	playErr   error
	plays     int
	pauses    int
	rewinds   int
	closed    bool
	volumeLog []float64

	// When set, every SetVolume also records the clock time in stamps.
	clock  *FrameClock
	stamps []time.Duration
}

// Play records the request. A refused request leaves the handle silent
// until a test marks it playing.
func (h *fakeHandle) Play() error {
	h.plays++
	if h.playErr != nil {
		return h.playErr
	}
	h.playing = true
	return nil
}

func (h *fakeHandle) Pause() {
	h.pauses++
	h.playing = false
}

func (h *fakeHandle) Rewind() error {
	h.rewinds++
	h.position = 0
	return nil
}

func (h *fakeHandle) SetVolume(v float64) {
	h.volume = v
	h.volumeLog = append(h.volumeLog, v)
	if h.clock != nil {
		h.stamps = append(h.stamps, h.clock.Elapsed())
	}
}

func (h *fakeHandle) Volume() float64         { return h.volume }
func (h *fakeHandle) IsPlaying() bool         { return h.playing }
func (h *fakeHandle) Position() time.Duration { return h.position }

func (h *fakeHandle) Close() error {
	h.closed = true
	return nil
}

// resetLog forgets recorded volume changes so a test can look at one phase.
func (h *fakeHandle) resetLog() { h.volumeLog = nil }

type fakeHost struct {
	available bool
	openErr   error
	playErr   error
	opened    []*fakeHandle
	sources   []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{available: true}
}

func (h *fakeHost) Available() bool { return h.available }

func (h *fakeHost) Open(src string) (Handle, error) {
	h.sources = append(h.sources, src)
	if h.openErr != nil {
		return nil, h.openErr
	}
	handle := &fakeHandle{playErr: h.playErr}
	h.opened = append(h.opened, handle)
	return handle, nil
}

func (h *fakeHost) last() *fakeHandle {
	if len(h.opened) == 0 {
		return nil
	}
	return h.opened[len(h.opened)-1]
}

var errDecode = errors.New("decode failed")
