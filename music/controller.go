package music

import (
	"errors"
	"io"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/musicbox/config"
	"github.com/automoto/musicbox/store"
)

// State is the lifecycle state of the playback handle.
type State int

const (
	StateUninitialized State = iota
	StatePlaying
	StatePaused
	StateFadingOut
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFadingOut:
		return "fading"
	default:
		return "unknown"
	}
}

// Options configures a Controller. Zero fields fall back to DefaultOptions,
// except Volume: zero creates a muted track and only a negative Volume
// takes the default.
type Options struct {
	Source       string        // asset path of the looping track
	Volume       float64       // volume applied when the handle is created
	FadeDuration time.Duration // used by FadeOutDefault
	FadeSteps    int
	MinFadeStep  time.Duration
	Scheduler    Scheduler
	Enabled      *store.Bool // flag mirrored by Start and Stop
	Logger       *log.Logger
	Debug        bool // log swallowed playback errors
}

// DefaultOptions returns options built from config.Audio and config.Sound.
// The scheduler is a WallClock; code running inside a game loop should
// replace it with a FrameClock advanced once per tick.
func DefaultOptions() Options {
	return Options{
		Source:       cfg.Sound.Music,
		Volume:       cfg.Audio.DefaultMusicVol,
		FadeDuration: cfg.Audio.MusicFadeDuration,
		FadeSteps:    cfg.Audio.MusicFadeSteps,
		MinFadeStep:  cfg.Audio.MusicFadeMinStep,
		Scheduler:    WallClock{},
		Enabled:      store.MusicEnabled,
		Logger:       log.Default(),
		Debug:        cfg.Debug.LogAudio,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Source == "" {
		o.Source = d.Source
	}
	if o.Volume < 0 {
		o.Volume = d.Volume
	}
	o.Volume = clampVolume(o.Volume)
	if o.FadeDuration <= 0 {
		o.FadeDuration = d.FadeDuration
	}
	if o.FadeSteps <= 0 {
		o.FadeSteps = d.FadeSteps
	}
	if o.MinFadeStep <= 0 {
		o.MinFadeStep = d.MinFadeStep
	}
	if o.Scheduler == nil {
		o.Scheduler = d.Scheduler
	}
	if o.Enabled == nil {
		o.Enabled = d.Enabled
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}

// Controller owns the single looping background track and the
// musicEnabled flag derived from it.
//
// All methods are safe for concurrent use. Subscribers of the enabled flag
// are notified after the controller state has been updated and unlocked, so
// they may read it (Volume, Blocked, State). They must not call Start, Stop
// or Close synchronously.
type Controller struct {
	// opMu orders the flag-writing operations and their notifications.
	opMu    sync.Mutex
	mu      sync.Mutex
	host    Host
	opts    Options
	handle  Handle
	fade    *fade
	playing bool
	blocked bool
	lastErr error
}

// NewController creates a controller that opens its handle from host on
// the first Start. A nil host makes every operation a no-op.
func NewController(host Host, opts Options) *Controller {
	return &Controller{
		host: host,
		opts: opts.withDefaults(),
	}
}

// Start creates the handle if needed and asks it to play. Playback errors
// are not returned: they are recorded in Blocked and LastError. The
// enabled flag becomes true even when playback did not begin.
func (c *Controller) Start() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.start() {
		c.opts.Enabled.Set(true)
	}
}

func (c *Controller) start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.host == nil || !c.host.Available() {
		return false
	}

	c.cancelFadeLocked(true)

	if c.handle == nil {
		h, err := c.host.Open(c.opts.Source)
		if err != nil {
			c.lastErr = err
			c.blocked = false
			c.debugf("[music] open %s: %v", c.opts.Source, err)
		} else {
			h.SetVolume(c.opts.Volume)
			c.handle = h
		}
	}

	if c.handle != nil {
		err := c.handle.Play()
		c.blocked = errors.Is(err, ErrPlaybackBlocked)
		c.lastErr = err
		c.playing = true
		if err != nil {
			c.debugf("[music] play: %v", err)
		}
	}
	return true
}

// Stop pauses the track and rewinds it to the beginning. A fade in
// progress is cancelled and its starting volume restored. Without a handle
// Stop does nothing.
func (c *Controller) Stop() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.stop() {
		c.opts.Enabled.Set(false)
	}
}

func (c *Controller) stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == nil {
		return false
	}
	c.cancelFadeLocked(true)
	c.stopLocked()
	return true
}

// FadeOutDefault fades out over the configured default duration.
func (c *Controller) FadeOutDefault() {
	c.FadeOut(c.opts.FadeDuration)
}

// FadeOut ramps the volume linearly to zero in FadeSteps steps spread over
// d, then stops the track and puts the volume back where it was. Calling
// it while another fade runs replaces that fade; the replacement continues
// from the current volume and still restores the original one.
func (c *Controller) FadeOut(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == nil {
		return
	}

	current := c.handle.Volume()
	restore := current
	if c.fade != nil {
		restore = c.fade.restoreVolume
		c.cancelFadeLocked(false)
	}

	f := newFade(current, restore, c.opts.FadeSteps)
	delay := fadeStepDelay(d, c.opts.FadeSteps, c.opts.MinFadeStep)
	c.fade = f
	f.timer = c.opts.Scheduler.Every(delay, func() { c.fadeStep(f) })
	c.debugf("[music] fade out over %s (%d steps of %s)", d, f.steps, delay)
}

func (c *Controller) fadeStep(f *fade) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.advanceFade(f) {
		c.opts.Enabled.Set(false)
	}
}

// advanceFade applies one step of f and reports whether it stopped the track.
func (c *Controller) advanceFade(f *fade) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Superseded or cancelled while this tick was queued.
	if c.fade != f {
		return false
	}

	volume, done := f.next()
	c.handle.SetVolume(volume)
	if !done {
		return false
	}

	f.timer.Stop()
	c.fade = nil
	c.stopLocked()
	c.handle.SetVolume(f.restoreVolume)
	return true
}

// SetVolume changes the track volume, clamped to [0, 1]. During a fade the
// new value is applied when the fade ends.
func (c *Controller) SetVolume(v float64) {
	v = clampVolume(v)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.opts.Volume = v
	if c.fade != nil {
		c.fade.restoreVolume = v
		return
	}
	if c.handle != nil {
		c.handle.SetVolume(v)
	}
}

// Close cancels any fade, pauses the track and releases the handle. The
// next Start opens a fresh handle.
func (c *Controller) Close() error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	closed, err := c.close()
	if closed {
		c.opts.Enabled.Set(false)
	}
	return err
}

func (c *Controller) close() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == nil {
		return false, nil
	}
	c.cancelFadeLocked(true)
	c.stopLocked()

	var err error
	if closer, ok := c.handle.(io.Closer); ok {
		err = closer.Close()
	}
	c.handle = nil
	return true, err
}

// Enabled reports the musicEnabled flag.
func (c *Controller) Enabled() bool {
	return c.opts.Enabled.Get()
}

// EnabledFlag returns the observable flag written by Start and Stop.
func (c *Controller) EnabledFlag() *store.Bool {
	return c.opts.Enabled
}

// Blocked reports whether the last play request was refused by the platform
// and the track has not started since. A refused request stays queued, so
// Blocked turns false by itself once the handle reports it is playing.
func (c *Controller) Blocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.blocked && c.handle != nil && c.handle.IsPlaying() {
		c.blocked = false
	}
	return c.blocked
}

// LastError returns the error swallowed by the most recent Start, if any.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Volume returns the handle's current volume, or the volume a new handle
// would be created with.
func (c *Controller) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == nil {
		return c.opts.Volume
	}
	return c.handle.Volume()
}

// Fading reports whether a fade-out is in progress.
func (c *Controller) Fading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fade != nil
}

// State returns the handle lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.handle == nil:
		return StateUninitialized
	case c.fade != nil:
		return StateFadingOut
	case c.playing:
		return StatePlaying
	default:
		return StatePaused
	}
}

func (c *Controller) stopLocked() {
	c.handle.Pause()
	if err := c.handle.Rewind(); err != nil {
		c.debugf("[music] rewind: %v", err)
	}
	c.playing = false
	c.blocked = false
}

// cancelFadeLocked stops the active fade timer. With restore set, the
// volume the fade started from is put back on the handle.
func (c *Controller) cancelFadeLocked(restore bool) {
	if c.fade == nil {
		return
	}
	c.fade.timer.Stop()
	if restore && c.handle != nil {
		c.handle.SetVolume(c.fade.restoreVolume)
	}
	c.fade = nil
}

func (c *Controller) debugf(format string, args ...any) {
	if !c.opts.Debug {
		return
	}
	c.opts.Logger.Printf(format, args...)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
