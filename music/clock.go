package music

import (
	"sync"
	"time"
)

// Timer is a scheduled repeating callback.
type Timer interface {
	Stop()
}

// Scheduler runs fn every interval until the returned Timer is stopped.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}

// FrameClock is a Scheduler driven by explicit Advance calls, usually once
// per game tick. Callbacks run on the goroutine that calls Advance.
type FrameClock struct {
	mu      sync.Mutex
	timers  []*frameTimer
	elapsed time.Duration
}

type frameTimer struct {
	clock    *FrameClock
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

// NewFrameClock returns an idle FrameClock.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Every implements Scheduler. Intervals below one nanosecond are raised to one.
func (c *FrameClock) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		interval = 1
	}
	t := &frameTimer{clock: c, interval: interval, fn: fn}

	c.mu.Lock()
	t.next = c.elapsed + interval
	c.timers = append(c.timers, t)
	c.mu.Unlock()
	return t
}

// Advance moves the clock forward by dt and fires every callback that came
// due, in registration order. A timer fires at most once per Advance and
// its next deadline is counted from the time it actually fired, so two
// firings are always at least one interval apart. Timers registered from
// inside a callback wait for a later Advance.
func (c *FrameClock) Advance(dt time.Duration) {
	c.mu.Lock()
	c.elapsed += dt
	now := c.elapsed
	timers := make([]*frameTimer, len(c.timers))
	copy(timers, c.timers)
	c.mu.Unlock()

	for _, t := range timers {
		c.mu.Lock()
		due := !t.stopped && now >= t.next
		if due {
			t.next = now + t.interval
		}
		c.mu.Unlock()
		if due {
			t.fn()
		}
	}
}

// Elapsed returns the total time advanced so far.
func (c *FrameClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Pending returns the number of active timers.
func (c *FrameClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (t *frameTimer) Stop() {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			break
		}
	}
}

// WallClock is a Scheduler backed by time.Ticker. Each timer runs its
// callbacks on its own goroutine.
type WallClock struct{}

// Every implements Scheduler.
func (WallClock) Every(interval time.Duration, fn func()) Timer {
	t := &wallTimer{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type wallTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *wallTimer) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *wallTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
