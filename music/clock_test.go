package music

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameClock_FiresAtInterval(t *testing.T) {
	c := NewFrameClock()

	fired := 0
	c.Every(30*time.Millisecond, func() { fired++ })

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, 0, fired)

	c.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, fired)

	c.Advance(29 * time.Millisecond)
	assert.Equal(t, 1, fired)

	c.Advance(time.Millisecond)
	assert.Equal(t, 2, fired)
	assert.Equal(t, 60*time.Millisecond, c.Elapsed())
}

func TestFrameClock_FiresOncePerAdvance(t *testing.T) {
	c := NewFrameClock()

	fired := 0
	c.Every(10*time.Millisecond, func() { fired++ })

	c.Advance(35 * time.Millisecond)
	assert.Equal(t, 1, fired)

	// The next deadline counts from 35ms, not from 10ms.
	c.Advance(5 * time.Millisecond)
	assert.Equal(t, 1, fired)

	c.Advance(5 * time.Millisecond)
	assert.Equal(t, 2, fired)
}

func TestFrameClock_SpacingAtGameTicks(t *testing.T) {
	tick := time.Second / 60

	for _, interval := range []time.Duration{10 * time.Millisecond, 30 * time.Millisecond, 45 * time.Millisecond} {
		c := NewFrameClock()
		var fires []time.Duration
		c.Every(interval, func() { fires = append(fires, c.Elapsed()) })

		for i := 0; i < 120; i++ {
			c.Advance(tick)
		}

		require.NotEmpty(t, fires, "interval %s", interval)
		assert.GreaterOrEqual(t, fires[0], interval)
		for i := 1; i < len(fires); i++ {
			assert.GreaterOrEqual(t, fires[i]-fires[i-1], interval, "interval %s, fire %d", interval, i)
		}
	}
}

func TestFrameClock_StopFromCallback(t *testing.T) {
	c := NewFrameClock()

	fired := 0
	var timer Timer
	timer = c.Every(10*time.Millisecond, func() {
		fired++
		if fired == 2 {
			timer.Stop()
		}
	})

	for i := 0; i < 10; i++ {
		c.Advance(10 * time.Millisecond)
	}
	assert.Equal(t, 2, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestFrameClock_StopTwice(t *testing.T) {
	c := NewFrameClock()
	a := c.Every(time.Millisecond, func() {})
	c.Every(time.Millisecond, func() {})

	a.Stop()
	a.Stop()
	assert.Equal(t, 1, c.Pending())
}

func TestFrameClock_TimerAddedDuringAdvanceWaits(t *testing.T) {
	c := NewFrameClock()

	inner := 0
	var outer Timer
	outer = c.Every(10*time.Millisecond, func() {
		outer.Stop()
		c.Every(10*time.Millisecond, func() { inner++ })
	})

	c.Advance(50 * time.Millisecond)
	assert.Equal(t, 0, inner)

	c.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, inner)
}

func TestWallClock_TicksUntilStopped(t *testing.T) {
	var ticks atomic.Int32
	timer := WallClock{}.Every(2*time.Millisecond, func() { ticks.Add(1) })

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	timer.Stop()
	timer.Stop()
	stoppedAt := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, ticks.Load(), stoppedAt+1)
}
