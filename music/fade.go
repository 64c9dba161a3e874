package music

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade is one linear fade-out sequence. The tween runs over step units
// rather than seconds: each timer tick advances it by exactly one step.
// restoreVolume is applied once the fade completes or is cancelled; it
// differs from startVolume only when this fade replaced an earlier one.
type fade struct {
	timer         Timer
	tween         *gween.Tween
	startVolume   float64
	restoreVolume float64
	steps         int
	step          int
}

func newFade(startVolume, restoreVolume float64, steps int) *fade {
	if steps < 1 {
		steps = 1
	}
	return &fade{
		tween:         gween.New(1, 0, float32(steps), ease.Linear),
		startVolume:   startVolume,
		restoreVolume: restoreVolume,
		steps:         steps,
	}
}

// next advances one step and returns the volume for it. done is true on
// the final step, whose volume is always zero.
func (f *fade) next() (volume float64, done bool) {
	f.step++
	k, finished := f.tween.Update(1)
	done = finished || f.step >= f.steps
	if done {
		return 0, true
	}
	return math.Max(0, f.startVolume*float64(k)), false
}

// fadeStepDelay is the delay between two fade steps: the duration split
// evenly over steps, floored to whole milliseconds and never below floor.
func fadeStepDelay(d time.Duration, steps int, floor time.Duration) time.Duration {
	if steps < 1 {
		steps = 1
	}
	perStep := (d / time.Duration(steps)).Truncate(time.Millisecond)
	if perStep < floor {
		return floor
	}
	return perStep
}
