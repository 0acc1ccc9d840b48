// Package animator plays tween animations against a millisecond clock that
// is advanced one frame at a time.
package animator

import (
	"sync"

	"github.com/matt-g-everett/ledtween/tween"
)

type run struct {
	animation tween.Animation
	listener  tween.Listener
	startMs   int64
	begun     bool
}

// A Clock is a tween.Animator driven by Tick. Listener callbacks and
// property updates happen on the goroutine calling Start or Tick.
type Clock struct {
	mu      sync.Mutex
	nowMs   int64
	running []*run
}

// NewClock creates an instance of a Clock starting at startMs.
func NewClock(startMs int64) *Clock {
	c := new(Clock)
	c.nowMs = startMs
	return c
}

// Start schedules animation from the clock's current time and fires
// OnStart straight away.
func (c *Clock) Start(animation tween.Animation, listener tween.Listener) {
	c.mu.Lock()
	r := &run{animation: animation, listener: listener, startMs: c.nowMs}
	c.running = append(c.running, r)
	c.mu.Unlock()

	if listener.OnStart != nil {
		listener.OnStart()
	}
}

// Tick advances the clock to nowMs, updating every running animation and
// ending those that have completed.
func (c *Clock) Tick(nowMs int64) {
	c.mu.Lock()
	if nowMs > c.nowMs {
		c.nowMs = nowMs
	}
	now := c.nowMs
	runs := c.running
	c.running = nil
	c.mu.Unlock()

	var remaining, finished []*run
	for _, r := range runs {
		elapsed := now - r.startMs - r.animation.StartDelay()
		if elapsed < 0 {
			remaining = append(remaining, r)
			continue
		}

		if !r.begun {
			r.animation.Begin()
			r.begun = true
		}

		fraction := 1.0
		if d := r.animation.Duration(); d > 0 && elapsed < d {
			fraction = float64(elapsed) / float64(d)
		}
		r.animation.Update(fraction)

		if fraction >= 1 {
			finished = append(finished, r)
		} else {
			remaining = append(remaining, r)
		}
	}

	// Animations started from a callback during this tick are already in
	// c.running.
	c.mu.Lock()
	c.running = append(remaining, c.running...)
	c.mu.Unlock()

	for _, r := range finished {
		if r.listener.OnEnd != nil {
			r.listener.OnEnd()
		}
	}
}

// Now gets the clock's current time in milliseconds.
func (c *Clock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowMs
}

// Running gets the number of animations that have not yet ended.
func (c *Clock) Running() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.running)
}
