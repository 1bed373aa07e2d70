package tutor

import (
	"sync"
	"time"
)

// fakeClock drives the player deterministically. Callbacks run on the
// goroutine calling Advance, in due order, so scheduled advances are
// serialized with test actions exactly like the real single-threaded flow.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	when    time.Duration
	f       func()
	fired   bool
	stopped bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{}
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, when: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward, firing due timers in order. A callback
// may arm new timers; those fire too if they fall within the window.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.fired || t.stopped || t.when > target {
				continue
			}
			if next == nil || t.when < next.when {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.when
		next.fired = true
		f := next.f
		c.mu.Unlock()
		f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// pending counts timers that are armed but have neither fired nor been
// stopped.
func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// fireStopped invokes callbacks of stopped timers, simulating a timer that
// had already fired concurrently with Stop. The generation stamp must make
// these no-ops.
func (c *fakeClock) fireStopped() {
	c.mu.Lock()
	var fs []func()
	for _, t := range c.timers {
		if t.stopped && !t.fired {
			t.fired = true
			fs = append(fs, t.f)
		}
	}
	c.mu.Unlock()
	for _, f := range fs {
		f()
	}
}
