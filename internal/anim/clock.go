package anim

import "time"

// Clock provides the time used to measure gesture velocities. Tests replace
// it with SetClock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the clock and returns the previous one so callers can
// restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a ManualClock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
