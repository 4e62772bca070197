package utils

import "time"

// Clock is scene time. It only moves when the scene ticks, so a paused
// scene resumes where it stopped.
type Clock struct {
	now time.Time
}

// NewClock starts a clock at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by dt seconds and returns the new time.
// Negative steps are ignored.
func (c *Clock) Advance(dt float64) time.Time {
	if dt > 0 {
		c.now = c.now.Add(time.Duration(dt * float64(time.Second)))
	}
	return c.now
}
