package game

import "time"

// Clock is the fixed-interval movement timer. It fires at most once per
// Advance; time beyond the interval is dropped, so a stalled frame slows the
// snake down instead of making it catch up.
type Clock struct {
	Interval time.Duration
	elapsed  time.Duration
}

// NewClock returns a clock that fires every interval.
func NewClock(interval time.Duration) Clock {
	return Clock{Interval: interval}
}

// Advance adds dt and reports whether a movement step is due.
func (c *Clock) Advance(dt time.Duration) bool {
	if dt > 0 {
		c.elapsed += dt
	}
	if c.elapsed < c.Interval {
		return false
	}
	c.elapsed = 0
	return true
}

// Elapsed is the time accumulated towards the next step.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}
