package crossing

import "time"

// TickClock is a monotonic simulation clock that advances one fixed
// interval per tick. Phase deadlines are compared against it, so a paused
// game also pauses its timers.
type TickClock struct {
	ticks    uint64
	interval time.Duration
}

// NewTickClock creates a clock for the given tick interval.
func NewTickClock(interval time.Duration) *TickClock {
	return &TickClock{interval: interval}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Now returns the elapsed simulated time.
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks) * c.interval
}
