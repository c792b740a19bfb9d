package schedule

import (
	"sync"
	"time"
)

// Clock provides the current time. Services take a Clock instead of calling
// time.Now so tests can pin the conversation to a known instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for tests.
type ManualClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewManualClock returns a clock initialised to the supplied time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current instant tracked by the clock.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set updates the clock to the provided time.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance moves the clock forward by the provided duration and returns the
// updated time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.current = c.current.Add(d)
	updated := c.current
	c.mu.Unlock()
	return updated
}
