// Package mock provides test doubles for the integration suite.
package mock

import (
	"sync"
	"time"
)

// Clock is a controllable clock for tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a Clock frozen at the given time.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the frozen time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to an absolute time.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
