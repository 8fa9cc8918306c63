package adapters

import "time"

// SystemClock implements adapter.Clock using the wall clock in UTC.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time.
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}
