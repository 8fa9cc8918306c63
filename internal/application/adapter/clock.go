// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import "time"

// Clock supplies the current time. Use cases take their reference time from
// it exactly once per decision, so a rule like the edit window cannot flap
// between comparisons within a single check.
type Clock interface {
	Now() time.Time
}
