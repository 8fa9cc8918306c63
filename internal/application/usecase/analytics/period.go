// Package analytics buckets transactions by time window for reporting.
package analytics

import (
	"errors"
	"time"

	"github.com/money-manager/backend/internal/domain/entity"
)

// ErrInvalidPeriod is returned when a period query value is not recognized.
var ErrInvalidPeriod = errors.New("period must be 'weekly', 'monthly' or 'yearly'")

// PeriodKind selects the aggregation window.
type PeriodKind string

const (
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
)

// ParsePeriodKind parses a period query value. An empty value defaults to
// weekly.
func ParsePeriodKind(value string) (PeriodKind, error) {
	switch PeriodKind(value) {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return PeriodKind(value), nil
	case "":
		return PeriodWeekly, nil
	}
	return "", ErrInvalidPeriod
}

// PeriodBounds computes the inclusive [start, end] window of the given kind
// containing the reference time. Weekly windows begin on the user's week
// start day; monthly and yearly windows follow the calendar and ignore it.
func PeriodBounds(kind PeriodKind, reference time.Time, weekStart entity.WeekStartDay) (time.Time, time.Time) {
	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())

	switch kind {
	case PeriodWeekly:
		firstWeekday := time.Monday
		if weekStart == entity.WeekStartSunday {
			firstWeekday = time.Sunday
		}
		offset := (int(day.Weekday()) - int(firstWeekday) + 7) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	case PeriodYearly:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, reference.Location())
		return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	default: // PeriodMonthly
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}
}
