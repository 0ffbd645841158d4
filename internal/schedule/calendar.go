// Package schedule holds the pure calendar logic behind the task lifecycle:
// day arithmetic, recurrence roll-forward and urgency classification. Nothing
// here touches a store or an ambient clock; "now" is always a parameter.
package schedule

import (
	"time"

	"property-keeper/internal/model"
)

const day = 24 * time.Hour

// DaysUntil returns the number of calendar days from now until due, rounding
// fractional days up. A due date twelve hours away, or even a few hours past,
// counts as due today (0); the count goes negative once a full day has passed.
func DaysUntil(now, due time.Time) int {
	diff := due.Sub(now)
	days := diff / day
	if diff%day > 0 {
		days++
	}
	return int(days)
}

// Advance moves a due date one frequency unit forward from the given date.
// Month- and year-based frequencies clamp day-of-month overflow, so Jan 31
// plus one month lands on the last day of February rather than rolling into
// March.
func Advance(freq model.Frequency, from time.Time) time.Time {
	switch freq {
	case model.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case model.FrequencyMonthly:
		return addMonthsClamped(from, 1)
	case model.FrequencyQuarterly:
		return addMonthsClamped(from, 3)
	case model.FrequencyBiannual:
		return addMonthsClamped(from, 6)
	case model.FrequencyYearly:
		return addMonthsClamped(from, 12)
	}
	return from
}

// addMonthsClamped adds months without the stdlib's day normalization:
// time.AddDate turns Jan 31 + 1 month into Mar 2/3.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, dayOfMonth := t.Date()
	hour, min, sec := t.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(firstOfTarget.Month(), firstOfTarget.Year()); dayOfMonth > last {
		dayOfMonth = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), dayOfMonth, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(month time.Month, year int) int {
	// Move to next month, roll back a day.
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)
	lastOfMonth := firstOfNextMonth.AddDate(0, 0, -1)
	return lastOfMonth.Day()
}
