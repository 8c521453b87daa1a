// Package unlock implements the time-gated and completion-gated navigation
// rule deciding which days the user may currently view or edit. The gate
// is advisory: it lives at the navigation entry point, not in the store.
package unlock

import (
	"time"

	"github.com/hard75/hard75/internal/constants"
	"github.com/hard75/hard75/internal/models"
)

// midnight normalizes t to local midnight so unlock transitions happen
// exactly at midnight regardless of the challenge's start time-of-day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MaxUnlockedDay returns the highest 1-based day index the time gate
// allows, clamped to [1, 75].
func MaxUnlockedDay(startDate, now time.Time) int {
	// DST makes some midnight-to-midnight gaps 23 or 25 hours; rounding
	// the gap to the nearest day recovers the calendar-day count.
	gap := midnight(now).Sub(midnight(startDate))
	elapsed := int((gap + 12*time.Hour) / (24 * time.Hour))
	day := elapsed + 1
	if day < 1 {
		day = 1
	}
	if day > constants.ChallengeDays {
		day = constants.ChallengeDays
	}
	return day
}

// CanNavigate reports whether the day at 1-based index is currently
// navigable: the time gate must allow it and every prior day must be
// completed. Failing either gate silently blocks; no error is surfaced.
func CanNavigate(days []models.Day, index int, startDate, now time.Time) bool {
	if index < 1 || index > len(days) {
		return false
	}
	if index > MaxUnlockedDay(startDate, now) {
		return false
	}
	for _, d := range days[:index-1] {
		if !d.Completed() {
			return false
		}
	}
	return true
}

// UntilNextUnlock returns the countdown to the next local midnight, purely
// for display.
func UntilNextUnlock(now time.Time) time.Duration {
	next := midnight(now).AddDate(0, 0, 1)
	return next.Sub(now)
}
