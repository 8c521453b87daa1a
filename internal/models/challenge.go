package models

import (
	"fmt"
	"time"

	"github.com/hard75/hard75/internal/constants"
)

// Challenge is the full persisted record for one 75-day run. Days always
// has exactly 75 elements with Days[i].Index == i+1. StartDate is immutable
// once set except by an explicit reset, which recreates the whole record.
// CurrentDayIndex is advisory navigation state (1-based); the unlock
// policy, not this field, gates access.
type Challenge struct {
	Version         int       `json:"version"`
	StartDate       time.Time `json:"startDate"`
	Days            []Day     `json:"days"`
	CurrentDayIndex int       `json:"currentDayIndex"`
}

// NewChallengeDays builds the 75 day slots. Day i (1-indexed) gets the
// calendar date startDate + (i-1) days, date-only, independent of
// startDate's time-of-day.
func NewChallengeDays(startDate time.Time) []Day {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	days := make([]Day, constants.ChallengeDays)
	for i := range days {
		date := start.AddDate(0, 0, i).Format(constants.DateFormat)
		days[i] = NewDay(i+1, date)
	}
	return days
}

// NewChallenge creates a fresh challenge starting at the given time
func NewChallenge(startDate time.Time) Challenge {
	return Challenge{
		Version:         constants.SchemaVersion,
		StartDate:       startDate,
		Days:            NewChallengeDays(startDate),
		CurrentDayIndex: 1,
	}
}

// Day returns the day at the given 1-based index
func (c Challenge) Day(index int) (Day, error) {
	if index < 1 || index > len(c.Days) {
		return Day{}, fmt.Errorf("day index out of range: %d", index)
	}
	return c.Days[index-1], nil
}

// WithDay returns a copy of the challenge with the day whose index matches
// replaced. The receiver is unmodified.
func (c Challenge) WithDay(day Day) Challenge {
	days := make([]Day, len(c.Days))
	copy(days, c.Days)
	for i := range days {
		if days[i].Index == day.Index {
			days[i] = day
			break
		}
	}
	out := c
	out.Days = days
	return out
}

// WithDays returns a copy of the challenge with the whole day array
// replaced in one step, for batch updates.
func (c Challenge) WithDays(days []Day) Challenge {
	out := c
	out.Days = make([]Day, len(days))
	copy(out.Days, days)
	return out
}
