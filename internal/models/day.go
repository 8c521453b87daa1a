package models

import "errors"

// ErrNoAttempts is returned when a day's attempt list is empty. Days are
// created with one attempt and attempts are append-only, so this should
// never occur after initialization.
var ErrNoAttempts = errors.New("day has no attempts")

// Day is one of the 75 fixed challenge slots. Attempts is append-only,
// ordered by attempt number; the current attempt is always the last
// element.
type Day struct {
	Index    int       `json:"index"` // 1-based
	Date     string    `json:"date"`  // YYYY-MM-DD
	Attempts []Attempt `json:"attempts"`
}

// NewDay creates a day with exactly one attempt built from the default
// task template.
func NewDay(index int, date string) Day {
	return Day{
		Index:    index,
		Date:     date,
		Attempts: []Attempt{NewAttempt(1, DefaultTemplate())},
	}
}

// CurrentAttempt returns the last attempt
func (d Day) CurrentAttempt() (Attempt, error) {
	if len(d.Attempts) == 0 {
		return Attempt{}, ErrNoAttempts
	}
	return d.Attempts[len(d.Attempts)-1], nil
}

// WithNewAttempt returns a copy of the day with a fresh attempt appended,
// numbered len(attempts)+1 and templated from the given task list (the
// current template, reflecting any prior bulk revision). The receiver is
// unmodified.
func (d Day) WithNewAttempt(template []Task) Day {
	attempts := make([]Attempt, len(d.Attempts), len(d.Attempts)+1)
	copy(attempts, d.Attempts)
	attempts = append(attempts, NewAttempt(len(d.Attempts)+1, template))
	return Day{Index: d.Index, Date: d.Date, Attempts: attempts}
}

// WithCurrentAttempt returns a copy of the day with the last attempt
// replaced. Attempts before the current one are immutable history and
// cannot be replaced.
func (d Day) WithCurrentAttempt(a Attempt) (Day, error) {
	if len(d.Attempts) == 0 {
		return Day{}, ErrNoAttempts
	}
	attempts := make([]Attempt, len(d.Attempts))
	copy(attempts, d.Attempts)
	attempts[len(attempts)-1] = a
	return Day{Index: d.Index, Date: d.Date, Attempts: attempts}, nil
}

// Completed reports whether any attempt succeeded. Once one attempt
// completes, the day is permanently done even if a later attempt was
// started and left incomplete.
func (d Day) Completed() bool {
	for _, a := range d.Attempts {
		if a.Completed {
			return true
		}
	}
	return false
}
