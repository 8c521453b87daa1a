// Package completion holds the pure rules deciding when an attempt or day
// counts as done, and the two progress figures the UI surfaces depend on.
package completion

import (
	"time"

	"github.com/hard75/hard75/internal/models"
)

// Category is one of the four independent requirement categories
type Category string

const (
	CategoryTasks  Category = "tasks"
	CategoryMood   Category = "mood"
	CategoryPhoto  Category = "photo"
	CategoryWeight Category = "weight"
)

// Categories lists the four requirement categories in display order
var Categories = []Category{CategoryTasks, CategoryMood, CategoryPhoto, CategoryWeight}

// Satisfied reports whether a single requirement category is met
func Satisfied(a models.Attempt, c Category) bool {
	switch c {
	case CategoryTasks:
		// Vacuously true on an empty template; the UI always seeds at
		// least one task.
		for _, t := range a.Tasks {
			if !t.Completed {
				return false
			}
		}
		return true
	case CategoryMood:
		return a.Mood != ""
	case CategoryPhoto:
		return a.PhotoURI != ""
	case CategoryWeight:
		return a.Weight != nil && *a.Weight > 0
	}
	return false
}

// IsAttemptComplete reports whether all four requirement categories are met
func IsAttemptComplete(a models.Attempt) bool {
	for _, c := range Categories {
		if !Satisfied(a, c) {
			return false
		}
	}
	return true
}

// Unmet returns the categories that are not yet satisfied
func Unmet(a models.Attempt) []Category {
	var out []Category
	for _, c := range Categories {
		if !Satisfied(a, c) {
			out = append(out, c)
		}
	}
	return out
}

// Progress is the coarse figure used by completion-gating logic: satisfied
// categories out of four.
func Progress(a models.Attempt) float64 {
	n := 0
	for _, c := range Categories {
		if Satisfied(a, c) {
			n++
		}
	}
	return float64(n) / float64(len(Categories))
}

// FineProgress is the per-item figure used by the visual day selector:
// each task counts individually, plus one point each for mood, weight and
// photo. Not interchangeable with Progress.
func FineProgress(a models.Attempt) float64 {
	total := len(a.Tasks) + 3
	if total == 0 {
		return 0
	}
	n := 0
	for _, t := range a.Tasks {
		if t.Completed {
			n++
		}
	}
	if Satisfied(a, CategoryMood) {
		n++
	}
	if Satisfied(a, CategoryWeight) {
		n++
	}
	if Satisfied(a, CategoryPhoto) {
		n++
	}
	return float64(n) / float64(total)
}

// Transition applies the shared promotion/demotion rule to a candidate
// next attempt, regardless of which field changed:
//   - completed and still complete: leave Completed and Timestamp alone
//     (no re-timestamping)
//   - completed but a category was retracted: demote, clear Timestamp
//   - not completed and now all four satisfied: promote, stamp now
//
// The candidate's Completed/Timestamp carry over from the previous state;
// callers build next by cloning the attempt and changing one field.
func Transition(next models.Attempt, now time.Time) models.Attempt {
	complete := IsAttemptComplete(next)
	switch {
	case next.Completed && complete:
		// no-op transition
	case next.Completed && !complete:
		next.Completed = false
		next.Timestamp = nil
	case !next.Completed && complete:
		next.Completed = true
		ts := now
		next.Timestamp = &ts
	}
	return next
}

// Complete is the explicit completion action. If the attempt does not
// satisfy all four categories it reports the unmet ones and returns the
// attempt unchanged; otherwise it marks the attempt completed at now.
func Complete(a models.Attempt, now time.Time) (models.Attempt, []Category, bool) {
	if unmet := Unmet(a); len(unmet) > 0 {
		return a, unmet, false
	}
	a.Completed = true
	ts := now
	a.Timestamp = &ts
	return a, nil, true
}

// CompletedDaysCount counts days with any completed attempt
func CompletedDaysCount(days []models.Day) int {
	n := 0
	for _, d := range days {
		if d.Completed() {
			n++
		}
	}
	return n
}

// StreakCount is the length of the maximal completed prefix of days,
// stopping at the first incomplete day. A strict consecutive-from-day-1
// streak, not a longest-run-anywhere streak.
func StreakCount(days []models.Day) int {
	n := 0
	for _, d := range days {
		if !d.Completed() {
			break
		}
		n++
	}
	return n
}
