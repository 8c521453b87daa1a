// Package revision propagates an edited task template across an
// in-progress challenge without corrupting already-completed history.
package revision

import (
	"github.com/mitchellh/hashstructure/v2"

	"github.com/hard75/hard75/internal/models"
)

// templateKey is the identity-only view of a template used to detect no-op
// edits: completion flags never matter for template equality.
type templateKey struct {
	IDs    []string
	Titles []string
}

func hashTemplate(tasks []models.Task) (uint64, error) {
	key := templateKey{
		IDs:    make([]string, len(tasks)),
		Titles: make([]string, len(tasks)),
	}
	for i, t := range tasks {
		key.IDs[i] = t.ID
		key.Titles[i] = t.Title
	}
	return hashstructure.Hash(key, hashstructure.FormatV2, nil)
}

// SameTemplate reports whether two templates have identical id/title sets
// in identical order.
func SameTemplate(a, b []models.Task) bool {
	ha, errA := hashTemplate(a)
	hb, errB := hashTemplate(b)
	if errA != nil || errB != nil {
		return false
	}
	return ha == hb
}

// rebuild constructs the new task list for one attempt: every task comes
// from the template, and a task whose id existed in the old list keeps its
// Completed flag so mid-challenge renames don't un-finish today's work.
func rebuild(old []models.Task, template []models.Task) []models.Task {
	prev := make(map[string]bool, len(old))
	for _, t := range old {
		prev[t.ID] = t.Completed
	}
	out := make([]models.Task, len(template))
	for i, t := range template {
		out[i] = models.Task{ID: t.ID, Title: t.Title, Completed: prev[t.ID]}
	}
	return out
}

// Apply propagates the new template to (a) every day whose current attempt
// is not completed and (b) every day strictly after currentIndex,
// regardless of completion state; future days have not been lived yet and
// are never protected history. Completed days at or before currentIndex
// are left untouched. The returned slice holds only the modified days, for
// a single batch write; it is empty when the template is unchanged.
func Apply(days []models.Day, currentIndex int, template []models.Task) ([]models.Day, error) {
	changed := make([]models.Day, 0, len(days))
	for _, d := range days {
		cur, err := d.CurrentAttempt()
		if err != nil {
			return nil, err
		}
		if cur.Completed && d.Index <= currentIndex {
			continue // protected history
		}
		cur.Tasks = rebuild(cur.Tasks, template)
		updated, err := d.WithCurrentAttempt(cur)
		if err != nil {
			return nil, err
		}
		changed = append(changed, updated)
	}
	return changed, nil
}
