// Package tracker owns the canonical in-memory challenge snapshot and
// serializes every mutation against the challenge store. Each mutating
// call re-fetches the latest persisted snapshot, applies a pure transform,
// writes the whole snapshot back, and notifies subscribers. There is no
// cached copy to go stale, which closes the lost-update window between
// back-to-back mutations.
package tracker

import (
	"sync"
	"time"

	"github.com/hard75/hard75/internal/completion"
	apperrors "github.com/hard75/hard75/internal/errors"
	"github.com/hard75/hard75/internal/logger"
	"github.com/hard75/hard75/internal/models"
	"github.com/hard75/hard75/internal/revision"
	"github.com/hard75/hard75/internal/storage"
	"github.com/hard75/hard75/internal/unlock"
)

// Tracker is the process-lifetime state container. Construct one at
// startup and share it; it is safe for use from a single logical actor and
// internally serializes mutating calls.
type Tracker struct {
	mu          sync.Mutex
	store       *storage.ChallengeStore
	subscribers []func(models.Challenge)

	// Now supplies wall-clock time for completion timestamps and unlock
	// checks; tests replace it.
	Now func() time.Time
}

// New creates a tracker over the given store
func New(store *storage.ChallengeStore) *Tracker {
	return &Tracker{
		store: store,
		Now:   time.Now,
	}
}

// Subscribe registers an observer invoked with the new snapshot after
// every successful mutation.
func (t *Tracker) Subscribe(fn func(models.Challenge)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subscribers = append(t.subscribers, fn)
}

func (t *Tracker) notify(ch models.Challenge) {
	for _, fn := range t.subscribers {
		fn(ch)
	}
}

// Challenge returns the latest persisted snapshot
func (t *Tracker) Challenge() (models.Challenge, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Load()
}

// Initialize creates a fresh challenge starting at startDate
func (t *Tracker) Initialize(startDate time.Time) (models.Challenge, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ch, err := t.store.Initialize(startDate)
	if err != nil {
		return models.Challenge{}, err
	}
	t.notify(ch)
	return ch, nil
}

// mutateDay applies fn to the day at index against the latest snapshot,
// persists the result in one write, and notifies subscribers.
func (t *Tracker) mutateDay(index int, fn func(models.Day) (models.Day, error)) (models.Challenge, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch, err := t.store.Load()
	if err != nil {
		return models.Challenge{}, err
	}
	day, err := ch.Day(index)
	if err != nil {
		return models.Challenge{}, err
	}
	updated, err := fn(day)
	if err != nil {
		return models.Challenge{}, err
	}
	ch, err = t.store.UpdateDay(ch, updated)
	if err != nil {
		return models.Challenge{}, err
	}
	t.notify(ch)
	return ch, nil
}

// mutateAttempt clones the day's current attempt, applies fn, and runs the
// shared promotion/demotion transition before replacing it. Every per-field
// update funnels through here so the rule is applied identically regardless
// of which requirement changed.
func (t *Tracker) mutateAttempt(index int, fn func(*models.Attempt)) (models.Challenge, error) {
	return t.mutateDay(index, func(d models.Day) (models.Day, error) {
		cur, err := d.CurrentAttempt()
		if err != nil {
			return models.Day{}, err
		}
		next := cur.Clone()
		fn(&next)
		next = completion.Transition(next, t.Now())
		return d.WithCurrentAttempt(next)
	})
}

// ToggleTask flips the completed flag of one task in the day's current
// attempt. An unknown task ID fails validation before anything is
// persisted or subscribers are notified.
func (t *Tracker) ToggleTask(dayIndex int, taskID string) (models.Challenge, error) {
	return t.mutateDay(dayIndex, func(d models.Day) (models.Day, error) {
		cur, err := d.CurrentAttempt()
		if err != nil {
			return models.Day{}, err
		}
		next := cur.Clone()
		found := false
		for i, task := range next.Tasks {
			if task.ID == taskID {
				next.Tasks[i].Completed = !task.Completed
				found = true
				break
			}
		}
		if !found {
			return models.Day{}, apperrors.NewValidation("no such task: %q", taskID)
		}
		next = completion.Transition(next, t.Now())
		return d.WithCurrentAttempt(next)
	})
}

// SetMood records the mood for the day's current attempt
func (t *Tracker) SetMood(dayIndex int, mood models.Mood) (models.Challenge, error) {
	return t.mutateAttempt(dayIndex, func(a *models.Attempt) {
		a.Mood = mood
	})
}

// ClearMood unsets the mood, demoting the attempt if it was completed
func (t *Tracker) ClearMood(dayIndex int) (models.Challenge, error) {
	return t.mutateAttempt(dayIndex, func(a *models.Attempt) {
		a.Mood = ""
	})
}

// SetWeight records the weight entry; it must be strictly positive
func (t *Tracker) SetWeight(dayIndex int, weight float64) (models.Challenge, error) {
	if weight <= 0 {
		return models.Challenge{}, apperrors.NewValidation("weight must be greater than 0, got %v", weight)
	}
	return t.mutateAttempt(dayIndex, func(a *models.Attempt) {
		a.Weight = &weight
	})
}

// ClearWeight unsets the weight entry
func (t *Tracker) ClearWeight(dayIndex int) (models.Challenge, error) {
	return t.mutateAttempt(dayIndex, func(a *models.Attempt) {
		a.Weight = nil
	})
}

// SetPhoto records the progress photo URI. The capture/copy operation is
// the caller's collaborator and must have resolved before this is called.
func (t *Tracker) SetPhoto(dayIndex int, uri string) (models.Challenge, error) {
	if uri == "" {
		return models.Challenge{}, apperrors.NewValidation("photo uri must not be empty")
	}
	return t.mutateAttempt(dayIndex, func(a *models.Attempt) {
		a.PhotoURI = uri
	})
}

// ClearPhoto unsets the progress photo
func (t *Tracker) ClearPhoto(dayIndex int) (models.Challenge, error) {
	return t.mutateAttempt(dayIndex, func(a *models.Attempt) {
		a.PhotoURI = ""
	})
}

// CompleteAttempt is the explicit completion action. When requirements are
// unmet it reports them and changes nothing; on success the attempt is
// stamped and the caller may run its continuation (celebration and the
// like).
func (t *Tracker) CompleteAttempt(dayIndex int) ([]completion.Category, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch, err := t.store.Load()
	if err != nil {
		return nil, false, err
	}
	day, err := ch.Day(dayIndex)
	if err != nil {
		return nil, false, err
	}
	cur, err := day.CurrentAttempt()
	if err != nil {
		return nil, false, err
	}

	next, unmet, done := completion.Complete(cur.Clone(), t.Now())
	if !done {
		// reports unmet requirements without touching state
		return unmet, false, nil
	}

	updated, err := day.WithCurrentAttempt(next)
	if err != nil {
		return nil, false, err
	}
	ch, err = t.store.UpdateDay(ch, updated)
	if err != nil {
		return nil, false, err
	}
	t.notify(ch)
	return nil, true, nil
}

// StartNewAttempt appends a fresh attempt to the day, templated from the
// day's current task list so any prior bulk revision is reflected. A
// manual user action only; a prior completed attempt keeps the day done.
func (t *Tracker) StartNewAttempt(dayIndex int) (models.Challenge, error) {
	return t.mutateDay(dayIndex, func(d models.Day) (models.Day, error) {
		cur, err := d.CurrentAttempt()
		if err != nil {
			return models.Day{}, err
		}
		return d.WithNewAttempt(cur.Tasks), nil
	})
}

// Template returns the active task template: the current day's task list
// with completion state stripped.
func (t *Tracker) Template() ([]models.Task, error) {
	ch, err := t.Challenge()
	if err != nil {
		return nil, err
	}
	day, err := ch.Day(ch.CurrentDayIndex)
	if err != nil {
		return nil, err
	}
	cur, err := day.CurrentAttempt()
	if err != nil {
		return nil, err
	}
	return models.FreshTasks(cur.Tasks), nil
}

// ReviseTasks replaces the active task template and propagates it across
// all incomplete and future days in one batch write. Returns the number of
// days touched; zero when the template is unchanged.
func (t *Tracker) ReviseTasks(template []models.Task) (int, error) {
	if len(template) == 0 {
		return 0, apperrors.NewValidation("task template must not be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ch, err := t.store.Load()
	if err != nil {
		return 0, err
	}

	day, err := ch.Day(ch.CurrentDayIndex)
	if err != nil {
		return 0, err
	}
	cur, err := day.CurrentAttempt()
	if err != nil {
		return 0, err
	}
	if revision.SameTemplate(cur.Tasks, template) {
		logger.Debug("Task template unchanged, skipping revision")
		return 0, nil
	}

	changed, err := revision.Apply(ch.Days, ch.CurrentDayIndex, template)
	if err != nil {
		return 0, err
	}
	ch, err = t.store.UpdateDays(ch, changed)
	if err != nil {
		return 0, err
	}
	t.notify(ch)
	return len(changed), nil
}

// Navigate moves the advisory current-day pointer. The unlock policy gates
// the move; a blocked navigation is a silent no-op reported via ok.
func (t *Tracker) Navigate(dayIndex int) (models.Challenge, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch, err := t.store.Load()
	if err != nil {
		return models.Challenge{}, false, err
	}
	if !unlock.CanNavigate(ch.Days, dayIndex, ch.StartDate, t.Now()) {
		return ch, false, nil
	}
	ch.CurrentDayIndex = dayIndex
	if err := t.store.Save(ch); err != nil {
		return models.Challenge{}, false, err
	}
	t.notify(ch)
	return ch, true, nil
}

// Replace swaps in an imported challenge wholesale. Validation must have
// already passed; this is the destructive half of an import.
func (t *Tracker) Replace(ch models.Challenge) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Save(ch); err != nil {
		return err
	}
	t.notify(ch)
	return nil
}

// Reset destroys the current challenge and starts a fresh one. Irreversible;
// callers confirm with the user first. The weight-unit preference survives.
func (t *Tracker) Reset(startDate time.Time) (models.Challenge, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Clear(); err != nil {
		return models.Challenge{}, err
	}
	ch, err := t.store.Initialize(startDate)
	if err != nil {
		return models.Challenge{}, err
	}
	t.notify(ch)
	return ch, nil
}
