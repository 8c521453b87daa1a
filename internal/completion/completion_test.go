package completion

import (
	"math"
	"testing"
	"time"

	"github.com/hard75/hard75/internal/models"
)

func readyAttempt() models.Attempt {
	w := 180.5
	return models.Attempt{
		Number:   1,
		Mood:     models.MoodGood,
		Weight:   &w,
		PhotoURI: "/photos/day-1.jpg",
		Tasks: []models.Task{
			{ID: "water", Title: "Water", Completed: true},
			{ID: "diet", Title: "Diet", Completed: true},
		},
	}
}

func TestIsAttemptComplete(t *testing.T) {
	zero := 0.0
	tests := []struct {
		name   string
		mutate func(*models.Attempt)
		want   bool
	}{
		{"all satisfied", func(a *models.Attempt) {}, true},
		{"task pending", func(a *models.Attempt) { a.Tasks[1].Completed = false }, false},
		{"mood unset", func(a *models.Attempt) { a.Mood = "" }, false},
		{"photo unset", func(a *models.Attempt) { a.PhotoURI = "" }, false},
		{"weight unset", func(a *models.Attempt) { a.Weight = nil }, false},
		{"weight zero", func(a *models.Attempt) { a.Weight = &zero }, false},
		{"empty tasks vacuously satisfied", func(a *models.Attempt) { a.Tasks = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := readyAttempt()
			tt.mutate(&a)
			if got := IsAttemptComplete(a); got != tt.want {
				t.Errorf("IsAttemptComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_CoarseCountsCategories(t *testing.T) {
	a := readyAttempt()
	if got := Progress(a); got != 1.0 {
		t.Errorf("Progress = %v, want 1.0", got)
	}

	a.Mood = ""
	a.PhotoURI = ""
	if got := Progress(a); got != 0.5 {
		t.Errorf("Progress = %v, want 0.5", got)
	}
}

func TestFineProgress_CountsTasksIndividually(t *testing.T) {
	a := readyAttempt()
	a.Tasks[1].Completed = false
	a.PhotoURI = ""

	// 1 of 2 tasks + mood + weight = 3 of 5 items
	want := 3.0 / 5.0
	if got := FineProgress(a); math.Abs(got-want) > 1e-9 {
		t.Errorf("FineProgress = %v, want %v", got, want)
	}

	// The two formulas genuinely diverge here: coarse is 2 of 4
	if got := Progress(a); got != 0.5 {
		t.Errorf("Progress = %v, want 0.5", got)
	}
}

func TestTransition_PromotesWhenAllSatisfied(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	a := readyAttempt()

	got := Transition(a, now)
	if !got.Completed {
		t.Fatal("expected promotion")
	}
	if got.Timestamp == nil || !got.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, now)
	}
}

func TestTransition_DemotesAndClearsTimestamp(t *testing.T) {
	now := time.Now()
	a := Transition(readyAttempt(), now)

	a.Mood = ""
	got := Transition(a, now.Add(time.Hour))
	if got.Completed {
		t.Fatal("expected demotion")
	}
	if got.Timestamp != nil {
		t.Error("timestamp must be cleared on demotion")
	}
}

func TestTransition_NoReTimestampOnNoOp(t *testing.T) {
	first := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	a := Transition(readyAttempt(), first)

	// Editing a field while still complete must not re-stamp
	later := first.Add(6 * time.Hour)
	w := 179.0
	a.Weight = &w
	got := Transition(a, later)

	if !got.Completed {
		t.Fatal("attempt should stay completed")
	}
	if !got.Timestamp.Equal(first) {
		t.Errorf("timestamp = %v, want original %v", got.Timestamp, first)
	}
}

func TestComplete_ReportsUnmet(t *testing.T) {
	a := readyAttempt()
	a.Mood = ""
	a.PhotoURI = ""

	got, unmet, ok := Complete(a, time.Now())
	if ok {
		t.Fatal("expected failure")
	}
	if got.Completed || got.Timestamp != nil {
		t.Error("failed completion must not change state")
	}
	if len(unmet) != 2 {
		t.Fatalf("unmet = %v, want mood and photo", unmet)
	}
}

func TestComplete_Succeeds(t *testing.T) {
	now := time.Now()
	got, unmet, ok := Complete(readyAttempt(), now)
	if !ok || len(unmet) != 0 {
		t.Fatalf("expected success, unmet=%v", unmet)
	}
	if !got.Completed || got.Timestamp == nil {
		t.Error("successful completion must stamp the attempt")
	}
}

func dayWithCompletion(index int, completed bool) models.Day {
	d := models.NewDay(index, "2024-01-01")
	if completed {
		a, _ := d.CurrentAttempt()
		ts := time.Now()
		a.Completed = true
		a.Timestamp = &ts
		d, _ = d.WithCurrentAttempt(a)
	}
	return d
}

func TestStreakCount_StopsAtFirstIncomplete(t *testing.T) {
	days := []models.Day{
		dayWithCompletion(1, true),
		dayWithCompletion(2, true),
		dayWithCompletion(3, false),
		dayWithCompletion(4, true),
	}

	if got := StreakCount(days); got != 2 {
		t.Errorf("StreakCount = %d, want 2", got)
	}
	if got := CompletedDaysCount(days); got != 3 {
		t.Errorf("CompletedDaysCount = %d, want 3", got)
	}
}
