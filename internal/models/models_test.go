package models

import (
	"testing"
	"time"
)

func TestNewAttempt_FreshTasks(t *testing.T) {
	template := []Task{
		{ID: "water", Title: "Water", Completed: true},
		{ID: "diet", Title: "Diet", Completed: true},
	}

	a := NewAttempt(1, template)

	if a.Number != 1 {
		t.Errorf("Number = %d, want 1", a.Number)
	}
	if a.Completed {
		t.Error("new attempt should not be completed")
	}
	if a.Timestamp != nil {
		t.Error("new attempt should have nil timestamp")
	}
	if a.Mood != "" || a.Weight != nil || a.PhotoURI != "" {
		t.Error("mood/weight/photo should start unset")
	}
	for _, task := range a.Tasks {
		if task.Completed {
			t.Errorf("task %s should start uncompleted", task.ID)
		}
	}

	// Deep copy: mutating the attempt must not touch the template
	a.Tasks[0].Completed = true
	if !template[0].Completed {
		t.Error("template should be unaffected by attempt mutation")
	}
}

func TestNewDay_HasOneAttemptFromDefaults(t *testing.T) {
	d := NewDay(3, "2024-01-03")

	if d.Index != 3 || d.Date != "2024-01-03" {
		t.Errorf("unexpected day identity: %+v", d)
	}
	if len(d.Attempts) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(d.Attempts))
	}
	if len(d.Attempts[0].Tasks) != len(DefaultTemplate()) {
		t.Errorf("expected default template tasks")
	}
}

func TestNewChallengeDays_DatesIgnoreTimeOfDay(t *testing.T) {
	// Late-evening start must not shift day dates
	start := time.Date(2024, 1, 1, 23, 45, 0, 0, time.Local)
	days := NewChallengeDays(start)

	if len(days) != 75 {
		t.Fatalf("expected 75 days, got %d", len(days))
	}
	if days[0].Date != "2024-01-01" {
		t.Errorf("day 1 date = %s, want 2024-01-01", days[0].Date)
	}
	if days[74].Date != "2024-03-15" {
		t.Errorf("day 75 date = %s, want 2024-03-15", days[74].Date)
	}
	for i, d := range days {
		if d.Index != i+1 {
			t.Fatalf("days[%d].Index = %d, want %d", i, d.Index, i+1)
		}
	}
}

func TestCurrentAttempt_EmptyDayFails(t *testing.T) {
	d := Day{Index: 1, Date: "2024-01-01"}
	if _, err := d.CurrentAttempt(); err != ErrNoAttempts {
		t.Errorf("expected ErrNoAttempts, got %v", err)
	}
}

func TestWithNewAttempt_AppendsAndLeavesOriginal(t *testing.T) {
	d := NewDay(1, "2024-01-01")
	template := []Task{{ID: "custom", Title: "Custom", Completed: true}}

	d2 := d.WithNewAttempt(template)

	if len(d.Attempts) != 1 {
		t.Error("original day mutated")
	}
	if len(d2.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(d2.Attempts))
	}
	cur, err := d2.CurrentAttempt()
	if err != nil {
		t.Fatal(err)
	}
	if cur.Number != 2 {
		t.Errorf("attempt number = %d, want 2", cur.Number)
	}
	if len(cur.Tasks) != 1 || cur.Tasks[0].ID != "custom" {
		t.Error("new attempt should use the supplied template")
	}
	if cur.Tasks[0].Completed {
		t.Error("templated tasks must start uncompleted")
	}
}

func TestWithCurrentAttempt_ReplacesOnlyLast(t *testing.T) {
	d := NewDay(1, "2024-01-01").WithNewAttempt(DefaultTemplate())

	replacement, _ := d.CurrentAttempt()
	replacement.Mood = MoodGood

	d2, err := d.WithCurrentAttempt(replacement)
	if err != nil {
		t.Fatal(err)
	}
	if d2.Attempts[0].Mood != "" {
		t.Error("first attempt must be untouched history")
	}
	if d2.Attempts[1].Mood != MoodGood {
		t.Error("current attempt should carry the replacement")
	}
}

func TestDayCompleted_MonotonicOverNewAttempts(t *testing.T) {
	d := NewDay(1, "2024-01-01")
	ts := time.Now()
	done, _ := d.CurrentAttempt()
	done.Completed = true
	done.Timestamp = &ts
	d, _ = d.WithCurrentAttempt(done)

	if !d.Completed() {
		t.Fatal("day should be completed")
	}

	// Starting later attempts never revokes a prior success
	for i := 0; i < 3; i++ {
		d = d.WithNewAttempt(DefaultTemplate())
		if !d.Completed() {
			t.Fatalf("day lost completion after appending attempt %d", i+2)
		}
	}
}

func TestChallengeWithDay_ImmutableUpdate(t *testing.T) {
	ch := NewChallenge(time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local))

	day, _ := ch.Day(5)
	day.Date = "changed"
	ch2 := ch.WithDay(day)

	orig, _ := ch.Day(5)
	if orig.Date == "changed" {
		t.Error("original challenge mutated")
	}
	got, _ := ch2.Day(5)
	if got.Date != "changed" {
		t.Error("updated challenge should carry the new day")
	}
}

func TestParseMood(t *testing.T) {
	if _, err := ParseMood("good"); err != nil {
		t.Errorf("good should parse: %v", err)
	}
	if _, err := ParseMood("ecstatic"); err == nil {
		t.Error("unknown mood should fail")
	}
}
