package unlock

import (
	"testing"
	"time"

	"github.com/hard75/hard75/internal/models"
)

func mkDays(t *testing.T, start time.Time, completed ...int) []models.Day {
	t.Helper()
	days := models.NewChallengeDays(start)
	done := make(map[int]bool, len(completed))
	for _, i := range completed {
		done[i] = true
	}
	now := start.Add(12 * time.Hour)
	for i := range days {
		if !done[days[i].Index] {
			continue
		}
		a, err := days[i].CurrentAttempt()
		if err != nil {
			t.Fatalf("CurrentAttempt: %v", err)
		}
		a.Completed = true
		a.Timestamp = &now
		d, err := days[i].WithCurrentAttempt(a)
		if err != nil {
			t.Fatalf("WithCurrentAttempt: %v", err)
		}
		days[i] = d
	}
	return days
}

func TestMaxUnlockedDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same day", start.Add(10 * time.Hour), 1},
		{"next morning", time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local), 2},
		{"third day morning", time.Date(2024, 1, 3, 8, 0, 0, 0, time.Local), 3},
		{"just before midnight", time.Date(2024, 1, 2, 23, 59, 59, 0, time.Local), 2},
		{"clock before start", time.Date(2023, 12, 20, 12, 0, 0, 0, time.Local), 1},
		{"far past the end", start.AddDate(1, 0, 0), 75},
		{"exactly day 75", time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxUnlockedDay(start, tt.now); got != tt.want {
				t.Errorf("MaxUnlockedDay = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxUnlockedDay_LateStartTimeOfDay(t *testing.T) {
	// A challenge started late in the evening still unlocks day 2 at
	// the very next midnight, not 24 hours later.
	start := time.Date(2024, 1, 1, 23, 30, 0, 0, time.Local)
	now := time.Date(2024, 1, 2, 0, 30, 0, 0, time.Local)
	if got := MaxUnlockedDay(start, now); got != 2 {
		t.Errorf("MaxUnlockedDay = %d, want 2", got)
	}
}

func TestMaxUnlockedDay_AcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name  string
		start time.Time
		now   time.Time
		want  int
	}{
		{
			// 2024-03-10 02:00 EST springs forward; that midnight gap
			// is 23 hours
			"spring forward",
			time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
			time.Date(2024, 3, 12, 8, 0, 0, 0, loc),
			12,
		},
		{
			"day after the short day",
			time.Date(2024, 3, 9, 0, 0, 0, 0, loc),
			time.Date(2024, 3, 11, 8, 0, 0, 0, loc),
			3,
		},
		{
			// 2024-11-03 02:00 EDT falls back; a 25-hour gap
			"fall back",
			time.Date(2024, 10, 25, 0, 0, 0, 0, loc),
			time.Date(2024, 11, 5, 8, 0, 0, 0, loc),
			12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxUnlockedDay(tt.start, tt.now); got != tt.want {
				t.Errorf("MaxUnlockedDay = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanNavigate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	now := time.Date(2024, 1, 3, 8, 0, 0, 0, time.Local) // day 3 time-unlocked

	tests := []struct {
		name      string
		completed []int
		index     int
		want      bool
	}{
		{"day 1 always reachable", nil, 1, true},
		{"day 2 blocked by incomplete day 1", nil, 2, false},
		{"day 2 open after day 1", []int{1}, 2, true},
		{"day 3 blocked by incomplete day 2", []int{1}, 3, false},
		{"day 3 open after days 1 and 2", []int{1, 2}, 3, true},
		{"day 4 time-locked regardless of history", []int{1, 2, 3}, 4, false},
		{"index zero", []int{1, 2}, 0, false},
		{"index out of range", []int{1, 2}, 76, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := mkDays(t, start, tt.completed...)
			if got := CanNavigate(days, tt.index, start, now); got != tt.want {
				t.Errorf("CanNavigate(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestUntilNextUnlock(t *testing.T) {
	now := time.Date(2024, 1, 1, 22, 0, 0, 0, time.Local)
	if got := UntilNextUnlock(now); got != 2*time.Hour {
		t.Errorf("UntilNextUnlock = %v, want 2h", got)
	}
}
