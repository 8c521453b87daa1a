package migration

import (
	"testing"
	"time"

	"github.com/hard75/hard75/internal/constants"
	"github.com/hard75/hard75/internal/models"
)

func TestRun_StampsCurrentVersion(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		version int
	}{
		{"pre-version record", 0},
		{"current record", constants.SchemaVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := models.NewChallenge(start)
			ch.Version = tt.version

			got := Run(ch)
			if got.Version != constants.SchemaVersion {
				t.Errorf("Version = %d, want %d", got.Version, constants.SchemaVersion)
			}
			if len(got.Days) != constants.ChallengeDays {
				t.Errorf("migration corrupted day data: %d days", len(got.Days))
			}
		})
	}
}

func TestRun_PreservesDayData(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	ch := models.NewChallenge(start)
	ch.Version = 0
	ch.CurrentDayIndex = 12

	got := Run(ch)
	if got.CurrentDayIndex != 12 {
		t.Errorf("CurrentDayIndex = %d, want 12", got.CurrentDayIndex)
	}
	if got.Days[0].Date != ch.Days[0].Date {
		t.Error("day dates changed across migration")
	}
}
