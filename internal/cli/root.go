package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/hard75/hard75/internal/backup"
	"github.com/hard75/hard75/internal/completion"
	"github.com/hard75/hard75/internal/constants"
	"github.com/hard75/hard75/internal/models"
	"github.com/hard75/hard75/internal/storage"
	"github.com/hard75/hard75/internal/tracker"
)

type Context struct {
	Tracker   *tracker.Tracker
	Store     *storage.ChallengeStore
	Codec     *backup.Codec
	ConfigDir string
}

// PhotoDir returns the directory progress photos are copied into
func (c *Context) PhotoDir() string {
	return filepath.Join(c.ConfigDir, constants.PhotoDirName)
}

// resolveDayIndex turns a day argument ("today", "current" or a 1-based
// number) into a concrete index against the loaded challenge.
func resolveDayIndex(ctx *Context, arg string) (int, error) {
	ch, err := ctx.Tracker.Challenge()
	if err != nil {
		return 0, err
	}

	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "current":
		return ch.CurrentDayIndex, nil
	case "today":
		today := time.Now().Format(constants.DateFormat)
		for _, d := range ch.Days {
			if d.Date == today {
				return d.Index, nil
			}
		}
		return 0, fmt.Errorf("today (%s) is outside the challenge window", today)
	default:
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > constants.ChallengeDays {
			return 0, fmt.Errorf("invalid day: %q (1-%d, 'today' or 'current')", arg, constants.ChallengeDays)
		}
		return n, nil
	}
}

// confirm asks the user to approve a destructive operation
func confirm(title, description string) (bool, error) {
	ok := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// formatCategories joins unmet requirement categories for display
func formatCategories(cats []completion.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// printAttempt renders one attempt's requirement state
func printAttempt(a models.Attempt, unit string) {
	for _, t := range a.Tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %s  (%s)\n", mark, t.Title, t.ID)
	}

	mood := "(not set)"
	if a.Mood != "" {
		mood = string(a.Mood)
	}
	weight := "(not set)"
	if a.Weight != nil {
		weight = fmt.Sprintf("%.1f %s", *a.Weight, unit)
	}
	photo := "(not set)"
	if a.PhotoURI != "" {
		photo = a.PhotoURI
	}

	fmt.Printf("  Mood:   %s\n", mood)
	fmt.Printf("  Weight: %s\n", weight)
	fmt.Printf("  Photo:  %s\n", photo)
	fmt.Printf("  Progress: %.0f%%\n", completion.Progress(a)*100)
	if a.Completed && a.Timestamp != nil {
		fmt.Printf("  Completed at %s\n", a.Timestamp.Format("2006-01-02 15:04"))
	}
}
