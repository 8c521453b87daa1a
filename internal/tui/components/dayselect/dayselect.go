// Package dayselect renders the 75-day grid. Each cell is colored by the
// fine per-item progress of the day's current attempt; the coarse
// four-category figure belongs to the detail pane, not this grid.
package dayselect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hard75/hard75/internal/completion"
	"github.com/hard75/hard75/internal/models"
)

const Columns = 15

var (
	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	startedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	openStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Underline(true)
)

// Cell renders one day's grid cell
func Cell(d models.Day, unlocked, selected bool) string {
	label := fmt.Sprintf("%2d", d.Index)

	var style lipgloss.Style
	switch {
	case d.Completed():
		style = doneStyle
	case !unlocked:
		style = lockedStyle
	default:
		cur, err := d.CurrentAttempt()
		if err == nil && completion.FineProgress(cur) > 0 {
			style = startedStyle
		} else {
			style = openStyle
		}
	}
	if selected {
		style = cursorStyle
	}
	return style.Render(label)
}

// Render draws the grid with the day at cursor (1-based) highlighted.
// Days above maxUnlocked render as locked.
func Render(days []models.Day, cursor, maxUnlocked int) string {
	var b strings.Builder
	for i, d := range days {
		b.WriteString(Cell(d, d.Index <= maxUnlocked, d.Index == cursor))
		if (i+1)%Columns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}
