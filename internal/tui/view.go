package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/hard75/hard75/internal/completion"
	"github.com/hard75/hard75/internal/tui/components/dayselect"
	"github.com/hard75/hard75/internal/unlock"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.ch.Days) == 0 {
		return "No challenge loaded. Run 'hard75 init' first.\n"
	}

	now := time.Now()
	maxDay := unlock.MaxUnlockedDay(m.ch.StartDate, now)

	var b strings.Builder

	streak := completion.StreakCount(m.ch.Days)
	done := completion.CompletedDaysCount(m.ch.Days)
	b.WriteString(titleStyle.Render(fmt.Sprintf("hard75 — day %d/%d · streak %d · completed %d",
		m.ch.CurrentDayIndex, len(m.ch.Days), streak, done)))
	b.WriteString("\n\n")

	b.WriteString(dayselect.Render(m.ch.Days, m.cursor, maxDay))
	b.WriteString("\n")

	b.WriteString(m.detailView())
	b.WriteString("\n")

	if m.mode == modeWeight {
		b.WriteString(fmt.Sprintf("Weight (%s): %s\n", m.unit, m.weightInput.View()))
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) detailView() string {
	day, err := m.ch.Day(m.ch.CurrentDayIndex)
	if err != nil {
		return detailStyle.Render(err.Error())
	}
	cur, err := day.CurrentAttempt()
	if err != nil {
		return detailStyle.Render(err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Day %d (%s) — attempt %d — %.0f%% of requirements\n",
		day.Index, day.Date, cur.Number, completion.Progress(cur)*100)

	for i, t := range cur.Tasks {
		line := fmt.Sprintf("%d. [ ] %s", i+1, t.Title)
		style := pendingTaskStyle
		if t.Completed {
			line = fmt.Sprintf("%d. [x] %s", i+1, t.Title)
			style = doneTaskStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	mood := "—"
	if cur.Mood != "" {
		mood = string(cur.Mood)
	}
	weight := "—"
	if cur.Weight != nil {
		weight = fmt.Sprintf("%.1f %s", *cur.Weight, m.unit)
	}
	photo := "—"
	if cur.PhotoURI != "" {
		photo = "✓"
	}
	fmt.Fprintf(&b, "mood %s · weight %s · photo %s", mood, weight, photo)

	if day.Completed() {
		b.WriteString("\n✅ completed")
	}

	return detailStyle.Render(b.String())
}
