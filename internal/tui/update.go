package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hard75/hard75/internal/tui/components/dayselect"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeWeight {
			return m.updateWeightInput(msg)
		}
		return m.updateGrid(msg)
	}

	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > dayselect.Columns {
			m.cursor -= dayselect.Columns
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor+dayselect.Columns <= len(m.ch.Days) {
			m.cursor += dayselect.Columns
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 1 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.ch.Days) {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		_, ok, err := m.tracker.Navigate(m.cursor)
		if err != nil {
			m.status = err.Error()
			break
		}
		if !ok {
			// the gate blocks silently; only the TUI hints why
			m.status = fmt.Sprintf("Day %d is locked", m.cursor)
			break
		}
		m.status = fmt.Sprintf("Now on day %d", m.cursor)
		m.refresh()

	case key.Matches(msg, m.keys.Toggle):
		m.toggleTask(msg.String())

	case key.Matches(msg, m.keys.Mood):
		m.cycleMood()

	case key.Matches(msg, m.keys.Weight):
		m.mode = modeWeight
		m.weightInput.SetValue("")
		m.weightInput.Focus()

	case key.Matches(msg, m.keys.Complete):
		unmet, ok, err := m.tracker.CompleteAttempt(m.ch.CurrentDayIndex)
		switch {
		case err != nil:
			m.status = err.Error()
		case !ok:
			m.status = fmt.Sprintf("Not ready: missing %v", unmet)
		default:
			m.status = "🎉 Day complete!"
			m.refresh()
		}

	case key.Matches(msg, m.keys.Retry):
		if _, err := m.tracker.StartNewAttempt(m.ch.CurrentDayIndex); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Started a fresh attempt"
			m.refresh()
		}
	}

	return m, nil
}

func (m *Model) toggleTask(digit string) {
	n, err := strconv.Atoi(digit)
	if err != nil {
		return
	}

	day, err := m.ch.Day(m.ch.CurrentDayIndex)
	if err != nil {
		m.status = err.Error()
		return
	}
	cur, err := day.CurrentAttempt()
	if err != nil {
		m.status = err.Error()
		return
	}
	if n < 1 || n > len(cur.Tasks) {
		return
	}

	if _, err := m.tracker.ToggleTask(day.Index, cur.Tasks[n-1].ID); err != nil {
		m.status = err.Error()
		return
	}
	m.refresh()
}

func (m *Model) cycleMood() {
	day, err := m.ch.Day(m.ch.CurrentDayIndex)
	if err != nil {
		m.status = err.Error()
		return
	}
	cur, err := day.CurrentAttempt()
	if err != nil {
		m.status = err.Error()
		return
	}

	next := moodCycle[0]
	for i, mood := range moodCycle {
		if mood == cur.Mood {
			next = moodCycle[(i+1)%len(moodCycle)]
			break
		}
	}

	if next == "" {
		_, err = m.tracker.ClearMood(day.Index)
	} else {
		_, err = m.tracker.SetMood(day.Index, next)
	}
	if err != nil {
		m.status = err.Error()
		return
	}
	m.refresh()
}

func (m Model) updateWeightInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		m.weightInput.Blur()
		return m, nil

	case "enter":
		m.mode = modeGrid
		m.weightInput.Blur()

		value := m.weightInput.Value()
		weight, err := strconv.ParseFloat(value, 64)
		if err != nil {
			m.status = fmt.Sprintf("Malformed weight: %q", value)
			return m, nil
		}
		if _, err := m.tracker.SetWeight(m.ch.CurrentDayIndex, weight); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Weight recorded at %s", time.Now().Format("15:04"))
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.weightInput, cmd = m.weightInput.Update(msg)
	return m, cmd
}
