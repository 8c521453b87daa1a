package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/hard75/hard75/internal/models"
	"github.com/hard75/hard75/internal/storage"
	"github.com/hard75/hard75/internal/tracker"
)

type inputMode int

const (
	modeGrid inputMode = iota
	modeWeight
)

// moodCycle is the order the mood key steps through, ending back at unset
var moodCycle = []models.Mood{models.MoodAwesome, models.MoodGood, models.MoodOkay, models.MoodBad, models.MoodAwful, ""}

type Model struct {
	tracker *tracker.Tracker
	store   *storage.ChallengeStore

	ch     models.Challenge
	cursor int // 1-based day index under the grid cursor
	unit   string

	mode        inputMode
	weightInput textinput.Model
	keys        KeyMap
	help        help.Model
	status      string
	width       int
	height      int
	quitting    bool
}

func NewModel(tr *tracker.Tracker, store *storage.ChallengeStore) Model {
	ch, err := tr.Challenge()
	status := ""
	if err != nil {
		status = err.Error()
	}

	unit, unitErr := store.WeightUnit()
	if unitErr != nil {
		unit = "lbs"
	}

	ti := textinput.New()
	ti.Placeholder = "weight"
	ti.CharLimit = 8
	ti.Width = 10

	m := Model{
		tracker:     tr,
		store:       store,
		ch:          ch,
		cursor:      ch.CurrentDayIndex,
		unit:        unit,
		weightInput: ti,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		status:      status,
	}
	if m.cursor < 1 {
		m.cursor = 1
	}
	return m
}

func (m *Model) refresh() {
	ch, err := m.tracker.Challenge()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.ch = ch
}
