// Package tui implements the interactive dashboard: a tabbed bubbletea
// application over the same storage provider and stats engine the CLI
// commands use.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
	"github.com/jmallicoat/tally/internal/stats"
	"github.com/jmallicoat/tally/internal/storage"
)

type sessionState int

const (
	stateToday sessionState = iota
	stateHabits
	stateStats
	stateAddHabit
)

var tabNames = []string{"Today", "Habits", "Stats"}

type habitItem struct {
	habit models.Habit
	done  bool
}

func (i habitItem) Title() string {
	if i.done {
		return "✓ " + i.habit.Name
	}
	return "○ " + i.habit.Name
}

func (i habitItem) Description() string {
	if !i.habit.Active {
		return "archived"
	}
	if i.done {
		return "completed today"
	}
	return "not completed today"
}

func (i habitItem) FilterValue() string { return i.habit.Name }

type model struct {
	store  storage.Provider
	engine *stats.Engine
	keys   keyMap

	state     sessionState
	prevState sessionState

	habits    []models.Habit
	due       []models.Habit
	completed map[string]bool

	list   list.Model
	cursor int
	form   *huh.Form

	width  int
	height int

	status string
	err    error
}

func newModel(store storage.Provider, engine *stats.Engine) model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Habits"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	m := model{
		store:  store,
		engine: engine,
		keys:   defaultKeyMap(),
		state:  stateToday,
		list:   l,
	}
	m.reload()
	return m
}

// reload refreshes habits, today's due set, and completion status from
// storage. Called after every mutation.
func (m *model) reload() {
	today := dates.Today(time.Local)

	habits, err := m.store.GetAllHabits(false)
	if err != nil {
		m.err = err
		return
	}
	m.habits = habits
	m.due = stats.SelectDue(habits, today)

	entries, err := m.store.GetEntriesForDay(today.String())
	if err != nil {
		m.err = err
		return
	}
	m.completed = make(map[string]bool)
	for _, e := range entries {
		if e.Completed {
			m.completed[e.HabitID] = true
		}
	}

	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = habitItem{habit: h, done: m.completed[h.ID]}
	}
	m.list.SetItems(items)

	if m.cursor >= len(m.due) {
		m.cursor = 0
	}
	m.err = nil
}

func (m model) Init() tea.Cmd {
	return nil
}

// Run launches the interactive dashboard and blocks until the user quits.
func Run(store storage.Provider, engine *stats.Engine) error {
	p := tea.NewProgram(newModel(store, engine), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
