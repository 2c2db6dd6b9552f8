package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/jmallicoat/tally/internal/dates"
	"github.com/jmallicoat/tally/internal/models"
	"github.com/jmallicoat/tally/internal/validation"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameW, frameH := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH-4)
		return m, nil

	case tea.KeyMsg:
		if m.state == stateAddHabit {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)
	}

	if m.state == stateAddHabit && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.state = (m.state + 1) % sessionState(len(tabNames))
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.state = (m.state + sessionState(len(tabNames)) - 1) % sessionState(len(tabNames))
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.prevState = m.state
		m.state = stateAddHabit
		m.form = newHabitForm()
		return m, m.form.Init()
	}

	switch m.state {
	case stateToday:
		return m.updateToday(msg)
	case stateHabits, stateStats:
		return m.updateHabitList(msg)
	}
	return m, nil
}

func (m model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.due)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.due) {
			habit := m.due[m.cursor]
			today := dates.Today(time.Local).String()
			if _, err := m.store.ToggleCompletion(habit.ID, today); err != nil {
				m.err = err
				return m, nil
			}
			m.reload()
		}
	}
	return m, nil
}

func (m model) updateHabitList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.list.SelectedItem().(habitItem); ok && m.state == stateHabits {
			today := dates.Today(time.Local).String()
			if _, err := m.store.ToggleCompletion(item.habit.ID, today); err != nil {
				m.err = err
				return m, nil
			}
			m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Archive):
		if item, ok := m.list.SelectedItem().(habitItem); ok {
			if err := m.store.SetHabitActive(item.habit.ID, false); err != nil {
				m.err = err
				return m, nil
			}
			m.status = fmt.Sprintf("Archived %q", item.habit.Name)
			m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.list.SelectedItem().(habitItem); ok {
			if err := m.store.DeleteHabit(item.habit.ID); err != nil {
				m.err = err
				return m, nil
			}
			m.status = fmt.Sprintf("Deleted %q and its entries", item.habit.Name)
			m.reload()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = m.prevState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = m.prevState
		if err := m.createHabitFromForm(); err != nil {
			m.err = err
		} else {
			m.status = "Habit added"
			m.reload()
		}
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *model) createHabitFromForm() error {
	frequency := models.Frequency(m.form.GetString("frequency"))

	var targetDays []time.Weekday
	if frequency == models.FrequencyWeekly {
		days, _ := m.form.Get("days").([]string)
		for _, d := range days {
			switch d {
			case "Sunday":
				targetDays = append(targetDays, time.Sunday)
			case "Monday":
				targetDays = append(targetDays, time.Monday)
			case "Tuesday":
				targetDays = append(targetDays, time.Tuesday)
			case "Wednesday":
				targetDays = append(targetDays, time.Wednesday)
			case "Thursday":
				targetDays = append(targetDays, time.Thursday)
			case "Friday":
				targetDays = append(targetDays, time.Friday)
			case "Saturday":
				targetDays = append(targetDays, time.Saturday)
			}
		}
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        m.form.GetString("name"),
		Description: m.form.GetString("description"),
		Frequency:   frequency,
		TargetDays:  targetDays,
		CreatedAt:   time.Now(),
		Active:      true,
	}

	if result := validation.ValidateHabit(habit); !result.OK() {
		return result.Err()
	}
	return m.store.AddHabit(habit)
}

func newHabitForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Key("description").
				Title("Description"),
			huh.NewSelect[string]().
				Key("frequency").
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly", "monthly"),
				),
			huh.NewMultiSelect[string]().
				Key("days").
				Title("Target days (weekly only)").
				Options(
					huh.NewOption("Sunday", "Sunday"),
					huh.NewOption("Monday", "Monday"),
					huh.NewOption("Tuesday", "Tuesday"),
					huh.NewOption("Wednesday", "Wednesday"),
					huh.NewOption("Thursday", "Thursday"),
					huh.NewOption("Friday", "Friday"),
					huh.NewOption("Saturday", "Saturday"),
				),
		),
	)
}
