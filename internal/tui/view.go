package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmallicoat/tally/internal/dates"
)

func (m model) View() string {
	if m.state == stateAddHabit && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case stateToday:
		b.WriteString(m.renderToday())
	case stateHabits:
		b.WriteString(m.list.View())
	case stateStats:
		b.WriteString(m.renderStats())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(dangerStyle.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("tab: switch • space: toggle • a: add • x: archive • d: delete • q: quit"))

	return docStyle.Render(b.String())
}

func (m model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if sessionState(i) == m.state {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) renderToday() string {
	today := dates.Today(time.Local)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Due today — %s", today)) + "\n\n")

	if len(m.due) == 0 {
		b.WriteString(pendingStyle.Render("No habits due today."))
		return b.String()
	}

	done := 0
	for i, habit := range m.due {
		marker := "○"
		style := pendingStyle
		if m.completed[habit.ID] {
			marker = "✓"
			style = completedStyle
			done++
		}
		line := fmt.Sprintf("%s %s", marker, habit.Name)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + style.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(fmt.Sprintf("\nCompleted: %d/%d", done, len(m.due)))
	return b.String()
}

func (m model) renderStats() string {
	item, ok := m.list.SelectedItem().(habitItem)
	if !ok {
		return pendingStyle.Render("No habits yet. Press 'a' to add one.")
	}

	s := m.engine.ComputeStats(item.habit)

	var b strings.Builder
	b.WriteString(titleStyle.Render(item.habit.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("Current streak:    %d days\n", s.CurrentStreak))
	b.WriteString(fmt.Sprintf("Longest streak:    %d days\n", s.LongestStreak))
	b.WriteString(fmt.Sprintf("Total completions: %d\n", s.TotalCompletions))
	b.WriteString(fmt.Sprintf("Completion rate:   %d%%\n\n", s.CompletionRate))

	b.WriteString("Last 12 weeks:\n")
	max := 0
	for _, bucket := range s.WeeklyStats {
		if bucket.Completions > max {
			max = bucket.Completions
		}
	}
	for _, bucket := range s.WeeklyStats {
		width := 0
		if max > 0 {
			width = bucket.Completions * 20 / max
		}
		b.WriteString(fmt.Sprintf("%7s %s %d\n",
			bucket.Label, completedStyle.Render(strings.Repeat("█", width)), bucket.Completions))
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ on the Habits tab changes the selected habit"))
	return b.String()
}
