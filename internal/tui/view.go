package tui

import "github.com/charmbracelet/lipgloss"

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateExpenses:
		content = docStyle.Render(m.expenses.View())
	case StateLogin, StateAddCost:
		content = docStyle.Render(m.form.View())
	case StateConfirmMove:
		content = m.viewConfirmMove()
	default:
		content = docStyle.Render(m.itin.View())
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, day := range m.days {
		title := day.DayLabel
		if m.state != StateExpenses && i == m.dayIdx {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	if m.state == StateExpenses {
		tabs = append(tabs, activeTabStyle.Render("Expenses"))
	} else {
		tabs = append(tabs, inactiveTabStyle.Render("Expenses"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewConfirmMove shows the collision notice above the editable time form.
func (m Model) viewConfirmMove() string {
	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		dangerStyle.Render("The new slot collides with its neighbors."),
		"",
		m.form.View(),
	))
}
