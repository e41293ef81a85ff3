package itinerary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tripdeck/internal/ledger"
	"tripdeck/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	activityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	movingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	items    []models.ItineraryItem
	currency string
	cursor   int
	moving   bool
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return "Nothing planned for this day."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetItems(items []models.ItineraryItem, currency string) {
	m.items = items
	m.currency = currency
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.Render()
}

func (m *Model) SetMoving(moving bool) {
	m.moving = moving
	m.Render()
}

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.Render()
	}
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
		m.Render()
	}
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Selected() (models.ItineraryItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return models.ItineraryItem{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) Render() {
	var b strings.Builder
	for i, item := range m.items {
		marker := "  "
		style := activityStyle
		if i == m.cursor {
			if m.moving {
				marker = movingStyle.Render("⇅ ")
				style = movingStyle
			} else {
				marker = cursorStyle.Render("> ")
				style = cursorStyle
			}
		}

		window := item.StartTime
		if item.EndTime != "" {
			window = fmt.Sprintf("%s - %s", item.StartTime, item.EndTime)
		}
		title := fmt.Sprintf("%s %s", item.EffectiveCategory().Glyph(), item.Activity)

		b.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			timeStyle.Render(window),
			style.Render(title),
		))

		var details []string
		if item.Location != "" {
			details = append(details, item.Location)
		}
		if total := ledger.ItemTotal(item); total > 0 {
			details = append(details, ledger.Format(total, m.currency))
		}
		if item.LastEditedBy != "" {
			details = append(details, "edited by "+item.LastEditedBy)
		}
		if len(details) > 0 {
			b.WriteString("  " + timeStyle.Render("") + " " + detailStyle.Render(strings.Join(details, " · ")) + "\n")
		}
	}
	m.viewport.SetContent(b.String())
}
