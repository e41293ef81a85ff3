package expenses

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
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)

	payerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	days     []models.DaySchedule
	currency string
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
	if len(ledger.Flatten(m.days)) == 0 {
		return "No costs recorded yet."
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

func (m *Model) SetDays(days []models.DaySchedule, currency string) {
	m.days = days
	m.currency = currency
	m.Render()
}

func (m *Model) Render() {
	entries := ledger.Flatten(m.days)

	var b strings.Builder
	for _, e := range entries {
		payer := e.Payer
		if payer == "" {
			payer = ledger.UnknownPayer
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			dayStyle.Render(e.DayLabel),
			itemStyle.Render(fmt.Sprintf("%s (%s)", e.Item, e.Activity)),
			amountStyle.Render(ledger.Format(e.Amount, m.currency)),
			payerStyle.Render(payer),
		))
	}

	b.WriteString("\n")
	for _, pt := range ledger.ByPayer(m.days) {
		b.WriteString(fmt.Sprintf("%s %s\n",
			dayStyle.Render(pt.Payer),
			amountStyle.Render(ledger.Format(pt.Amount, m.currency)),
		))
	}
	b.WriteString(totalStyle.Render(fmt.Sprintf("Trip total: %s", ledger.Format(ledger.Total(m.days), m.currency))))
	m.viewport.SetContent(b.String())
}
