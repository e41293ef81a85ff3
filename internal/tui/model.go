package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tripdeck/internal/auth"
	"tripdeck/internal/models"
	"tripdeck/internal/reorder"
	"tripdeck/internal/store"
	"tripdeck/internal/timeutil"
	"tripdeck/internal/tui/components/expenses"
	"tripdeck/internal/tui/components/itinerary"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateExpenses
	StateMoving
	StateConfirmMove
	StateLogin
	StateAddCost
)

type Model struct {
	store    *store.Store
	gate     *auth.Gate
	engine   *reorder.Engine
	state    SessionState
	keys     KeyMap
	help     help.Model
	days     []models.DaySchedule
	dayIdx   int
	itin     itinerary.Model
	expenses expenses.Model
	pending  *reorder.Pending
	movingID string
	form     *huh.Form
	status   string
	quitting bool
	width    int
	height   int

	loginForm *LoginFormModel
	costForm  *CostFormModel
	moveForm  *MoveFormModel
}

// Form value holders live behind pointers so the bound inputs survive the
// model copies bubbletea makes on every update.
type LoginFormModel struct {
	Name     string
	Passcode string
}

type CostFormModel struct {
	ItemID string
	Item   string
	Amount string
	Payer  string
}

type MoveFormModel struct {
	Start string
	End   string
	Keep  bool
}

func NewModel(st *store.Store, gate *auth.Gate, engine *reorder.Engine) Model {
	m := Model{
		store:    st,
		gate:     gate,
		engine:   engine,
		state:    StateDay,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		itin:     itinerary.New(0, 0),
		expenses: expenses.New(0, 0),
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateDay:
		keys = append(keys, m.keys.Move, m.keys.Cost, m.keys.Login)
	case StateMoving:
		keys = append(keys, m.keys.Enter, m.keys.Escape)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads the schedule from the store and pushes it into the
// visible components.
func (m *Model) refresh() {
	m.days = m.store.Days()
	if m.dayIdx >= len(m.days) {
		m.dayIdx = len(m.days) - 1
	}
	if m.dayIdx < 0 {
		m.dayIdx = 0
	}
	cur := m.store.Currency()
	if len(m.days) > 0 {
		m.itin.SetItems(m.days[m.dayIdx].Items, cur)
	} else {
		m.itin.SetItems(nil, cur)
	}
	m.expenses.SetDays(m.days, cur)
}

func (m *Model) editor() string {
	if sess := m.gate.Current(); sess != nil {
		return sess.Name
	}
	return ""
}

func (m *Model) newLoginForm() *huh.Form {
	m.loginForm = &LoginFormModel{}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Validate(func(s string) error {
				if s == "" {
					return auth.ErrNameRequired
				}
				return nil
			}).
			Value(&m.loginForm.Name),
		huh.NewInput().
			Title("Passcode").
			EchoMode(huh.EchoModePassword).
			Value(&m.loginForm.Passcode),
	))
}

func (m *Model) newCostForm(itemID string) *huh.Form {
	m.costForm = &CostFormModel{ItemID: itemID, Payer: m.editor()}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("What for").
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("required")
				}
				return nil
			}).
			Value(&m.costForm.Item),
		huh.NewInput().
			Title("Amount").
			Validate(func(s string) error {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil || v < 0 {
					return fmt.Errorf("enter a non-negative number")
				}
				return nil
			}).
			Value(&m.costForm.Amount),
		huh.NewInput().
			Title("Payer").
			Value(&m.costForm.Payer),
	))
}

// newConfirmMoveForm seeds the suggested window as editable inputs; declining
// rolls the whole move back.
func (m *Model) newConfirmMoveForm() *huh.Form {
	m.moveForm = &MoveFormModel{
		Start: m.pending.Proposal.NewStart,
		End:   m.pending.Proposal.NewEnd,
		Keep:  true,
	}

	validateTime := func(s string) error {
		if !timeutil.IsHHMM(s) {
			return fmt.Errorf("use HH:MM")
		}
		return nil
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Start time").
			Validate(validateTime).
			Value(&m.moveForm.Start),
		huh.NewInput().
			Title("End time").
			Validate(validateTime).
			Value(&m.moveForm.End),
		huh.NewConfirm().
			Title("Apply these times?").
			Affirmative("Save").
			Negative("Undo move").
			Value(&m.moveForm.Keep),
	))
}
