package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"tripdeck/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		m.help.Width = ws.Width
		m.itin.SetSize(ws.Width-4, ws.Height-6)
		m.expenses.SetSize(ws.Width-4, ws.Height-6)
	}

	switch m.state {
	case StateLogin, StateAddCost, StateConfirmMove:
		return m.updateForm(msg)
	case StateMoving:
		if k, ok := msg.(tea.KeyMsg); ok {
			return m.updateMoving(k)
		}
	default:
		if k, ok := msg.(tea.KeyMsg); ok {
			return m.updateBrowse(k)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
		m.nextTab()
	case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
		m.prevTab()
	case key.Matches(msg, m.keys.Up):
		if m.state == StateDay {
			m.itin.CursorUp()
		}
	case key.Matches(msg, m.keys.Down):
		if m.state == StateDay {
			m.itin.CursorDown()
		}
	case key.Matches(msg, m.keys.Login):
		m.form = m.newLoginForm()
		m.state = StateLogin
		m.status = ""
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Cost):
		if m.state != StateDay {
			break
		}
		if item, ok := m.itin.Selected(); ok {
			m.form = m.newCostForm(item.ID)
			m.state = StateAddCost
			m.status = ""
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Move):
		if m.state != StateDay {
			break
		}
		if m.gate.Current() == nil {
			m.status = "Moving items needs a sign-in: press i, or run 'tripdeck login'"
			break
		}
		if item, ok := m.itin.Selected(); ok {
			m.movingID = item.ID
			m.state = StateMoving
			m.status = "Pick a new slot, enter to drop"
			m.itin.SetMoving(true)
		}
	}
	return m, nil
}

func (m Model) updateMoving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.days[m.dayIdx].Items

	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Escape):
		m.state = StateDay
		m.status = ""
		m.itin.SetMoving(false)
		m.refresh()

	case key.Matches(msg, m.keys.Up):
		i := m.itin.Cursor()
		if i > 0 {
			items[i-1], items[i] = items[i], items[i-1]
			m.itin.SetItems(items, m.store.Currency())
			m.itin.CursorUp()
		}

	case key.Matches(msg, m.keys.Down):
		i := m.itin.Cursor()
		if i < len(items)-1 {
			items[i], items[i+1] = items[i+1], items[i]
			m.itin.SetItems(items, m.store.Currency())
			m.itin.CursorDown()
		}

	case key.Matches(msg, m.keys.Enter):
		m.itin.SetMoving(false)
		pending, err := m.engine.MoveItem(m.days[m.dayIdx].ID, m.movingID, m.itin.Cursor())
		if err != nil {
			m.state = StateDay
			m.status = err.Error()
			m.refresh()
			break
		}
		if pending == nil {
			m.state = StateDay
			m.status = "Moved"
			m.refresh()
			break
		}
		m.engine.Await()
		m.pending = pending
		m.form = m.newConfirmMoveForm()
		m.state = StateConfirmMove
		m.refresh()
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.completeForm()
	case huh.StateAborted:
		return m.abortForm()
	}
	return m, cmd
}

func (m Model) completeForm() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLogin:
		sess, err := m.gate.Login(m.loginForm.Name, m.loginForm.Passcode)
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "Welcome, " + sess.Name
		}

	case StateAddCost:
		item, _, ok := m.store.FindItem(m.costForm.ItemID)
		if ok {
			amount, _ := strconv.ParseFloat(m.costForm.Amount, 64)
			costs := append(item.Costs, models.CostDetail{
				ID:     uuid.New().String(),
				Item:   m.costForm.Item,
				Amount: amount,
				Payer:  m.costForm.Payer,
			})
			if err := m.store.SetItemCosts(item.ID, costs); err != nil {
				m.status = err.Error()
			} else {
				m.status = "Cost added"
			}
		}

	case StateConfirmMove:
		if !m.moveForm.Keep {
			return m.finishMove("Move undone", true)
		}
		item, _, ok := m.store.FindItem(m.movingID)
		if !ok {
			return m.finishMove("item vanished, move undone", true)
		}
		item.StartTime = m.moveForm.Start
		item.EndTime = m.moveForm.End
		item.LastEditedBy = m.editor()
		if err := m.engine.Commit(item); err != nil {
			return m.finishMove(err.Error(), false)
		}
		return m.finishMove("Move confirmed", false)
	}

	m.form = nil
	m.state = StateDay
	m.refresh()
	return m, nil
}

func (m Model) abortForm() (tea.Model, tea.Cmd) {
	if m.state == StateConfirmMove {
		return m.finishMove("Move undone", true)
	}
	m.form = nil
	m.state = StateDay
	return m, nil
}

func (m Model) finishMove(status string, cancel bool) (tea.Model, tea.Cmd) {
	if cancel {
		if err := m.engine.Cancel(); err != nil {
			status = err.Error()
		}
	}
	m.pending = nil
	m.movingID = ""
	m.form = nil
	m.state = StateDay
	m.status = status
	m.refresh()
	return m, nil
}

func (m *Model) nextTab() {
	if m.state == StateExpenses {
		m.state = StateDay
		m.dayIdx = 0
	} else if m.dayIdx == len(m.days)-1 {
		m.state = StateExpenses
	} else {
		m.dayIdx++
	}
	m.refresh()
}

func (m *Model) prevTab() {
	if m.state == StateExpenses {
		m.state = StateDay
		m.dayIdx = len(m.days) - 1
	} else if m.dayIdx == 0 {
		m.state = StateExpenses
	} else {
		m.dayIdx--
	}
	m.refresh()
}
