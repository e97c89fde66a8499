package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Header, tabs, error line and footer take about eight lines.
		if h := msg.Height - 8; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case MsgBoardLoaded:
		// Drop results for a tab the user already left.
		if msg.Tab != m.tab {
			return m, nil
		}
		m.tasks = msg.Tasks
		m.history = msg.History
		m.setRows()
		return m, nil

	case MsgTaskViewed:
		m.detail = msg.Detail
		m.mode = ModeDetail
		m.err = nil
		return m, nil

	case MsgStatusChanged:
		m.err = nil
		m.notice = fmt.Sprintf("%s is now %s", msg.Task.Label(), msg.Task.Status)
		if msg.Epic != nil {
			m.notice += fmt.Sprintf(", %s is %s", msg.Epic.Label(), msg.Epic.Status)
		}
		return m, m.load()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmID = 0
		m.err = nil
		m.notice = fmt.Sprintf("Deleted %s #%d", msg.Kind, msg.TaskID)
		return m, m.load()

	case MsgError:
		m.err = msg.Err
		m.notice = ""
		m.mode = ModeNormal
		m.confirmID = 0
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && m.mode != ModeConfirm {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.mode = ModeNormal
		}
		return m, nil

	case ModeDetail:
		if key.Matches(msg, m.keys.Escape, m.keys.Enter) {
			m.mode = ModeNormal
			m.detail = nil
			// The view changed history; refresh if it is on screen.
			if m.tab == TabHistory {
				return m, m.load()
			}
		}
		return m, nil

	case ModeConfirm:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			id := m.confirmID
			m.confirmID = 0
			return m, m.deleteTask(id)
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit), msg.String() == "n":
			m.mode = ModeNormal
			m.confirmID = 0
		}
		return m, nil

	case ModeNormal:
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		return m, m.switchTab(m.tab.Next())

	case key.Matches(msg, m.keys.PrevTab):
		return m, m.switchTab(m.tab.Prev())

	case key.Matches(msg, m.keys.Reload):
		return m, m.load()

	case key.Matches(msg, m.keys.Enter):
		if task := m.SelectedTask(); task != nil {
			return m, m.viewTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Status):
		if task := m.SelectedTask(); task != nil {
			return m, m.advanceStatus(*task)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); task != nil {
			m.confirmID = task.ID
			m.mode = ModeConfirm
		}
		return m, nil
	}

	// Up, down and paging are handled by the table.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// switchTab activates tab and loads its rows.
func (m *Model) switchTab(tab Tab) tea.Cmd {
	m.tab = tab
	m.tasks = nil
	m.history = nil
	m.notice = ""
	m.setRows()
	m.table.GotoTop()
	return m.load()
}
