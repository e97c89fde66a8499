package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error
	detail    *usecase.ShowTaskOutput
	notice    string

	// State
	tasks   []domain.Task
	history []domain.HistoryEntry
	layout  string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	table  table.Model

	// Numeric state (smaller types last)
	tab       Tab
	mode      Mode
	width     int
	height    int
	confirmID int
}

// New creates a new TUI Model with the given container.
// The first tab comes from [tui] start_tab; unknown values fall back to the schedule.
func New(c *app.Container) *Model {
	layout := domain.TimeLayout
	start := TabSchedule
	if c.AppConfig != nil {
		if c.AppConfig.Display.TimeFormat != "" {
			layout = c.AppConfig.Display.TimeFormat
		}
		if t, err := ParseTab(c.AppConfig.TUI.StartTab); err == nil {
			start = t
		}
	}

	t := table.New(
		table.WithColumns(columnsFor(start)),
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithStyles(tableStyles()),
	)

	return &Model{
		container: c,
		layout:    layout,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		table:     t,
		tab:       start,
		mode:      ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// Tab returns the active tab.
func (m *Model) Tab() Tab {
	return m.tab
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// load returns a command that fetches the rows of the active tab.
func (m *Model) load() tea.Cmd {
	tab := m.tab
	c := m.container
	return func() tea.Msg {
		ctx := context.Background()
		if tab == TabHistory {
			out, err := c.ShowHistoryUseCase().Execute(ctx, usecase.ShowHistoryInput{})
			if err != nil {
				return MsgError{Err: err}
			}
			return MsgBoardLoaded{Tab: tab, History: out.Entries}
		}

		in := usecase.ListTasksInput{}
		switch tab {
		case TabSchedule:
			in.Prioritized = true
		case TabTasks:
			in.Kind = domain.KindTask
		case TabEpics:
			in.Kind = domain.KindEpic
		case TabSubtasks:
			in.Kind = domain.KindSubtask
		}
		out, err := c.ListTasksUseCase().Execute(ctx, in)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBoardLoaded{Tab: tab, Tasks: out.Tasks}
	}
}

// SelectedTask returns the item under the cursor, or nil if the table is empty.
func (m *Model) SelectedTask() *domain.Task {
	i := m.table.Cursor()
	if m.tab == TabHistory {
		if i < 0 || i >= len(m.history) {
			return nil
		}
		return &m.history[i].Task
	}
	if i < 0 || i >= len(m.tasks) {
		return nil
	}
	return &m.tasks[i]
}

// viewTask returns a command that opens an item and records the view.
func (m *Model) viewTask(id int) tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.ShowTaskUseCase().Execute(context.Background(), usecase.ShowTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskViewed{Detail: out}
	}
}

// advanceStatus returns a command that moves an item to its next status.
func (m *Model) advanceStatus(task domain.Task) tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.SetStatusUseCase().Execute(context.Background(), usecase.SetStatusInput{
			TaskID: task.ID,
			Status: task.Status.Next(),
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatusChanged{Task: out.Task, Epic: out.Epic}
	}
}

// deleteTask returns a command that deletes an item.
func (m *Model) deleteTask(id int) tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: id, Kind: out.Kind}
	}
}

// setRows replaces the table content for the active tab.
// Rows are cleared before the columns change so no row is wider than the header.
func (m *Model) setRows() {
	var rows []table.Row
	if m.tab == TabHistory {
		rows = make([]table.Row, 0, len(m.history))
		for _, e := range m.history {
			rows = append(rows, table.Row{
				formatTime(e.ViewedAt, m.layout),
				strconv.Itoa(e.Task.ID),
				string(e.Task.Kind),
				string(e.Task.Status),
				e.Task.Title,
			})
		}
	} else {
		rows = make([]table.Row, 0, len(m.tasks))
		for _, t := range m.tasks {
			rows = append(rows, table.Row{
				strconv.Itoa(t.ID),
				string(t.Kind),
				string(t.Status),
				formatTime(t.Start, m.layout),
				formatTime(t.End(), m.layout),
				domain.FormatDuration(t.Duration),
				t.Title,
			})
		}
	}

	m.table.SetRows(nil)
	m.table.SetColumns(columnsFor(m.tab))
	m.table.SetRows(rows)
	m.table.SetCursor(m.table.Cursor())
}

// columnsFor returns the table header for a tab.
func columnsFor(tab Tab) []table.Column {
	if tab == TabHistory {
		return []table.Column{
			{Title: "VIEWED", Width: 17},
			{Title: "ID", Width: 4},
			{Title: "KIND", Width: 8},
			{Title: "STATUS", Width: 12},
			{Title: "TITLE", Width: 32},
		}
	}
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "KIND", Width: 8},
		{Title: "STATUS", Width: 12},
		{Title: "START", Width: 17},
		{Title: "END", Width: 17},
		{Title: "DUR", Width: 6},
		{Title: "TITLE", Width: 32},
	}
}
