package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskboard/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeNormal, ModeConfirm:
		content = m.viewMain()
	}
	return m.styles.App.Render(content)
}

// viewMain renders the tab bar and table.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("taskboard"))
	b.WriteString("\n\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	} else if m.notice != "" {
		b.WriteString(m.styles.Footer.Render(m.notice) + "\n\n")
	}

	if len(m.table.Rows()) == 0 {
		b.WriteString(m.styles.Empty.Render(emptyText(m.tab)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.mode == ModeConfirm {
		b.WriteString("\n")
		b.WriteString(m.styles.Dialog.Render(fmt.Sprintf("Delete #%d? (y/n)", m.confirmID)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) viewTabs() string {
	tabs := make([]string, 0, len(AllTabs()))
	for _, t := range AllTabs() {
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(t.Title()))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(t.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewDetail renders the opened item.
func (m *Model) viewDetail() string {
	if m.detail == nil {
		return ""
	}
	t := m.detail.Task

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(m.styles.Label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Kind", string(t.Kind))
	row("Status", m.styles.StatusStyle(t.Status).Render(t.Status.Display()))
	row("Start", formatTime(t.Start, m.layout))
	row("End", formatTime(t.End(), m.layout))
	row("Duration", domain.FormatDuration(t.Duration))
	if m.detail.Epic != nil {
		row("Epic", fmt.Sprintf("#%d %s", m.detail.Epic.ID, m.detail.Epic.Title))
	}
	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(t.Description)
		b.WriteString("\n")
	}
	if t.IsEpic() {
		b.WriteString("\n")
		if len(m.detail.Subtasks) == 0 {
			b.WriteString(m.styles.Empty.Render("No subtasks"))
			b.WriteString("\n")
		}
		for _, s := range m.detail.Subtasks {
			fmt.Fprintf(&b, "  #%d %s %s\n", s.ID, m.styles.StatusStyle(s.Status).Render(string(s.Status)), s.Title)
		}
	}

	return m.styles.Detail.Render(strings.TrimRight(b.String(), "\n")) +
		"\n\n" + m.styles.Footer.Render("esc back")
}

func (m *Model) viewHelp() string {
	m.help.ShowAll = true
	defer func() { m.help.ShowAll = false }()
	return m.styles.Title.Render("Keys") + "\n\n" + m.help.View(m.keys)
}

func emptyText(tab Tab) string {
	if tab == TabHistory {
		return "Nothing viewed yet"
	}
	return "No " + strings.ToLower(tab.Title())
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(layout)
}
