package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskboard/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Text    lipgloss.Color

	// Status colors
	New        lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Text:    lipgloss.Color("#DFE6E9"), // Light gray

	New:        lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	ErrorMsg    lipgloss.Style
	Footer      lipgloss.Style
	Detail      lipgloss.Style
	Label       lipgloss.Style
	Dialog      lipgloss.Style
	Empty       lipgloss.Style

	StatusNew        lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:   lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Text).
			Background(Colors.Primary).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),
		ErrorMsg: lipgloss.NewStyle().Foreground(Colors.Error),
		Footer:   lipgloss.NewStyle().Foreground(Colors.Muted),
		Detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		Label: lipgloss.NewStyle().Foreground(Colors.Muted).Width(10),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Error).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),

		StatusNew:        lipgloss.NewStyle().Foreground(Colors.New),
		StatusInProgress: lipgloss.NewStyle().Foreground(Colors.InProgress).Bold(true),
		StatusDone:       lipgloss.NewStyle().Foreground(Colors.Done),
	}
}

// StatusStyle returns the style for a status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusDone:
		return s.StatusDone
	default:
		return s.StatusNew
	}
}

// tableStyles returns the bubbles table styles matching the palette.
func tableStyles() table.Styles {
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Colors.Muted).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(Colors.Text).
		Background(Colors.Primary).
		Bold(false)
	return st
}
