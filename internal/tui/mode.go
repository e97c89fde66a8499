// Package tui provides the terminal user interface for taskboard.
package tui

import "fmt"

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Table navigation
	ModeDetail              // Item detail view
	ModeConfirm             // Delete confirmation
	ModeHelp                // Full help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDetail:
		return "detail"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Tab selects what the table shows.
type Tab int

const (
	TabSchedule Tab = iota // Tasks and subtasks by start time
	TabTasks
	TabEpics
	TabSubtasks
	TabHistory // Recently viewed items
	tabCount
)

// AllTabs returns the tabs in display order.
func AllTabs() []Tab {
	return []Tab{TabSchedule, TabTasks, TabEpics, TabSubtasks, TabHistory}
}

// String returns the config name of the tab.
func (t Tab) String() string {
	switch t {
	case TabSchedule:
		return "schedule"
	case TabTasks:
		return "tasks"
	case TabEpics:
		return "epics"
	case TabSubtasks:
		return "subtasks"
	case TabHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Title returns the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabSchedule:
		return "Schedule"
	case TabTasks:
		return "Tasks"
	case TabEpics:
		return "Epics"
	case TabSubtasks:
		return "Subtasks"
	case TabHistory:
		return "History"
	default:
		return "?"
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return (t + tabCount - 1) % tabCount
}

// ParseTab converts a config value such as "epics" into a Tab.
func ParseTab(s string) (Tab, error) {
	for _, t := range AllTabs() {
		if t.String() == s {
			return t, nil
		}
	}
	return TabSchedule, fmt.Errorf("unknown tab %q", s)
}
