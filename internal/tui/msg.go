package tui

import (
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgBoardLoaded carries the items for the active tab.
type MsgBoardLoaded struct {
	Tasks   []domain.Task         // Rows for item tabs
	History []domain.HistoryEntry // Rows for the history tab
	Tab     Tab                   // Tab the rows were loaded for
}

func (MsgBoardLoaded) sealed() {}

// MsgTaskViewed is sent when an item was opened; the view is in history now.
type MsgTaskViewed struct {
	Detail *usecase.ShowTaskOutput
}

func (MsgTaskViewed) sealed() {}

// MsgStatusChanged is sent after a status change.
type MsgStatusChanged struct {
	Epic *domain.Task // Parent epic after recompute (subtasks only)
	Task domain.Task
}

func (MsgStatusChanged) sealed() {}

// MsgTaskDeleted is sent when an item is deleted.
type MsgTaskDeleted struct {
	Kind   domain.Kind
	TaskID int
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
