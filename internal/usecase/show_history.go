package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// ShowHistoryInput contains the parameters for showing history.
type ShowHistoryInput struct{}

// ShowHistoryOutput contains recently viewed items, oldest first.
type ShowHistoryOutput struct {
	Entries []domain.HistoryEntry
}

// ShowHistory is the use case for listing recently viewed items.
type ShowHistory struct {
	tasks domain.TaskManager
}

// NewShowHistory creates a new ShowHistory use case.
func NewShowHistory(tasks domain.TaskManager) *ShowHistory {
	return &ShowHistory{
		tasks: tasks,
	}
}

// Execute returns the history.
func (uc *ShowHistory) Execute(_ context.Context, _ ShowHistoryInput) (*ShowHistoryOutput, error) {
	return &ShowHistoryOutput{Entries: uc.tasks.History()}, nil
}
