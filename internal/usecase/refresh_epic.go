package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// RefreshEpicInput contains the parameters for recomputing an epic.
type RefreshEpicInput struct {
	EpicID int // Epic ID (required)
}

// RefreshEpicOutput contains the recomputed epic.
type RefreshEpicOutput struct {
	Epic domain.Task
}

// RefreshEpic is the use case for recomputing an epic's status and schedule.
type RefreshEpic struct {
	tasks domain.TaskManager
}

// NewRefreshEpic creates a new RefreshEpic use case.
func NewRefreshEpic(tasks domain.TaskManager) *RefreshEpic {
	return &RefreshEpic{
		tasks: tasks,
	}
}

// Execute recomputes the epic.
func (uc *RefreshEpic) Execute(_ context.Context, in RefreshEpicInput) (*RefreshEpicOutput, error) {
	if err := uc.tasks.RefreshEpic(in.EpicID); err != nil {
		return nil, err
	}
	epic, err := uc.tasks.PeekEpic(in.EpicID)
	if err != nil {
		return nil, fmt.Errorf("get epic: %w", err)
	}
	return &RefreshEpicOutput{Epic: epic}, nil
}
