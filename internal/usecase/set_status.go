package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// SetStatusInput contains the parameters for changing a status.
type SetStatusInput struct {
	Status domain.Status // New status (required)
	TaskID int           // Task or subtask ID (required)
}

// SetStatusOutput contains the result of changing a status.
type SetStatusOutput struct {
	Epic *domain.Task // Parent epic after recompute (subtasks only)
	Task domain.Task  // The updated item
}

// SetStatus is the use case for changing the status of a task or subtask.
// Epic status is derived and cannot be set.
type SetStatus struct {
	tasks domain.TaskManager
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(tasks domain.TaskManager) *SetStatus {
	return &SetStatus{
		tasks: tasks,
	}
}

// Execute sets the status.
func (uc *SetStatus) Execute(_ context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	task, err := uc.tasks.Lookup(in.TaskID)
	if err != nil {
		return nil, err
	}

	if task.Kind != domain.KindSubtask {
		updated, err := uc.tasks.SetTaskStatus(task, in.Status)
		if err != nil {
			return nil, fmt.Errorf("set status: %w", err)
		}
		return &SetStatusOutput{Task: updated}, nil
	}

	updated, err := uc.tasks.SetSubtaskStatus(task, in.Status)
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}
	epic, err := uc.tasks.PeekEpic(updated.EpicID)
	if err != nil {
		return nil, fmt.Errorf("get epic: %w", err)
	}
	return &SetStatusOutput{Task: updated, Epic: &epic}, nil
}
