package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// All fields except TaskID are optional. Only non-nil fields will be updated.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title       *string        // New title (nil = no change)
	Description *string        // New description (nil = no change)
	Status      *domain.Status // New status (nil = no change; refused for epics)
	Start       *time.Time     // New start (nil = no change; refused for epics)
	Duration    *time.Duration // New duration (nil = no change; refused for epics)
	TaskID      int            // Task ID to edit (required)
}

func (in EditTaskInput) empty() bool {
	return in.Title == nil && in.Description == nil && in.Status == nil && in.Start == nil && in.Duration == nil
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	tasks domain.TaskManager
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskManager) *EditTask {
	return &EditTask{
		tasks: tasks,
	}
}

// Execute edits a task with the given input.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	// Validate that at least one field is being updated
	if in.empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	// Validate title is not empty if provided
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	task, err := uc.tasks.Lookup(in.TaskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}

	if task.Kind == domain.KindEpic {
		if in.Status != nil || in.Start != nil || in.Duration != nil {
			return nil, fmt.Errorf("%w: epic status and schedule are derived from its subtasks", domain.ErrInvalidOperation)
		}
		if err := uc.tasks.UpdateEpic(task); err != nil {
			return nil, fmt.Errorf("update epic: %w", err)
		}
		return uc.reload(task.ID)
	}

	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Start != nil {
		task.Start = *in.Start
	}
	if in.Duration != nil {
		task.Duration = *in.Duration
	}

	if task.Kind == domain.KindSubtask {
		err = uc.tasks.UpdateSubtask(task)
	} else {
		err = uc.tasks.UpdateTask(task)
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", task.Kind, err)
	}
	return uc.reload(task.ID)
}

func (uc *EditTask) reload(id int) (*EditTaskOutput, error) {
	task, err := uc.tasks.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &EditTaskOutput{Task: task}, nil
}
