// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// NewTaskInput contains the parameters for creating a task, epic, or subtask.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Start       time.Time     // Slot start (tasks and subtasks)
	Title       string        // Title (required)
	Description string        // Description (optional)
	Kind        domain.Kind   // task, epic, or subtask
	Duration    time.Duration // Slot length (tasks and subtasks)
	EpicID      int           // Parent epic (subtasks only)
}

// NewTaskOutput contains the result of creating a task.
type NewTaskOutput struct {
	Task   domain.Task // The stored item
	TaskID int         // The ID of the created item
}

// NewTask is the use case for creating a task.
type NewTask struct {
	tasks domain.TaskManager
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskManager) *NewTask {
	return &NewTask{
		tasks: tasks,
	}
}

// Execute creates an item of the requested kind.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if in.Kind == "" {
		in.Kind = domain.KindTask
	}

	var draft domain.Task
	switch in.Kind {
	case domain.KindTask:
		draft = domain.NewTask(in.Title, in.Description, in.Start, in.Duration)
	case domain.KindEpic:
		draft = domain.NewEpic(in.Title, in.Description)
	case domain.KindSubtask:
		if in.EpicID == 0 {
			return nil, fmt.Errorf("%w: subtask needs an epic", domain.ErrInvalidOperation)
		}
		draft = domain.NewSubtask(in.EpicID, in.Title, in.Description, in.Start, in.Duration)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, in.Kind)
	}

	id, err := uc.tasks.Create(draft)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", in.Kind, err)
	}

	task, err := uc.tasks.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", in.Kind, err)
	}

	return &NewTaskOutput{TaskID: id, Task: task}, nil
}
