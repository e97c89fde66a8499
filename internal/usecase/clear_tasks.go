package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// ClearTasksInput contains the parameters for clearing a kind.
type ClearTasksInput struct {
	Kind domain.Kind // Kind to clear (required)
}

// ClearTasksOutput contains the result of clearing a kind.
type ClearTasksOutput struct {
	Cleared int // Number of items of Kind removed
}

// ClearTasks is the use case for removing every item of one kind.
// Clearing epics removes all subtasks too.
type ClearTasks struct {
	tasks domain.TaskManager
}

// NewClearTasks creates a new ClearTasks use case.
func NewClearTasks(tasks domain.TaskManager) *ClearTasks {
	return &ClearTasks{
		tasks: tasks,
	}
}

// Execute clears the requested kind.
func (uc *ClearTasks) Execute(_ context.Context, in ClearTasksInput) (*ClearTasksOutput, error) {
	var n int
	switch in.Kind {
	case domain.KindTask:
		n = len(uc.tasks.Tasks())
		uc.tasks.ClearTasks()
	case domain.KindEpic:
		n = len(uc.tasks.Epics())
		uc.tasks.ClearEpics()
	case domain.KindSubtask:
		n = len(uc.tasks.Subtasks())
		uc.tasks.ClearSubtasks()
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, in.Kind)
	}
	return &ClearTasksOutput{Cleared: n}, nil
}
