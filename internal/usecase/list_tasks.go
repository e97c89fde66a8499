package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/taskboard/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Kind        domain.Kind // Filter by kind (empty = all kinds)
	Prioritized bool        // Order by start time; epics are never included
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskManager
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskManager) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Kind != "" && !in.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, in.Kind)
	}

	if in.Prioritized {
		tasks := uc.tasks.Prioritized()
		if in.Kind != "" {
			tasks = filterKind(tasks, in.Kind)
		}
		return &ListTasksOutput{Tasks: tasks}, nil
	}

	var tasks []domain.Task
	switch in.Kind {
	case domain.KindTask:
		tasks = uc.tasks.Tasks()
	case domain.KindEpic:
		tasks = uc.tasks.Epics()
	case domain.KindSubtask:
		tasks = uc.tasks.Subtasks()
	default:
		tasks = slices.Concat(uc.tasks.Tasks(), uc.tasks.Epics(), uc.tasks.Subtasks())
		slices.SortFunc(tasks, func(a, b domain.Task) int { return a.ID - b.ID })
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}

func filterKind(tasks []domain.Task, kind domain.Kind) []domain.Task {
	return slices.DeleteFunc(tasks, func(t domain.Task) bool { return t.Kind != kind })
}
