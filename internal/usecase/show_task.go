package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID int  // Task ID (required)
	Peek   bool // Do not record the view in history
}

// ShowTaskOutput contains the result of showing a task.
type ShowTaskOutput struct {
	Epic     *domain.Task  // Parent epic (subtasks only)
	Subtasks []domain.Task // Subtasks in insertion order (epics only)
	Task     domain.Task
}

// ShowTask is the use case for displaying task details.
// Viewing records the item in history unless Peek is set.
type ShowTask struct {
	tasks domain.TaskManager
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskManager) *ShowTask {
	return &ShowTask{
		tasks: tasks,
	}
}

// Execute retrieves and returns the task details.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	found, err := uc.tasks.Lookup(in.TaskID)
	if err != nil {
		return nil, err
	}

	task := found
	if !in.Peek {
		task, err = uc.view(found)
		if err != nil {
			return nil, fmt.Errorf("view %s: %w", found.Kind, err)
		}
	}

	out := &ShowTaskOutput{Task: task}
	switch task.Kind {
	case domain.KindEpic:
		for _, id := range task.SubtaskIDs {
			sub, err := uc.tasks.PeekSubtask(id)
			if err != nil {
				return nil, fmt.Errorf("get subtask: %w", err)
			}
			out.Subtasks = append(out.Subtasks, sub)
		}
	case domain.KindSubtask:
		epic, err := uc.tasks.PeekEpic(task.EpicID)
		if err != nil {
			return nil, fmt.Errorf("get epic: %w", err)
		}
		out.Epic = &epic
	}
	return out, nil
}

func (uc *ShowTask) view(t domain.Task) (domain.Task, error) {
	switch t.Kind {
	case domain.KindEpic:
		return uc.tasks.Epic(t.ID)
	case domain.KindSubtask:
		return uc.tasks.Subtask(t.ID)
	default:
		return uc.tasks.Task(t.ID)
	}
}
