package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Kind       domain.Kind // Kind of the deleted item
	SubtaskIDs []int       // Subtasks removed along with an epic
}

// DeleteTask is the use case for deleting a task of any kind.
type DeleteTask struct {
	tasks domain.TaskManager
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskManager) *DeleteTask {
	return &DeleteTask{
		tasks: tasks,
	}
}

// Execute deletes the item with the given ID. Deleting an epic also deletes its subtasks.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	// Verify task exists
	task, err := uc.tasks.Lookup(in.TaskID)
	if err != nil {
		return nil, err
	}

	switch task.Kind {
	case domain.KindEpic:
		err = uc.tasks.DeleteEpic(task.ID)
	case domain.KindSubtask:
		err = uc.tasks.DeleteSubtask(task.ID)
	default:
		err = uc.tasks.DeleteTask(task.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", task.Kind, err)
	}

	return &DeleteTaskOutput{Kind: task.Kind, SubtaskIDs: task.SubtaskIDs}, nil
}
