package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
)

func TestDeleteTask_Epic(t *testing.T) {
	// Setup
	m := board(t)
	uc := NewDeleteTask(m)

	// Execute
	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.KindEpic, out.Kind)
	assert.Equal(t, []int{2, 3}, out.SubtaskIDs)
	assert.Empty(t, m.Subtasks())
	assert.Equal(t, []int{4}, taskIDs(m.Prioritized()))
}

func TestDeleteTask_Subtask(t *testing.T) {
	m := board(t)
	uc := NewDeleteTask(m)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 2})

	require.NoError(t, err)
	assert.Equal(t, domain.KindSubtask, out.Kind)
	epic, _ := m.PeekEpic(1)
	assert.Equal(t, []int{3}, epic.SubtaskIDs)
}

func TestDeleteTask_NotFound(t *testing.T) {
	uc := NewDeleteTask(board(t))

	_, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 99})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
