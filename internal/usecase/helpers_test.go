package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/runoshun/taskboard/internal/tracker"
)

var at = testutil.At

func ptr[T any](v T) *T {
	return &v
}

// board returns a manager holding an epic (1) with subtasks at 09:00 (2) and 10:00 (3),
// and a plain task at 12:00 (4).
func board(t *testing.T) *tracker.Manager {
	t.Helper()
	m := tracker.New()
	for _, draft := range []domain.Task{
		domain.NewEpic("Release", "ship it"),
		domain.NewSubtask(1, "Build", "", at(9, 0), time.Hour),
		domain.NewSubtask(1, "Test", "", at(10, 0), time.Hour),
		domain.NewTask("Lunch", "", at(12, 0), time.Hour),
	} {
		_, err := m.Create(draft)
		require.NoError(t, err)
	}
	return m
}
