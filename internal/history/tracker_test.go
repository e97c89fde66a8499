package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
)

func task(id int) domain.Task {
	return domain.Task{ID: id, Kind: domain.KindTask, Title: fmt.Sprintf("task %d", id)}
}

func ids(entries []domain.HistoryEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Task.ID)
	}
	return out
}

func TestTracker_AddKeepsOrder(t *testing.T) {
	// Setup
	tr := New(10, nil)

	// Execute
	tr.Add(task(1))
	tr.Add(task(2))
	tr.Add(task(3))

	// Assert
	assert.Equal(t, []int{1, 2, 3}, ids(tr.Entries()))
}

func TestTracker_ReviewMovesToEnd(t *testing.T) {
	// Setup
	tr := New(10, nil)
	tr.Add(task(1))
	tr.Add(task(2))
	tr.Add(task(3))

	// Execute
	tr.Add(task(1))

	// Assert
	assert.Equal(t, []int{2, 3, 1}, ids(tr.Entries()))
	assert.Len(t, tr.Entries(), 3, "re-viewing must not grow the history")
}

func TestTracker_Bounded(t *testing.T) {
	// Setup
	tr := New(3, nil)

	// Execute
	for id := 1; id <= 5; id++ {
		tr.Add(task(id))
	}

	// Assert
	assert.Equal(t, []int{3, 4, 5}, ids(tr.Entries()))
}

func TestTracker_DefaultLimit(t *testing.T) {
	tr := New(0, nil)

	for id := 1; id <= DefaultLimit+5; id++ {
		tr.Add(task(id))
	}
	entries := tr.Entries()
	require.Len(t, entries, DefaultLimit)
	assert.Equal(t, 6, entries[0].Task.ID)
}

func TestTracker_Remove(t *testing.T) {
	tr := New(10, nil)
	tr.Add(task(1))
	tr.Add(task(2))

	tr.Remove(1)
	tr.Remove(42)

	assert.Equal(t, []int{2}, ids(tr.Entries()))
}

func TestTracker_RecordsViewTime(t *testing.T) {
	// Setup
	clock := &testutil.MockClock{NowTime: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)}
	tr := New(10, clock)

	// Execute
	tr.Add(task(1))
	clock.NowTime = clock.NowTime.Add(time.Minute)
	tr.Add(task(2))

	// Assert
	entries := tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC), entries[0].ViewedAt)
	assert.Equal(t, time.Date(2025, 1, 6, 9, 1, 0, 0, time.UTC), entries[1].ViewedAt)
}

func TestTracker_SnapshotsAreIsolated(t *testing.T) {
	// Setup
	tr := New(10, nil)
	epic := domain.Task{ID: 1, Kind: domain.KindEpic, SubtaskIDs: []int{2}}
	tr.Add(epic)

	// Execute
	epic.SubtaskIDs[0] = 99
	got := tr.Entries()
	got[0].Task.SubtaskIDs[0] = 100

	// Assert
	assert.Equal(t, []int{2}, tr.Entries()[0].Task.SubtaskIDs)
}

func TestTracker_NeverHoldsDuplicates(t *testing.T) {
	tr := New(4, nil)
	for _, id := range []int{1, 2, 1, 3, 2, 4, 1, 5, 5} {
		tr.Add(task(id))

		seen := map[int]bool{}
		for _, got := range ids(tr.Entries()) {
			require.False(t, seen[got], "duplicate id %d", got)
			seen[got] = true
		}
		require.LessOrEqual(t, len(tr.Entries()), 4)
	}
	assert.Equal(t, []int{2, 4, 1, 5}, ids(tr.Entries()))
}
