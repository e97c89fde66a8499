// Package history keeps a bounded, de-duplicated log of recently viewed tasks.
package history

import (
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/runoshun/taskboard/internal/domain"
)

// DefaultLimit is the number of views kept when no limit is configured.
const DefaultLimit = 10

// Tracker implements domain.History on top of an insertion-ordered map.
// Each ID appears at most once; viewing it again moves it to the newest position.
type Tracker struct {
	clock   domain.Clock
	entries *linkedhashmap.Map // int -> domain.HistoryEntry, oldest first
	limit   int
	mu      sync.Mutex
}

// Ensure Tracker implements domain.History.
var _ domain.History = (*Tracker)(nil)

// New creates a Tracker that remembers at most limit views.
// A non-positive limit falls back to DefaultLimit.
func New(limit int, clock domain.Clock) *Tracker {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Tracker{
		clock:   clock,
		entries: linkedhashmap.New(),
		limit:   limit,
	}
}

// Add records a view of task, evicting the oldest entry when full.
func (t *Tracker) Add(task domain.Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Put keeps the original position of an existing key.
	t.entries.Remove(task.ID)
	t.entries.Put(task.ID, domain.HistoryEntry{
		ViewedAt: t.clock.Now(),
		Task:     task.Clone(),
	})

	for t.entries.Size() > t.limit {
		it := t.entries.Iterator()
		if !it.First() {
			break
		}
		t.entries.Remove(it.Key())
	}
}

// Remove forgets id. Unknown ids are ignored.
func (t *Tracker) Remove(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries.Remove(id)
}

// Entries returns recorded views, oldest first.
func (t *Tracker) Entries() []domain.HistoryEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	values := t.entries.Values()
	out := make([]domain.HistoryEntry, 0, len(values))
	for _, v := range values {
		e := v.(domain.HistoryEntry)
		e.Task = e.Task.Clone()
		out = append(out, e)
	}
	return out
}
