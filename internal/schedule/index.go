// Package schedule keeps time slots ordered by start time and rejects overlaps.
package schedule

import (
	"fmt"
	"time"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/runoshun/taskboard/internal/domain"
)

// Entry is one occupied slot.
type Entry struct {
	Start time.Time
	End   time.Time
	ID    int
}

// Interval returns the entry's slot.
func (e Entry) Interval() domain.Interval {
	return domain.Interval{Start: e.Start, End: e.End}
}

// Index holds non-overlapping slots keyed by start time.
// It is not safe for concurrent use; the owner serializes access.
type Index struct {
	byStart *treemap.Map // time.Time -> Entry
	starts  map[int]time.Time
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		byStart: treemap.NewWith(byTime),
		starts:  make(map[int]time.Time),
	}
}

func byTime(a, b interface{}) int {
	return a.(time.Time).Compare(b.(time.Time))
}

// Check reports whether id may occupy [start, end).
// The entry already held by id is ignored so a task can be moved within its own slot.
// Returns *domain.ConflictError on overlap and domain.ErrStartTimeTaken when
// another entry starts at the same instant without overlapping.
func (x *Index) Check(id int, start, end time.Time) error {
	slot := domain.Interval{Start: start, End: end}

	it := x.byStart.Iterator()
	for it.Next() {
		e := it.Value().(Entry)
		if !e.Start.Before(end) && !e.Start.Equal(start) {
			// Every later entry starts at or after end.
			break
		}
		if e.ID == id {
			continue
		}
		if e.Interval().Overlaps(slot) {
			return &domain.ConflictError{Slot: slot, ID: id, With: e.ID}
		}
		if e.Start.Equal(start) {
			return fmt.Errorf("%w: %s held by task #%d", domain.ErrStartTimeTaken, start.Format(domain.TimeLayout), e.ID)
		}
	}
	return nil
}

// Put stores or moves the slot of id after checking it.
// On error the index is unchanged.
func (x *Index) Put(id int, start, end time.Time) error {
	if err := x.Check(id, start, end); err != nil {
		return err
	}
	x.Remove(id)
	x.byStart.Put(start, Entry{ID: id, Start: start, End: end})
	x.starts[id] = start
	return nil
}

// Remove drops the slot of id. Unknown ids are ignored.
func (x *Index) Remove(id int) {
	start, ok := x.starts[id]
	if !ok {
		return
	}
	x.byStart.Remove(start)
	delete(x.starts, id)
}

// Entries returns all slots ordered by start time.
func (x *Index) Entries() []Entry {
	values := x.byStart.Values()
	out := make([]Entry, 0, len(values))
	for _, v := range values {
		out = append(out, v.(Entry))
	}
	return out
}

// IDs returns the ids of all slots ordered by start time.
func (x *Index) IDs() []int {
	entries := x.Entries()
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

// Len returns the number of slots.
func (x *Index) Len() int {
	return x.byStart.Size()
}
