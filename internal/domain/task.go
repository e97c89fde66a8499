// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Kind distinguishes the three task variants. All of them share the Task struct.
type Kind string

const (
	KindTask    Kind = "task"    // Standalone task with its own time slot
	KindEpic    Kind = "epic"    // Groups subtasks; schedule and status are derived
	KindSubtask Kind = "subtask" // Task bound to exactly one parent epic
)

// AllKinds returns all valid kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindTask, KindEpic, KindSubtask}
}

// IsValid returns true if the kind is a known value.
func (k Kind) IsValid() bool {
	return slices.Contains(AllKinds(), k)
}

// ParseKind converts user input into a Kind.
// The error lists the accepted kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrInvalidKind, s, kindList())
	}
	return k, nil
}

func kindList() string {
	names := make([]string, 0, len(AllKinds()))
	for _, k := range AllKinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// Task represents a work unit on the board.
// Epics and subtasks are tasks too; Kind tells them apart.
// Fields are ordered to minimize memory padding.
type Task struct {
	Start       time.Time     `json:"start"`                // Scheduled start (derived for epics)
	EpicEnd     time.Time     `json:"epicEnd,omitempty"`    // Latest subtask end (epics only)
	Title       string        `json:"title"`                // Title (required)
	Description string        `json:"description,omitempty"` // Description (optional)
	Kind        Kind          `json:"kind"`
	Status      Status        `json:"status"`
	SubtaskIDs  []int         `json:"subtaskIDs,omitempty"` // Subtask ids in insertion order (epics only)
	Duration    time.Duration `json:"duration"`             // Length of the slot (sum of subtasks for epics)
	ID          int           `json:"id"`
	EpicID      int           `json:"epicID,omitempty"` // Parent epic (subtasks only)
}

// NewTask returns a plain task draft. The manager assigns ID and status on creation.
func NewTask(title, description string, start time.Time, d time.Duration) Task {
	return Task{Kind: KindTask, Title: title, Description: description, Start: start, Duration: d}
}

// NewEpic returns an epic draft.
func NewEpic(title, description string) Task {
	return Task{Kind: KindEpic, Title: title, Description: description}
}

// NewSubtask returns a subtask draft bound to epicID.
func NewSubtask(epicID int, title, description string, start time.Time, d time.Duration) Task {
	return Task{Kind: KindSubtask, EpicID: epicID, Title: title, Description: description, Start: start, Duration: d}
}

// End returns the end of the task's slot.
// For epics this is the latest end among its subtasks, which can differ
// from Start+Duration when subtasks leave gaps.
func (t *Task) End() time.Time {
	if t.Kind == KindEpic {
		return t.EpicEnd
	}
	return t.Start.Add(t.Duration)
}

// Interval returns the half-open [Start, End) slot of the task.
func (t *Task) Interval() Interval {
	return Interval{Start: t.Start, End: t.End()}
}

// IsEpic returns true for epics.
func (t *Task) IsEpic() bool {
	return t.Kind == KindEpic
}

// IsSchedulable returns true if the task occupies a slot in the schedule.
// Epics never do; their slot is derived from subtasks.
func (t *Task) IsSchedulable() bool {
	return t.Kind == KindTask || t.Kind == KindSubtask
}

// HasSubtask reports whether id is one of the epic's subtasks.
func (t *Task) HasSubtask(id int) bool {
	return slices.Contains(t.SubtaskIDs, id)
}

// Clone returns a deep copy so callers never share the SubtaskIDs backing array.
func (t Task) Clone() Task {
	t.SubtaskIDs = slices.Clone(t.SubtaskIDs)
	return t
}

// Label returns a short human-readable reference like "epic #3".
func (t *Task) Label() string {
	return fmt.Sprintf("%s #%d", t.Kind, t.ID)
}

// HistoryEntry is a task snapshot recorded when the task was viewed.
type HistoryEntry struct {
	ViewedAt time.Time
	Task     Task
}
