package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrEpicNotFound       = errors.New("epic not found")
	ErrSubtaskNotFound    = errors.New("subtask not found")
	ErrOrphanSubtask      = errors.New("subtask references an unknown epic")
	ErrSchedulingConflict = errors.New("time slot overlaps another task")
	ErrStartTimeTaken     = errors.New("another task already starts at this time")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidKind        = errors.New("invalid task kind")
	ErrInvalidDuration    = errors.New("duration cannot be negative")
	ErrMissingStartTime   = errors.New("start time is required")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrUnknownRef         = errors.New("unknown scenario reference")
	ErrConfigExists       = errors.New("config file already exists")
)

// ConflictError reports that a slot was refused because it overlaps another task.
// It matches ErrSchedulingConflict with errors.Is.
type ConflictError struct {
	Slot Interval // Requested slot
	ID   int      // Task that asked for the slot (0 before creation)
	With int      // Task already holding an overlapping slot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: [%s, %s) overlaps task #%d",
		ErrSchedulingConflict,
		e.Slot.Start.Format(TimeLayout),
		e.Slot.End.Format(TimeLayout),
		e.With)
}

// Unwrap returns ErrSchedulingConflict.
func (e *ConflictError) Unwrap() error {
	return ErrSchedulingConflict
}

// orphanError matches both ErrOrphanSubtask and ErrEpicNotFound.
type orphanError struct {
	epicID int
}

// NewOrphanError returns the error for a subtask whose epic does not exist.
func NewOrphanError(epicID int) error {
	return &orphanError{epicID: epicID}
}

func (e *orphanError) Error() string {
	return fmt.Sprintf("%s: epic #%d", ErrOrphanSubtask, e.epicID)
}

func (e *orphanError) Unwrap() []error {
	return []error{ErrOrphanSubtask, ErrEpicNotFound}
}
