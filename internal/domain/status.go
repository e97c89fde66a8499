package domain

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusNew        Status = "new"         // Created, not started
	StatusInProgress Status = "in_progress" // Being worked on
	StatusDone       Status = "done"        // Finished
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusNew,
		StatusInProgress,
		StatusDone,
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// IsOpen returns true while work remains (new or in progress).
// An epic with any open subtask is in progress.
func (s Status) IsOpen() bool {
	return s == StatusNew || s == StatusInProgress
}

// Next returns the status that follows s in the new -> in_progress -> done cycle.
// Done wraps around to new.
func (s Status) Next() Status {
	switch s {
	case StatusNew:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusNew
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// ParseStatus converts user input into a Status.
// Both the stored form ("in_progress") and the upper-case form ("IN_PROGRESS") are accepted.
func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses() {
		if s == string(st) || s == strings.ToUpper(string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}
