package domain

import (
	"fmt"
	"time"
)

// StepOp is the action a scenario step performs.
type StepOp string

const (
	StepCreate StepOp = "create"
	StepStatus StepOp = "status"
	StepUpdate StepOp = "update"
	StepDelete StepOp = "delete"
	StepView   StepOp = "view"
	StepClear  StepOp = "clear"
)

// Ref points at an entity either by scenario name or by numeric ID.
type Ref struct {
	Name string
	ID   int
}

// IsZero returns true if neither a name nor an ID is set.
func (r Ref) IsZero() bool {
	return r.Name == "" && r.ID == 0
}

func (r Ref) String() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("#%d", r.ID)
}

// Step is one action of a scenario.
// Optional fields are pointers so "update" can tell unset from empty.
// Fields are ordered to minimize memory padding.
type Step struct {
	Start       *time.Time
	Duration    *time.Duration
	Title       *string
	Description *string
	Status      *Status
	Target      Ref    // Entity acted on (status, update, delete, view)
	Epic        Ref    // Parent epic (create subtask)
	Op          StepOp // Action
	Kind        Kind   // Entity kind (create, clear)
	Name        string // Name bound to the created entity (create)
	Index       int    // Position in the scenario, starting at 1
}

// Scenario is an ordered list of steps applied to one board.
type Scenario struct {
	Steps []Step
}
