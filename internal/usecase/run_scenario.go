package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// RunScenarioInput contains the scenario to apply.
type RunScenarioInput struct {
	Scenario *domain.Scenario
	Strict   bool // Stop at the first failing step
}

// StepResult is the outcome of one scenario step.
// Fields are ordered to minimize memory padding.
type StepResult struct {
	Err    error       // Failure, nil on success
	Task   domain.Task // Item acted on (zero for clear)
	Op     domain.StepOp
	Index  int
	Affect int // Items removed by delete or clear
}

// RunScenarioOutput contains per-step results and the names bound by create steps.
type RunScenarioOutput struct {
	Refs    map[string]int
	Results []StepResult
}

// Failed returns the number of failed steps.
func (o *RunScenarioOutput) Failed() int {
	n := 0
	for _, r := range o.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// RunScenario is the use case for applying a scripted list of operations to the board.
type RunScenario struct {
	newTask    *NewTask
	setStatus  *SetStatus
	editTask   *EditTask
	deleteTask *DeleteTask
	showTask   *ShowTask
	clearTasks *ClearTasks
}

// NewRunScenario creates a new RunScenario use case.
func NewRunScenario(tasks domain.TaskManager) *RunScenario {
	return &RunScenario{
		newTask:    NewNewTask(tasks),
		setStatus:  NewSetStatus(tasks),
		editTask:   NewEditTask(tasks),
		deleteTask: NewDeleteTask(tasks),
		showTask:   NewShowTask(tasks),
		clearTasks: NewClearTasks(tasks),
	}
}

// Execute applies every step in order. Failed steps are recorded and skipped
// unless Strict is set, in which case the first failure is returned.
func (uc *RunScenario) Execute(ctx context.Context, in RunScenarioInput) (*RunScenarioOutput, error) {
	out := &RunScenarioOutput{Refs: make(map[string]int)}
	if in.Scenario == nil {
		return out, nil
	}

	for _, step := range in.Scenario.Steps {
		res := uc.apply(ctx, step, out.Refs)
		out.Results = append(out.Results, res)
		if res.Err != nil && in.Strict {
			return out, fmt.Errorf("step %d (%s): %w", step.Index, step.Op, res.Err)
		}
	}
	return out, nil
}

func (uc *RunScenario) apply(ctx context.Context, step domain.Step, refs map[string]int) StepResult {
	res := StepResult{Index: step.Index, Op: step.Op}

	if step.Op == domain.StepCreate {
		return uc.applyCreate(ctx, step, refs, res)
	}
	if step.Op == domain.StepClear {
		cleared, err := uc.clearTasks.Execute(ctx, ClearTasksInput{Kind: step.Kind})
		if err != nil {
			res.Err = err
			return res
		}
		res.Affect = cleared.Cleared
		return res
	}

	id, err := resolve(step.Target, refs)
	if err != nil {
		res.Err = err
		return res
	}

	switch step.Op {
	case domain.StepStatus:
		if step.Status == nil {
			res.Err = fmt.Errorf("%w: status step needs a status", domain.ErrNoFieldsToUpdate)
			return res
		}
		var o *SetStatusOutput
		o, res.Err = uc.setStatus.Execute(ctx, SetStatusInput{TaskID: id, Status: *step.Status})
		if o != nil {
			res.Task = o.Task
		}

	case domain.StepUpdate:
		var o *EditTaskOutput
		o, res.Err = uc.editTask.Execute(ctx, EditTaskInput{
			TaskID:      id,
			Title:       step.Title,
			Description: step.Description,
			Status:      step.Status,
			Start:       step.Start,
			Duration:    step.Duration,
		})
		if o != nil {
			res.Task = o.Task
		}

	case domain.StepDelete:
		var o *DeleteTaskOutput
		o, res.Err = uc.deleteTask.Execute(ctx, DeleteTaskInput{TaskID: id})
		if o != nil {
			res.Task = domain.Task{ID: id, Kind: o.Kind}
			res.Affect = 1 + len(o.SubtaskIDs)
		}

	case domain.StepView:
		var o *ShowTaskOutput
		o, res.Err = uc.showTask.Execute(ctx, ShowTaskInput{TaskID: id})
		if o != nil {
			res.Task = o.Task
		}

	default:
		res.Err = fmt.Errorf("%w: unknown step %q", domain.ErrInvalidOperation, step.Op)
	}
	return res
}

func (uc *RunScenario) applyCreate(ctx context.Context, step domain.Step, refs map[string]int, res StepResult) StepResult {
	in := NewTaskInput{Kind: step.Kind}
	if step.Title != nil {
		in.Title = *step.Title
	}
	if step.Description != nil {
		in.Description = *step.Description
	}
	if step.Start != nil {
		in.Start = *step.Start
	}
	if step.Duration != nil {
		in.Duration = *step.Duration
	}
	if step.Kind == domain.KindSubtask {
		epicID, err := resolve(step.Epic, refs)
		if err != nil {
			res.Err = err
			return res
		}
		in.EpicID = epicID
	}

	o, err := uc.newTask.Execute(ctx, in)
	if err != nil {
		res.Err = err
		return res
	}
	res.Task = o.Task
	if step.Name != "" {
		refs[step.Name] = o.TaskID
	}

	if step.Status != nil && *step.Status != domain.StatusNew {
		so, err := uc.setStatus.Execute(ctx, SetStatusInput{TaskID: o.TaskID, Status: *step.Status})
		if err != nil {
			res.Err = err
			return res
		}
		res.Task = so.Task
	}
	return res
}

func resolve(ref domain.Ref, refs map[string]int) (int, error) {
	if ref.Name != "" {
		id, ok := refs[ref.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", domain.ErrUnknownRef, ref.Name)
		}
		return id, nil
	}
	if ref.ID == 0 {
		return 0, fmt.Errorf("%w: step has no target", domain.ErrUnknownRef)
	}
	return ref.ID, nil
}
