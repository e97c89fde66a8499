package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/tracker"
)

func create(i int, kind domain.Kind, name, title string, start time.Time, d time.Duration) domain.Step {
	s := domain.Step{Index: i, Op: domain.StepCreate, Kind: kind, Name: name, Title: ptr(title)}
	if !start.IsZero() {
		s.Start = ptr(start)
		s.Duration = ptr(d)
	}
	return s
}

func TestRunScenario_EpicRollup(t *testing.T) {
	// Setup
	m := tracker.New()
	s1 := create(2, domain.KindSubtask, "s1", "S1", at(9, 0), time.Hour)
	s1.Epic = domain.Ref{Name: "e"}
	s2 := create(3, domain.KindSubtask, "s2", "S2", at(10, 0), time.Hour)
	s2.Epic = domain.Ref{Name: "e"}
	s2.Status = ptr(domain.StatusDone)
	sc := &domain.Scenario{Steps: []domain.Step{
		create(1, domain.KindEpic, "e", "E", time.Time{}, 0),
		s1,
		s2,
		{Index: 4, Op: domain.StepView, Target: domain.Ref{Name: "e"}},
	}}

	// Execute
	out, err := NewRunScenario(m).Execute(context.Background(), RunScenarioInput{Scenario: sc})

	// Assert
	require.NoError(t, err)
	assert.Zero(t, out.Failed())
	assert.Equal(t, map[string]int{"e": 1, "s1": 2, "s2": 3}, out.Refs)
	epic := out.Results[3].Task
	assert.Equal(t, domain.StatusInProgress, epic.Status)
	assert.Equal(t, at(9, 0), epic.Start)
	assert.Equal(t, at(11, 0), epic.End())
	assert.Equal(t, 2*time.Hour, epic.Duration)
	assert.Len(t, m.History(), 1)
}

func TestRunScenario_CollectsFailures(t *testing.T) {
	// Setup
	m := tracker.New()
	sc := &domain.Scenario{Steps: []domain.Step{
		create(1, domain.KindTask, "a", "A", at(10, 0), time.Hour),
		create(2, domain.KindTask, "b", "B", at(11, 0), time.Hour),
		create(3, domain.KindTask, "c", "C", at(10, 30), 15*time.Minute),
		{Index: 4, Op: domain.StepDelete, Target: domain.Ref{Name: "c"}},
		{Index: 5, Op: domain.StepStatus, Target: domain.Ref{ID: 2}, Status: ptr(domain.StatusDone)},
		{Index: 6, Op: domain.StepUpdate, Target: domain.Ref{Name: "a"}, Title: ptr("A2")},
	}}

	// Execute
	out, err := NewRunScenario(m).Execute(context.Background(), RunScenarioInput{Scenario: sc})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Results, 6)
	assert.Equal(t, 2, out.Failed())
	assert.ErrorIs(t, out.Results[2].Err, domain.ErrSchedulingConflict)
	assert.ErrorIs(t, out.Results[3].Err, domain.ErrUnknownRef)
	assert.Equal(t, domain.StatusDone, out.Results[4].Task.Status)
	assert.Equal(t, "A2", out.Results[5].Task.Title)
	assert.Len(t, m.Tasks(), 2)
}

func TestRunScenario_Strict(t *testing.T) {
	m := tracker.New()
	sc := &domain.Scenario{Steps: []domain.Step{
		{Index: 1, Op: domain.StepView, Target: domain.Ref{ID: 9}},
		create(2, domain.KindTask, "a", "A", at(10, 0), time.Hour),
	}}

	out, err := NewRunScenario(m).Execute(context.Background(), RunScenarioInput{Scenario: sc, Strict: true})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.ErrorContains(t, err, "step 1 (view)")
	assert.Len(t, out.Results, 1)
	assert.Empty(t, m.Tasks())
}

func TestRunScenario_DeleteAndClear(t *testing.T) {
	m := board(t)
	sc := &domain.Scenario{Steps: []domain.Step{
		{Index: 1, Op: domain.StepDelete, Target: domain.Ref{ID: 1}},
		{Index: 2, Op: domain.StepClear, Kind: domain.KindTask},
	}}

	out, err := NewRunScenario(m).Execute(context.Background(), RunScenarioInput{Scenario: sc})

	require.NoError(t, err)
	assert.Equal(t, 3, out.Results[0].Affect)
	assert.Equal(t, 1, out.Results[1].Affect)
	assert.Empty(t, m.Prioritized())
}

func TestRunScenario_NilScenario(t *testing.T) {
	out, err := NewRunScenario(tracker.New()).Execute(context.Background(), RunScenarioInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Results)
}
