package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
)

const release = `
steps:
  - create: {kind: epic, title: Release, ref: rel}
  - create:
      kind: subtask
      title: Build
      epic: rel
      ref: build
      start: "2025-01-06 09:00"
      duration: 1h
  - create: {kind: subtask, title: Test, epic: 1, start: "2025-01-06T10:00:00Z", duration: 90m, status: done}
  - status: {ref: build, status: IN_PROGRESS}
  - update: {id: 2, title: Build v2, description: ""}
  - view: {ref: rel}
  - delete: {ref: build}
  - clear: {kind: subtask}
`

func TestParse(t *testing.T) {
	// Execute
	sc, err := Parse(strings.NewReader(release))

	// Assert
	require.NoError(t, err)
	require.Len(t, sc.Steps, 8)

	epic := sc.Steps[0]
	assert.Equal(t, domain.StepCreate, epic.Op)
	assert.Equal(t, domain.KindEpic, epic.Kind)
	assert.Equal(t, "rel", epic.Name)
	assert.Equal(t, 1, epic.Index)

	build := sc.Steps[1]
	assert.Equal(t, domain.KindSubtask, build.Kind)
	assert.Equal(t, domain.Ref{Name: "rel"}, build.Epic)
	require.NotNil(t, build.Start)
	assert.Equal(t, time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC), *build.Start)
	require.NotNil(t, build.Duration)
	assert.Equal(t, time.Hour, *build.Duration)

	test := sc.Steps[2]
	assert.Equal(t, domain.Ref{ID: 1}, test.Epic)
	assert.Equal(t, 90*time.Minute, *test.Duration)
	assert.Equal(t, domain.StatusDone, *test.Status)

	status := sc.Steps[3]
	assert.Equal(t, domain.Ref{Name: "build"}, status.Target)
	assert.Equal(t, domain.StatusInProgress, *status.Status)

	update := sc.Steps[4]
	assert.Equal(t, domain.Ref{ID: 2}, update.Target)
	assert.Equal(t, "Build v2", *update.Title)
	require.NotNil(t, update.Description, "explicit empty value is kept")
	assert.Equal(t, "", *update.Description)
	assert.Nil(t, update.Start)

	assert.Equal(t, domain.StepView, sc.Steps[5].Op)
	assert.Equal(t, domain.StepDelete, sc.Steps[6].Op)
	assert.Equal(t, domain.KindSubtask, sc.Steps[7].Kind)
	assert.Equal(t, 8, sc.Steps[7].Index)
}

func TestParse_DefaultsToTask(t *testing.T) {
	sc, err := Parse(strings.NewReader(`steps: [{create: {title: A, start: "2025-01-06 10:00", duration: 1h}}]`))

	require.NoError(t, err)
	assert.Equal(t, domain.KindTask, sc.Steps[0].Kind)
}

func TestParse_Empty(t *testing.T) {
	sc, err := Parse(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, sc.Steps)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown op", `steps: [{rename: {ref: a}}]`, "step 1 (rename)"},
		{"two ops", `steps: [{view: {ref: a}, delete: {ref: a}}]`, "step 1: want exactly one operation"},
		{"unknown key", `steps: [{view: {ref: a, colour: red}}]`, "decode scenario"},
		{"bad time", `steps: [{create: {title: A, start: noon}}]`, "invalid time"},
		{"bad duration", `steps: [{create: {title: A, duration: long}}]`, "invalid duration"},
		{"bad status", `steps: [{create: {title: A}}, {status: {ref: a, status: closed}}]`, "step 2 (status)"},
		{"bad kind", `steps: [{create: {kind: story, title: A}}]`, "invalid task kind"},
		{"subtask without epic", `steps: [{create: {kind: subtask, title: A}}]`, "subtask needs epic"},
		{"target missing", `steps: [{view: {}}]`, "needs ref or id"},
		{"status missing", `steps: [{status: {ref: a}}]`, "needs status"},
		{"clear without kind", `steps: [{clear: {}}]`, "invalid task kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(release), 0o644))

	sc, err := ParseFile(path)

	require.NoError(t, err)
	assert.Len(t, sc.Steps, 8)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read scenario")
}
