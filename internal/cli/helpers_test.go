package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/runoshun/taskboard/internal/tracker"
)

// newTestContainer creates an app.Container over an empty in-memory board.
func newTestContainer(t *testing.T) (*app.Container, *tracker.Manager) {
	t.Helper()
	clock := &testutil.MockClock{NowTime: testutil.At(8, 0)}
	tasks := tracker.New(tracker.WithClock(clock), tracker.WithLogger(testutil.DiscardLogger()))
	c := app.NewWithDeps(app.Config{}, tasks, clock, testutil.DiscardLogger())
	c.ConfigLoader = testutil.NewMockConfigLoader()
	c.ConfigManager = testutil.NewMockConfigManager()
	return c, tasks
}

// execute runs the root command with args and returns stdout and stderr.
func execute(c *app.Container, stdin string, args ...string) (string, string, error) {
	root := NewRootCommand(c, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// writeScenario writes content to a temp YAML file and returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const releaseScenario = `steps:
  - create: {kind: epic, title: Release, ref: rel}
  - create: {kind: subtask, title: Build, epic: rel, ref: build, start: "2025-01-06 09:00", duration: 1h}
  - create: {kind: subtask, title: Test, epic: rel, ref: test, start: "2025-01-06 10:00", duration: 1h, status: done}
  - create: {kind: task, title: Lunch, ref: lunch, start: "2025-01-06 12:00", duration: 1h}
`
