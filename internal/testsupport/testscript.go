// Package testsupport builds the taskboard binary for script tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/runoshun/taskboard/internal/domain"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// BuildTaskboard builds the taskboard binary once and returns its path.
func BuildTaskboard(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "taskboard-bin-")
		if err != nil {
			buildErr = err
			return
		}

		binPath = filepath.Join(binDir, "taskboard")
		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/taskboard")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build taskboard: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return binPath
}

// SetupScriptEnv exposes the binary as $TASKBOARD and isolates config lookups
// to the script's work directory.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TASKBOARD", BuildTaskboard(t))

	configHome := filepath.Join(env.WorkDir, "config")
	if err := os.MkdirAll(configHome, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	env.Setenv("XDG_CONFIG_HOME", configHome)
	env.Setenv("HOME", env.WorkDir)
	return nil
}

// Commands returns the custom script commands.
func Commands() map[string]func(ts *testscript.TestScript, neg bool, args []string) {
	return map[string]func(ts *testscript.TestScript, neg bool, args []string){
		"taskid":    CmdTaskID,
		"ascending": CmdAscending,
	}
}

// CmdTaskID finds a task by title in "list --json" output and stores its ID in an env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	for _, task := range readTasks(ts, args[0]) {
		if task.Title == args[1] {
			ts.Setenv(args[2], fmt.Sprint(task.ID))
			return
		}
	}
	ts.Fatalf("task with title %q not found", args[1])
}

// CmdAscending checks that the tasks in "list --json" output are ordered by start time.
// With negation it checks that they are not.
func CmdAscending(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 1 {
		ts.Fatalf("usage: ascending FILE")
	}

	tasks := readTasks(ts, args[0])
	ordered := true
	for i := 1; i < len(tasks); i++ {
		if tasks[i].Start.Before(tasks[i-1].Start) {
			ordered = false
			break
		}
	}

	switch {
	case ordered && neg:
		ts.Fatalf("tasks are ordered by start")
	case !ordered && !neg:
		ts.Fatalf("tasks are not ordered by start")
	}
}

func readTasks(ts *testscript.TestScript, file string) []domain.Task {
	var tasks []domain.Task
	if err := json.Unmarshal([]byte(ts.ReadFile(file)), &tasks); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}
	return tasks
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
