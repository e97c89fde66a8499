// Package cli provides the command-line interface for taskboard.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/infra/scenario"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupBoard = "board"
)

// NewRootCommand creates the root command for taskboard.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var scenarioPath string

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "In-memory task, epic and subtask scheduler",
		Long: `taskboard keeps tasks, epics and subtasks in memory and schedules them
on a single timeline. Overlapping time slots are rejected, and an epic's
status and schedule are derived from its subtasks.

Nothing is written to disk. Seed a board with --scenario, apply a script
with "run", or keep one board alive across commands with "shell".`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if c.AppConfig != nil {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}

			if scenarioPath == "" {
				return nil
			}
			return seedScenario(cmd, c, scenarioPath)
		},
	}

	root.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "Seed the board from a YAML scenario file first")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupBoard, Title: "Board Commands:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Board commands
	runCmd := newRunCommand(c)
	runCmd.GroupID = groupBoard

	shellCmd := newShellCommand(c)
	shellCmd.GroupID = groupBoard

	boardCmd := newBoardCommand(c)
	boardCmd.GroupID = groupBoard

	root.AddCommand(configCmd, runCmd, shellCmd, boardCmd)
	addTaskCommands(root, c, groupTask)

	return root
}

// addTaskCommands attaches the commands that operate on a single board.
// The shell reuses them for each input line.
func addTaskCommands(root *cobra.Command, c *app.Container, group string) {
	cmds := []*cobra.Command{
		newNewCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newEditCommand(c),
		newStatusCommand(c),
		newDeleteCommand(c),
		newClearCommand(c),
		newHistoryCommand(c),
		newRefreshCommand(c),
	}
	for _, cmd := range cmds {
		cmd.GroupID = group
	}
	root.AddCommand(cmds...)
}

// seedScenario applies a scenario file before the command runs.
// Failed steps are reported as warnings and do not stop the command.
func seedScenario(cmd *cobra.Command, c *app.Container, path string) error {
	sc, err := scenario.ParseFile(path)
	if err != nil {
		return err
	}

	out, err := c.RunScenarioUseCase().Execute(cmd.Context(), usecase.RunScenarioInput{Scenario: sc})
	if err != nil {
		return err
	}

	for _, r := range out.Results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: step %d (%s): %v\n", r.Index, r.Op, r.Err)
		}
	}
	return nil
}
