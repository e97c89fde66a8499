package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/scenario"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newRunCommand creates the run command for applying a scenario file.
func newRunCommand(c *app.Container) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Apply a scenario file and print the resulting board",
		Long: `Apply the steps of a YAML scenario file in order, report each step,
then print the prioritized board.

A failing step is reported and skipped. With --strict the run stops at the
first failing step and exits with an error.

Example file:
  steps:
    - create: {kind: epic, title: Release, ref: rel}
    - create: {kind: subtask, title: Build, epic: rel, ref: build, start: "2025-01-06 09:00", duration: 1h}
    - status: {ref: build, status: done}
    - view: {ref: rel}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.ParseFile(args[0])
			if err != nil {
				return err
			}

			uc := c.RunScenarioUseCase()
			out, runErr := uc.Execute(cmd.Context(), usecase.RunScenarioInput{
				Scenario: sc,
				Strict:   strict,
			})

			w := cmd.OutOrStdout()
			layout := timeLayout(c)
			if out != nil {
				printStepResults(w, out.Results)
			}
			if runErr != nil {
				return runErr
			}

			list, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Prioritized: true})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(w)
			printTaskList(w, list.Tasks, layout)

			if n := out.Failed(); n > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d of %d steps failed\n", n, len(out.Results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first failing step")

	return cmd
}

// printStepResults prints one line per scenario step.
func printStepResults(w io.Writer, results []usecase.StepResult) {
	for _, r := range results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(w, "step %d %s: FAILED: %v\n", r.Index, r.Op, r.Err)
			continue
		}
		switch r.Op {
		case domain.StepClear:
			_, _ = fmt.Fprintf(w, "step %d %s: removed %d\n", r.Index, r.Op, r.Affect)
		case domain.StepDelete:
			_, _ = fmt.Fprintf(w, "step %d %s: %s (removed %d)\n", r.Index, r.Op, r.Task.Label(), r.Affect)
		default:
			_, _ = fmt.Fprintf(w, "step %d %s: %s [%s]\n", r.Index, r.Op, r.Task.Label(), r.Task.Status)
		}
	}
}
