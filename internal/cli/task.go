package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newNewCommand creates the new command for creating tasks, epics and subtasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Kind        string
		Title       string
		Description string
		Start       string
		Duration    time.Duration
		EpicID      int
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task, epic or subtask",
		Long: `Create a new item on the board.

Tasks and subtasks need --start. The slot [start, start+duration) must not
overlap any other task or subtask. Epics take no schedule; theirs is derived
from their subtasks.

Times are read as "2006-01-02 15:04" (UTC) or RFC 3339.

Examples:
  # Create a task
  taskboard new --title "Write report" --start "2025-01-06 09:00" --duration 1h

  # Create an epic and a subtask in it
  taskboard new --kind epic --title "Release"
  taskboard new --kind subtask --epic 1 --title "Build" --start "2025-01-06 10:00" --duration 30m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := domain.ParseKind(opts.Kind)
			if err != nil {
				return err
			}

			input := usecase.NewTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Kind:        kind,
				Duration:    opts.Duration,
				EpicID:      opts.EpicID,
			}
			if opts.Start != "" {
				input.Start, err = domain.ParseTime(opts.Start)
				if err != nil {
					return err
				}
			}

			// Execute use case
			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s #%d\n", out.Task.Kind, out.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", string(domain.KindTask), "Item kind: task, epic or subtask")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Description")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Start time (tasks and subtasks)")
	cmd.Flags().DurationVar(&opts.Duration, "duration", 0, "Slot length, e.g. 1h30m (tasks and subtasks)")
	cmd.Flags().IntVar(&opts.EpicID, "epic", 0, "Parent epic ID (subtasks)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListCommand creates the list command for listing items.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Kind        string
		Prioritized bool
		JSON        bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display items on the board ordered by ID.

With --prioritized, tasks and subtasks are ordered by start time instead.
Epics are never part of the prioritized view.

Examples:
  # List everything
  taskboard list

  # List only subtasks
  taskboard list --kind subtask

  # Show the schedule
  taskboard list --prioritized`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListTasksInput{Prioritized: opts.Prioritized}
			if opts.Kind != "" {
				kind, err := domain.ParseKind(opts.Kind)
				if err != nil {
					return err
				}
				input.Kind = kind
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if opts.JSON {
				return printTaskJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks, timeLayout(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "", "Only list items of this kind")
	cmd.Flags().BoolVarP(&opts.Prioritized, "prioritized", "p", false, "Order tasks and subtasks by start time")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// newShowCommand creates the show command for displaying item details.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Render bool
		Peek   bool
	}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Long: `Display one item. Epics list their subtasks; subtasks name their epic.

Viewing an item records it in history unless --peek is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{
				TaskID: taskID,
				Peek:   opts.Peek,
			})
			if err != nil {
				return err
			}

			return printTaskDetails(cmd.OutOrStdout(), out, timeLayout(c), opts.Render)
		},
	}

	cmd.Flags().BoolVar(&opts.Render, "render", false, "Render the description as markdown")
	cmd.Flags().BoolVar(&opts.Peek, "peek", false, "Do not record the view in history")

	return cmd
}

// newEditCommand creates the edit command for changing an item.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Status      string
		Start       string
		Duration    time.Duration
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Long: `Change fields of an item. Only the given flags are applied.

Epics accept --title and --body only; their status and schedule follow
their subtasks. A new slot is checked for overlaps before it is applied.

Examples:
  taskboard edit 2 --title "Build v2"
  taskboard edit 2 --start "2025-01-06 13:00" --duration 45m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditTaskInput{TaskID: taskID}
			flags := cmd.Flags()
			if flags.Changed("title") {
				input.Title = &opts.Title
			}
			if flags.Changed("body") {
				input.Description = &opts.Description
			}
			if flags.Changed("status") {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				input.Status = &status
			}
			if flags.Changed("start") {
				start, err := domain.ParseTime(opts.Start)
				if err != nil {
					return err
				}
				input.Start = &start
			}
			if flags.Changed("duration") {
				input.Duration = &opts.Duration
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", out.Task.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status: new, in_progress or done")
	cmd.Flags().StringVar(&opts.Start, "start", "", "New start time")
	cmd.Flags().DurationVar(&opts.Duration, "duration", 0, "New slot length")

	return cmd
}

// newStatusCommand creates the status command for moving a task through its lifecycle.
func newStatusCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set the status of a task or subtask",
		Long: `Set the status of a task or subtask to new, in_progress or done.

Setting a subtask's status recomputes its epic. Epic status cannot be set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}

			uc := c.SetStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetStatusInput{
				TaskID: taskID,
				Status: status,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s is now %s\n", out.Task.Label(), statusBadge(out.Task.Status))
			if out.Epic != nil {
				_, _ = fmt.Fprintf(w, "%s is now %s\n", out.Epic.Label(), statusBadge(out.Epic.Status))
			}
			return nil
		},
	}
	return cmd
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task, epic or subtask",
		Long: `Delete an item and free its time slot.

Deleting an epic deletes all of its subtasks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if n := len(out.SubtaskIDs); n > 0 {
				_, _ = fmt.Fprintf(w, "Deleted %s #%d and %d subtask(s)\n", out.Kind, taskID, n)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Deleted %s #%d\n", out.Kind, taskID)
			return nil
		},
	}
	return cmd
}

// newClearCommand creates the clear command for removing every item of one kind.
func newClearCommand(c *app.Container) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item of one kind",
		Long: `Remove every task, epic or subtask.

Clearing epics also removes all subtasks. Clearing subtasks leaves epics
in place with an empty schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := domain.ParseKind(kind)
			if err != nil {
				return err
			}

			uc := c.ClearTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ClearTasksInput{Kind: k})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d %s(s)\n", out.Cleared, k)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Kind to clear: task, epic or subtask (required)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently viewed items",
		Long: `List recently viewed items, oldest first.

Each item appears once; viewing it again moves it to the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowHistoryInput{})
			if err != nil {
				return err
			}

			printHistory(cmd.OutOrStdout(), out.Entries, timeLayout(c))
			return nil
		},
	}
	return cmd
}

// newRefreshCommand creates the refresh command for recomputing an epic.
func newRefreshCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh <epic-id>",
		Short: "Recompute an epic's status and schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			epicID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.RefreshEpicUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RefreshEpicInput{EpicID: epicID})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", out.Epic.Label(), describeSlot(out.Epic, timeLayout(c)))
			return nil
		},
	}
	return cmd
}

// parseTaskID parses a task ID from string.
// Accepts both "1" and "#1" formats.
func parseTaskID(s string) (int, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID: %q", s)
	}
	return id, nil
}
