package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/runoshun/taskboard/internal/app"
)

const shellPrompt = "taskboard> "

// newShellCommand creates the shell command: an interactive loop that runs
// board commands against one in-memory board.
func newShellCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run board commands interactively against one board",
		Long: `Read commands line by line and run them against the same board.

Every task command is available without the "taskboard" prefix:
  new --kind epic --title Release
  new --kind subtask --epic 1 --title Build --start "2025-01-06 09:00" --duration 1h
  status 2 done
  list --prioritized

Words follow shell quoting rules. A # outside quotes starts a comment,
so refer to items by their bare ID. "exit" or "quit" leaves the shell.
Input can be piped, which makes the shell usable from scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, c)
		},
	}
	return cmd
}

func runShell(cmd *cobra.Command, c *app.Container) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	interactive := isTerminal(in)

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			_, _ = fmt.Fprint(out, shellPrompt)
		}
		if !scanner.Scan() {
			break
		}

		args, err := parseLine(scanner.Text())
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if len(args) == 1 && (args[0] == "exit" || args[0] == "quit") {
			return nil
		}

		// A fresh command tree per line so flag values never leak between lines.
		root := newShellRoot(c)
		root.SetArgs(args)
		root.SetOut(out)
		root.SetErr(errOut)
		if err := root.ExecuteContext(cmd.Context()); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// newShellRoot returns a root holding only the task commands.
func newShellRoot(c *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:           "",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddGroup(&cobra.Group{ID: groupTask, Title: "Commands:"})
	addTaskCommands(root, c, groupTask)
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// parseLine splits a line into words with shell quoting rules.
// A # outside quotes starts a comment, so blank and comment lines yield no words.
func parseLine(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse line: %w", err)
	}
	return args, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
