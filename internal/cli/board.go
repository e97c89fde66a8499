package cli

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/tui"
)

var errNotTerminal = errors.New("board requires an interactive terminal")

// launchBoardFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchBoardFunc = launchBoard

// stdoutIsTerminal reports whether stdout is a terminal. Replaced in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newBoardCommand creates the board command for launching the interactive TUI.
func newBoardCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Launch interactive TUI",
		Long: `Open the board in the terminal.

Tabs show the schedule, each kind of item, and the view history.
Combine with --scenario to open a seeded board.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !stdoutIsTerminal() {
				return errNotTerminal
			}
			return launchBoardFunc(c)
		},
	}
	return cmd
}

// launchBoard runs the TUI until the user quits.
func launchBoard(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
