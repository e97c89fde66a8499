package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration files",
		Long: `Inspect or create taskboard configuration files.

Settings are merged in this order, later files winning:
  1. built-in defaults
  2. $XDG_CONFIG_HOME/taskboard/config.toml (or ~/.config/taskboard/config.toml)
  3. taskboard.toml in the current directory`,
	}

	cmd.AddCommand(newConfigShowCommand(c), newConfigInitCommand(c))
	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration and its sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, src := range out.Sources {
				printConfigSource(w, src)
			}

			if len(out.Warnings) > 0 {
				_, _ = fmt.Fprintln(w)
				_, _ = fmt.Fprintln(w, "[Warnings]")
				for _, msg := range out.Warnings {
					_, _ = fmt.Fprintf(w, "- %s\n", msg)
				}
			}

			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return writeTOML(w, out.Effective)
		},
	}
}

func printConfigSource(w io.Writer, src usecase.ConfigSource) {
	state := ""
	if !src.Exists {
		state = " (not found)"
	}
	_, _ = fmt.Fprintf(w, "- %s: %s%s\n", src.Scope, src.Path, state)
}

func writeTOML(w io.Writer, cfg *domain.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var opts struct {
		global bool
		print  bool
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config template",
		Long: `Write a commented config template.

Without flags the template goes to taskboard.toml in the current directory.
An existing file is never overwritten.`,
		Example: `  # Create taskboard.toml here
  taskboard config init

  # Create the user-wide config file
  taskboard config init --global

  # Preview the template without writing it
  taskboard config init --print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Global: opts.global,
				Print:  opts.print,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Written {
				_, _ = fmt.Fprint(w, out.Template)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.global, "global", false, "Target the user-wide config file")
	cmd.Flags().BoolVar(&opts.print, "print", false, "Print the template instead of writing it")

	return cmd
}
