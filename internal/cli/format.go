package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// maxTitleWidth bounds the TITLE column of list output.
const maxTitleWidth = 48

var (
	badgeNew        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	badgeInProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	badgeDone       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headingStyle    = lipgloss.NewStyle().Bold(true)
)

// statusBadge renders a status with its color. Colors are dropped when
// the output is not a terminal.
func statusBadge(s domain.Status) string {
	switch s {
	case domain.StatusInProgress:
		return badgeInProgress.Render(string(s))
	case domain.StatusDone:
		return badgeDone.Render(string(s))
	default:
		return badgeNew.Render(string(s))
	}
}

// timeLayout returns the configured layout for printed times.
func timeLayout(c *app.Container) string {
	if c != nil && c.AppConfig != nil && c.AppConfig.Display.TimeFormat != "" {
		return c.AppConfig.Display.TimeFormat
	}
	return domain.TimeLayout
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(layout)
}

func formatEpicID(t domain.Task) string {
	if t.EpicID == 0 {
		return "-"
	}
	return strconv.Itoa(t.EpicID)
}

// printTaskList prints tasks as an aligned table.
func printTaskList(w io.Writer, tasks []domain.Task, layout string) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tKIND\tSTATUS\tSTART\tEND\tDURATION\tEPIC\tTITLE")

	// Rows
	for _, t := range tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Kind,
			t.Status,
			formatTime(t.Start, layout),
			formatTime(t.End(), layout),
			domain.FormatDuration(t.Duration),
			formatEpicID(t),
			truncate.StringWithTail(t.Title, maxTitleWidth, "..."),
		)
	}
}

// printTaskJSON writes tasks as an indented JSON array.
func printTaskJSON(w io.Writer, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

// printTaskDetails prints one task with its epic or subtasks.
// With render set the description is formatted as markdown.
func printTaskDetails(w io.Writer, out *usecase.ShowTaskOutput, layout string, render bool) error {
	t := out.Task

	_, _ = fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Kind:     %s\n", t.Kind)
	_, _ = fmt.Fprintf(w, "Status:   %s\n", statusBadge(t.Status))
	_, _ = fmt.Fprintf(w, "Start:    %s\n", formatTime(t.Start, layout))
	_, _ = fmt.Fprintf(w, "End:      %s\n", formatTime(t.End(), layout))
	_, _ = fmt.Fprintf(w, "Duration: %s\n", domain.FormatDuration(t.Duration))
	if out.Epic != nil {
		_, _ = fmt.Fprintf(w, "Epic:     #%d %s\n", out.Epic.ID, out.Epic.Title)
	}

	if t.Description != "" {
		desc := t.Description
		if render {
			rendered, err := glamour.Render(desc, "notty")
			if err != nil {
				return fmt.Errorf("render description: %w", err)
			}
			desc = strings.TrimSpace(rendered)
		}
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Description:")
		_, _ = fmt.Fprintln(w, indent.String(desc, 2))
	}

	if t.IsEpic() {
		_, _ = fmt.Fprintln(w)
		if len(out.Subtasks) == 0 {
			_, _ = fmt.Fprintln(w, "Subtasks: none")
			return nil
		}
		_, _ = fmt.Fprintln(w, "Subtasks:")
		for _, s := range out.Subtasks {
			_, _ = fmt.Fprintf(w, "  #%d [%s] %s  %s - %s\n",
				s.ID,
				s.Status,
				s.Title,
				formatTime(s.Start, layout),
				formatTime(s.End(), layout),
			)
		}
	}
	return nil
}

// printHistory prints recently viewed items, oldest first.
func printHistory(w io.Writer, entries []domain.HistoryEntry, layout string) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No items viewed yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "VIEWED\tID\tKIND\tSTATUS\tTITLE")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			formatTime(e.ViewedAt, layout),
			e.Task.ID,
			e.Task.Kind,
			e.Task.Status,
			truncate.StringWithTail(e.Task.Title, maxTitleWidth, "..."),
		)
	}
}

// describeSlot summarizes status and schedule, e.g. "done, 09:00 - 10:00 (1h)".
func describeSlot(t domain.Task, layout string) string {
	return fmt.Sprintf("%s, %s - %s (%s)",
		t.Status,
		formatTime(t.Start, layout),
		formatTime(t.End(), layout),
		domain.FormatDuration(t.Duration),
	)
}
