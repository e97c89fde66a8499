package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/runoshun/taskboard/internal/tracker"
)

// newTestModel returns a loaded model over a board holding an epic (1) with
// subtasks at 09:00 (2) and 10:00 (3), and a plain task at 12:00 (4).
func newTestModel(t *testing.T, startTab string) (*Model, *tracker.Manager) {
	t.Helper()
	clock := &testutil.MockClock{NowTime: testutil.At(8, 0)}
	tasks := tracker.New(tracker.WithClock(clock), tracker.WithLogger(testutil.DiscardLogger()))
	for _, draft := range []domain.Task{
		domain.NewEpic("Release", "ship it"),
		domain.NewSubtask(1, "Build", "", testutil.At(9, 0), time.Hour),
		domain.NewSubtask(1, "Test", "", testutil.At(10, 0), time.Hour),
		domain.NewTask("Lunch", "", testutil.At(12, 0), time.Hour),
	} {
		_, err := tasks.Create(draft)
		require.NoError(t, err)
	}

	c := app.NewWithDeps(app.Config{}, tasks, clock, testutil.DiscardLogger())
	if startTab != "" {
		c.AppConfig.TUI.StartTab = startTab
	}

	m := New(c)
	drain(m, m.Init())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, tasks
}

// drain runs cmd and feeds the resulting messages back into the model.
func drain(m *Model, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
		_, cmd = m.Update(msg)
	}
}

// press sends a key and processes the commands it triggers.
func press(m *Model, k tea.KeyMsg) {
	_, cmd := m.Update(k)
	drain(m, cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
)

func titles(m *Model) []string {
	out := make([]string, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t.Title)
	}
	return out
}
