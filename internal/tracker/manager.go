// Package tracker implements the in-memory task board.
// It owns every task, epic, and subtask together with the schedule index
// and the view history, and keeps epic rollups consistent after each change.
package tracker

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/history"
	"github.com/runoshun/taskboard/internal/schedule"
)

// Manager implements domain.TaskManager.
// All methods are safe for concurrent use. Returned tasks are copies.
type Manager struct {
	history  domain.History
	clock    domain.Clock
	logger   *slog.Logger
	tasks    map[int]*domain.Task
	epics    map[int]*domain.Task
	subtasks map[int]*domain.Task
	index    *schedule.Index
	ids      *idAllocator
	session  string
	limit    int
	mu       sync.Mutex
}

// Ensure Manager implements domain.TaskManager.
var _ domain.TaskManager = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithHistory replaces the default history tracker.
func WithHistory(h domain.History) Option {
	return func(m *Manager) { m.history = h }
}

// WithHistoryLimit sets the size of the default history tracker.
func WithHistoryLimit(n int) Option {
	return func(m *Manager) { m.limit = n }
}

// WithClock sets the clock used to timestamp history entries.
func WithClock(c domain.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New creates an empty board.
func New(opts ...Option) *Manager {
	m := &Manager{
		tasks:    make(map[int]*domain.Task),
		epics:    make(map[int]*domain.Task),
		subtasks: make(map[int]*domain.Task),
		index:    schedule.New(),
		ids:      &idAllocator{},
		clock:    domain.RealClock{},
		limit:    history.DefaultLimit,
		session:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.history == nil {
		m.history = history.New(m.limit, m.clock)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m.logger = m.logger.With("session", m.session)
	return m
}

// Session returns the identifier attached to every log record of this board.
func (m *Manager) Session() string {
	return m.session
}

// Create validates and stores a new item, returning its ID.
// IDs are allocated only after validation so rejected items never consume one.
func (m *Manager) Create(task domain.Task) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := validate(&task); err != nil {
		return 0, err
	}

	t := task.Clone()
	t.Title = strings.TrimSpace(t.Title)
	t.Status = domain.StatusNew

	switch t.Kind {
	case domain.KindEpic:
		t.SubtaskIDs = nil
		t.EpicID = 0
		domain.RollupSchedule(nil).Apply(&t)
		t.ID = m.ids.next()
		m.epics[t.ID] = &t

	case domain.KindSubtask:
		epic, ok := m.epics[t.EpicID]
		if !ok {
			return 0, domain.NewOrphanError(t.EpicID)
		}
		if err := m.index.Check(0, t.Start, t.End()); err != nil {
			m.logger.Warn("slot rejected", "kind", t.Kind, "title", t.Title, "error", err)
			return 0, err
		}
		t.SubtaskIDs = nil
		t.ID = m.ids.next()
		if err := m.index.Put(t.ID, t.Start, t.End()); err != nil {
			return 0, err
		}
		m.subtasks[t.ID] = &t
		epic.SubtaskIDs = append(epic.SubtaskIDs, t.ID)
		m.recompute(epic)

	default:
		if err := m.index.Check(0, t.Start, t.End()); err != nil {
			m.logger.Warn("slot rejected", "kind", t.Kind, "title", t.Title, "error", err)
			return 0, err
		}
		t.SubtaskIDs = nil
		t.EpicID = 0
		t.ID = m.ids.next()
		if err := m.index.Put(t.ID, t.Start, t.End()); err != nil {
			return 0, err
		}
		m.tasks[t.ID] = &t
	}

	m.logger.Info("created", "kind", t.Kind, "id", t.ID, "title", t.Title)
	return t.ID, nil
}

// Tasks lists plain tasks ordered by ID.
func (m *Manager) Tasks() []domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(m.tasks)
}

// Epics lists epics ordered by ID.
func (m *Manager) Epics() []domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(m.epics)
}

// Subtasks lists subtasks ordered by ID.
func (m *Manager) Subtasks() []domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(m.subtasks)
}

// Prioritized lists tasks and subtasks by ascending start time.
func (m *Manager) Prioritized() []domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.index.IDs()
	out := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := m.tasks[id]; ok {
			out = append(out, t.Clone())
		} else if s, ok := m.subtasks[id]; ok {
			out = append(out, s.Clone())
		}
	}
	return out
}

// ClearTasks removes every plain task.
func (m *Manager) ClearTasks() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range m.tasks {
		m.index.Remove(id)
		m.history.Remove(id)
	}
	n := len(m.tasks)
	clear(m.tasks)
	m.logger.Info("cleared", "kind", domain.KindTask, "count", n, "slots", m.index.Len())
}

// ClearEpics removes every epic and, with them, every subtask.
func (m *Manager) ClearEpics() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range m.subtasks {
		m.index.Remove(id)
		m.history.Remove(id)
	}
	for id := range m.epics {
		m.history.Remove(id)
	}
	n := len(m.epics)
	clear(m.subtasks)
	clear(m.epics)
	m.logger.Info("cleared", "kind", domain.KindEpic, "count", n, "slots", m.index.Len())
}

// ClearSubtasks removes every subtask and recomputes all epics.
func (m *Manager) ClearSubtasks() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range m.subtasks {
		m.index.Remove(id)
		m.history.Remove(id)
	}
	n := len(m.subtasks)
	clear(m.subtasks)
	for _, epic := range m.epics {
		epic.SubtaskIDs = nil
		m.recompute(epic)
	}
	m.logger.Info("cleared", "kind", domain.KindSubtask, "count", n, "slots", m.index.Len())
}

// Task returns a plain task and records the view.
func (m *Manager) Task(id int) (domain.Task, error) {
	return m.view(m.tasks, id, domain.ErrTaskNotFound)
}

// Epic returns an epic and records the view.
func (m *Manager) Epic(id int) (domain.Task, error) {
	return m.view(m.epics, id, domain.ErrEpicNotFound)
}

// Subtask returns a subtask and records the view.
func (m *Manager) Subtask(id int) (domain.Task, error) {
	return m.view(m.subtasks, id, domain.ErrSubtaskNotFound)
}

// PeekTask returns a plain task without recording a view.
func (m *Manager) PeekTask(id int) (domain.Task, error) {
	return m.peek(m.tasks, id, domain.ErrTaskNotFound)
}

// PeekEpic returns an epic without recording a view.
func (m *Manager) PeekEpic(id int) (domain.Task, error) {
	return m.peek(m.epics, id, domain.ErrEpicNotFound)
}

// PeekSubtask returns a subtask without recording a view.
func (m *Manager) PeekSubtask(id int) (domain.Task, error) {
	return m.peek(m.subtasks, id, domain.ErrSubtaskNotFound)
}

// Lookup returns an item of any kind without recording a view.
func (m *Manager) Lookup(id int) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t := m.find(id); t != nil {
		return t.Clone(), nil
	}
	return domain.Task{}, notFound(domain.ErrTaskNotFound, id)
}

// UpdateTask replaces title, description, status, start, and duration of a plain task.
// An empty status keeps the current one. On a scheduling conflict nothing changes.
func (m *Manager) UpdateTask(task domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved, ok := m.tasks[task.ID]
	if !ok {
		return notFound(domain.ErrTaskNotFound, task.ID)
	}
	if err := m.reschedule(saved, task); err != nil {
		return err
	}
	m.logger.Info("updated", "kind", saved.Kind, "id", saved.ID)
	return nil
}

// UpdateEpic replaces title and description of an epic.
// Status and schedule stay derived from the subtasks.
func (m *Manager) UpdateEpic(epic domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved, ok := m.epics[epic.ID]
	if !ok {
		return notFound(domain.ErrEpicNotFound, epic.ID)
	}
	title := strings.TrimSpace(epic.Title)
	if title == "" {
		return domain.ErrEmptyTitle
	}
	saved.Title = title
	saved.Description = epic.Description
	m.logger.Info("updated", "kind", saved.Kind, "id", saved.ID)
	return nil
}

// UpdateSubtask replaces the mutable fields of a subtask and recomputes its epic.
// Moving a subtask to another epic is refused.
func (m *Manager) UpdateSubtask(subtask domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved, ok := m.subtasks[subtask.ID]
	if !ok {
		return notFound(domain.ErrSubtaskNotFound, subtask.ID)
	}
	if subtask.EpicID != 0 && subtask.EpicID != saved.EpicID {
		return fmt.Errorf("%w: subtask #%d belongs to epic #%d", domain.ErrInvalidOperation, saved.ID, saved.EpicID)
	}
	if err := m.reschedule(saved, subtask); err != nil {
		return err
	}
	if epic, ok := m.epics[saved.EpicID]; ok {
		m.recompute(epic)
	}
	m.logger.Info("updated", "kind", saved.Kind, "id", saved.ID)
	return nil
}

// DeleteTask removes a plain task.
func (m *Manager) DeleteTask(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return notFound(domain.ErrTaskNotFound, id)
	}
	delete(m.tasks, id)
	m.index.Remove(id)
	m.history.Remove(id)
	m.logger.Info("deleted", "kind", domain.KindTask, "id", id, "slots", m.index.Len())
	return nil
}

// DeleteEpic removes an epic together with all of its subtasks.
func (m *Manager) DeleteEpic(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	epic, ok := m.epics[id]
	if !ok {
		return notFound(domain.ErrEpicNotFound, id)
	}
	for _, sid := range epic.SubtaskIDs {
		delete(m.subtasks, sid)
		m.index.Remove(sid)
		m.history.Remove(sid)
	}
	delete(m.epics, id)
	m.history.Remove(id)
	m.logger.Info("deleted", "kind", domain.KindEpic, "id", id, "subtasks", len(epic.SubtaskIDs), "slots", m.index.Len())
	return nil
}

// DeleteSubtask removes a subtask and recomputes its epic.
func (m *Manager) DeleteSubtask(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.subtasks[id]
	if !ok {
		return notFound(domain.ErrSubtaskNotFound, id)
	}
	delete(m.subtasks, id)
	m.index.Remove(id)
	m.history.Remove(id)
	if epic, ok := m.epics[sub.EpicID]; ok && epic.HasSubtask(id) {
		epic.SubtaskIDs = slices.DeleteFunc(epic.SubtaskIDs, func(sid int) bool { return sid == id })
		m.recompute(epic)
	}
	m.logger.Info("deleted", "kind", domain.KindSubtask, "id", id, "slots", m.index.Len())
	return nil
}

// SetTaskStatus sets the status of a plain task.
// Epics are refused and returned unchanged; subtasks are routed to SetSubtaskStatus.
func (m *Manager) SetTaskStatus(task domain.Task, status domain.Status) (domain.Task, error) {
	if !status.IsValid() {
		return task, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, isEpic := m.epics[task.ID]; isEpic || task.Kind == domain.KindEpic {
		return task, fmt.Errorf("%w: epic status is derived from its subtasks", domain.ErrInvalidOperation)
	}
	if _, isSub := m.subtasks[task.ID]; isSub {
		return m.setSubtaskStatus(task, status)
	}

	saved, ok := m.tasks[task.ID]
	if !ok {
		return task, notFound(domain.ErrTaskNotFound, task.ID)
	}
	saved.Status = status
	m.logger.Info("status set", "kind", saved.Kind, "id", saved.ID, "status", status)
	return saved.Clone(), nil
}

// SetSubtaskStatus sets the status of a subtask and recomputes its epic.
func (m *Manager) SetSubtaskStatus(subtask domain.Task, status domain.Status) (domain.Task, error) {
	if !status.IsValid() {
		return subtask, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setSubtaskStatus(subtask, status)
}

func (m *Manager) setSubtaskStatus(subtask domain.Task, status domain.Status) (domain.Task, error) {
	saved, ok := m.subtasks[subtask.ID]
	if !ok {
		return subtask, notFound(domain.ErrSubtaskNotFound, subtask.ID)
	}
	saved.Status = status
	if epic, ok := m.epics[saved.EpicID]; ok {
		m.recompute(epic)
		// The next view re-records the epic with its new state.
		m.history.Remove(epic.ID)
	}
	m.logger.Info("status set", "kind", saved.Kind, "id", saved.ID, "status", status)
	return saved.Clone(), nil
}

// RefreshEpic recomputes an epic's status and schedule from its current subtasks.
func (m *Manager) RefreshEpic(epicID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	epic, ok := m.epics[epicID]
	if !ok {
		return notFound(domain.ErrEpicNotFound, epicID)
	}
	m.recompute(epic)
	return nil
}

// History returns recently viewed items, oldest first.
// Each entry carries the item as it is now, not as it was when viewed.
func (m *Manager) History() []domain.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.history.Entries()
	out := make([]domain.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		t := m.find(e.Task.ID)
		if t == nil {
			continue
		}
		e.Task = t.Clone()
		out = append(out, e)
	}
	return out
}

// view fetches id from store and records it in history.
func (m *Manager) view(store map[int]*domain.Task, id int, missing error) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := store[id]
	if !ok {
		return domain.Task{}, notFound(missing, id)
	}
	m.history.Add(t.Clone())
	m.logger.Debug("viewed", "kind", t.Kind, "id", id)
	return t.Clone(), nil
}

func (m *Manager) peek(store map[int]*domain.Task, id int, missing error) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := store[id]
	if !ok {
		return domain.Task{}, notFound(missing, id)
	}
	return t.Clone(), nil
}

func (m *Manager) find(id int) *domain.Task {
	if t, ok := m.tasks[id]; ok {
		return t
	}
	if t, ok := m.epics[id]; ok {
		return t
	}
	if t, ok := m.subtasks[id]; ok {
		return t
	}
	return nil
}

// reschedule validates in, moves saved's slot, and copies the mutable fields.
// saved is untouched when an error is returned.
func (m *Manager) reschedule(saved *domain.Task, in domain.Task) error {
	in.Kind = saved.Kind
	if err := validate(&in); err != nil {
		return err
	}
	if in.Status != "" && !in.Status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}
	if err := m.index.Put(saved.ID, in.Start, in.End()); err != nil {
		m.logger.Warn("slot rejected", "kind", saved.Kind, "id", saved.ID, "error", err)
		return err
	}
	saved.Title = strings.TrimSpace(in.Title)
	saved.Description = in.Description
	saved.Start = in.Start
	saved.Duration = in.Duration
	if in.Status != "" {
		saved.Status = in.Status
	}
	return nil
}

// recompute derives an epic's status and schedule from its subtasks.
func (m *Manager) recompute(epic *domain.Task) {
	subs := make([]domain.Task, 0, len(epic.SubtaskIDs))
	for _, id := range epic.SubtaskIDs {
		if s, ok := m.subtasks[id]; ok {
			subs = append(subs, *s)
		}
	}
	epic.Status = domain.RollupStatus(subs)
	domain.RollupSchedule(subs).Apply(epic)
	m.logger.Debug("epic recomputed", "id", epic.ID, "status", epic.Status, "subtasks", len(subs))
}

// validate checks the fields every create or update needs.
func validate(t *domain.Task) error {
	if !t.Kind.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidKind, t.Kind)
	}
	if strings.TrimSpace(t.Title) == "" {
		return domain.ErrEmptyTitle
	}
	if !t.IsSchedulable() {
		return nil
	}
	if t.Start.IsZero() {
		return domain.ErrMissingStartTime
	}
	if t.Duration < 0 {
		return domain.ErrInvalidDuration
	}
	return nil
}

func snapshot(store map[int]*domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(store))
	for _, id := range slices.Sorted(maps.Keys(store)) {
		out = append(out, store[id].Clone())
	}
	return out
}

func notFound(err error, id int) error {
	return fmt.Errorf("%w: #%d", err, id)
}

// idAllocator hands out strictly increasing IDs starting at 1.
type idAllocator struct {
	last int
}

func (a *idAllocator) next() int {
	a.last++
	return a.last
}

