package domain

import "time"

// TaskManager is the board: task, epic, and subtask storage plus the
// scheduling and status rules that tie them together.
// Read methods return snapshots; mutating the result never changes the board.
type TaskManager interface {
	// Create stores a new task, epic, or subtask and returns its ID.
	Create(task Task) (int, error)

	// Tasks, Epics, and Subtasks list all items of one kind ordered by ID.
	Tasks() []Task
	Epics() []Task
	Subtasks() []Task

	// Prioritized lists tasks and subtasks ordered by start time. Epics are never included.
	Prioritized() []Task

	// ClearTasks, ClearEpics, and ClearSubtasks remove every item of one kind.
	ClearTasks()
	ClearEpics()
	ClearSubtasks()

	// Task, Epic, and Subtask fetch one item and record the view in history.
	Task(id int) (Task, error)
	Epic(id int) (Task, error)
	Subtask(id int) (Task, error)

	// PeekTask, PeekEpic, and PeekSubtask fetch one item without touching history.
	PeekTask(id int) (Task, error)
	PeekEpic(id int) (Task, error)
	PeekSubtask(id int) (Task, error)

	// Lookup finds an item of any kind without touching history.
	Lookup(id int) (Task, error)

	// UpdateTask, UpdateEpic, and UpdateSubtask overwrite the mutable fields of the item with task.ID.
	UpdateTask(task Task) error
	UpdateEpic(epic Task) error
	UpdateSubtask(subtask Task) error

	// DeleteTask, DeleteEpic, and DeleteSubtask remove one item. Deleting an epic removes its subtasks.
	DeleteTask(id int) error
	DeleteEpic(id int) error
	DeleteSubtask(id int) error

	// SetTaskStatus sets the status of a plain task. Epics are refused.
	SetTaskStatus(task Task, status Status) (Task, error)

	// SetSubtaskStatus sets the status of a subtask and recomputes its epic.
	SetSubtaskStatus(subtask Task, status Status) (Task, error)

	// RefreshEpic recomputes an epic's status and schedule from its subtasks.
	RefreshEpic(epicID int) error

	// History returns recently viewed items, oldest first.
	History() []HistoryEntry
}

// History records recently viewed tasks.
type History interface {
	// Add records a view of task. Viewing the same ID again moves it to the end.
	Add(task Task)

	// Remove forgets the task with the given ID.
	Remove(id int)

	// Entries returns recorded views, oldest first.
	Entries() []HistoryEntry
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local).
	Load() (*Config, error)
}

// ConfigInfo describes one config file location.
type ConfigInfo struct {
	Path    string // Absolute path of the file
	Content string // File content (empty when missing)
	Exists  bool
}

// ConfigManager inspects and initializes config files.
type ConfigManager interface {
	// LocalConfigInfo describes taskboard.toml in the working directory.
	LocalConfigInfo() ConfigInfo
	// GlobalConfigInfo describes the user-wide config file.
	GlobalConfigInfo() ConfigInfo
	// InitLocalConfig writes the template to the local path. Fails with ErrConfigExists.
	InitLocalConfig() error
	// InitGlobalConfig writes the template to the global path. Fails with ErrConfigExists.
	InitGlobalConfig() error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
