// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/config"
	"github.com/runoshun/taskboard/internal/infra/logging"
	"github.com/runoshun/taskboard/internal/tracker"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory holding taskboard.toml
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskManager
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	logCloser io.Closer

	// Configuration
	Config Config
}

// New creates a new Container rooted at dir.
func New(dir string) (*Container, error) {
	cfg := Config{WorkDir: dir}

	configLoader := config.NewLoader(cfg.WorkDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	logger := logging.New(os.Stderr, level)
	var closer io.Closer
	if appConfig.Log.File != "" {
		path := appConfig.Log.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.WorkDir, path)
		}
		logger, closer, err = logging.Open(path, level)
		if err != nil {
			return nil, err
		}
	}

	clock := domain.RealClock{}
	tasks := tracker.New(
		tracker.WithClock(clock),
		tracker.WithHistoryLimit(appConfig.History.Limit),
		tracker.WithLogger(logger),
	)

	return &Container{
		Tasks:         tasks,
		Clock:         clock,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.WorkDir),
		Logger:        logger,
		AppConfig:     appConfig,
		logCloser:     closer,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskManager, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close releases the log file, if any.
func (c *Container) Close() error {
	if c.logCloser == nil {
		return nil
	}
	return c.logCloser.Close()
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.Tasks)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// ClearTasksUseCase returns a new ClearTasks use case.
func (c *Container) ClearTasksUseCase() *usecase.ClearTasks {
	return usecase.NewClearTasks(c.Tasks)
}

// ShowHistoryUseCase returns a new ShowHistory use case.
func (c *Container) ShowHistoryUseCase() *usecase.ShowHistory {
	return usecase.NewShowHistory(c.Tasks)
}

// RefreshEpicUseCase returns a new RefreshEpic use case.
func (c *Container) RefreshEpicUseCase() *usecase.RefreshEpic {
	return usecase.NewRefreshEpic(c.Tasks)
}

// RunScenarioUseCase returns a new RunScenario use case.
func (c *Container) RunScenarioUseCase() *usecase.RunScenario {
	return usecase.NewRunScenario(c.Tasks)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
