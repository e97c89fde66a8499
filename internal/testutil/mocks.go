// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"io"
	"log/slog"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockHistory is a test double for domain.History that records calls.
type MockHistory struct {
	Added   []int
	Removed []int
	Items   []domain.HistoryEntry
}

// Ensure MockHistory implements domain.History interface.
var _ domain.History = (*MockHistory)(nil)

// Add records the task ID and appends an entry.
func (m *MockHistory) Add(task domain.Task) {
	m.Added = append(m.Added, task.ID)
	m.Items = append(m.Items, domain.HistoryEntry{Task: task})
}

// Remove records the ID.
func (m *MockHistory) Remove(id int) {
	m.Removed = append(m.Removed, id)
}

// Entries returns the appended entries.
func (m *MockHistory) Entries() []domain.HistoryEntry {
	return m.Items
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	Local            domain.ConfigInfo
	Global           domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a MockConfigManager with missing config files.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		Local:  domain.ConfigInfo{Path: "/work/taskboard.toml"},
		Global: domain.ConfigInfo{Path: "/home/user/.config/taskboard/config.toml"},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// LocalConfigInfo returns the configured local info.
func (m *MockConfigManager) LocalConfigInfo() domain.ConfigInfo {
	return m.Local
}

// GlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.Global
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig() error {
	m.InitLocalCalled = true
	return m.InitLocalErr
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Day is the fixed date used by time fixtures.
var Day = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

// At returns h:m on Day in UTC.
func At(h, m int) time.Time {
	return Day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}
