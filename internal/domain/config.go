package domain

import (
	_ "embed"
	"path/filepath"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"` // Unknown keys found while loading
	Log      LogConfig     `toml:"log"`
	Display  DisplayConfig `toml:"display"`
	TUI      TUIConfig     `toml:"tui"`
	History  HistoryConfig `toml:"history"`
}

// HistoryConfig holds settings from the [history] section.
type HistoryConfig struct {
	Limit int `toml:"limit,omitempty"` // Maximum number of remembered views
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty = stderr)
}

// DisplayConfig holds output settings from the [display] section.
type DisplayConfig struct {
	TimeFormat string `toml:"time_format,omitempty"` // Go layout for printed times
}

// TUIConfig holds board settings from the [tui] section.
type TUIConfig struct {
	StartTab string `toml:"start_tab,omitempty"` // schedule, tasks, epics, subtasks, history
}

// Directory and file names for taskboard.
const (
	AppDirName           = "taskboard"      // Directory name under the user config home
	ConfigFileName       = "config.toml"    // Global config file name
	LocalConfigFileName  = "taskboard.toml" // Config file name in the working directory
	DefaultHistoryLimit  = 10
	DefaultLogLevel      = "warn"
	DefaultStartTab      = "schedule"
	DefaultDisplayLayout = TimeLayout
)

// LocalConfigPath returns the config path inside dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// GlobalConfigPath returns the global config path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigPath(configHome string) string {
	return filepath.Join(configHome, AppDirName, ConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{Limit: DefaultHistoryLimit},
		Log:     LogConfig{Level: DefaultLogLevel},
		Display: DisplayConfig{TimeFormat: DefaultDisplayLayout},
		TUI:     TUIConfig{StartTab: DefaultStartTab},
	}
}

// Normalize replaces unusable values with defaults.
func (c *Config) Normalize() {
	if c.History.Limit <= 0 {
		c.History.Limit = DefaultHistoryLimit
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Display.TimeFormat == "" {
		c.Display.TimeFormat = DefaultDisplayLayout
	}
	if c.TUI.StartTab == "" {
		c.TUI.StartTab = DefaultStartTab
	}
}

// RenderConfigTemplate returns the commented starter config written by "config init".
func RenderConfigTemplate() string {
	return configTemplateContent
}
