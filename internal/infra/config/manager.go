package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/taskboard/internal/domain"
)

var errNoGlobalDir = errors.New("global config directory not available")

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager inspects and creates the config files read by Loader.
type Manager struct {
	localPath  string
	globalPath string // Empty when no config home could be resolved
}

// NewManager creates a Manager for workDir and the user config home.
func NewManager(workDir string) *Manager {
	return NewManagerWithGlobalDir(workDir, defaultGlobalConfigDir())
}

// NewManagerWithGlobalDir creates a Manager with an explicit global config directory.
func NewManagerWithGlobalDir(workDir, globalConfDir string) *Manager {
	m := &Manager{localPath: domain.LocalConfigPath(workDir)}
	if globalConfDir != "" {
		m.globalPath = filepath.Join(globalConfDir, domain.ConfigFileName)
	}
	return m
}

// LocalConfigInfo describes taskboard.toml in the working directory.
func (m *Manager) LocalConfigInfo() domain.ConfigInfo {
	return describe(m.localPath)
}

// GlobalConfigInfo describes the user-wide config file.
func (m *Manager) GlobalConfigInfo() domain.ConfigInfo {
	if m.globalPath == "" {
		return domain.ConfigInfo{}
	}
	return describe(m.globalPath)
}

// InitLocalConfig writes the template to taskboard.toml.
func (m *Manager) InitLocalConfig() error {
	return writeTemplate(m.localPath)
}

// InitGlobalConfig writes the template to the global file, creating its directory.
func (m *Manager) InitGlobalConfig() error {
	if m.globalPath == "" {
		return errNoGlobalDir
	}
	if err := os.MkdirAll(filepath.Dir(m.globalPath), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return writeTemplate(m.globalPath)
}

func describe(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{Path: path, Content: string(content), Exists: true}
}

// writeTemplate creates path exclusively so an existing file is never replaced.
func writeTemplate(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, os.ErrExist) {
		return domain.ErrConfigExists
	}
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if _, err := f.WriteString(domain.RenderConfigTemplate()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}
