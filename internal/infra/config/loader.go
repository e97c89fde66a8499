// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding taskboard.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskboard)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, domain.AppDirName)
}

// Load returns the merged configuration.
// Working directory config takes precedence over global config, which takes
// precedence over defaults.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	base.Normalize()
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the working directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	return l.loadFile(domain.LocalConfigPath(l.workDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "history":
			for k, v := range m {
				switch k {
				case "limit":
					n, ok := v.(int64)
					if !ok {
						warnings = append(warnings, fmt.Sprintf("invalid value for [history] limit: %v", v))
						continue
					}
					res.History.Limit = int(n)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [history]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.Log.Level, warnings = stringValue(section, k, v, warnings)
				case "file":
					res.Log.File, warnings = stringValue(section, k, v, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "display":
			for k, v := range m {
				switch k {
				case "time_format":
					res.Display.TimeFormat, warnings = stringValue(section, k, v, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
				}
			}
		case "tui":
			for k, v := range m {
				switch k {
				case "start_tab":
					res.TUI.StartTab, warnings = stringValue(section, k, v, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: [%s]", section))
		}
	}

	// Map iteration is random; keep warnings stable for display and tests.
	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func stringValue(section, key string, v any, warnings []string) (string, []string) {
	s, ok := v.(string)
	if !ok {
		return "", append(warnings, fmt.Sprintf("invalid value for [%s] %s: %v", section, key, v))
	}
	return s, warnings
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		History:  base.History,
		Log:      base.Log,
		Display:  base.Display,
		TUI:      base.TUI,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.History.Limit != 0 {
		result.History.Limit = override.History.Limit
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Display.TimeFormat != "" {
		result.Display.TimeFormat = override.Display.TimeFormat
	}
	if override.TUI.StartTab != "" {
		result.TUI.StartTab = override.TUI.StartTab
	}
	return result
}
