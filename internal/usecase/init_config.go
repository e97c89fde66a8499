// Package usecase contains the application use cases.
package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// InitConfigInput selects which config file to create.
type InitConfigInput struct {
	Global bool // Target the user-wide file instead of taskboard.toml
	Print  bool // Return the template without writing anything
}

// InitConfigOutput describes the created (or previewed) file.
type InitConfigOutput struct {
	Path     string
	Template string // Set only when Print was requested
	Written  bool
}

// InitConfig writes the starter config template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{configManager: configManager}
}

// Execute writes the template to the selected location, or returns it when
// in.Print is set. An existing file is never overwritten.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	info, write := uc.configManager.LocalConfigInfo(), uc.configManager.InitLocalConfig
	if in.Global {
		info, write = uc.configManager.GlobalConfigInfo(), uc.configManager.InitGlobalConfig
	}

	if in.Print {
		return &InitConfigOutput{Path: info.Path, Template: domain.RenderConfigTemplate()}, nil
	}

	if err := write(); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: info.Path, Written: true}, nil
}
