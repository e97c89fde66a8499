package usecase

import (
	"context"
	"slices"

	"github.com/runoshun/taskboard/internal/domain"
)

// Config scopes, listed from lowest to highest precedence.
const (
	ScopeGlobal = "global"
	ScopeLocal  = "local"
)

// ConfigSource is one config file that feeds the effective config.
type ConfigSource struct {
	Scope string
	domain.ConfigInfo
}

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the merged config and where it came from.
type ShowConfigOutput struct {
	Effective *domain.Config
	Sources   []ConfigSource // Lowest precedence first
	Warnings  []string       // Problems found while loading
}

// ShowConfig reports the effective configuration.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute loads the merged config and describes each source file.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}

	sources := []ConfigSource{
		{Scope: ScopeGlobal, ConfigInfo: uc.configManager.GlobalConfigInfo()},
		{Scope: ScopeLocal, ConfigInfo: uc.configManager.LocalConfigInfo()},
	}
	// A missing global directory yields no path at all.
	sources = slices.DeleteFunc(sources, func(s ConfigSource) bool { return s.Path == "" })

	return &ShowConfigOutput{
		Effective: cfg,
		Sources:   sources,
		Warnings:  slices.Clone(cfg.Warnings),
	}, nil
}
