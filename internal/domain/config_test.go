package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, "/home/user/project/taskboard.toml", LocalConfigPath("/home/user/project"))
	assert.Equal(t, "/home/user/.config/taskboard/config.toml", GlobalConfigPath("/home/user/.config"))
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultHistoryLimit, cfg.History.Limit)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, TimeLayout, cfg.Display.TimeFormat)
	assert.Equal(t, "schedule", cfg.TUI.StartTab)
}

func TestConfig_Normalize(t *testing.T) {
	cfg := &Config{History: HistoryConfig{Limit: -1}}
	cfg.Normalize()

	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestRenderConfigTemplate_MatchesDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, toml.Unmarshal([]byte(RenderConfigTemplate()), &cfg))

	assert.Equal(t, *NewDefaultConfig(), cfg)
}
