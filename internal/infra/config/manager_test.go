package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
)

func TestManager_LocalConfigInfo(t *testing.T) {
	workDir := t.TempDir()
	m := NewManagerWithGlobalDir(workDir, t.TempDir())

	info := m.LocalConfigInfo()
	assert.False(t, info.Exists)
	assert.Equal(t, filepath.Join(workDir, "taskboard.toml"), info.Path)

	require.NoError(t, m.InitLocalConfig())

	info = m.LocalConfigInfo()
	assert.True(t, info.Exists)
	assert.Equal(t, domain.RenderConfigTemplate(), info.Content)
}

func TestManager_InitLocalConfig_Exists(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), t.TempDir())
	require.NoError(t, m.InitLocalConfig())

	err := m.InitLocalConfig()

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig_CreatesDir(t *testing.T) {
	// Setup
	globalDir := filepath.Join(t.TempDir(), "nested", "taskboard")
	m := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	// Execute
	require.NoError(t, m.InitGlobalConfig())

	// Assert
	data, err := os.ReadFile(filepath.Join(globalDir, domain.ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[history]")
	assert.True(t, m.GlobalConfigInfo().Exists)
}

func TestManager_InitGlobalConfig_NoDir(t *testing.T) {
	m := NewManagerWithGlobalDir(t.TempDir(), "")

	assert.Error(t, m.InitGlobalConfig())
	assert.Equal(t, domain.ConfigInfo{}, m.GlobalConfigInfo())
}

func TestManager_InitThenLoad(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, NewManagerWithGlobalDir(workDir, "").InitLocalConfig())

	cfg, err := NewLoaderWithGlobalDir(workDir, "").Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.DefaultHistoryLimit, cfg.History.Limit)
}
