package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Model.Provider)
	assert.Equal(t, "data/exchange_mcp.json", cfg.Data.File)
	assert.Equal(t, 8, cfg.Limits.MaxIterations)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model:
  provider: openai
  name: gpt-4o-mini
data:
  file: /tmp/dataset.json
limits:
  max_iterations: 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Model.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model.Name)
	assert.Equal(t, "/tmp/dataset.json", cfg.Data.File)
	assert.Equal(t, 3, cfg.Limits.MaxIterations)
	// Untouched sections keep their defaults.
	assert.Equal(t, 200, cfg.Limits.HistorySize)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  provider: openai\n"), 0o644))

	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_MODEL", "claude-3-5-sonnet-20241022")
	t.Setenv("MAX_ITERATIONS", "5")
	t.Setenv("HISTORY_SIZE", "not-a-number")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Model.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model.Name)
	assert.Equal(t, 5, cfg.Limits.MaxIterations)
	assert.Equal(t, 200, cfg.Limits.HistorySize, "invalid numeric override is ignored")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
