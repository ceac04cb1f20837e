package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `{"model": "gemini-2.0-flash", "top_n": 7, "retry": 2}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, 2, cfg.Retry)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{broken`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{TimeoutSeconds: 10, Retry: 1, MaxConcurrency: 3, TopN: 5, Port: 8000}
	assert.NoError(t, cfg.Validate())

	cfg.Retry = -1
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "custom-model", TopN: 3}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "custom-model", merged.Model)
	assert.Equal(t, 3, merged.TopN)
	assert.Equal(t, "cache/cards", merged.CacheDir)
	assert.Equal(t, 10, merged.TimeoutSeconds)
	assert.Equal(t, 3, merged.MaxConcurrency)
	assert.Equal(t, 8000, merged.Port)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 1, cfg.Retry)
	assert.Empty(t, cfg.DatabaseURL)
}
