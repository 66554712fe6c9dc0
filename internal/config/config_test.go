package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "logs/cleandata.log", cfg.Logging.FilePath)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TWEETMETRICS_LOGGING_LEVEL", "debug")
	t.Setenv("TWEETMETRICS_LOGGING_OUTPUT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("TWEETMETRICS_LOGGING_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("logging:\n  level: warn\n  output: both\n  file_path: custom.log\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "custom.log", cfg.Logging.FilePath)
}

func TestMergeConfigs(t *testing.T) {
	fileCfg := Config{Logging: LoggingConfig{Level: "warn", Format: "text"}}
	envCfg := Config{Logging: LoggingConfig{Level: "debug"}}

	merged := mergeConfigs(fileCfg, envCfg)

	// Env wins where set, file fills the gaps.
	assert.Equal(t, "debug", merged.Logging.Level)
	assert.Equal(t, "text", merged.Logging.Format)
}
