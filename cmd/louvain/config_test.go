package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
min_modularity_growth: 0.001
max_levels: 5
stream_batch_size: 256
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.MinModularityGrowth)
	assert.Equal(t, 5, cfg.MaxLevels)
	assert.Equal(t, 256, cfg.StreamBatchSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "max_levels: 3\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxLevels)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.MinModularityGrowth)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "max_levels: [not a number\n")

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"negative growth":   "min_modularity_growth: -0.5\n",
		"negative levels":   "max_levels: -1\n",
		"unknown log level": "log_level: loud\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content))
			assert.ErrorContains(t, err, "validate config")
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.MaxLevels)
	assert.Zero(t, cfg.StreamBatchSize)
}
