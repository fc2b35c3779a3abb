package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "config-test-none")

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Speaker", "Спикер"}, c.Markers)
	assert.False(t, c.Strict)
	assert.Empty(t, c.Output)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, 60*time.Second, c.HTTP.Timeout)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `
markers: ["Agent", "Client"]
strict: true
output: out.csv
log:
  level: debug
  format: json
http:
  timeout: 5s
`)
	t.Setenv("WDER_OUTPUT", "env.csv")
	t.Setenv("WDER_LOG_LEVEL", "warn")

	c, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Agent", "Client"}, c.Markers)
	assert.True(t, c.Strict)
	assert.Equal(t, "env.csv", c.Output)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, 5*time.Second, c.HTTP.Timeout)
}

func TestLoadMarkersFromEnv(t *testing.T) {
	t.Setenv("CONFIG_ENV", "config-test-none")
	t.Setenv("WDER_MARKERS", "Agent,Client")

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Agent", "Client"}, c.Markers)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadGuessedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config", "ci"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "ci", "config.yaml"), []byte("strict: true\n"), 0o644))
	t.Setenv("CONFIG_ENV", "ci")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.True(t, c.Strict)
}

func TestValidate(t *testing.T) {
	c := Root{
		Markers: []string{" "},
		Log:     Log{Level: "loud", Format: "xml"},
	}
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "markers")
	assert.ErrorContains(t, err, "log.level")
	assert.ErrorContains(t, err, "log.format")
	assert.ErrorContains(t, err, "http.timeout")
}
