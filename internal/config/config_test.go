package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPECGEN_CONFIG_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", cfg.APIBaseURL)
	assert.Equal(t, filepath.Join(dir, "token"), cfg.TokenPath)
	assert.Equal(t, ".", cfg.ExportDir)
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPECGEN_CONFIG_DIR", dir)

	content := "api_base_url: https://specgen.example.com\nexport_dir: /tmp/exports\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://specgen.example.com", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
	// Unset keys keep their defaults.
	assert.Equal(t, filepath.Join(dir, "token"), cfg.TokenPath)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPECGEN_CONFIG_DIR", dir)
	t.Setenv("SPECGEN_API_BASE_URL", "https://env.example.com")

	content := "api_base_url: https://file.example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
}
