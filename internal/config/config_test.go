package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "backend:\n  app_id: app-1\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://app.base44.com", cfg.Backend.BaseURL)
	assert.Equal(t, "10s", cfg.Backend.Timeout)
	assert.True(t, cfg.Backend.RetryReads)
	assert.Equal(t, "3s", cfg.Sync.ChatPollInterval)
	assert.Equal(t, "15s", cfg.Sync.PagePollInterval)
	assert.Equal(t, "10m", cfg.Sync.BindingIdleTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
backend:
  app_id: app-1
  timeout: 5s
sync:
  chat_poll_interval: 2s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "5s", cfg.Backend.Timeout)
	assert.Equal(t, "2s", cfg.Sync.ChatPollInterval)
	assert.Equal(t, "15s", cfg.Sync.PagePollInterval)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "backend:\n  app_id: app-1\n  base_url: https://file.example.com\n")
	t.Setenv("BACKEND_BASE_URL", "https://env.example.com")
	t.Setenv("BACKEND_RETRY_READS", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Backend.BaseURL)
	assert.False(t, cfg.Backend.RetryReads)
}

func TestLoadConfigRequiresAppID(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: \"8080\"\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app id")
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, "backend:\n  app_id: app-1\nsync:\n  chat_poll_interval: soon\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")
}

func TestLoadConfigRejectsNonPositiveDuration(t *testing.T) {
	path := writeConfigFile(t, "backend:\n  app_id: app-1\nsync:\n  page_poll_interval: 0s\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}
