package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 20.0, cfg.Server.RateLimitRPS)
	assert.Equal(t, 40, cfg.Server.RateBurst)
	assert.Equal(t, "en", cfg.Analysis.DefaultLocale)
}

func TestLoadConfig_RateLimitDisabled(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "server:\n  rate_limit_rps: -1\n"))
	require.NoError(t, err)
	assert.Equal(t, -1.0, cfg.Server.RateLimitRPS)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SCENARIO_PORT", "7070")
	t.Setenv("SCENARIO_LOG_LEVEL", "debug")

	cfg, err := loadConfig(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
