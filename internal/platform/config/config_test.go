package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultsWithoutFile", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	})

	t.Run("YAMLFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "server:\n  port: \"7070\"\nlog:\n  level: warn\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	})

	t.Run("BadDuration", func(t *testing.T) {
		t.Setenv("READ_HEADER_TIMEOUT", "soon")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
