package config_test

import (
	"os"
	"path/filepath"
	"recap/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
  docsPath: /swagger
notifications:
  workers: 2
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "/swagger", cfg.HTTP.DocsPath)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 2, cfg.Notifications.Workers)
	require.Equal(t, 5, cfg.Notifications.MaxAttempts)
	require.Equal(t, "recap", cfg.Database.DatabaseName)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.Empty(t, cfg.JWT.PublicKey)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7000")
	t.Setenv("NOTIFICATIONS_MAX_ATTEMPTS", "9")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, ":7000", cfg.HTTP.Addr)
	require.Equal(t, 9, cfg.Notifications.MaxAttempts)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("NOTIFICATIONS_WORKERS", "0")
	_, err = config.Load("")
	require.ErrorContains(t, err, "notifications.workers")
}
