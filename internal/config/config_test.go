package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"enricher/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
logLevel: warn
doh:
  endpoint: https://dns.google/resolve
  format: wire
  requestsPerSecond: 20
pipeline:
  batchSize: 5
  batchPause: 100ms
  detectHeader: true
worker:
  maxAttempts: 3
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "https://dns.google/resolve", cfg.DoH.Endpoint)
	require.Equal(t, "wire", cfg.DoH.Format)
	require.InDelta(t, 20.0, cfg.DoH.RequestsPerSecond, 0)
	require.Equal(t, 5*time.Second, cfg.DoH.Timeout)
	require.Equal(t, 5, cfg.Pipeline.BatchSize)
	require.Equal(t, 100*time.Millisecond, cfg.Pipeline.BatchPause)
	require.True(t, cfg.Pipeline.DetectHeader)
	require.Equal(t, 2000, cfg.Pipeline.MaxDomains)
	require.Equal(t, "bulk", cfg.Pipeline.WriteMode)
	require.Equal(t, 3, cfg.Worker.MaxAttempts)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_env(t *testing.T) {
	t.Setenv("PIPELINE_MAX_DOMAINS", "50")
	t.Setenv("SQLITE_PATH", "/tmp/enricher-test.db")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Pipeline.MaxDomains)
	require.Equal(t, "/tmp/enricher-test.db", cfg.SQLite.Path)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 10, cfg.Pipeline.BatchSize)
	require.Equal(t, 50*time.Millisecond, cfg.Pipeline.BatchPause)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
