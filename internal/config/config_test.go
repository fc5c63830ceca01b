package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ogulcanaydogan/smartstock/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "10s", cfg.Simulation.Interval)
	assert.Equal(t, 10, cfg.Simulation.FeedCapacity)
	assert.False(t, cfg.Simulation.Autostart)
	assert.Equal(t, uint64(0), cfg.Simulation.Seed)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, ":memory:", cfg.Storage.Path)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout)
	assert.Equal(t, "60s", cfg.Server.WriteTimeout)
	assert.True(t, cfg.Alerts.Log.Enabled)
	assert.False(t, cfg.Alerts.Slack.Enabled)
	assert.Equal(t, "#inventory-alerts", cfg.Alerts.Slack.Channel)
	assert.Equal(t, "10s", cfg.Alerts.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	data := []byte(`
simulation:
  interval: 2s
  autostart: true
  seed: 42
catalog:
  path: /etc/smartstock/catalog.yaml
storage:
  path: /tmp/alerts.db
server:
  listen: ":9090"
alerts:
  webhook:
    enabled: true
    url: https://example.com/hook
    secret: s3cret
logging:
  level: debug
  format: text
`)
	err := os.WriteFile(cfgPath, data, 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "2s", cfg.Simulation.Interval)
	assert.True(t, cfg.Simulation.Autostart)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, 10, cfg.Simulation.FeedCapacity)
	assert.Equal(t, "/etc/smartstock/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, "/tmp/alerts.db", cfg.Storage.Path)
	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.True(t, cfg.Alerts.Webhook.Enabled)
	assert.Equal(t, "https://example.com/hook", cfg.Alerts.Webhook.URL)
	assert.Equal(t, "s3cret", cfg.Alerts.Webhook.Secret)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SMARTSTOCK_LOGGING_LEVEL", "error")
	t.Setenv("SMARTSTOCK_SERVER_LISTEN", ":7070")
	t.Setenv("SMARTSTOCK_SIMULATION_INTERVAL", "500ms")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, ":7070", cfg.Server.Listen)
	assert.Equal(t, "500ms", cfg.Simulation.Interval)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(cfgPath, []byte("invalid: [yaml"), 0o644)
	require.NoError(t, err)

	_, err = config.Load(cfgPath)
	assert.Error(t, err)
}

func TestSimulationConfig_IntervalDuration(t *testing.T) {
	d, err := config.SimulationConfig{Interval: "10s"}.IntervalDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)

	_, err = config.SimulationConfig{Interval: "soon"}.IntervalDuration()
	assert.Error(t, err)

	_, err = config.SimulationConfig{Interval: "0s"}.IntervalDuration()
	assert.Error(t, err)
}

func TestAlertsConfig_TimeoutDuration(t *testing.T) {
	d, err := config.AlertsConfig{Timeout: "5s"}.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)

	_, err = config.AlertsConfig{Timeout: "whenever"}.TimeoutDuration()
	assert.Error(t, err)

	_, err = config.AlertsConfig{Timeout: "-1s"}.TimeoutDuration()
	assert.Error(t, err)
}
