package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all SmartStock configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Server     ServerConfig     `mapstructure:"server"`
	Alerts     AlertsConfig     `mapstructure:"alerts"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig defines the alert generator settings.
type SimulationConfig struct {
	Interval     string `mapstructure:"interval"`
	FeedCapacity int    `mapstructure:"feed_capacity"`
	Autostart    bool   `mapstructure:"autostart"`
	Seed         uint64 `mapstructure:"seed"`
}

// IntervalDuration parses Interval.
func (s SimulationConfig) IntervalDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.Interval)
	if err != nil {
		return 0, fmt.Errorf("parse simulation.interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("simulation.interval must be positive, got %s", s.Interval)
	}
	return d, nil
}

// CatalogConfig points at an optional YAML catalog. Empty uses the built-in sample.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// StorageConfig defines alert journal settings.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig defines the dashboard API listener.
type ServerConfig struct {
	Listen       string `mapstructure:"listen"`
	ReadTimeout  string `mapstructure:"read_timeout"`
	WriteTimeout string `mapstructure:"write_timeout"`
}

// AlertsConfig defines notification integrations.
type AlertsConfig struct {
	Log     LogAlertConfig `mapstructure:"log"`
	Slack   SlackConfig    `mapstructure:"slack"`
	Webhook WebhookConfig  `mapstructure:"webhook"`
	Timeout string         `mapstructure:"timeout"`
}

// TimeoutDuration parses Timeout, the per-send notifier deadline.
func (a AlertsConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse alerts.timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("alerts.timeout must be positive, got %s", a.Timeout)
	}
	return d, nil
}

// LogAlertConfig toggles writing notifications to the application log.
type LogAlertConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SlackConfig defines Slack webhook settings.
type SlackConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	WebhookURL string `mapstructure:"webhook_url"`
	Channel    string `mapstructure:"channel"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Secret  string `mapstructure:"secret"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".smartstock"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Defaults
	v.SetDefault("simulation.interval", "10s")
	v.SetDefault("simulation.feed_capacity", 10)
	v.SetDefault("simulation.autostart", false)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("catalog.path", "")
	v.SetDefault("storage.path", ":memory:")
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("alerts.log.enabled", true)
	v.SetDefault("alerts.slack.enabled", false)
	v.SetDefault("alerts.slack.channel", "#inventory-alerts")
	v.SetDefault("alerts.webhook.enabled", false)
	v.SetDefault("alerts.timeout", "10s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Environment variables
	v.SetEnvPrefix("SMARTSTOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
