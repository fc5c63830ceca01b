package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ogulcanaydogan/smartstock/internal/config"
	"github.com/ogulcanaydogan/smartstock/pkg/alerts"
	"github.com/ogulcanaydogan/smartstock/pkg/catalog"
	"github.com/ogulcanaydogan/smartstock/pkg/feed"
	"github.com/ogulcanaydogan/smartstock/pkg/simulation"
	"github.com/ogulcanaydogan/smartstock/pkg/storage"
	"github.com/ogulcanaydogan/smartstock/pkg/tasks"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "smartstock",
	Short: "SmartStock - retail inventory dashboard with alert simulation",
	Long: `SmartStock serves an inventory dashboard API over a sample retail catalog.
Its alert simulation engine periodically generates low-stock, restock and
delivery alerts, keeps the ten most recent for display, and forwards each
one to the configured notifiers.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.smartstock/config.yaml)")
}

// loadConfig loads the configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger creates a structured logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// initCatalog loads the configured catalog, or the built-in sample.
func initCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

// initJournal opens the alert journal from config.
func initJournal(cfg *config.Config) (*storage.SQLite, error) {
	j, err := storage.NewSQLite(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open alert journal: %w", err)
	}
	return j, nil
}

// initNotifiers creates alert notifiers from config.
func initNotifiers(cfg *config.Config, logger *slog.Logger) []alerts.Notifier {
	var notifiers []alerts.Notifier

	if cfg.Alerts.Log.Enabled {
		notifiers = append(notifiers, alerts.NewLogNotifier(logger))
	}

	if cfg.Alerts.Slack.Enabled && cfg.Alerts.Slack.WebhookURL != "" {
		notifiers = append(notifiers, alerts.NewSlackNotifier(
			cfg.Alerts.Slack.WebhookURL,
			cfg.Alerts.Slack.Channel,
		))
	}

	if cfg.Alerts.Webhook.Enabled && cfg.Alerts.Webhook.URL != "" {
		notifiers = append(notifiers, alerts.NewWebhookNotifier(
			cfg.Alerts.Webhook.URL,
			cfg.Alerts.Webhook.Secret,
		))
	}

	return notifiers
}

// app is the fully wired simulation stack.
type app struct {
	catalog    *catalog.Catalog
	feed       *feed.Buffer
	journal    *storage.SQLite
	dispatcher *alerts.Dispatcher
	generator  *simulation.Generator
	engine     *simulation.Engine
	tasks      *tasks.Board
	restocker  *catalog.Restocker
}

// initApp wires catalog, feed, journal, notifiers, generator and engine.
// An empty catalog fails here, before anything is scheduled.
func initApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	interval, err := cfg.Simulation.IntervalDuration()
	if err != nil {
		return nil, err
	}

	c, err := initCatalog(cfg)
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.Alerts.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	journal, err := initJournal(cfg)
	if err != nil {
		return nil, err
	}

	dispatcher := alerts.NewDispatcher(initNotifiers(cfg, logger), timeout, logger)

	buf := feed.New(cfg.Simulation.FeedCapacity)
	gen, err := simulation.NewGenerator(c, buf, dispatcher,
		simulation.WithRand(simulation.NewRand(cfg.Simulation.Seed)),
		simulation.WithRecorder(journal),
		simulation.WithLogger(logger),
	)
	if err != nil {
		dispatcher.Close()
		journal.Close()
		return nil, err
	}

	return &app{
		catalog:    c,
		feed:       buf,
		journal:    journal,
		dispatcher: dispatcher,
		generator:  gen,
		engine:     simulation.NewEngine(gen, interval, logger, simulation.WithStatusSink(dispatcher)),
		tasks:      tasks.NewBoard(catalog.SampleTasks(), dispatcher, logger),
		restocker:  catalog.NewRestocker(c, dispatcher, logger),
	}, nil
}

// Close stops the engine, drains pending notifications and closes the journal.
func (a *app) Close() error {
	a.engine.Close()
	a.dispatcher.Close()
	return a.journal.Close()
}
