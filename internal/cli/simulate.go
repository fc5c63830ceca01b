package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the alert simulation and print the resulting feed",
	Long: `Run the alert simulation without the API. By default the generator is ticked
--ticks times back to back. With --live the engine runs on its configured
interval until --duration elapses or the process is interrupted.`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntP("ticks", "n", 15, "Number of alerts to generate")
	simulateCmd.Flags().Uint64("seed", 0, "Random seed (0 = from config, else random)")
	simulateCmd.Flags().Bool("live", false, "Run on the configured interval instead of ticking immediately")
	simulateCmd.Flags().Duration("duration", 0, "Stop a live run after this long (0 = until interrupted)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ticks, _ := cmd.Flags().GetInt("ticks")
	seed, _ := cmd.Flags().GetUint64("seed")
	live, _ := cmd.Flags().GetBool("live")
	duration, _ := cmd.Flags().GetDuration("duration")

	if ticks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}

	logger := newLogger(cfg)

	a, err := initApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if live {
		runLive(ctx, a, duration)
	} else {
		for i := 0; i < ticks; i++ {
			a.generator.Tick(ctx)
		}
	}

	summary, err := a.journal.AggregateAlerts(ctx, model.AlertFilter{})
	if err != nil {
		return fmt.Errorf("summarize alerts: %w", err)
	}

	events, count := a.feed.View()
	printFeed(os.Stdout, events, count, summary)
	return nil
}

func runLive(ctx context.Context, a *app, duration time.Duration) {
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Simulating every %s, press Ctrl+C to stop\n", a.engine.Interval())
	a.engine.Start()
	<-ctx.Done()
	a.engine.Stop()
}

func printFeed(out io.Writer, events []model.AlertEvent, count int64, summary *model.AlertSummary) {
	fmt.Fprintf(out, "=== Alert Feed (%d of %d generated) ===\n", len(events), count)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  TIME\tALERT\tITEM\tMESSAGE\n")
	for _, e := range events {
		fmt.Fprintf(w, "  %s\t%s %s\t%s\t%s\n",
			e.Timestamp.Local().Format("15:04:05"),
			e.Kind.Icon(), e.Kind.Label(),
			e.ItemName,
			e.Message,
		)
	}
	w.Flush()

	if summary == nil || len(summary.ByKind) == 0 {
		return
	}

	fmt.Fprintf(out, "\nBy Kind:\n")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  KIND\tCOUNT\n")
	for _, kind := range model.AlertKinds {
		fmt.Fprintf(w, "  %s\t%d\n", kind, summary.ByKind[kind])
	}
	w.Flush()

	fmt.Fprintf(out, "\nBy Item:\n")
	names := make([]string, 0, len(summary.ByItem))
	for name := range summary.ByItem {
		names = append(names, name)
	}
	sort.Strings(names)

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ITEM\tCOUNT\n")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%d\n", name, summary.ByItem[name])
	}
	w.Flush()
}
