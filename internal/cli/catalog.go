package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ogulcanaydogan/smartstock/pkg/catalog"
	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the inventory catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every item with its stock status",
	RunE: withCatalog(func(out io.Writer, c *catalog.Catalog) {
		printStock(out, c.Items())
	}),
}

var catalogAttentionCmd = &cobra.Command{
	Use:   "attention",
	Short: "Items that are urgent or at or below their reorder threshold",
	RunE: withCatalog(func(out io.Writer, c *catalog.Catalog) {
		printStock(out, c.NeedsAttention(0))
	}),
}

var catalogRestockCmd = &cobra.Command{
	Use:   "restock",
	Short: "Suggested restock quantities",
	RunE: withCatalog(func(out io.Writer, c *catalog.Catalog) {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ITEM\tSTOCK\tSUGGESTED\tURGENCY\n")
		for _, item := range c.RestockSuggestions() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", item.Name, item.CurrentStock, derefInt(item.SuggestedRestock), item.UrgencyLevel)
		}
		w.Flush()
	}),
}

var catalogDeliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "Inbound deliveries by arrival",
	RunE: withCatalog(func(out io.Writer, c *catalog.Catalog) {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ITEM\tFROM\tSTATUS\tETA\n")
		for _, item := range c.Deliveries() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Name, item.WarehouseSource, item.DeliveryStatus, catalog.ETADisplay(item))
		}
		w.Flush()
	}),
}

var catalogForecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Demand forecast, soonest stock-out first",
	RunE: withCatalog(func(out io.Writer, c *catalog.Catalog) {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ITEM\tFOOTFALL/H\tTREND\tPROMO\tOUT IN\n")
		for _, item := range c.DemandForecast() {
			fmt.Fprintf(w, "%s\t%d\t%s\t%t\t%d mins\n",
				item.Name, derefInt(item.FootfallPerHour), item.SalesTrend, item.PromoEvent, derefInt(item.PredictedOutIn))
		}
		w.Flush()
	}),
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogAttentionCmd, catalogRestockCmd, catalogDeliveriesCmd, catalogForecastCmd)
}

// withCatalog loads the configured catalog before running show.
func withCatalog(show func(io.Writer, *catalog.Catalog)) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := initCatalog(cfg)
		if err != nil {
			return err
		}
		show(os.Stdout, c)
		return nil
	}
}

func printStock(out io.Writer, items []model.InventoryItem) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tITEM\tDEPARTMENT\tSTOCK\tTHRESHOLD\tSTATUS\tURGENCY\n")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, item.Department,
			item.CurrentStock, item.ReorderThreshold,
			catalog.StockStatus(item), item.UrgencyLevel,
		)
	}
	w.Flush()
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
