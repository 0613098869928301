package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// pricesCmd performs price distribution analysis.
var pricesCmd = &cobra.Command{
	Use:   "prices [data-path]",
	Short: "Show price statistics across the dataset.",
	Long: `Analyze the price distribution of cleaned flight offers.

Computes mean, median, standard deviation, and the price range, then
breaks averages down by day of week and by month. Also reports the
weekend premium, the percentage difference between weekend and weekday
average prices. Helps you:
- Spot which days of the week are cheapest to fly
- See seasonal price movement month over month
- Quantify how much weekends cost over weekdays

Examples:
  # Price breakdown for a dataset
  farescope prices offers.json

  # Higher precision for small price differences
  farescope prices offers.json --precision 4

  # Prices on one route only
  farescope prices offers.json --origin SYD --destination MEL`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePrices(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run price analysis", err)
		}
	},
}
