package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// trendsCmd performs price trend analysis.
var trendsCmd = &cobra.Command{
	Use:   "trends [data-path]",
	Short: "Show how average prices move over the dataset's date range.",
	Long: `Track average price movement day by day across the dataset.

Builds a chronological series of daily average prices and classifies
the overall direction as up, down, or stable. Movement within a small
band around flat counts as stable so ordinary noise does not read as a
trend. Helps you:
- See whether fares are climbing ahead of a travel season
- Compare the trajectory of one route against the whole market
- Feed a daily price series into external tooling

Examples:
  # Price trend across all routes
  farescope trends offers.json

  # Trend for a single route
  farescope trends offers.json --route SYD-MEL

  # Trend series as JSON
  farescope trends offers.json --output json --output-file trend.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrends(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
	},
}
