package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// routesCmd performs route-level analysis.
var routesCmd = &cobra.Command{
	Use:   "routes [data-path]",
	Short: "Show the top routes ranked by flight count.",
	Long: `Rank origin-destination routes by how many flights serve them.

For each route, reports flight count, average price, the price spread,
and the share of direct flights. Also surfaces the most expensive and
cheapest routes by average price. Helps you:
- Identify the busiest corridors in the dataset
- Compare pricing across competing routes
- Find routes dominated by connecting itineraries

Examples:
  # Top routes by coverage
  farescope routes offers.json

  # Top 5 routes with the price spread columns
  farescope routes offers.json --limit 5 --detail

  # Route table as CSV for a spreadsheet
  farescope routes offers.json --output csv --output-file routes.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRoutes(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run route analysis", err)
		}
	},
}
