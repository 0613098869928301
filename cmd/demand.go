package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// demandCmd performs demand analysis.
var demandCmd = &cobra.Command{
	Use:   "demand [data-path]",
	Short: "Show high-demand routes and the price/demand relationship.",
	Long: `Analyze demand signals carried on flight offer records.

Routes whose average demand score clears the threshold are flagged as
high demand. Also computes the correlation between demand and price,
and peak booking hours when departure times are present. Helps you:
- Find routes where demand outstrips supply
- Check whether high demand actually drives prices up
- See which hours of the day bookings concentrate in

Demand data is optional; datasets without scores produce an empty view.

Examples:
  # High-demand routes for a dataset
  farescope demand offers.json

  # Demand view as JSON
  farescope demand offers.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDemand(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run demand analysis", err)
		}
	},
}
