package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// airlinesCmd performs airline-level analysis.
var airlinesCmd = &cobra.Command{
	Use:   "airlines [data-path]",
	Short: "Show airlines ranked by coverage and price.",
	Long: `Rank airlines by flight count, route coverage, and average price.

Surfaces the carrier with the most flights, the cheapest carrier, and
the most expensive carrier by average price. Datasets without airline
information produce an empty view with a note.

Examples:
  # Airline rankings for a dataset
  farescope airlines offers.json

  # Rankings with route coverage detail
  farescope airlines offers.json --detail`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAirlines(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run airline analysis", err)
		}
	},
}
