package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd shows headline dataset metrics.
var summaryCmd = &cobra.Command{
	Use:   "summary [data-path]",
	Short: "Show headline metrics for a flight offer dataset.",
	Long: `Clean the dataset and print its headline metrics.

Reports total flights, unique routes, airline count, average price,
the full price range, and the date span covered by the data. This is
the fastest way to sanity-check a new export before deeper analysis.

Examples:
  # Quick look at a fresh export
  farescope summary offers.json

  # Summary as JSON for scripting
  farescope summary offers.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run summary", err)
		}
	},
}
