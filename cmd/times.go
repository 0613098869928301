package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// timesCmd performs time pattern analysis.
var timesCmd = &cobra.Command{
	Use:   "times [data-path]",
	Short: "Show flight volume patterns over time.",
	Long: `Analyze when flights happen across the dataset.

Reports daily flight counts, the weekly volume pattern, the busiest and
quietest days, and the average number of flights per day.

Examples:
  # Volume patterns for a dataset
  farescope times offers.json

  # Daily counts as JSON
  farescope times offers.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTimes(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run time analysis", err)
		}
	},
}
