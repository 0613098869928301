package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the full analysis pipeline.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [data-path]",
	Short: "Run the full cleaning and analysis pipeline over flight offer data.",
	Long: `Clean raw flight offer records and compute every analysis view in one pass.

Loads records from JSON, CSV, or Excel, drops unusable rows, and reports:
- Headline metrics (flight counts, price range, date coverage)
- Price statistics by day of week and by month
- Popular routes ranked by flight count
- Daily and weekly flight volume patterns
- High-demand routes and price/demand correlation
- Airline rankings by coverage and price

Without a data path, a deterministic sample dataset is generated so you
can explore the tool without real data.

Examples:
  # Analyze a JSON export of flight offers
  farescope analyze offers.json

  # Analyze a spreadsheet, focusing on one origin
  farescope analyze offers.xlsx --origin SYD

  # Full report as JSON for downstream tooling
  farescope analyze offers.json --output json --output-file report.json

  # Explore with generated sample data
  farescope analyze`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
