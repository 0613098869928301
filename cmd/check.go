package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on data quality gating.
var checkCmd = &cobra.Command{
	Use:   "check [data-path]",
	Short: "Enforce data quality thresholds for pipelines (fails on violations)",
	Long: `Clean the dataset and enforce data quality thresholds on the result.

Designed for pipeline integration - fails with a non-zero exit code when
the cleaned dataset is too small or too many records were dropped. The
report lists every drop reason with its count so failures are actionable.

Default thresholds: 1 minimum record, 0.5 maximum drop ratio

Use cases:
- Ingestion gates - block bad feeds before they reach analysis
- Vendor monitoring - catch upstream format changes automatically
- Scheduled audits - verify data quality stays within bounds

Examples:
  # Gate a nightly feed
  farescope check nightly-offers.json

  # Require a substantial dataset with few drops
  farescope check offers.json --min-records 1000 --max-drop-ratio 0.1

  # Machine-readable report for the pipeline log
  farescope check offers.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Validation is done in ExecuteCheck
		if err := core.ExecuteCheck(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Quality check failed", err)
		}
	},
}
