package cmd

import (
	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/spf13/cobra"
)

// sampleCmd generates synthetic flight offer data.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a synthetic flight offer dataset.",
	Long: `Generate a synthetic flight offer dataset as raw JSON records.

The generator covers a fixed set of routes and airlines with realistic
price jitter, weekend and peak-hour premiums, and demand scores. The
same seed always produces the same dataset, so generated files are
reproducible across machines and runs.

The output loads straight back into any analysis command, which makes
it useful for demos, tests, and pipeline dry runs.

Examples:
  # 100 records to stdout
  farescope sample

  # A large reproducible dataset
  farescope sample --count 5000 --seed 42 --output-file offers.json

  # Generate and analyze in one pipeline
  farescope sample --count 1000 --output-file offers.json && farescope analyze offers.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSample(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot generate sample data", err)
		}
	},
}
