// Package cmd defines the command-line interface for farescope.
package cmd

import (
	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(demandCmd)
	rootCmd.AddCommand(airlinesCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resultsCmd)

	// Add the results subcommands to the parent results command
	resultsCmd.AddCommand(resultsClearCmd)
	resultsCmd.AddCommand(resultsStatusCmd)
	resultsCmd.AddCommand(resultsExportCmd)
	resultsCmd.AddCommand(resultsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print extra per-row columns (price spread, direct share)")
	rootCmd.PersistentFlags().String("origin", "", "Restrict analysis to flights leaving this airport code")
	rootCmd.PersistentFlags().String("destination", "", "Restrict analysis to flights arriving at this airport code")
	rootCmd.PersistentFlags().String("departure-date", "", "Departure date in YYYY-MM-DD for the search context")
	rootCmd.PersistentFlags().String("return-date", "", "Return date in YYYY-MM-DD for the search context")
	rootCmd.PersistentFlags().Int("passengers", contract.DefaultPassengers, "Number of passengers for the search context")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("market", "", "Path to a market context JSON file to attach to results")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Skip the result cache and recompute from scratch")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("run-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for run tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in section headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of trendsCmd to Viper
	trendsCmd.Flags().String("route", "", "Restrict the trend to one route (e.g., SYD-MEL)")
	if err := viper.BindPFlags(trendsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trends flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Int("min-records", contract.DefaultMinRecords, "Minimum number of cleaned records required to pass")
	checkCmd.Flags().Float64("max-drop-ratio", contract.DefaultMaxDropRatio, "Maximum tolerated ratio of dropped records (0.0 to 1.0)")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of sampleCmd to Viper
	sampleCmd.Flags().Int("count", contract.DefaultSampleCount, "Number of sample records to generate")
	sampleCmd.Flags().Int64("seed", 0, "Seed for deterministic sample generation")
	if err := viper.BindPFlags(sampleCmd.Flags()); err != nil {
		contract.LogFatal("Error binding sample flags", err)
	}

	// Bind all flags of resultsMigrateCmd to Viper
	resultsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(resultsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding results migrate flags", err)
	}
}
