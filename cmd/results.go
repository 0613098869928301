package cmd

import (
	"fmt"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/resultstore"
	"github.com/farescope/farescope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resultsSetup loads minimal configuration needed for results operations.
// This is used by commands that need store access without full shared setup.
func resultsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	cacheBackend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	cacheConnStr := viper.GetString("cache-db-connect")

	// Get run-related config values
	runBackendStr := viper.GetString("run-backend")
	runConnStr := viper.GetString("run-db-connect")

	// Handle empty run backend as NoneBackend
	var runBackend schema.DatabaseBackend
	if runBackendStr == "" {
		runBackend = schema.NoneBackend
	} else {
		runBackend = schema.DatabaseBackend(runBackendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(cacheBackend, cacheConnStr); err != nil {
		return err
	}
	if err := contract.ValidateDatabaseConnectionString(runBackend, runConnStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize both stores with the loaded config
	if err := resultstore.InitStores(cacheBackend, cacheConnStr, runBackend, runConnStr); err != nil {
		return fmt.Errorf("failed to initialize stores: %w", err)
	}

	cfg.CacheBackend = cacheBackend
	cfg.CacheDBConnect = cacheConnStr
	cfg.RunBackend = runBackend
	cfg.RunDBConnect = runConnStr
	cfg.OutputFile = outputFile

	return nil
}

// resultsSetupWrapper wraps resultsSetup to provide PreRunE for results commands.
func resultsSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsSetup()
}

// resultsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func resultsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get run-related config values
	backendStr := viper.GetString("run-backend")
	connStr := viper.GetString("run-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetRunDBFilePath()
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr

	return nil
}

// resultsMigrateSetupWrapper wraps resultsMigrateSetup to provide PreRunE for migrate command.
func resultsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsMigrateSetup()
}

// resultsCmd focused on stored result management.
//
// Note: Results subcommands use minimal initialization (resultsSetup) instead of
// the full sharedSetup used by analysis commands. This avoids data file validation
// and complex config processing for simple store operations.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage cached results and historical run tracking",
	Long: `Manage the result cache and historical run data kept between analyses.

Farescope persists two kinds of state:
- Cached analysis results, keyed by dataset content and configuration,
  so repeated runs over unchanged data return instantly
- Run history (when enabled), storing run metadata, cleaning reports,
  and per-route statistics for every analysis

Run history enables longitudinal analysis and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache and run tracking statistics
  export  - Export run history to Parquet for analytics
  clear   - Remove all cached results and run history
  migrate - Run database schema migrations

Examples:
  # Check store status
  farescope results status

  # Export run history for analysis in pandas/DuckDB
  farescope results export --output-file runs.parquet`,
}

// resultsClearCmd clears the cached results and run history.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached results and run history",
	Long: `Delete all cached analysis results and stored run history.

This removes:
- Every cached analysis result
- All run metadata and cleaning reports
- Per-route statistics recorded across runs

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Cached results may be stale or corrupted
- Database storage is full
- Starting fresh run history
- Testing caching behavior

Examples:
  # Export before clearing
  farescope results export --output-file backup.parquet
  farescope results clear

  # Clear a MySQL-backed store (set connection string via env variable)
  FARESCOPE_CACHE_BACKEND=mysql FARESCOPE_CACHE_DB_CONNECT="..." farescope results clear`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := resultstore.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cached results", err)
		}
		if err := resultstore.ClearRuns(cfg.RunBackend, contract.GetRunDBFilePath(), cfg.RunDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Stored results cleared successfully.")
	},
}

// resultsStatusCmd shows the status of both stores.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache and run tracking statistics",
	Long: `Show detailed information about the result cache and run tracking.

Displays:
- Backend type and connection status for each store
- Total number of cached results
- Total number of analysis runs stored
- Last and oldest entry timestamps
- Database table sizes

Use this to:
- Verify caching and run tracking are working
- Monitor data accumulation over time
- Check database connection health
- Estimate storage requirements

Examples:
  # Check store status
  farescope results status`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cacheStatus, err := resultstore.Manager.GetResultStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		resultstore.PrintCacheStatus(cacheStatus)

		runStatus, err := resultstore.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run status", err)
		}
		resultstore.PrintRunStatus(runStatus)
	},
}

// resultsExportCmd exports run history to Parquet files.
var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all stored run history to Parquet format for use with analytics tools.

Exports two datasets:
- Analysis runs - metadata and cleaning reports for each run
- Route statistics - per-route prices and demand recorded per run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Use cases:
- Fare trend analysis across many runs
- Custom dashboards and visualizations
- Route performance reporting over time

Examples:
  # Export all run history
  farescope results export --output-file farescope-runs.parquet

  # Use with DuckDB for analysis
  farescope results export --output-file runs.parquet
  duckdb -c "SELECT * FROM read_parquet('runs.parquet/runs.parquet') LIMIT 10"`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := resultstore.ExecuteRunExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// resultsMigrateCmd runs database migrations for the run store.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

Migrations allow:
- Upgrading to new schema versions when Farescope is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed
- Testing new features on specific schema versions

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  farescope results migrate

  # Migrate to specific version
  farescope results migrate --target-version 2

  # Rollback to previous version
  farescope results migrate --target-version 0`,
	PreRunE: resultsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := resultstore.MigrateRuns(cfg.RunBackend, cfg.RunDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
