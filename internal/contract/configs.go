package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/farescope/farescope/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 2
	MaxPrecision        = 4
	DefaultPassengers   = 1
	MaxPassengers       = 9
	DefaultSampleCount  = 100
	MaxSampleCount      = 100000
	DefaultMinRecords   = 1
	DefaultMaxDropRatio = 0.5
)

// CacheTTL is how long a cached analysis result stays valid.
const CacheTTL = 24 * time.Hour

// supportedDataExtensions lists the file types the loaders understand.
var supportedDataExtensions = map[string]bool{
	".json": true,
	".csv":  true,
	".xlsx": true,
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath    string // Empty means generated sample data
	Output      schema.OutputMode
	OutputFile  string
	ResultLimit int
	Precision   int
	Detail      bool
	Width       int // Terminal width override (0 = auto-detect)

	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Passengers    int

	TrendRoute string

	MinRecords   int
	MaxDropRatio float64

	SampleCount int
	SampleSeed  int64

	MarketDataPath string

	NoCache        bool
	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored tiers in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile     string `mapstructure:"output-file"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	Detail         bool   `mapstructure:"detail"`
	Width          int    `mapstructure:"width"`
	Origin         string `mapstructure:"origin"`
	Destination    string `mapstructure:"destination"`
	DepartureDate  string `mapstructure:"departure-date"`
	ReturnDate     string `mapstructure:"return-date"`
	Passengers     int    `mapstructure:"passengers"`
	Market         string `mapstructure:"market"`
	NoCache        bool   `mapstructure:"no-cache"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	RunBackend     string `mapstructure:"run-backend"`
	RunDBConnect   string `mapstructure:"run-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	// --- Fields from trendsCmd.Flags() ---
	Route string `mapstructure:"route"`

	// --- Fields from checkCmd.Flags() ---
	MinRecords   int     `mapstructure:"min-records"`
	MaxDropRatio float64 `mapstructure:"max-drop-ratio"`

	// --- Fields from sampleCmd.Flags() ---
	Count int   `mapstructure:"count"`
	Seed  int64 `mapstructure:"seed"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// SearchParams assembles the search parameters carried on analysis results.
func (c *Config) SearchParams() schema.SearchParams {
	return schema.SearchParams{
		Origin:        c.Origin,
		Destination:   c.Destination,
		DepartureDate: c.DepartureDate,
		ReturnDate:    c.ReturnDate,
		Passengers:    c.Passengers,
	}
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSearchParams(cfg, input); err != nil {
		return err
	}
	if err := processTrendOptions(cfg, input); err != nil {
		return err
	}
	if err := processCheckOptions(cfg, input); err != nil {
		return err
	}
	if err := processSampleOptions(cfg, input); err != nil {
		return err
	}
	if err := resolveDataPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and run backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Run Backend Validation ---
	cfg.RunBackend = schema.DatabaseBackend(strings.ToLower(input.RunBackend))
	if cfg.RunBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.RunBackend]; !ok {
			return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", input.RunBackend)
		}
		cfg.RunDBConnect = input.RunDBConnect
		if err := ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect); err != nil {
			return err
		}

		// Validate that cache and run tracking use different databases
		if cfg.CacheBackend == cfg.RunBackend && cfg.CacheBackend != schema.NoneBackend {
			// For SQLite, resolve to actual file paths to catch default path conflicts
			if cfg.CacheBackend == schema.SQLiteBackend {
				cacheDBPath := cfg.CacheDBConnect
				if cacheDBPath == "" {
					cacheDBPath = GetCacheDBFilePath()
				}
				runDBPath := cfg.RunDBConnect
				if runDBPath == "" {
					runDBPath = GetRunDBFilePath()
				}
				if cacheDBPath == runDBPath {
					return fmt.Errorf("cache and run storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
				}
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width
	cfg.NoCache = input.NoCache
	cfg.MarketDataPath = strings.TrimSpace(input.Market)

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 4. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	return nil
}

// processSearchParams validates the flight search parameters.
func processSearchParams(cfg *Config, input *ConfigRawInput) error {
	cfg.Origin = strings.ToUpper(strings.TrimSpace(input.Origin))
	cfg.Destination = strings.ToUpper(strings.TrimSpace(input.Destination))

	if input.DepartureDate != "" {
		if _, err := time.Parse(schema.DateKeyFormat, input.DepartureDate); err != nil {
			return fmt.Errorf("invalid departure date '%s'. Expected YYYY-MM-DD", input.DepartureDate)
		}
	}
	cfg.DepartureDate = input.DepartureDate

	if input.ReturnDate != "" {
		if _, err := time.Parse(schema.DateKeyFormat, input.ReturnDate); err != nil {
			return fmt.Errorf("invalid return date '%s'. Expected YYYY-MM-DD", input.ReturnDate)
		}
		if cfg.DepartureDate != "" && input.ReturnDate < cfg.DepartureDate {
			return fmt.Errorf("return date (%s) cannot be before departure date (%s)", input.ReturnDate, cfg.DepartureDate)
		}
	}
	cfg.ReturnDate = input.ReturnDate

	if input.Passengers < 1 || input.Passengers > MaxPassengers {
		return fmt.Errorf("passengers must be between 1 and %d (received %d)", MaxPassengers, input.Passengers)
	}
	cfg.Passengers = input.Passengers

	return nil
}

// processTrendOptions validates the trend-specific inputs.
func processTrendOptions(cfg *Config, input *ConfigRawInput) error {
	if input.Route == "" {
		cfg.TrendRoute = ""
		return nil
	}

	route, err := NormalizeRoute(input.Route)
	if err != nil {
		return fmt.Errorf("invalid --route value: %w", err)
	}
	cfg.TrendRoute = route
	return nil
}

// processCheckOptions validates the quality gate thresholds.
func processCheckOptions(cfg *Config, input *ConfigRawInput) error {
	if input.MinRecords < 0 {
		return fmt.Errorf("min-records cannot be negative (received %d)", input.MinRecords)
	}
	cfg.MinRecords = input.MinRecords

	if input.MaxDropRatio < 0.0 || input.MaxDropRatio > 1.0 {
		return fmt.Errorf("max-drop-ratio must be between 0.0 and 1.0 (received %.2f)", input.MaxDropRatio)
	}
	cfg.MaxDropRatio = input.MaxDropRatio

	return nil
}

// processSampleOptions validates the sample generation inputs.
func processSampleOptions(cfg *Config, input *ConfigRawInput) error {
	if input.Count <= 0 || input.Count > MaxSampleCount {
		return fmt.Errorf("count must be greater than 0 and cannot exceed %d (received %d)", MaxSampleCount, input.Count)
	}
	cfg.SampleCount = input.Count
	cfg.SampleSeed = input.Seed

	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// resolveDataPath resolves and validates the flight data file path.
// An empty path selects generated sample data.
func resolveDataPath(cfg *Config, input *ConfigRawInput) error {
	dataPath := strings.TrimSpace(input.DataPathStr)
	if dataPath == "" {
		cfg.DataPath = ""
		return nil
	}

	absPath, err := filepath.Abs(dataPath)
	if err != nil {
		return err
	}
	absPath = filepath.Clean(absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("data file does not exist: %s", dataPath)
	}
	if info.IsDir() {
		return fmt.Errorf("data path is a directory, expected a file: %s", dataPath)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if !supportedDataExtensions[ext] {
		return fmt.Errorf("unsupported data file type '%s'. must be .json, .csv, or .xlsx", ext)
	}

	cfg.DataPath = absPath
	return nil
}
