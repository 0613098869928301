package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/parquet"
	"github.com/farescope/farescope/schema"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTrendResults outputs the price trend, dispatching based on the output format configured.
func PrintTrendResults(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForTrends(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForTrends(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForTrends(result, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(w, result, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForTrends handles opening the file and calling the JSON writer.
func printJSONResultsForTrends(result schema.TrendResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForTrends(w, result)
	}, "Wrote JSON")
}

// printCSVResultsForTrends handles opening the file and calling the CSV writer.
func printCSVResultsForTrends(result schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForTrends(csvWriter, result, cfg, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// printParquetResultsForTrends converts the trend points to Parquet rows and writes them.
func printParquetResultsForTrends(result schema.TrendResult, cfg *contract.Config) error {
	return writeParquetWithFile(cfg.OutputFile, func(path string) error {
		return parquet.WriteTrendPointsParquet(parquet.ConvertTrendPoints(result.Points), path)
	})
}

// writeTrendTable writes the daily price trend in a human-readable table.
func writeTrendTable(writer io.Writer, result schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Date", "Avg Price", "Flights"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	points := limitRows(result.Points, cfg.ResultLimit)
	var data [][]string
	for _, p := range points {
		row := []string{
			p.Date.Format(schema.DateKeyFormat), // Date
			fmtFloat(p.AvgPrice),                // Avg Price
			fmt.Sprintf(intFmt, p.FlightCount),  // Flights
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	// Compute summary stats
	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}
	var changeStr string
	switch result.Direction {
	case schema.TrendUp:
		// Explicitly add + sign
		changeStr = red(fmt.Sprintf("+%.*f%% ▲", cfg.Precision, result.ChangePercent))
	case schema.TrendDown:
		// Keeps the - sign from the float
		changeStr = green(fmt.Sprintf("%.*f%% ▼", cfg.Precision, result.ChangePercent))
	default:
		changeStr = yellow(fmt.Sprintf("%.*f%% (stable)", cfg.Precision, result.ChangePercent))
	}

	scope := "all routes"
	if result.Route != "" {
		scope = result.Route
	}
	if _, err := fmt.Fprintf(writer, "Showing %d of %d days for %s\n", len(points), len(result.Points), scope); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Price change first to last day: %s\n", changeStr); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
