package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/parquet"
	"github.com/farescope/farescope/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTimeResults outputs the time analysis, dispatching based on the output format configured.
func PrintTimeResults(analysis schema.TimeAnalysis, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForTimes(analysis, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForTimes(analysis, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForTimes(analysis, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeTable(w, analysis, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForTimes handles opening the file and calling the JSON writer.
func printJSONResultsForTimes(analysis schema.TimeAnalysis, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForTimes(w, analysis)
	}, "Wrote JSON")
}

// printCSVResultsForTimes handles opening the file and calling the CSV writer.
func printCSVResultsForTimes(analysis schema.TimeAnalysis, cfg *contract.Config, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForTimes(csvWriter, analysis, cfg, intFmt)
	}, "Wrote CSV")
}

// printParquetResultsForTimes converts the daily counts to Parquet rows and writes them.
func printParquetResultsForTimes(analysis schema.TimeAnalysis, cfg *contract.Config) error {
	return writeParquetWithFile(cfg.OutputFile, func(path string) error {
		return parquet.WriteDailyCountsParquet(parquet.ConvertDailyCounts(analysis.DailyFlightCounts), path)
	})
}

// writeTimeTable writes the daily flight counts in a human-readable table.
func writeTimeTable(writer io.Writer, analysis schema.TimeAnalysis, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Date", "Flights"}
	if cfg.Detail {
		headers = append(headers, "Weekday")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	dates := limitRows(sortedDateKeys(analysis.DailyFlightCounts), cfg.ResultLimit)
	var data [][]string
	for _, date := range dates {
		row := []string{
			date, // Date
			fmt.Sprintf(intFmt, analysis.DailyFlightCounts[date]), // Flights
		}
		if cfg.Detail {
			row = append(row, weekdayLabel(date)) // Weekday
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
	shownFlights := 0
	for _, date := range dates {
		shownFlights += analysis.DailyFlightCounts[date]
	}
	if _, err := fmt.Fprintf(writer, "Showing %d of %d days (flights shown: %d)\n", len(dates), len(analysis.DailyFlightCounts), shownFlights); err != nil {
		return err
	}
	if analysis.BusiestDay != "" {
		if _, err := fmt.Fprintf(writer, "Busiest day: %s, quietest day: %s, avg flights/day: %s\n",
			analysis.BusiestDay, analysis.QuietestDay, fmtFloat(analysis.AvgFlightsPerDay)); err != nil {
			return err
		}
	}
	if pattern := formatWeeklyPattern(analysis.WeeklyPattern, intFmt); pattern != "" {
		if _, err := fmt.Fprintf(writer, "Weekly pattern: %s\n", pattern); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// formatWeeklyPattern renders the weekday counts in Monday-first order,
// skipping days with no flights.
func formatWeeklyPattern(pattern map[string]int, intFmt string) string {
	var parts []string
	for _, day := range schema.WeekdayOrder {
		if count, ok := pattern[day]; ok {
			parts = append(parts, fmt.Sprintf("%s "+intFmt, day, count))
		}
	}
	return strings.Join(parts, ", ")
}
