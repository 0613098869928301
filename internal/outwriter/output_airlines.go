package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/parquet"
	"github.com/farescope/farescope/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAirlineResults outputs the airline analysis, dispatching based on the output format configured.
func PrintAirlineResults(analysis schema.AirlineAnalysis, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForAirlines(analysis, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForAirlines(analysis, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForAirlines(analysis, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAirlineTable(w, analysis, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForAirlines handles opening the file and calling the JSON writer.
func printJSONResultsForAirlines(analysis schema.AirlineAnalysis, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForAirlines(w, analysis)
	}, "Wrote JSON")
}

// printCSVResultsForAirlines handles opening the file and calling the CSV writer.
func printCSVResultsForAirlines(analysis schema.AirlineAnalysis, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForAirlines(csvWriter, analysis, cfg, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// printParquetResultsForAirlines converts the ranked airlines to Parquet rows and writes them.
func printParquetResultsForAirlines(analysis schema.AirlineAnalysis, cfg *contract.Config) error {
	return writeParquetWithFile(cfg.OutputFile, func(path string) error {
		return parquet.WriteRankedAirlinesParquet(parquet.ConvertAirlineStats(analysis.AirlineRankings), path)
	})
}

// writeAirlineTable writes the ranked airlines in a human-readable table.
func writeAirlineTable(writer io.Writer, analysis schema.AirlineAnalysis, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Airline", "Flights", "Avg Price"}
	if cfg.Detail {
		headers = append(headers, "Min", "Max", "Direct")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	rows := limitRows(analysis.AirlineRankings, cfg.ResultLimit)
	var data [][]string
	for i, a := range rows {
		// Prepare the row data as a slice of strings
		row := []string{
			strconv.Itoa(i + 1), // Rank
			truncateLabel(a.Airline, GetMaxTableLabelWidth(cfg)), // Airline
			fmt.Sprintf(intFmt, a.FlightCount),                   // Flights
			fmtFloat(a.AvgPrice),                                 // Avg Price
		}
		if cfg.Detail {
			row = append(row,
				fmtFloat(a.MinPrice), // Min Price
				fmtFloat(a.MaxPrice), // Max Price
				formatOptionalFloat(a.DirectRatio, fmtFloat, "n/a"), // Direct Ratio
			)
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
	if analysis.Note != "" {
		if _, err := fmt.Fprintf(writer, "Note: %s\n", analysis.Note); err != nil {
			return err
		}
	} else {
		totalFlights := 0
		for _, a := range rows {
			totalFlights += a.FlightCount
		}
		if _, err := fmt.Fprintf(writer, "Showing top %d airlines (flights shown: %d)\n", len(rows), totalFlights); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "Most flights: %s, cheapest: %s, most expensive: %s\n",
			analysis.MostFlights, analysis.CheapestAirline, analysis.MostExpensiveAirline); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
