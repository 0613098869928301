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

// PrintRouteResults outputs the route analysis, dispatching based on the output format configured.
func PrintRouteResults(analysis schema.RouteAnalysis, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRoutes(analysis, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForRoutes(analysis, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForRoutes(analysis, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRouteTable(w, analysis, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForRoutes handles opening the file and calling the JSON writer.
func printJSONResultsForRoutes(analysis schema.RouteAnalysis, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRoutes(w, analysis)
	}, "Wrote JSON")
}

// printCSVResultsForRoutes handles opening the file and calling the CSV writer.
func printCSVResultsForRoutes(analysis schema.RouteAnalysis, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRoutes(csvWriter, analysis, cfg, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// printParquetResultsForRoutes converts the ranked routes to Parquet rows and writes them.
func printParquetResultsForRoutes(analysis schema.RouteAnalysis, cfg *contract.Config) error {
	return writeParquetWithFile(cfg.OutputFile, func(path string) error {
		return parquet.WriteRankedRoutesParquet(parquet.ConvertRouteStats(analysis.PopularRoutes), path)
	})
}

// writeRouteTable writes the ranked routes in a human-readable table.
func writeRouteTable(writer io.Writer, analysis schema.RouteAnalysis, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Route", "Flights", "Avg Price"}
	if cfg.Detail {
		headers = append(headers, "Min", "Max", "Direct")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	rows := limitRows(analysis.PopularRoutes, cfg.ResultLimit)
	var data [][]string
	for i, r := range rows {
		// Prepare the row data as a slice of strings
		row := []string{
			strconv.Itoa(i + 1),                // Rank
			r.Route,                            // Route
			fmt.Sprintf(intFmt, r.FlightCount), // Flights
			fmtFloat(r.AvgPrice),               // Avg Price
		}
		if cfg.Detail {
			row = append(row,
				fmtFloat(r.MinPrice), // Min Price
				fmtFloat(r.MaxPrice), // Max Price
				formatOptionalFloat(r.DirectRatio, fmtFloat, "n/a"), // Direct Ratio
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
	totalFlights := 0
	for _, r := range rows {
		totalFlights += r.FlightCount
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d routes (total routes: %d, flights shown: %d)\n", len(rows), analysis.TotalRoutes, totalFlights); err != nil {
		return err
	}
	if analysis.TotalRoutes > 0 {
		if _, err := fmt.Fprintf(writer, "Most expensive: %s (avg %s), cheapest: %s (avg %s)\n",
			analysis.MostExpensiveRoute.Route, fmtFloat(analysis.MostExpensiveRoute.AvgPrice),
			analysis.CheapestRoute.Route, fmtFloat(analysis.CheapestRoute.AvgPrice)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
