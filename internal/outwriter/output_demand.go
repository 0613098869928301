package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintDemandResults outputs the demand analysis, dispatching based on the output format configured.
func PrintDemandResults(analysis schema.DemandAnalysis, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForDemand(analysis, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForDemand(analysis, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for the demand view")
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDemandTable(w, analysis, cfg, fmtFloat, duration)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForDemand handles opening the file and calling the JSON writer.
func printJSONResultsForDemand(analysis schema.DemandAnalysis, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForDemand(w, analysis)
	}, "Wrote JSON")
}

// printCSVResultsForDemand handles opening the file and calling the CSV writer.
func printCSVResultsForDemand(analysis schema.DemandAnalysis, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForDemand(csvWriter, analysis, cfg, fmtFloat)
	}, "Wrote CSV")
}

// writeDemandTable writes the high-demand routes in a human-readable table.
func writeDemandTable(writer io.Writer, analysis schema.DemandAnalysis, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Route", "Demand", "Tier"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare Data Rows
	rows := limitRows(schema.EnrichDemandRoutes(analysis.HighDemandRoutes), cfg.ResultLimit)
	var data [][]string
	for _, r := range rows {
		tier := schema.GetDemandTier(r.DemandScore)
		if cfg.UseColors {
			tier = contract.GetColorTier(r.DemandScore)
		}
		row := []string{
			strconv.Itoa(r.Rank),    // Rank
			r.Route,                 // Route
			fmtFloat(r.DemandScore), // Demand Score
			tier,                    // Tier
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
	if _, err := fmt.Fprintf(writer, "Showing %d of %d high-demand routes (threshold: %s)\n", len(rows), len(analysis.HighDemandRoutes), fmtFloat(analysis.DemandThreshold)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Price-demand correlation: %s\n", fmtFloat(analysis.PriceDemandCorrelation)); err != nil {
		return err
	}
	if analysis.PeakTimes != nil {
		if _, err := fmt.Fprintf(writer, "Busiest hour: %s, quietest hour: %s\n",
			schema.FormatHour(analysis.PeakTimes.BusiestHour), schema.FormatHour(analysis.PeakTimes.QuietestHour)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
