package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// PrintSummaryResults outputs the summary metrics, dispatching based on the output format configured.
func PrintSummaryResults(metrics schema.SummaryMetrics, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSummary(metrics, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSummary(metrics, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for the summary view")
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryText(w, metrics, cfg, fmtFloat, intFmt, duration)
		}, "Wrote text"); err != nil {
			return fmt.Errorf("error writing text output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForSummary handles opening the file and calling the JSON writer.
func printJSONResultsForSummary(metrics schema.SummaryMetrics, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, metrics)
	}, "Wrote JSON")
}

// printCSVResultsForSummary handles opening the file and calling the CSV writer.
func printCSVResultsForSummary(metrics schema.SummaryMetrics, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, []string{"metric", "value"}, func(csvWriter *csv.Writer) error {
			rows := [][]string{
				{"total_flights", fmt.Sprintf(intFmt, metrics.TotalFlights)},
				{"unique_routes", fmt.Sprintf(intFmt, metrics.UniqueRoutes)},
				{"airlines", fmt.Sprintf(intFmt, metrics.Airlines)},
				{"avg_price", fmtFloat(metrics.AvgPrice)},
				{"min_price", fmtFloat(metrics.PriceRange.Min)},
				{"max_price", fmtFloat(metrics.PriceRange.Max)},
				{"date_start", metrics.DateRange.Start},
				{"date_end", metrics.DateRange.End},
			}
			for _, row := range rows {
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeSummaryText displays the summary metrics in human-readable text format.
func writeSummaryText(w io.Writer, metrics schema.SummaryMetrics, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	title := "Flight Data Summary"
	if cfg.UseEmojis {
		title = "✈️  " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "===================\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total flights: "+intFmt+"\n", metrics.TotalFlights); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Unique routes: "+intFmt+"\n", metrics.UniqueRoutes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Airlines: "+intFmt+"\n", metrics.Airlines); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg price: %s\n", fmtFloat(metrics.AvgPrice)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Price range: %s to %s\n", fmtFloat(metrics.PriceRange.Min), fmtFloat(metrics.PriceRange.Max)); err != nil {
		return err
	}
	if metrics.DateRange.Start != "" {
		if _, err := fmt.Fprintf(w, "Date range: %s to %s\n", metrics.DateRange.Start, metrics.DateRange.End); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
