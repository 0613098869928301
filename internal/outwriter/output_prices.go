package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// PrintPriceResults outputs the price analysis, dispatching based on the output format configured.
func PrintPriceResults(analysis schema.PriceAnalysis, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForPrices(analysis, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForPrices(analysis, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for the price view")
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePriceText(w, analysis, cfg, fmtFloat, duration)
		}, "Wrote text"); err != nil {
			return fmt.Errorf("error writing text output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForPrices handles opening the file and calling the JSON writer.
func printJSONResultsForPrices(analysis schema.PriceAnalysis, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, analysis)
	}, "Wrote JSON")
}

// printCSVResultsForPrices handles opening the file and calling the CSV writer.
func printCSVResultsForPrices(analysis schema.PriceAnalysis, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, []string{"metric", "value"}, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForPrices(csvWriter, analysis, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeCSVResultsForPrices writes the price metrics as flat metric-value rows.
func writeCSVResultsForPrices(w *csv.Writer, analysis schema.PriceAnalysis, fmtFloat func(float64) string) error {
	stats := analysis.Statistics
	rows := [][]string{
		{"mean", fmtFloat(stats.Mean)},
		{"median", fmtFloat(stats.Median)},
		{"std", fmtFloat(stats.Std)},
		{"min", fmtFloat(stats.Min)},
		{"max", fmtFloat(stats.Max)},
		{"weekend_avg", fmtFloat(analysis.WeekendPremium.WeekendAvg)},
		{"weekday_avg", fmtFloat(analysis.WeekendPremium.WeekdayAvg)},
	}
	premium := ""
	if analysis.WeekendPremium.PremiumPercentage != nil {
		premium = fmtFloat(*analysis.WeekendPremium.PremiumPercentage)
	}
	rows = append(rows, []string{"premium_percentage", premium})

	// Per-label averages keyed in calendar order
	for _, day := range schema.WeekdayOrder {
		if avg, ok := analysis.ByDayOfWeek[day]; ok {
			rows = append(rows, []string{"day_" + strings.ToLower(day), fmtFloat(avg)})
		}
	}
	for _, month := range schema.MonthOrder {
		if avg, ok := analysis.ByMonth[month]; ok {
			rows = append(rows, []string{"month_" + strings.ToLower(month), fmtFloat(avg)})
		}
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writePriceText displays the price analysis in human-readable text format.
func writePriceText(w io.Writer, analysis schema.PriceAnalysis, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	title := "Price Analysis"
	if cfg.UseEmojis {
		title = "💰 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "==============\n"); err != nil {
		return err
	}
	stats := analysis.Statistics
	if _, err := fmt.Fprintf(w, "Mean: %s, median: %s, std: %s\n", fmtFloat(stats.Mean), fmtFloat(stats.Median), fmtFloat(stats.Std)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Min: %s, max: %s\n", fmtFloat(stats.Min), fmtFloat(stats.Max)); err != nil {
		return err
	}

	if len(analysis.ByDayOfWeek) > 0 {
		if _, err := fmt.Fprintf(w, "\nAvg price by day of week:\n"); err != nil {
			return err
		}
		for _, day := range schema.WeekdayOrder {
			if avg, ok := analysis.ByDayOfWeek[day]; ok {
				if _, err := fmt.Fprintf(w, "  %-9s %s\n", day, fmtFloat(avg)); err != nil {
					return err
				}
			}
		}
	}

	if len(analysis.ByMonth) > 0 {
		if _, err := fmt.Fprintf(w, "\nAvg price by month:\n"); err != nil {
			return err
		}
		for _, month := range schema.MonthOrder {
			if avg, ok := analysis.ByMonth[month]; ok {
				if _, err := fmt.Fprintf(w, "  %-9s %s\n", month, fmtFloat(avg)); err != nil {
					return err
				}
			}
		}
	}

	premium := analysis.WeekendPremium
	if premium.PremiumPercentage != nil {
		if _, err := fmt.Fprintf(w, "\nWeekend premium: weekend avg %s vs weekday avg %s (%+.*f%%)\n",
			fmtFloat(premium.WeekendAvg), fmtFloat(premium.WeekdayAvg), cfg.Precision, *premium.PremiumPercentage); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "\nWeekend premium: n/a (no weekday flights to compare)\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
