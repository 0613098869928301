package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/parquet"
	"github.com/farescope/farescope/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAnalysisResults outputs the full analysis result, dispatching based on the output format configured.
func PrintAnalysisResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForAnalysis(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForAnalysis(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForAnalysis(result, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable report
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisText(w, result, cfg, fmtFloat, intFmt, duration)
		}, "Wrote report"); err != nil {
			return fmt.Errorf("error writing report output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForAnalysis handles opening the file and calling the JSON writer.
func printJSONResultsForAnalysis(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// printCSVResultsForAnalysis handles opening the file and calling the CSV writer.
func printCSVResultsForAnalysis(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForAnalysis(csvWriter, result, cfg, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// printParquetResultsForAnalysis converts the cleaned flights to Parquet rows and writes them.
func printParquetResultsForAnalysis(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeParquetWithFile(cfg.OutputFile, func(path string) error {
		return parquet.WriteFlightsParquet(parquet.ConvertFlights(result.Flights), path)
	})
}

// writeAnalysisText displays the full analysis as a sectioned report.
func writeAnalysisText(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	title := "Flight Market Analysis"
	if cfg.UseEmojis {
		title = "📊 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "======================\n"); err != nil {
		return err
	}
	if search := formatSearchParams(result.SearchParams); search != "" {
		if _, err := fmt.Fprintf(w, "Search: %s\n", search); err != nil {
			return err
		}
	}

	// Summary section
	summary := result.Summary
	if _, err := fmt.Fprintf(w, "\nTotal flights: "+intFmt+", unique routes: "+intFmt+", airlines: "+intFmt+"\n",
		summary.TotalFlights, summary.UniqueRoutes, summary.Airlines); err != nil {
		return err
	}
	if summary.DateRange.Start != "" {
		if _, err := fmt.Fprintf(w, "Date range: %s to %s\n", summary.DateRange.Start, summary.DateRange.End); err != nil {
			return err
		}
	}

	// Price section
	stats := result.PriceAnalysis.Statistics
	if _, err := fmt.Fprintf(w, "Prices: mean %s, median %s, std %s, min %s, max %s\n",
		fmtFloat(stats.Mean), fmtFloat(stats.Median), fmtFloat(stats.Std), fmtFloat(stats.Min), fmtFloat(stats.Max)); err != nil {
		return err
	}
	if premium := result.PriceAnalysis.WeekendPremium.PremiumPercentage; premium != nil {
		if _, err := fmt.Fprintf(w, "Weekend premium: %+.*f%%\n", cfg.Precision, *premium); err != nil {
			return err
		}
	}

	// Route section
	if _, err := fmt.Fprintf(w, "\nTop routes (%d total):\n", result.RouteAnalysis.TotalRoutes); err != nil {
		return err
	}
	if err := writeAnalysisRouteTable(w, result.RouteAnalysis.PopularRoutes, cfg, fmtFloat, intFmt); err != nil {
		return err
	}

	// Time section
	times := result.TimeAnalysis
	if times.BusiestDay != "" {
		if _, err := fmt.Fprintf(w, "Busiest day: %s, quietest day: %s, avg flights/day: %s\n",
			times.BusiestDay, times.QuietestDay, fmtFloat(times.AvgFlightsPerDay)); err != nil {
			return err
		}
	}

	// Demand section
	demand := result.DemandAnalysis
	if _, err := fmt.Fprintf(w, "High-demand routes: "+intFmt+" (threshold %s), price-demand correlation: %s\n",
		len(demand.HighDemandRoutes), fmtFloat(demand.DemandThreshold), fmtFloat(demand.PriceDemandCorrelation)); err != nil {
		return err
	}
	if demand.PeakTimes != nil {
		if _, err := fmt.Fprintf(w, "Peak departures: busiest hour %s, quietest hour %s\n",
			schema.FormatHour(demand.PeakTimes.BusiestHour), schema.FormatHour(demand.PeakTimes.QuietestHour)); err != nil {
			return err
		}
	}

	// Airline section
	airlines := result.AirlineAnalysis
	if airlines.Note != "" {
		if _, err := fmt.Fprintf(w, "Airlines: %s\n", airlines.Note); err != nil {
			return err
		}
	} else if len(airlines.AirlineRankings) > 0 {
		if _, err := fmt.Fprintf(w, "Airlines: most flights %s, cheapest %s, most expensive %s\n",
			airlines.MostFlights, airlines.CheapestAirline, airlines.MostExpensiveAirline); err != nil {
			return err
		}
	}

	if len(result.MarketData) > 0 {
		if _, err := fmt.Fprintf(w, "Market context loaded ("+intFmt+" entries)\n", len(result.MarketData)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nProcessed at %s\n", result.ProcessingTimestamp.Format("2006-01-02 15:04:05")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeAnalysisRouteTable renders the compact route table embedded in the full report.
func writeAnalysisRouteTable(writer io.Writer, routes []schema.RouteStats, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Route", "Flights", "Avg Price"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	rows := limitRows(routes, cfg.ResultLimit)
	var data [][]string
	for i, r := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),                // Rank
			r.Route,                            // Route
			fmt.Sprintf(intFmt, r.FlightCount), // Flights
			fmtFloat(r.AvgPrice),               // Avg Price
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatSearchParams renders the non-empty search parameters on one line.
func formatSearchParams(params schema.SearchParams) string {
	var parts []string
	if params.Origin != "" && params.Destination != "" {
		parts = append(parts, schema.RouteKey(params.Origin, params.Destination))
	} else if params.Origin != "" {
		parts = append(parts, "from "+params.Origin)
	} else if params.Destination != "" {
		parts = append(parts, "to "+params.Destination)
	}
	if params.DepartureDate != "" {
		parts = append(parts, "departing "+params.DepartureDate)
	}
	if params.ReturnDate != "" {
		parts = append(parts, "returning "+params.ReturnDate)
	}
	if params.Passengers > 1 {
		parts = append(parts, fmt.Sprintf("%d passengers", params.Passengers))
	}
	return strings.Join(parts, ", ")
}
