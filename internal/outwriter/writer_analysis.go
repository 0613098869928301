package outwriter

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// writeCSVResultsForAnalysis writes one row per cleaned flight to a CSV writer.
// The flight rows are the only flat projection of a full result, so CSV and
// Parquet share this shape while JSON carries the whole document.
func writeCSVResultsForAnalysis(w *csv.Writer, result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"price",
		"origin",
		"destination",
		"route",
		"date",
		"day_of_week",
		"month",
		"is_weekend",
		"airline",
		"direct",
		"duration_minutes",
		"demand_score",
		"hour",
		"source",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	flights := limitRows(result.Flights, cfg.ResultLimit)
	for _, f := range flights {
		row := []string{
			fmtFloat(f.Price),                     // Price
			f.Origin,                              // Origin
			f.Destination,                         // Destination
			f.Route,                               // Route
			f.DateKey(),                           // Date
			f.DayOfWeek,                           // Day of Week
			f.Month,                               // Month
			strconv.FormatBool(f.IsWeekend),       // Is Weekend
			f.Airline,                             // Airline
			formatOptionalBool(f.Direct),          // Direct
			formatOptionalInt(f.Duration, intFmt), // Duration Minutes
			formatOptionalFloat(f.DemandScore, fmtFloat, ""), // Demand Score
			formatOptionalInt(f.Hour, intFmt),              // Hour
			f.Source,                                       // Source
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// formatOptionalBool renders a bool pointer, empty when absent.
func formatOptionalBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

// formatOptionalInt renders an int pointer, empty when absent.
func formatOptionalInt(v *int, intFmt string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(intFmt, *v)
}
