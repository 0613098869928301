package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// writeJSONResultsForTrends marshals the schema.TrendResult to JSON and writes it.
func writeJSONResultsForTrends(w io.Writer, result schema.TrendResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForTrends writes the daily trend rows to a CSV writer.
func writeCSVResultsForTrends(w *csv.Writer, result schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"date",
		"avg_price",
		"flight_count",
		"route",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	points := limitRows(result.Points, cfg.ResultLimit)
	for _, p := range points {
		row := []string{
			p.Date.Format(schema.DateKeyFormat), // Date
			fmtFloat(p.AvgPrice),                // Avg Price
			fmt.Sprintf(intFmt, p.FlightCount),  // Flight Count
			result.Route,                        // Route filter, empty for all routes
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
