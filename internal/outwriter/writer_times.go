package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// writeJSONResultsForTimes marshals the schema.TimeAnalysis to JSON and writes it.
func writeJSONResultsForTimes(w io.Writer, analysis schema.TimeAnalysis) error {
	return writeJSON(w, analysis)
}

// writeCSVResultsForTimes writes the daily flight count rows to a CSV writer.
func writeCSVResultsForTimes(w *csv.Writer, analysis schema.TimeAnalysis, cfg *contract.Config, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"date",
		"flight_count",
		"weekday",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	dates := limitRows(sortedDateKeys(analysis.DailyFlightCounts), cfg.ResultLimit)
	for _, date := range dates {
		row := []string{
			date, // Date
			fmt.Sprintf(intFmt, analysis.DailyFlightCounts[date]), // Flight Count
			weekdayLabel(date), // Weekday
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// sortedDateKeys returns the day keys of a daily count map in ascending order.
func sortedDateKeys(counts map[string]int) []string {
	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// weekdayLabel derives the English weekday label from a YYYY-MM-DD key,
// or returns an empty string for keys that do not parse.
func weekdayLabel(date string) string {
	t, err := time.Parse(schema.DateKeyFormat, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}
