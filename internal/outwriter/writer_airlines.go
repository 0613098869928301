package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// writeJSONResultsForAirlines marshals the schema.AirlineAnalysis to JSON and writes it.
func writeJSONResultsForAirlines(w io.Writer, analysis schema.AirlineAnalysis) error {
	// 1. Prepare the data structure for JSON with rank added
	type JSONAirlineAnalysis struct {
		Note                 string                        `json:"note,omitempty"`
		AirlineRankings      []schema.EnrichedAirlineStats `json:"airline_rankings"`
		MostFlights          string                        `json:"most_flights"`
		CheapestAirline      string                        `json:"cheapest_airline"`
		MostExpensiveAirline string                        `json:"most_expensive_airline"`
	}

	output := JSONAirlineAnalysis{
		Note:                 analysis.Note,
		AirlineRankings:      schema.EnrichAirlines(analysis.AirlineRankings),
		MostFlights:          analysis.MostFlights,
		CheapestAirline:      analysis.CheapestAirline,
		MostExpensiveAirline: analysis.MostExpensiveAirline,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForAirlines writes the ranked airline rows to a CSV writer.
func writeCSVResultsForAirlines(w *csv.Writer, analysis schema.AirlineAnalysis, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"airline",
		"flight_count",
		"avg_price",
		"min_price",
		"max_price",
		"direct_ratio",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	rows := limitRows(analysis.AirlineRankings, cfg.ResultLimit)
	for i, a := range rows {
		row := []string{
			strconv.Itoa(i + 1),                // Rank
			a.Airline,                          // Airline
			fmt.Sprintf(intFmt, a.FlightCount), // Flight Count
			fmtFloat(a.AvgPrice),               // Avg Price
			fmtFloat(a.MinPrice),               // Min Price
			fmtFloat(a.MaxPrice),               // Max Price
			formatOptionalFloat(a.DirectRatio, fmtFloat, ""), // Direct Ratio
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
