package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// writeJSONResultsForRoutes marshals the schema.RouteAnalysis to JSON and writes it.
func writeJSONResultsForRoutes(w io.Writer, analysis schema.RouteAnalysis) error {
	// 1. Prepare the data structure for JSON with rank added
	type JSONRouteAnalysis struct {
		PopularRoutes      []schema.EnrichedRouteStats `json:"popular_routes"`
		TotalRoutes        int                         `json:"total_routes"`
		MostExpensiveRoute schema.RouteStats           `json:"most_expensive_route"`
		CheapestRoute      schema.RouteStats           `json:"cheapest_route"`
	}

	output := JSONRouteAnalysis{
		PopularRoutes:      schema.EnrichRoutes(analysis.PopularRoutes),
		TotalRoutes:        analysis.TotalRoutes,
		MostExpensiveRoute: analysis.MostExpensiveRoute,
		CheapestRoute:      analysis.CheapestRoute,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForRoutes writes the ranked route rows to a CSV writer.
func writeCSVResultsForRoutes(w *csv.Writer, analysis schema.RouteAnalysis, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"route",
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
	rows := limitRows(analysis.PopularRoutes, cfg.ResultLimit)
	for i, r := range rows {
		row := []string{
			strconv.Itoa(i + 1),                // Rank
			r.Route,                            // Route
			fmt.Sprintf(intFmt, r.FlightCount), // Flight Count
			fmtFloat(r.AvgPrice),               // Avg Price
			fmtFloat(r.MinPrice),               // Min Price
			fmtFloat(r.MaxPrice),               // Max Price
			formatOptionalFloat(r.DirectRatio, fmtFloat, ""), // Direct Ratio
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
