package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// writeJSONResultsForDemand marshals the schema.DemandAnalysis to JSON and writes it.
func writeJSONResultsForDemand(w io.Writer, analysis schema.DemandAnalysis) error {
	// 1. Prepare the data structure for JSON with rank and tier added
	type JSONDemandAnalysis struct {
		HighDemandRoutes       []schema.EnrichedDemandRoute `json:"high_demand_routes"`
		DemandThreshold        float64                      `json:"demand_threshold"`
		PriceDemandCorrelation float64                      `json:"price_demand_correlation"`
		PeakTimes              *schema.PeakTimes            `json:"peak_times,omitempty"`
	}

	output := JSONDemandAnalysis{
		HighDemandRoutes:       schema.EnrichDemandRoutes(analysis.HighDemandRoutes),
		DemandThreshold:        analysis.DemandThreshold,
		PriceDemandCorrelation: analysis.PriceDemandCorrelation,
		PeakTimes:              analysis.PeakTimes,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeCSVResultsForDemand writes the ranked high-demand route rows to a CSV writer.
func writeCSVResultsForDemand(w *csv.Writer, analysis schema.DemandAnalysis, cfg *contract.Config, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"route",
		"demand_score",
		"tier",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	rows := limitRows(schema.EnrichDemandRoutes(analysis.HighDemandRoutes), cfg.ResultLimit)
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Rank),    // Rank
			r.Route,                 // Route
			fmtFloat(r.DemandScore), // Demand Score
			r.Tier,                  // Tier
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
