package view

import (
	"time"

	"github.com/farescope/farescope/core/stats"
	"github.com/farescope/farescope/schema"
)

// BuildSummary computes the headline view over a cleaned dataset.
//
// 1. Count flights, distinct routes and distinct airlines
// 2. Find the first and last travel date
// 3. Aggregate the price envelope
func BuildSummary(flights []schema.Flight) schema.SummaryAnalysis {
	if len(flights) == 0 {
		return schema.SummaryAnalysis{}
	}

	routes := make(map[string]struct{})
	airlines := make(map[string]struct{})
	var first, last time.Time
	for i, f := range flights {
		if f.Route != "" {
			routes[f.Route] = struct{}{}
		}
		if f.Airline != "" {
			airlines[f.Airline] = struct{}{}
		}
		if i == 0 || f.Date.Before(first) {
			first = f.Date
		}
		if i == 0 || f.Date.After(last) {
			last = f.Date
		}
	}

	prices := pricesOf(flights)
	minPrice, maxPrice := stats.MinMax(prices)

	return schema.SummaryAnalysis{
		TotalFlights: len(flights),
		UniqueRoutes: len(routes),
		DateRange: schema.DateRange{
			Start: first.Format(schema.DateKeyFormat),
			End:   last.Format(schema.DateKeyFormat),
		},
		PriceRange: schema.PriceRange{
			Min:    minPrice,
			Max:    maxPrice,
			Avg:    stats.Mean(prices),
			Median: stats.Median(prices),
		},
		Airlines: len(airlines),
	}
}
