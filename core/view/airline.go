package view

import (
	"sort"

	"github.com/farescope/farescope/schema"
)

// BuildAirline computes per-airline aggregates for a cleaned dataset. When no
// flight names an airline the view carries an explanatory note instead of
// empty aggregates.
//
// 1. Bucket airline-carrying flights by airline
// 2. Rank airlines by flight count, then alphabetically for stable ties
// 3. Pick the volume leader and the price extremes
func BuildAirline(flights []schema.Flight) schema.AirlineAnalysis {
	analysis := schema.AirlineAnalysis{AirlineRankings: []schema.AirlineStats{}}

	groups := make(map[string][]schema.Flight)
	for _, f := range flights {
		if f.Airline == "" {
			continue
		}
		groups[f.Airline] = append(groups[f.Airline], f)
	}
	if len(groups) == 0 {
		if len(flights) > 0 {
			analysis.Note = schema.AirlineNoDataNote
		}
		return analysis
	}

	ranked := make([]schema.AirlineStats, 0, len(groups))
	for airline, group := range groups {
		count, avg, minPrice, maxPrice, directRatio := aggregatePrices(group)
		ranked = append(ranked, schema.AirlineStats{
			Airline:     airline,
			FlightCount: count,
			AvgPrice:    avg,
			MinPrice:    minPrice,
			MaxPrice:    maxPrice,
			DirectRatio: directRatio,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].FlightCount != ranked[j].FlightCount {
			return ranked[i].FlightCount > ranked[j].FlightCount
		}
		return ranked[i].Airline < ranked[j].Airline
	})

	analysis.AirlineRankings = ranked
	analysis.MostFlights = ranked[0].Airline

	cheapest, most := ranked[0], ranked[0]
	for _, a := range ranked[1:] {
		if a.AvgPrice < cheapest.AvgPrice {
			cheapest = a
		}
		if a.AvgPrice > most.AvgPrice {
			most = a
		}
	}
	analysis.CheapestAirline = cheapest.Airline
	analysis.MostExpensiveAirline = most.Airline
	return analysis
}
