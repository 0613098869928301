package view

import (
	"github.com/farescope/farescope/core/stats"
	"github.com/farescope/farescope/schema"
)

// highDemandQuantile marks the per-route demand mean a route must reach to
// count as high demand.
const highDemandQuantile = 0.8

// BuildDemand computes demand pressure signals for a cleaned dataset. Flights
// without a demand score stay out of the demand aggregates entirely.
//
// 1. Average demand scores per route and threshold at the 80th percentile
// 2. Correlate price against demand over score-carrying flights
// 3. Build the hourly departure profile when departure times exist
func BuildDemand(flights []schema.Flight) schema.DemandAnalysis {
	analysis := schema.DemandAnalysis{HighDemandRoutes: make(map[string]float64)}

	routeScores := make(map[string][]float64)
	var prices, scores []float64
	for _, f := range flights {
		if f.DemandScore == nil {
			continue
		}
		prices = append(prices, f.Price)
		scores = append(scores, *f.DemandScore)
		if f.Route != "" {
			routeScores[f.Route] = append(routeScores[f.Route], *f.DemandScore)
		}
	}

	if len(routeScores) > 0 {
		routeMeans := make(map[string]float64, len(routeScores))
		meanVals := make([]float64, 0, len(routeScores))
		for route, vals := range routeScores {
			m := stats.Mean(vals)
			routeMeans[route] = m
			meanVals = append(meanVals, m)
		}
		analysis.DemandThreshold = stats.Quantile(meanVals, highDemandQuantile)
		for route, m := range routeMeans {
			if m >= analysis.DemandThreshold {
				analysis.HighDemandRoutes[route] = m
			}
		}
	}

	analysis.PriceDemandCorrelation = stats.Pearson(prices, scores)
	analysis.PeakTimes = buildPeakTimes(flights)
	return analysis
}

// buildPeakTimes profiles departures by hour. Returns nil when no flight
// carries a departure time.
func buildPeakTimes(flights []schema.Flight) *schema.PeakTimes {
	dist := make(map[int]int)
	for _, f := range flights {
		if f.Hour != nil {
			dist[*f.Hour]++
		}
	}
	if len(dist) == 0 {
		return nil
	}

	hours := sortedIntKeys(dist)
	busiest, quietest := hours[0], hours[0]
	for _, h := range hours[1:] {
		if dist[h] > dist[busiest] {
			busiest = h
		}
		if dist[h] < dist[quietest] {
			quietest = h
		}
	}
	return &schema.PeakTimes{
		BusiestHour:        busiest,
		QuietestHour:       quietest,
		HourlyDistribution: dist,
	}
}
