package schema

import "sort"

// Demand tier label constants.
const (
	VeryHighTier = "Very High" // Very high demand
	HighTier     = "High"      // High demand
	ModerateTier = "Moderate"  // Moderate demand
	LowTier      = "Low"       // Low demand
)

// EnrichedRouteStats adds presentation data to a RouteStats.
type EnrichedRouteStats struct {
	Rank int `json:"rank"`
	RouteStats
}

// EnrichedAirlineStats adds presentation data to an AirlineStats.
type EnrichedAirlineStats struct {
	Rank int `json:"rank"`
	AirlineStats
}

// EnrichedDemandRoute is a ranked high-demand route with its tier label.
type EnrichedDemandRoute struct {
	Rank        int     `json:"rank"`
	Route       string  `json:"route"`
	DemandScore float64 `json:"demand_score"`
	Tier        string  `json:"tier"`
}

// GetDemandTier returns a plain text label indicating the demand level
// for a route's mean demand score. This is the core logic used for
// CSV, JSON, and table printing.
func GetDemandTier(score float64) string {
	switch {
	case score >= 0.85:
		return VeryHighTier
	case score >= 0.7:
		return HighTier
	case score >= 0.5:
		return ModerateTier
	default:
		return LowTier
	}
}

// EnrichRoutes adds rank to a list of route results.
func EnrichRoutes(routes []RouteStats) []EnrichedRouteStats {
	output := make([]EnrichedRouteStats, len(routes))
	for i, r := range routes {
		output[i] = EnrichedRouteStats{
			Rank:       i + 1,
			RouteStats: r,
		}
	}
	return output
}

// EnrichAirlines adds rank to a list of airline results.
func EnrichAirlines(airlines []AirlineStats) []EnrichedAirlineStats {
	output := make([]EnrichedAirlineStats, len(airlines))
	for i, a := range airlines {
		output[i] = EnrichedAirlineStats{
			Rank:         i + 1,
			AirlineStats: a,
		}
	}
	return output
}

// EnrichDemandRoutes ranks high-demand routes by score descending,
// breaking ties by route name, and attaches tier labels.
func EnrichDemandRoutes(routes map[string]float64) []EnrichedDemandRoute {
	output := make([]EnrichedDemandRoute, 0, len(routes))
	for route, score := range routes {
		output = append(output, EnrichedDemandRoute{
			Route:       route,
			DemandScore: score,
			Tier:        GetDemandTier(score),
		})
	}
	sort.Slice(output, func(i, j int) bool {
		if output[i].DemandScore != output[j].DemandScore {
			return output[i].DemandScore > output[j].DemandScore
		}
		return output[i].Route < output[j].Route
	})
	for i := range output {
		output[i].Rank = i + 1
	}
	return output
}
