package view

import (
	"sort"

	"github.com/farescope/farescope/schema"
)

// popularRouteLimit caps the popular routes listing.
const popularRouteLimit = 10

// BuildRoute computes per-route aggregates for a cleaned dataset.
//
// 1. Bucket flights by route
// 2. Rank routes by flight count, then alphabetically for stable ties
// 3. Pick the most expensive and cheapest route by average price
func BuildRoute(flights []schema.Flight) schema.RouteAnalysis {
	analysis := schema.RouteAnalysis{PopularRoutes: []schema.RouteStats{}}
	groups := groupByRoute(flights)
	if len(groups) == 0 {
		return analysis
	}

	ranked := make([]schema.RouteStats, 0, len(groups))
	for route, group := range groups {
		count, avg, minPrice, maxPrice, directRatio := aggregatePrices(group)
		ranked = append(ranked, schema.RouteStats{
			Route:       route,
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
		return ranked[i].Route < ranked[j].Route
	})

	analysis.TotalRoutes = len(ranked)
	popular := ranked
	if len(popular) > popularRouteLimit {
		popular = popular[:popularRouteLimit]
	}
	analysis.PopularRoutes = popular

	// Price extremes scan every route, not just the popular listing.
	most, cheapest := ranked[0], ranked[0]
	for _, r := range ranked[1:] {
		if r.AvgPrice > most.AvgPrice {
			most = r
		}
		if r.AvgPrice < cheapest.AvgPrice {
			cheapest = r
		}
	}
	analysis.MostExpensiveRoute = most
	analysis.CheapestRoute = cheapest
	return analysis
}
