package core

import (
	"sort"
	"time"

	"github.com/farescope/farescope/schema"
)

// trendStableBand is the percent change within which a trend reads as stable.
const trendStableBand = 2.0

// buildTrend computes the per-day average price series, oldest day first,
// and classifies the first-to-last change as up, down or stable. Flights
// outside the route filter are ignored when a route is set.
func buildTrend(flights []schema.Flight, route string) schema.TrendResult {
	type dayTotal struct {
		sum   float64
		count int
	}

	days := make(map[string]*dayTotal)
	for _, f := range flights {
		if route != "" && f.Route != route {
			continue
		}
		key := f.Date.Format(schema.DateKeyFormat)
		total := days[key]
		if total == nil {
			total = &dayTotal{}
			days[key] = total
		}
		total.sum += f.Price
		total.count++
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]schema.TrendPoint, 0, len(keys))
	for _, k := range keys {
		total := days[k]
		date, _ := time.Parse(schema.DateKeyFormat, k)
		points = append(points, schema.TrendPoint{
			Date:        date,
			AvgPrice:    total.sum / float64(total.count),
			FlightCount: total.count,
		})
	}

	result := schema.TrendResult{
		Points:    points,
		Direction: schema.TrendStable,
		Route:     route,
	}

	// A single day has no first-to-last comparison and stays stable
	if len(points) >= 2 {
		first := points[0].AvgPrice
		last := points[len(points)-1].AvgPrice
		result.ChangePercent = (last - first) / first * 100
		switch {
		case result.ChangePercent > trendStableBand:
			result.Direction = schema.TrendUp
		case result.ChangePercent < -trendStableBand:
			result.Direction = schema.TrendDown
		}
	}
	return result
}
