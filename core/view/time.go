package view

import (
	"github.com/farescope/farescope/core/stats"
	"github.com/farescope/farescope/schema"
)

// BuildTime computes temporal flight volume patterns for a cleaned dataset.
//
// 1. Count flights per travel date and per day of week
// 2. Pick the busiest and quietest dates, earliest date winning ties
// 3. Average the per-date counts
func BuildTime(flights []schema.Flight) schema.TimeAnalysis {
	analysis := schema.TimeAnalysis{
		DailyFlightCounts: make(map[string]int),
		WeeklyPattern:     make(map[string]int),
	}
	if len(flights) == 0 {
		return analysis
	}

	for _, f := range flights {
		analysis.DailyFlightCounts[f.DateKey()]++
		analysis.WeeklyPattern[f.DayOfWeek]++
	}

	days := sortedStringKeys(analysis.DailyFlightCounts)
	busiest, quietest := days[0], days[0]
	counts := make([]float64, 0, len(days))
	for _, day := range days {
		count := analysis.DailyFlightCounts[day]
		if count > analysis.DailyFlightCounts[busiest] {
			busiest = day
		}
		if count < analysis.DailyFlightCounts[quietest] {
			quietest = day
		}
		counts = append(counts, float64(count))
	}

	analysis.BusiestDay = busiest
	analysis.QuietestDay = quietest
	analysis.AvgFlightsPerDay = stats.Mean(counts)
	return analysis
}
