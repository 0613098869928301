package view

import (
	"github.com/farescope/farescope/core/stats"
	"github.com/farescope/farescope/schema"
)

// BuildPrice computes distribution statistics, calendar breakdowns and the
// weekend premium for a cleaned dataset.
//
// 1. Summarize the overall price distribution
// 2. Average prices per day of week and per month
// 3. Compare weekend against weekday averages
func BuildPrice(flights []schema.Flight) schema.PriceAnalysis {
	analysis := schema.PriceAnalysis{
		ByDayOfWeek: make(map[string]float64),
		ByMonth:     make(map[string]float64),
	}
	if len(flights) == 0 {
		return analysis
	}

	prices := pricesOf(flights)
	minPrice, maxPrice := stats.MinMax(prices)
	analysis.Statistics = schema.PriceStatistics{
		Mean:   stats.Mean(prices),
		Median: stats.Median(prices),
		Std:    stats.StdDev(prices),
		Min:    minPrice,
		Max:    maxPrice,
	}

	byDay := make(map[string][]float64)
	byMonth := make(map[string][]float64)
	var weekend, weekday []float64
	for _, f := range flights {
		byDay[f.DayOfWeek] = append(byDay[f.DayOfWeek], f.Price)
		byMonth[f.Month] = append(byMonth[f.Month], f.Price)
		if f.IsWeekend {
			weekend = append(weekend, f.Price)
		} else {
			weekday = append(weekday, f.Price)
		}
	}
	for day, vals := range byDay {
		analysis.ByDayOfWeek[day] = stats.Mean(vals)
	}
	for month, vals := range byMonth {
		analysis.ByMonth[month] = stats.Mean(vals)
	}

	analysis.WeekendPremium = buildWeekendPremium(weekend, weekday)
	return analysis
}

// buildWeekendPremium compares the two calendar halves. The premium percentage
// is only defined when the weekday average is positive.
func buildWeekendPremium(weekend, weekday []float64) schema.WeekendPremium {
	premium := schema.WeekendPremium{
		WeekendAvg: stats.Mean(weekend),
		WeekdayAvg: stats.Mean(weekday),
	}
	if premium.WeekdayAvg > 0 {
		pct := (premium.WeekendAvg - premium.WeekdayAvg) / premium.WeekdayAvg * 100
		premium.PremiumPercentage = &pct
	}
	return premium
}
