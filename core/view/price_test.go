package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farescope/farescope/schema"
)

func TestBuildPriceStatistics(t *testing.T) {
	flights := []schema.Flight{
		mkFlight("SYD", "MEL", 150.0, saturday()),
		mkFlight("SYD", "MEL", 180.0, sunday()),
	}

	analysis := BuildPrice(flights)
	assert.InDelta(t, 165.0, analysis.Statistics.Mean, 0.001)
	assert.InDelta(t, 165.0, analysis.Statistics.Median, 0.001)
	assert.InDelta(t, 15.0, analysis.Statistics.Std, 0.001)
	assert.InDelta(t, 150.0, analysis.Statistics.Min, 0.001)
	assert.InDelta(t, 180.0, analysis.Statistics.Max, 0.001)
}

func TestBuildPriceCalendarBreakdowns(t *testing.T) {
	flights := []schema.Flight{
		mkFlight("SYD", "MEL", 150.0, saturday()),
		mkFlight("SYD", "MEL", 170.0, saturday()),
		mkFlight("SYD", "MEL", 200.0, monday()),
	}

	analysis := BuildPrice(flights)
	assert.Len(t, analysis.ByDayOfWeek, 2)
	assert.InDelta(t, 160.0, analysis.ByDayOfWeek["Saturday"], 0.001)
	assert.InDelta(t, 200.0, analysis.ByDayOfWeek["Monday"], 0.001)
	assert.Len(t, analysis.ByMonth, 1)
	assert.InDelta(t, 173.333, analysis.ByMonth["November"], 0.001)
}

func TestBuildPriceWeekendPremium(t *testing.T) {
	flights := []schema.Flight{
		mkFlight("SYD", "MEL", 180.0, saturday()),
		mkFlight("SYD", "MEL", 150.0, monday()),
	}

	analysis := BuildPrice(flights)
	premium := analysis.WeekendPremium
	assert.InDelta(t, 180.0, premium.WeekendAvg, 0.001)
	assert.InDelta(t, 150.0, premium.WeekdayAvg, 0.001)
	if assert.NotNil(t, premium.PremiumPercentage) {
		assert.InDelta(t, 20.0, *premium.PremiumPercentage, 0.001)
	}
}

func TestBuildPriceWeekendPremiumUndefinedWithoutWeekdays(t *testing.T) {
	flights := []schema.Flight{
		mkFlight("SYD", "MEL", 180.0, saturday()),
		mkFlight("SYD", "MEL", 190.0, sunday()),
	}

	analysis := BuildPrice(flights)
	assert.InDelta(t, 185.0, analysis.WeekendPremium.WeekendAvg, 0.001)
	assert.Zero(t, analysis.WeekendPremium.WeekdayAvg)
	assert.Nil(t, analysis.WeekendPremium.PremiumPercentage)
}

func TestBuildPriceEmpty(t *testing.T) {
	analysis := BuildPrice(nil)
	assert.Zero(t, analysis.Statistics.Mean)
	assert.Empty(t, analysis.ByDayOfWeek)
	assert.Empty(t, analysis.ByMonth)
	assert.Nil(t, analysis.WeekendPremium.PremiumPercentage)
}
