package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farescope/farescope/schema"
)

func TestBuildAirlineRankings(t *testing.T) {
	flights := []schema.Flight{
		withAirline(mkFlight("SYD", "MEL", 150.0, saturday()), "Qantas"),
		withAirline(mkFlight("SYD", "MEL", 250.0, sunday()), "Qantas"),
		withAirline(mkFlight("SYD", "BNE", 120.0, saturday()), "Jetstar"),
	}

	analysis := BuildAirline(flights)
	assert.Empty(t, analysis.Note)
	if assert.Len(t, analysis.AirlineRankings, 2) {
		assert.Equal(t, "Qantas", analysis.AirlineRankings[0].Airline)
		assert.Equal(t, 2, analysis.AirlineRankings[0].FlightCount)
		assert.InDelta(t, 200.0, analysis.AirlineRankings[0].AvgPrice, 0.001)
		assert.Equal(t, "Jetstar", analysis.AirlineRankings[1].Airline)
	}
	assert.Equal(t, "Qantas", analysis.MostFlights)
	assert.Equal(t, "Jetstar", analysis.CheapestAirline)
	assert.Equal(t, "Qantas", analysis.MostExpensiveAirline)
}

func TestBuildAirlineTiesRankAlphabetically(t *testing.T) {
	flights := []schema.Flight{
		withAirline(mkFlight("SYD", "MEL", 150.0, saturday()), "Virgin Australia"),
		withAirline(mkFlight("SYD", "BNE", 200.0, saturday()), "Jetstar"),
	}

	analysis := BuildAirline(flights)
	if assert.Len(t, analysis.AirlineRankings, 2) {
		assert.Equal(t, "Jetstar", analysis.AirlineRankings[0].Airline)
		assert.Equal(t, "Virgin Australia", analysis.AirlineRankings[1].Airline)
	}
	assert.Equal(t, "Jetstar", analysis.MostFlights)
}

func TestBuildAirlinePickerTieKeepsRankedOrder(t *testing.T) {
	flights := []schema.Flight{
		withAirline(mkFlight("SYD", "MEL", 200.0, saturday()), "Rex"),
		withAirline(mkFlight("SYD", "BNE", 200.0, saturday()), "Jetstar"),
	}

	analysis := BuildAirline(flights)
	assert.Equal(t, "Jetstar", analysis.CheapestAirline)
	assert.Equal(t, "Jetstar", analysis.MostExpensiveAirline)
}

func TestBuildAirlineDirectRatio(t *testing.T) {
	flights := []schema.Flight{
		withDirect(withAirline(mkFlight("SYD", "MEL", 150.0, saturday()), "Qantas"), true),
		withAirline(mkFlight("SYD", "MEL", 180.0, sunday()), "Qantas"),
		withAirline(mkFlight("SYD", "BNE", 120.0, saturday()), "Jetstar"),
	}

	analysis := BuildAirline(flights)
	byAirline := make(map[string]schema.AirlineStats)
	for _, a := range analysis.AirlineRankings {
		byAirline[a.Airline] = a
	}
	if assert.NotNil(t, byAirline["Qantas"].DirectRatio) {
		assert.InDelta(t, 1.0, *byAirline["Qantas"].DirectRatio, 0.001)
	}
	assert.Nil(t, byAirline["Jetstar"].DirectRatio)
}

func TestBuildAirlineNoDataNote(t *testing.T) {
	flights := []schema.Flight{
		mkFlight("SYD", "MEL", 150.0, saturday()),
		mkFlight("SYD", "MEL", 180.0, sunday()),
	}

	analysis := BuildAirline(flights)
	assert.Equal(t, schema.AirlineNoDataNote, analysis.Note)
	assert.Empty(t, analysis.AirlineRankings)
	assert.Empty(t, analysis.MostFlights)
}

func TestBuildAirlineEmptyDatasetHasNoNote(t *testing.T) {
	analysis := BuildAirline(nil)
	assert.Empty(t, analysis.Note)
	assert.Empty(t, analysis.AirlineRankings)
}
