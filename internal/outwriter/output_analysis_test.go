package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysisResult() *schema.AnalysisResult {
	direct := true
	duration := 360
	demand := 0.82
	hour := 9

	result := schema.NewEmptyResult()
	result.SearchParams = schema.SearchParams{
		Origin:      "JFK",
		Destination: "LAX",
	}
	result.Summary = schema.SummaryAnalysis{
		TotalFlights: 2,
		UniqueRoutes: 1,
		DateRange: schema.DateRange{
			Start: "2025-06-01",
			End:   "2025-06-02",
		},
		PriceRange: schema.PriceRange{
			Min:    250.0,
			Max:    312.5,
			Avg:    281.25,
			Median: 281.25,
		},
		Airlines: 1,
	}
	result.PriceAnalysis = samplePriceAnalysis()
	result.RouteAnalysis = sampleRouteAnalysis()
	result.TimeAnalysis = sampleTimeAnalysis()
	result.DemandAnalysis = sampleDemandAnalysis()
	result.AirlineAnalysis = sampleAirlineAnalysis()
	result.ProcessingTimestamp = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	result.TotalFlights = 2
	result.Flights = []schema.Flight{
		{
			Price:       250.0,
			Origin:      "JFK",
			Destination: "LAX",
			Route:       "JFK-LAX",
			Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			DayOfWeek:   "Sunday",
			Month:       "June",
			IsWeekend:   true,
			Airline:     "Delta",
			Direct:      &direct,
			Duration:    &duration,
			DemandScore: &demand,
			Hour:        &hour,
			Source:      "api",
		},
		{
			Price:       312.5,
			Origin:      "JFK",
			Destination: "LAX",
			Route:       "JFK-LAX",
			Date:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			DayOfWeek:   "Monday",
			Month:       "June",
			IsWeekend:   false,
		},
	}
	return result
}

func TestWriteAnalysisText(t *testing.T) {
	result := sampleAnalysisResult()
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		ResultLimit:  25,
		CacheBackend: schema.SQLiteBackend,
	}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	duration := 100 * time.Millisecond
	err := writeAnalysisText(&buf, result, cfg, fmtFloat, intFmt, duration)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Flight Market Analysis")
	assert.Contains(t, output, "Search: JFK-LAX")
	assert.Contains(t, output, "Total flights: 2, unique routes: 1, airlines: 1")
	assert.Contains(t, output, "Date range: 2025-06-01 to 2025-06-02")
	assert.Contains(t, output, "Prices: mean 301.75, median 289.00, std 74.20, min 99.00, max 840.00")
	assert.Contains(t, output, "Weekend premium: +12.50%")
	assert.Contains(t, output, "Top routes (12 total):")
	assert.Contains(t, output, "JFK-LAX")
	assert.Contains(t, output, "Busiest day: 2025-06-02, quietest day: 2025-06-01")
	assert.Contains(t, output, "High-demand routes: 2 (threshold 0.70), price-demand correlation: 0.45")
	assert.Contains(t, output, "Peak departures: busiest hour 17:00, quietest hour 04:00")
	assert.Contains(t, output, "Airlines: most flights Delta, cheapest Delta, most expensive United")
	assert.Contains(t, output, "Processed at 2025-06-15 10:30:00")
	assert.Contains(t, output, "Analysis completed in 100ms")
}

func TestWriteAnalysisTextMarketData(t *testing.T) {
	result := sampleAnalysisResult()
	result.MarketData = map[string]any{
		"jet_fuel_usd": 2.31,
		"quarter":      "Q2",
	}
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		ResultLimit:  25,
		CacheBackend: schema.SQLiteBackend,
	}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeAnalysisText(&buf, result, cfg, fmtFloat, intFmt, time.Second)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Market context loaded (2 entries)")
}

func TestWriteCSVResultsForAnalysis(t *testing.T) {
	result := sampleAnalysisResult()
	cfg := &contract.Config{Precision: 2, ResultLimit: 25}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForAnalysis(w, result, cfg, fmtFloat, intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 flights

	assert.Contains(t, lines[0], "price")
	assert.Contains(t, lines[0], "route")
	assert.Contains(t, lines[0], "demand_score")
	assert.Equal(t, "250.00,JFK,LAX,JFK-LAX,2025-06-01,Sunday,June,true,Delta,true,360,0.82,9,api", lines[1])
	// Optional fields stay empty when the record never carried them
	assert.Equal(t, "312.50,JFK,LAX,JFK-LAX,2025-06-02,Monday,June,false,,,,,,", lines[2])
}

func TestFormatSearchParams(t *testing.T) {
	tests := []struct {
		name     string
		params   schema.SearchParams
		expected string
	}{
		{
			name: "full route",
			params: schema.SearchParams{
				Origin:      "JFK",
				Destination: "LAX",
			},
			expected: "JFK-LAX",
		},
		{
			name: "origin only",
			params: schema.SearchParams{
				Origin: "JFK",
			},
			expected: "from JFK",
		},
		{
			name: "destination only",
			params: schema.SearchParams{
				Destination: "LAX",
			},
			expected: "to LAX",
		},
		{
			name: "dates and passengers",
			params: schema.SearchParams{
				Origin:        "JFK",
				Destination:   "LAX",
				DepartureDate: "2025-06-01",
				ReturnDate:    "2025-06-08",
				Passengers:    2,
			},
			expected: "JFK-LAX, departing 2025-06-01, returning 2025-06-08, 2 passengers",
		},
		{
			name: "single passenger stays implicit",
			params: schema.SearchParams{
				Origin:      "JFK",
				Destination: "LAX",
				Passengers:  1,
			},
			expected: "JFK-LAX",
		},
		{
			name:     "empty params",
			params:   schema.SearchParams{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatSearchParams(tt.params))
		})
	}
}

func TestFormatOptionalBool(t *testing.T) {
	direct := false
	assert.Equal(t, "false", formatOptionalBool(&direct))
	assert.Equal(t, "", formatOptionalBool(nil))
}

func TestFormatOptionalInt(t *testing.T) {
	_, intFmt := createFormatters(2)
	minutes := 360
	assert.Equal(t, "360", formatOptionalInt(&minutes, intFmt))
	assert.Equal(t, "", formatOptionalInt(nil, intFmt))
}

func TestPrintAnalysisResultsJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "analysis.json")

	result := sampleAnalysisResult()
	cfg := &contract.Config{
		Output:      schema.JSONOut,
		OutputFile:  tmpFile,
		Precision:   2,
		ResultLimit: 25,
	}

	err := PrintAnalysisResults(result, cfg, 50*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	var parsed map[string]any
	err = json.Unmarshal(content, &parsed)
	require.NoError(t, err)

	assert.Contains(t, parsed, "summary")
	assert.Contains(t, parsed, "price_analysis")
	assert.Contains(t, parsed, "route_analysis")
	assert.Contains(t, parsed, "flights")

	// The JSON document carries every flight, not a display-capped slice
	flights, ok := parsed["flights"].([]any)
	require.True(t, ok)
	assert.Len(t, flights, 2)
}

func TestPrintAnalysisResultsParquetFile(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "analysis.parquet")

	result := sampleAnalysisResult()
	cfg := &contract.Config{
		Output:      schema.ParquetOut,
		OutputFile:  tmpFile,
		Precision:   2,
		ResultLimit: 25,
	}

	err := PrintAnalysisResults(result, cfg, 50*time.Millisecond)
	require.NoError(t, err)

	info, err := os.Stat(tmpFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
