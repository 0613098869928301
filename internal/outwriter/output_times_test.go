package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTimeAnalysis() schema.TimeAnalysis {
	return schema.TimeAnalysis{
		DailyFlightCounts: map[string]int{
			"2025-06-02": 14,
			"2025-06-01": 9,
			"2025-06-03": 11,
		},
		WeeklyPattern: map[string]int{
			"Sunday":  9,
			"Monday":  14,
			"Tuesday": 11,
		},
		BusiestDay:       "2025-06-02",
		QuietestDay:      "2025-06-01",
		AvgFlightsPerDay: 11.33,
	}
}

func TestWriteTimeTable(t *testing.T) {
	analysis := sampleTimeAnalysis()
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		ResultLimit:  25,
		CacheBackend: schema.SQLiteBackend,
	}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	duration := 100 * time.Millisecond
	err := writeTimeTable(&buf, analysis, cfg, fmtFloat, intFmt, duration)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "2025-06-01")
	assert.Contains(t, output, "2025-06-02")
	assert.Contains(t, output, "2025-06-03")
	assert.Contains(t, output, "Showing 3 of 3 days (flights shown: 34)")
	assert.Contains(t, output, "Busiest day: 2025-06-02, quietest day: 2025-06-01, avg flights/day: 11.33")
	assert.Contains(t, output, "Weekly pattern: Monday 14, Tuesday 11, Sunday 9")
	assert.Contains(t, output, "Analysis completed in 100ms")
}

func TestWriteTimeTableDetail(t *testing.T) {
	analysis := sampleTimeAnalysis()
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		ResultLimit:  25,
		Detail:       true,
		CacheBackend: schema.SQLiteBackend,
	}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeTimeTable(&buf, analysis, cfg, fmtFloat, intFmt, time.Second)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Weekday")
	// 2025-06-01 was a Sunday
	assert.Contains(t, output, "Sunday")
}

func TestWriteTimeTableLimit(t *testing.T) {
	analysis := sampleTimeAnalysis()
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		ResultLimit:  2,
		CacheBackend: schema.SQLiteBackend,
	}
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeTimeTable(&buf, analysis, cfg, fmtFloat, intFmt, time.Second)
	require.NoError(t, err)

	output := buf.String()
	// Days render in ascending order, so the cap drops the latest day
	assert.Contains(t, output, "2025-06-01")
	assert.Contains(t, output, "2025-06-02")
	assert.NotContains(t, output, "2025-06-03")
	assert.Contains(t, output, "Showing 2 of 3 days (flights shown: 23)")
}

func TestWriteJSONResultsForTimes(t *testing.T) {
	analysis := sampleTimeAnalysis()

	var buf bytes.Buffer
	err := writeJSONResultsForTimes(&buf, analysis)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", result["busiest_day"])
	assert.Equal(t, "2025-06-01", result["quietest_day"])

	counts, ok := result["daily_flight_counts"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(14), counts["2025-06-02"])
}

func TestWriteCSVResultsForTimes(t *testing.T) {
	analysis := sampleTimeAnalysis()
	cfg := &contract.Config{Precision: 2, ResultLimit: 25}
	_, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForTimes(w, analysis, cfg, intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 rows

	assert.Equal(t, "date,flight_count,weekday", lines[0])
	assert.Equal(t, "2025-06-01,9,Sunday", lines[1])
	assert.Equal(t, "2025-06-02,14,Monday", lines[2])
	assert.Equal(t, "2025-06-03,11,Tuesday", lines[3])
}

func TestSortedDateKeys(t *testing.T) {
	counts := map[string]int{
		"2025-03-10": 1,
		"2025-01-05": 2,
		"2025-02-20": 3,
	}

	dates := sortedDateKeys(counts)
	assert.Equal(t, []string{"2025-01-05", "2025-02-20", "2025-03-10"}, dates)
}

func TestWeekdayLabel(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{
			name:     "valid monday",
			date:     "2025-06-02",
			expected: "Monday",
		},
		{
			name:     "valid saturday",
			date:     "2025-06-07",
			expected: "Saturday",
		},
		{
			name:     "invalid key",
			date:     "not-a-date",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, weekdayLabel(tt.date))
		})
	}
}

func TestFormatWeeklyPattern(t *testing.T) {
	_, intFmt := createFormatters(2)

	tests := []struct {
		name     string
		pattern  map[string]int
		expected string
	}{
		{
			name: "calendar order regardless of map order",
			pattern: map[string]int{
				"Friday": 3,
				"Monday": 7,
			},
			expected: "Monday 7, Friday 3",
		},
		{
			name:     "empty pattern",
			pattern:  map[string]int{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatWeeklyPattern(tt.pattern, intFmt))
		})
	}
}
