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

func sampleDemandAnalysis() schema.DemandAnalysis {
	return schema.DemandAnalysis{
		HighDemandRoutes: map[string]float64{
			"JFK-LAX": 0.91,
			"SFO-SEA": 0.72,
		},
		DemandThreshold:        0.7,
		PriceDemandCorrelation: 0.45,
		PeakTimes: &schema.PeakTimes{
			BusiestHour:  17,
			QuietestHour: 4,
			HourlyDistribution: map[int]int{
				4:  2,
				17: 21,
			},
		},
	}
}

func TestWriteDemandTable(t *testing.T) {
	analysis := sampleDemandAnalysis()
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		ResultLimit:  25,
		CacheBackend: schema.SQLiteBackend,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	duration := 100 * time.Millisecond
	err := writeDemandTable(&buf, analysis, cfg, fmtFloat, duration)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "JFK-LAX")
	assert.Contains(t, output, "0.91")
	assert.Contains(t, output, "Very High")
	assert.Contains(t, output, "SFO-SEA")
	assert.Contains(t, output, "High")
	assert.Contains(t, output, "Showing 2 of 2 high-demand routes (threshold: 0.70)")
	assert.Contains(t, output, "Price-demand correlation: 0.45")
	assert.Contains(t, output, "Busiest hour: 17:00, quietest hour: 04:00")
	assert.Contains(t, output, "Analysis completed in 100ms")
}

func TestWriteDemandTableNoPeakTimes(t *testing.T) {
	analysis := sampleDemandAnalysis()
	analysis.PeakTimes = nil
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		ResultLimit:  25,
		CacheBackend: schema.SQLiteBackend,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeDemandTable(&buf, analysis, cfg, fmtFloat, time.Second)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "Busiest hour:")
}

func TestWriteJSONResultsForDemand(t *testing.T) {
	analysis := sampleDemandAnalysis()

	var buf bytes.Buffer
	err := writeJSONResultsForDemand(&buf, analysis)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, 0.7, result["demand_threshold"])
	assert.Contains(t, result, "peak_times")

	routes, ok := result["high_demand_routes"].([]any)
	require.True(t, ok)
	require.Len(t, routes, 2)

	// Ranked by demand score descending
	first, ok := routes[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, "JFK-LAX", first["route"])
	assert.Equal(t, "Very High", first["tier"])
}

func TestWriteJSONResultsForDemandOmitsNilPeaks(t *testing.T) {
	analysis := sampleDemandAnalysis()
	analysis.PeakTimes = nil

	var buf bytes.Buffer
	err := writeJSONResultsForDemand(&buf, analysis)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.NotContains(t, result, "peak_times")
}

func TestWriteCSVResultsForDemand(t *testing.T) {
	analysis := sampleDemandAnalysis()
	cfg := &contract.Config{Precision: 2, ResultLimit: 25}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForDemand(w, analysis, cfg, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t, "rank,route,demand_score,tier", lines[0])
	assert.Equal(t, "1,JFK-LAX,0.91,Very High", lines[1])
	assert.Equal(t, "2,SFO-SEA,0.72,High", lines[2])
}

func TestPrintDemandResultsParquetUnsupported(t *testing.T) {
	analysis := sampleDemandAnalysis()
	cfg := &contract.Config{
		Output:      schema.ParquetOut,
		OutputFile:  "/tmp/demand.parquet",
		Precision:   2,
		ResultLimit: 25,
	}

	err := PrintDemandResults(analysis, cfg, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}
