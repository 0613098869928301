package resultstore

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/farescope/farescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCleanReport() schema.CleanReport {
	return schema.CleanReport{
		TotalRecords: 120,
		KeptRecords:  100,
		DropsByReason: map[schema.DropReason]int{
			schema.DropDuplicate: 12,
			schema.DropBadPrice:  5,
			schema.DropBadDate:   3,
		},
	}
}

func sampleRouteStats(analysisTime time.Time) []schema.RouteStatRecord {
	directRatio := 0.75
	demandScore := 0.82
	return []schema.RouteStatRecord{
		{
			Route:        "SYD-MEL",
			AnalysisTime: analysisTime,
			FlightCount:  42,
			AvgPrice:     164.5,
			MinPrice:     119.0,
			MaxPrice:     238.0,
			DirectRatio:  &directRatio,
			DemandScore:  &demandScore,
		},
		{
			Route:        "MEL-BNE",
			AnalysisTime: analysisTime,
			FlightCount:  17,
			AvgPrice:     261.0,
			MinPrice:     201.0,
			MaxPrice:     322.0,
			DirectRatio:  nil,
			DemandScore:  nil,
		},
	}
}

func TestRunStore_NoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	err = store.EndRun(1, time.Now(), sampleCleanReport())
	assert.NoError(t, err)

	err = store.RecordRouteStats(1, sampleRouteStats(time.Now()))
	assert.NoError(t, err)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	err = store.Close()
	assert.NoError(t, err)
}

func TestRunStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginRun
	startTime := time.Now()
	configParams := map[string]any{
		"origin":      "SYD",
		"destination": "MEL",
		"passengers":  2,
	}
	runID, err := store.BeginRun(startTime, configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	// Test RecordRouteStats
	err = store.RecordRouteStats(runID, sampleRouteStats(time.Now()))
	assert.NoError(t, err)

	// Test EndRun
	endTime := time.Now()
	err = store.EndRun(runID, endTime, sampleCleanReport())
	assert.NoError(t, err)
}

func TestRunStore_MultipleRuns(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Create multiple analysis runs
	var runIDs []int64
	for i := range 3 {
		id, err := store.BeginRun(time.Now(), map[string]any{"run": i})
		require.NoError(t, err)
		runIDs = append(runIDs, id)

		err = store.RecordRouteStats(id, sampleRouteStats(time.Now()))
		assert.NoError(t, err)

		err = store.EndRun(id, time.Now(), sampleCleanReport())
		assert.NoError(t, err)
	}

	// Verify all IDs are unique
	assert.Equal(t, 3, len(runIDs))
	assert.NotEqual(t, runIDs[0], runIDs[1])
	assert.NotEqual(t, runIDs[1], runIDs[2])
}

func TestRunStore_RuntimeCapture(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	t.Run("runtime calculation", func(t *testing.T) {
		// Start the run at a known time
		startTime := time.Now().Add(-100 * time.Millisecond) // Start 100ms ago
		runID, err := store.BeginRun(startTime, map[string]any{"test": "runtime"})
		require.NoError(t, err)

		// Wait a bit to ensure measurable duration
		time.Sleep(50 * time.Millisecond)

		// End the run
		endTime := time.Now()
		err = store.EndRun(runID, endTime, sampleCleanReport())
		assert.NoError(t, err)

		// Query the database to verify runtime was captured
		db := store.(*RunStoreImpl).db
		var storedStartTime, storedEndTime string
		var storedDurationMs int64

		row := db.QueryRow("SELECT start_time, end_time, run_duration_ms FROM farescope_analysis_runs WHERE run_id = ?", runID)
		err = row.Scan(&storedStartTime, &storedEndTime, &storedDurationMs)
		assert.NoError(t, err)

		// Parse stored times
		storedStart, err := time.Parse(time.RFC3339Nano, storedStartTime)
		assert.NoError(t, err)
		storedEnd, err := time.Parse(time.RFC3339Nano, storedEndTime)
		assert.NoError(t, err)

		// Verify duration calculation: should be approximately end - start
		expectedDurationMs := storedEnd.Sub(storedStart).Milliseconds()
		assert.Equal(t, expectedDurationMs, storedDurationMs)

		// Verify duration is reasonable (should be around 150ms ± some tolerance)
		assert.GreaterOrEqual(t, storedDurationMs, int64(100)) // At least 100ms (our initial offset)
		assert.LessOrEqual(t, storedDurationMs, int64(300))    // At most 300ms (allowing for test overhead)
	})

	t.Run("zero duration edge case", func(t *testing.T) {
		// Test with same start and end time
		startTime := time.Now()
		runID, err := store.BeginRun(startTime, map[string]any{"test": "zero_duration"})
		require.NoError(t, err)

		// End immediately with same time
		err = store.EndRun(runID, startTime, sampleCleanReport())
		assert.NoError(t, err)

		// Verify duration is 0
		db := store.(*RunStoreImpl).db
		var storedDurationMs int64
		row := db.QueryRow("SELECT run_duration_ms FROM farescope_analysis_runs WHERE run_id = ?", runID)
		err = row.Scan(&storedDurationMs)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), storedDurationMs)
	})
}

func TestRunStore_GetAllRuns(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test empty store
	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	// Add some analysis runs
	startTime := time.Now()
	configs := []map[string]any{
		{"origin": "SYD", "destination": "MEL"},
		{"origin": "MEL", "destination": "BNE"},
	}

	var runIDs []int64
	for _, config := range configs {
		id, err := store.BeginRun(startTime, config)
		require.NoError(t, err)
		runIDs = append(runIDs, id)

		err = store.EndRun(id, startTime.Add(time.Minute), sampleCleanReport())
		assert.NoError(t, err)
	}

	// Get all runs
	runs, err = store.GetAllRuns()
	assert.NoError(t, err)
	assert.Len(t, runs, 2)

	// Verify the runs
	report := sampleCleanReport()
	for i, run := range runs {
		assert.Equal(t, runIDs[i], run.RunID)
		// ConfigParams is stored as JSON string, so we can't directly compare
		assert.NotNil(t, run.ConfigParams)
		assert.Equal(t, int32(report.TotalRecords), run.TotalRecords)
		assert.Equal(t, int32(report.KeptRecords), run.KeptRecords)
		assert.Equal(t, int32(report.DroppedTotal()), run.DroppedRecords)
		assert.NotNil(t, run.EndTime)
		assert.NotNil(t, run.RunDurationMs)
		assert.Greater(t, *run.RunDurationMs, int32(0))
	}
}

func TestRunStore_GetAllRunsInFlight(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// A run without EndRun has no completion data yet
	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "in_flight"})
	require.NoError(t, err)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.RunID)
	assert.Nil(t, run.EndTime)
	assert.Nil(t, run.RunDurationMs)
	assert.Equal(t, int32(0), run.TotalRecords)
	assert.Equal(t, int32(0), run.KeptRecords)
	assert.Equal(t, int32(0), run.DroppedRecords)
}

func TestRunStore_GetAllRouteStats(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test empty store
	stats, err := store.GetAllRouteStats()
	assert.NoError(t, err)
	assert.Empty(t, stats)

	// Add a run with route stats
	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "stats"})
	require.NoError(t, err)

	analysisTime := time.Now()
	recorded := sampleRouteStats(analysisTime)
	err = store.RecordRouteStats(runID, recorded)
	assert.NoError(t, err)

	err = store.EndRun(runID, time.Now(), sampleCleanReport())
	assert.NoError(t, err)

	// Get all stats (ordered by run_id, route)
	stats, err = store.GetAllRouteStats()
	assert.NoError(t, err)
	require.Len(t, stats, 2)

	first := stats[0]
	assert.Equal(t, runID, first.RunID)
	assert.Equal(t, "MEL-BNE", first.Route)
	assert.Equal(t, int32(17), first.FlightCount)
	assert.Equal(t, 261.0, first.AvgPrice)
	assert.Nil(t, first.DirectRatio)
	assert.Nil(t, first.DemandScore)

	second := stats[1]
	assert.Equal(t, runID, second.RunID)
	assert.Equal(t, "SYD-MEL", second.Route)
	assert.Equal(t, int32(42), second.FlightCount)
	assert.Equal(t, 164.5, second.AvgPrice)
	assert.Equal(t, 119.0, second.MinPrice)
	assert.Equal(t, 238.0, second.MaxPrice)
	require.NotNil(t, second.DirectRatio)
	assert.Equal(t, 0.75, *second.DirectRatio)
	require.NotNil(t, second.DemandScore)
	assert.Equal(t, 0.82, *second.DemandScore)
	assert.WithinDuration(t, analysisTime, second.AnalysisTime, time.Nanosecond)
}

func TestRunStore_GetStatus(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Empty store reports zero runs but lists both tables
	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)
	assert.Contains(t, status.TableSizes, analysisRunsTable)
	assert.Contains(t, status.TableSizes, routeStatsTable)

	// Record two runs with stats
	oldestStart := time.Now().Add(-time.Hour)
	firstID, err := store.BeginRun(oldestStart, map[string]any{"run": 1})
	require.NoError(t, err)
	err = store.RecordRouteStats(firstID, sampleRouteStats(time.Now()))
	require.NoError(t, err)
	err = store.EndRun(firstID, time.Now(), sampleCleanReport())
	require.NoError(t, err)

	lastStart := time.Now()
	lastID, err := store.BeginRun(lastStart, map[string]any{"run": 2})
	require.NoError(t, err)

	status, err = store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, lastID, status.LastRunID)
	assert.WithinDuration(t, lastStart, status.LastRunTime, time.Nanosecond)
	assert.WithinDuration(t, oldestStart, status.OldestRunTime, time.Nanosecond)
	assert.Equal(t, 2, status.TotalRouteStats)
	assert.Equal(t, int64(2), status.TableSizes[analysisRunsTable])
	assert.Equal(t, int64(2), status.TableSizes[routeStatsTable])
}

func TestRunStore_NoneBackendStatus(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)
	assert.Empty(t, status.TableSizes)
}

// TestClearRuns tests the ClearRuns function.
func TestClearRuns(t *testing.T) {
	t.Run("SQLite backend", func(t *testing.T) {
		// Create a temporary test database in a temp directory
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test_runs_clear.db")

		// Create the database file directly with sql.Open
		db, err := sql.Open("sqlite", dbPath)
		assert.NoError(t, err, "Failed to create database")
		defer func() { _ = db.Close() }()

		// Create a simple table
		_, err = db.Exec("CREATE TABLE test (id INTEGER PRIMARY KEY)")
		assert.NoError(t, err, "Failed to create table")

		// Verify file exists
		_, err = os.Stat(dbPath)
		assert.False(t, os.IsNotExist(err), "Database file should exist before ClearRuns")

		// Clear the run history
		err = ClearRuns(schema.SQLiteBackend, dbPath, "")
		assert.NoError(t, err, "ClearRuns should not fail")

		// Verify file is removed
		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err), "Database file should be removed after ClearRuns")
	})

	t.Run("NoneBackend", func(t *testing.T) {
		// NoneBackend should be no-op
		err := ClearRuns(schema.NoneBackend, "", "")
		assert.NoError(t, err, "ClearRuns with NoneBackend should not error")
	})

	t.Run("empty dbFilePath for SQLite", func(t *testing.T) {
		err := ClearRuns(schema.SQLiteBackend, "", "")
		assert.Error(t, err, "Expected error for empty dbFilePath with SQLite backend")
	})

	t.Run("unsupported backend", func(t *testing.T) {
		err := ClearRuns("unsupported", "", "")
		assert.Error(t, err, "Expected error for unsupported backend")
	})
}
