// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/farescope/farescope/schema"
)

// RecordSource defines the necessary operations for obtaining raw flight offer
// records. This allows the core analysis logic to be tested without touching
// the filesystem.
type RecordSource interface {
	// Load returns every raw record from the underlying source.
	Load(ctx context.Context) ([]schema.RawRecord, error)

	// Describe returns a short human-readable name for headers and logs.
	Describe() string
}

// StoreManager defines the interface for managing persistence stores.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetResultStore() ResultStore
	GetRunStore() RunStore
}

// ResultStore defines the interface for cached analysis results.
// This allows mocking the store for testing.
type ResultStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// RunStore defines the interface for tracking analysis runs and the
// per-route statistics observed during each run.
type RunStore interface {
	// BeginRun creates a new analysis run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the analysis run with completion data
	EndRun(runID int64, endTime time.Time, report schema.CleanReport) error

	// RecordRouteStats stores per-route aggregates for a run in one operation
	RecordRouteStats(runID int64, stats []schema.RouteStatRecord) error

	// GetAllRuns retrieves every recorded run
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllRouteStats retrieves every recorded route statistic
	GetAllRouteStats() ([]schema.RouteStatRecord, error)

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// Close closes the underlying connection
	Close() error
}
