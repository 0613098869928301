package core

import (
	"context"
	"testing"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/flightdata"
	"github.com/farescope/farescope/internal/resultstore"
	"github.com/farescope/farescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// rawFixtureRecords returns a small valid dataset spanning two routes.
func rawFixtureRecords() []schema.RawRecord {
	return []schema.RawRecord{
		{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2025-06-02"},
		{Price: 180.0, Origin: "SYD", Destination: "MEL", Date: "2025-06-02"},
		{Price: 200.0, Origin: "SYD", Destination: "BNE", Date: "2025-06-03"},
	}
}

func TestRunAnalysisCoreSuccess(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	mockSource := &flightdata.MockRecordSource{}
	mockMgr := &resultstore.MockStoreManager{}

	// Setup mock expectations
	mockMgr.On("GetRunStore").Return(nil)    // No run tracking for test
	mockMgr.On("GetResultStore").Return(nil) // No caching for test
	mockSource.On("Load", ctx).Return(rawFixtureRecords(), nil)

	cfg := &contract.Config{ResultLimit: 10}

	result, report, err := runAnalysisCore(ctx, cfg, mockSource, mockMgr)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.TotalFlights)
	assert.Equal(t, 3, report.TotalRecords)
	assert.Equal(t, 3, report.KeptRecords)
	require.NotEmpty(t, result.RouteAnalysis.PopularRoutes)
	assert.Equal(t, "SYD-MEL", result.RouteAnalysis.PopularRoutes[0].Route)
	assert.InDelta(t, 165.0, result.RouteAnalysis.PopularRoutes[0].AvgPrice, 1e-9)

	mockSource.AssertExpectations(t)
	mockMgr.AssertExpectations(t)
}

func TestRunAnalysisCoreLoadError(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	mockSource := &flightdata.MockRecordSource{}
	mockMgr := &resultstore.MockStoreManager{}

	mockMgr.On("GetRunStore").Return(nil)
	mockSource.On("Load", ctx).Return(nil, assert.AnError)
	mockSource.On("Describe").Return("broken.json")

	cfg := &contract.Config{}

	result, report, err := runAnalysisCore(ctx, cfg, mockSource, mockMgr)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Zero(t, report.TotalRecords)
	assert.Contains(t, err.Error(), "failed to load records from broken.json")

	mockSource.AssertExpectations(t)
	mockMgr.AssertExpectations(t)
}

func TestRunAnalysisCoreEmptyDataset(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	mockSource := &flightdata.MockRecordSource{}
	mockMgr := &resultstore.MockStoreManager{}

	mockMgr.On("GetRunStore").Return(nil)
	mockMgr.On("GetResultStore").Return(nil)
	mockSource.On("Load", ctx).Return([]schema.RawRecord{}, nil)

	cfg := &contract.Config{}

	result, report, err := runAnalysisCore(ctx, cfg, mockSource, mockMgr)

	// An empty dataset is a degenerate result, not an error
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.TotalFlights)
	assert.Equal(t, 0, report.TotalRecords)
	assert.NotNil(t, result.DemandAnalysis.HighDemandRoutes)

	mockSource.AssertExpectations(t)
	mockMgr.AssertExpectations(t)
}

func TestRunAnalysisCoreWithRunTracking(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	mockSource := &flightdata.MockRecordSource{}
	mockMgr := &resultstore.MockStoreManager{}
	mockRuns := &resultstore.MockRunStore{}

	mockMgr.On("GetRunStore").Return(mockRuns)
	mockMgr.On("GetResultStore").Return(nil)
	mockSource.On("Load", ctx).Return(rawFixtureRecords(), nil)
	mockSource.On("Describe").Return("fixture.json")
	mockRuns.On("BeginRun", mock.AnythingOfType("time.Time"), mock.AnythingOfType("map[string]interface {}")).
		Return(int64(42), nil)
	mockRuns.On("EndRun", int64(42), mock.AnythingOfType("time.Time"), mock.AnythingOfType("schema.CleanReport")).
		Return(nil)
	mockRuns.On("RecordRouteStats", int64(42), mock.AnythingOfType("[]schema.RouteStatRecord")).
		Return(nil)

	cfg := &contract.Config{Output: schema.JSONOut, ResultLimit: 10}

	result, _, err := runAnalysisCore(ctx, cfg, mockSource, mockMgr)

	require.NoError(t, err)
	require.NotNil(t, result)

	mockSource.AssertExpectations(t)
	mockMgr.AssertExpectations(t)
	mockRuns.AssertExpectations(t)
}

func TestRunAnalysisCoreTrackingFailureIsNotFatal(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	mockSource := &flightdata.MockRecordSource{}
	mockMgr := &resultstore.MockStoreManager{}
	mockRuns := &resultstore.MockRunStore{}

	mockMgr.On("GetRunStore").Return(mockRuns)
	mockMgr.On("GetResultStore").Return(nil)
	mockSource.On("Load", ctx).Return(rawFixtureRecords(), nil)
	mockSource.On("Describe").Return("fixture.json")
	// BeginRun failing must not abort the analysis, and no run ID means
	// EndRun and RecordRouteStats are never attempted
	mockRuns.On("BeginRun", mock.AnythingOfType("time.Time"), mock.AnythingOfType("map[string]interface {}")).
		Return(int64(0), assert.AnError)

	cfg := &contract.Config{}

	result, _, err := runAnalysisCore(ctx, cfg, mockSource, mockMgr)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.TotalFlights)

	mockSource.AssertExpectations(t)
	mockMgr.AssertExpectations(t)
	mockRuns.AssertExpectations(t)
}
