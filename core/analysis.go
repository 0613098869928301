package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/farescope/farescope/core/clean"
	"github.com/farescope/farescope/core/view"
	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/flightdata"
	"github.com/farescope/farescope/schema"
)

// runAnalysisCore performs the common Load, Clean and View computation steps.
// The clean report is returned alongside the result so callers can account
// for dropped records even on a cache hit.
func runAnalysisCore(ctx context.Context, cfg *contract.Config, source contract.RecordSource, mgr contract.StoreManager) (*schema.AnalysisResult, schema.CleanReport, error) {
	if !shouldSuppressHeader(ctx) {
		logAnalysisHeader(cfg, source)
	}

	// --- 0. Begin Run Tracking (if configured) ---
	var runID int64
	runs := mgr.GetRunStore()
	if runs != nil {
		startTime := time.Now()
		configParams := map[string]any{
			"source":       source.Describe(),
			"output":       string(cfg.Output),
			"result_limit": cfg.ResultLimit,
			"origin":       cfg.Origin,
			"destination":  cfg.Destination,
			"no_cache":     cfg.NoCache,
		}
		var err error
		runID, err = runs.BeginRun(startTime, configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		}
	}

	// --- 1. Load Phase ---
	records, err := source.Load(ctx)
	if err != nil {
		return nil, schema.CleanReport{}, fmt.Errorf("failed to load records from %s: %w", source.Describe(), err)
	}

	// --- 2. Cleaning Phase ---
	flights, report := clean.Normalize(records)

	// --- 3. View Computation and Assembly (with caching) ---
	result, err := cachedAnalyze(cfg, records, flights, mgr)
	if err != nil {
		return nil, report, err
	}

	// --- 4. End Run Tracking ---
	if runs != nil && runID > 0 {
		endTime := time.Now()
		if err := runs.EndRun(runID, endTime, report); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
		if err := runs.RecordRouteStats(runID, routeStatRecords(runID, result)); err != nil {
			contract.LogWarn("Failed to record route stats", err)
		}
	}

	return result, report, nil
}

// analyze computes every view over the cleaned flights and assembles the
// result. A dataset that cleaned down to zero flights takes the degenerate
// path: every view present with its well-typed empty value.
func analyze(cfg *contract.Config, flights []schema.Flight) (*schema.AnalysisResult, error) {
	market, err := flightdata.ResolveMarketData(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve market data: %w", err)
	}

	if len(flights) == 0 {
		result := schema.NewEmptyResult()
		result.SearchParams = cfg.SearchParams()
		result.MarketData = market
		result.ProcessingTimestamp = time.Now().UTC()
		return result, nil
	}

	views, err := computeViews(flights)
	if err != nil {
		return nil, err
	}

	return assemble(cfg.SearchParams(), flights, views, market), nil
}

// viewSet holds one result slot per view so the workers never share state.
type viewSet struct {
	summary  schema.SummaryAnalysis
	prices   schema.PriceAnalysis
	routes   schema.RouteAnalysis
	times    schema.TimeAnalysis
	demand   schema.DemandAnalysis
	airlines schema.AirlineAnalysis
}

// computeViews runs the six views as independent tasks joined before
// assembly. A panicking view surfaces as an error naming the sub-analysis
// rather than a partially assembled result.
func computeViews(flights []schema.Flight) (*viewSet, error) {
	var views viewSet

	tasks := []struct {
		name string
		run  func()
	}{
		{"summary", func() { views.summary = view.BuildSummary(flights) }},
		{"price", func() { views.prices = view.BuildPrice(flights) }},
		{"route", func() { views.routes = view.BuildRoute(flights) }},
		{"time", func() { views.times = view.BuildTime(flights) }},
		{"demand", func() { views.demand = view.BuildDemand(flights) }},
		{"airline", func() { views.airlines = view.BuildAirline(flights) }},
	}

	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Go(func() {
			errs[i] = runView(task.name, task.run)
		})
	}
	wg.Wait()

	// First failure in task order wins, for deterministic error text
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &views, nil
}

// runView converts a view panic into an error naming the failing sub-analysis.
func runView(name string, run func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s analysis failed: %v", name, r)
		}
	}()
	run()
	return nil
}

// assemble merges the computed views into one result. Search params and
// market data pass through verbatim.
func assemble(search schema.SearchParams, flights []schema.Flight, views *viewSet, market map[string]any) *schema.AnalysisResult {
	return &schema.AnalysisResult{
		SearchParams:        search,
		Summary:             views.summary,
		PriceAnalysis:       views.prices,
		RouteAnalysis:       views.routes,
		TimeAnalysis:        views.times,
		DemandAnalysis:      views.demand,
		AirlineAnalysis:     views.airlines,
		MarketData:          market,
		ProcessingTimestamp: time.Now().UTC(),
		TotalFlights:        len(flights),
		Flights:             flights,
	}
}

// Project reshapes an assembled result into the compact summary metrics.
// It never recomputes: every value is pulled from the summary view.
func Project(result *schema.AnalysisResult) schema.SummaryMetrics {
	return schema.SummaryMetrics{
		TotalFlights: result.Summary.TotalFlights,
		UniqueRoutes: result.Summary.UniqueRoutes,
		AvgPrice:     result.Summary.PriceRange.Avg,
		PriceRange: schema.MinMaxRange{
			Min: result.Summary.PriceRange.Min,
			Max: result.Summary.PriceRange.Max,
		},
		DateRange: result.Summary.DateRange,
		Airlines:  result.Summary.Airlines,
	}
}

// routeStatRecords flattens the ranked route view into per-route rows for
// the run store. Mean demand rides along for routes the demand view flagged.
func routeStatRecords(runID int64, result *schema.AnalysisResult) []schema.RouteStatRecord {
	rankings := result.RouteAnalysis.PopularRoutes
	stats := make([]schema.RouteStatRecord, 0, len(rankings))
	for _, r := range rankings {
		rec := schema.RouteStatRecord{
			RunID:        runID,
			Route:        r.Route,
			AnalysisTime: result.ProcessingTimestamp,
			FlightCount:  int32(r.FlightCount),
			AvgPrice:     r.AvgPrice,
			MinPrice:     r.MinPrice,
			MaxPrice:     r.MaxPrice,
			DirectRatio:  r.DirectRatio,
		}
		if score, ok := result.DemandAnalysis.HighDemandRoutes[r.Route]; ok {
			s := score
			rec.DemandScore = &s
		}
		stats = append(stats, rec)
	}
	return stats
}

// logAnalysisHeader prints a one-line header naming the dataset under analysis.
func logAnalysisHeader(cfg *contract.Config, source contract.RecordSource) {
	prefix := ""
	if cfg.UseEmojis {
		prefix = "🔎 "
	}
	fmt.Printf("%sDataset: %s (output: %s)\n", prefix, source.Describe(), cfg.Output)
}
