// Package core has core logic for cleaning, aggregation and result assembly.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/flightdata"
	"github.com/farescope/farescope/internal/outwriter"
	"github.com/farescope/farescope/schema"
)

// ExecutorFunc defines the function signature for executing the analysis commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// writer renders results in the configured output format.
var writer = outwriter.NewOutWriter()

// GetAnalysisResults runs the full pipeline and returns the assembled result
// with the elapsed duration. MCP handlers call this directly to receive data
// instead of rendered output.
func GetAnalysisResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.AnalysisResult, time.Duration, error) {
	start := time.Now()
	source := flightdata.NewSource(cfg)
	result, _, err := runAnalysisCore(ctx, cfg, source, mgr)
	if err != nil {
		return nil, 0, err
	}
	return result, time.Since(start), nil
}

// GetTrendResults runs the full pipeline and derives the per-day price trend.
func GetTrendResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.TrendResult, time.Duration, error) {
	start := time.Now()
	source := flightdata.NewSource(cfg)
	result, _, err := runAnalysisCore(ctx, cfg, source, mgr)
	if err != nil {
		return schema.TrendResult{}, 0, err
	}
	trend := buildTrend(result.Flights, cfg.TrendRoute)
	return trend, time.Since(start), nil
}

// ExecuteAnalyze runs the full analysis and prints the assembled result.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetAnalysisResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteAnalysis(result, cfg, duration)
}

// ExecuteSummary runs the full analysis and prints the compact summary metrics.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetAnalysisResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteSummary(Project(result), cfg, duration)
}

// ExecutePrices runs the full analysis and prints the price view.
func ExecutePrices(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetAnalysisResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WritePrices(result.PriceAnalysis, cfg, duration)
}

// ExecuteRoutes runs the full analysis and prints the route view.
func ExecuteRoutes(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetAnalysisResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteRoutes(result.RouteAnalysis, cfg, duration)
}

// ExecuteTimes runs the full analysis and prints the temporal view.
func ExecuteTimes(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetAnalysisResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteTimes(result.TimeAnalysis, cfg, duration)
}

// ExecuteDemand runs the full analysis and prints the demand view.
func ExecuteDemand(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetAnalysisResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteDemand(result.DemandAnalysis, cfg, duration)
}

// ExecuteAirlines runs the full analysis and prints the carrier view.
func ExecuteAirlines(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetAnalysisResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteAirlines(result.AirlineAnalysis, cfg, duration)
}

// ExecuteTrends runs the full analysis and prints the per-day price trend.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	trend, duration, err := GetTrendResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteTrends(trend, cfg, duration)
}

// ExecuteSample generates a synthetic dataset and writes it as a JSON array
// of raw records, loadable back through the analysis commands.
func ExecuteSample(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	records := flightdata.GenerateSample(flightdata.SampleOptionsFromConfig(cfg))

	out, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if out != os.Stdout {
		defer func() { _ = out.Close() }()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("error writing sample dataset: %w", err)
	}

	if cfg.OutputFile != "" {
		fmt.Fprintf(os.Stderr, "💾 Wrote %d sample records to %s\n", len(records), cfg.OutputFile)
	}
	return nil
}
