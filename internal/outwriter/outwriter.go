// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAnalysis prints the full analysis result using the configured output format.
func (ow *OutWriter) WriteAnalysis(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return PrintAnalysisResults(result, cfg, duration)
}

// WriteSummary prints the summary metrics using the configured output format.
func (ow *OutWriter) WriteSummary(metrics schema.SummaryMetrics, cfg *contract.Config, duration time.Duration) error {
	return PrintSummaryResults(metrics, cfg, duration)
}

// WritePrices prints the price analysis using the configured output format.
func (ow *OutWriter) WritePrices(analysis schema.PriceAnalysis, cfg *contract.Config, duration time.Duration) error {
	return PrintPriceResults(analysis, cfg, duration)
}

// WriteRoutes prints the route analysis using the configured output format.
func (ow *OutWriter) WriteRoutes(analysis schema.RouteAnalysis, cfg *contract.Config, duration time.Duration) error {
	return PrintRouteResults(analysis, cfg, duration)
}

// WriteTimes prints the time analysis using the configured output format.
func (ow *OutWriter) WriteTimes(analysis schema.TimeAnalysis, cfg *contract.Config, duration time.Duration) error {
	return PrintTimeResults(analysis, cfg, duration)
}

// WriteDemand prints the demand analysis using the configured output format.
func (ow *OutWriter) WriteDemand(analysis schema.DemandAnalysis, cfg *contract.Config, duration time.Duration) error {
	return PrintDemandResults(analysis, cfg, duration)
}

// WriteAirlines prints the airline analysis using the configured output format.
func (ow *OutWriter) WriteAirlines(analysis schema.AirlineAnalysis, cfg *contract.Config, duration time.Duration) error {
	return PrintAirlineResults(analysis, cfg, duration)
}

// WriteTrends prints the price trend using the configured output format.
func (ow *OutWriter) WriteTrends(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTrendResults(result, cfg, duration)
}
