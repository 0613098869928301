// Package parquet provides data structures and functions for exporting
// farescope analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/farescope/farescope/schema"
	"github.com/parquet-go/parquet-go"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the farescope_analysis_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the analysis began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRecords is the number of raw records that entered the run
	TotalRecords int32 `parquet:"total_records,snappy"`

	// KeptRecords is the number of records that survived cleaning
	KeptRecords int32 `parquet:"kept_records,snappy"`

	// DroppedRecords is the number of records discarded during cleaning
	DroppedRecords int32 `parquet:"dropped_records,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RouteStat represents the per-route aggregates recorded for an analysis run.
// This struct maps to the farescope_route_stats database table.
type RouteStat struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// Route is the canonical route label, e.g. "SYD-MEL"
	Route string `parquet:"route,snappy"`

	// AnalysisTime is when the route was aggregated (stored as TIMESTAMP with nanosecond precision)
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	// FlightCount is the number of flights observed on the route
	FlightCount int32 `parquet:"flight_count,snappy"`

	// AvgPrice is the mean price over the route's flights
	AvgPrice float64 `parquet:"avg_price,snappy"`

	// MinPrice is the lowest price observed on the route
	MinPrice float64 `parquet:"min_price,snappy"`

	// MaxPrice is the highest price observed on the route
	MaxPrice float64 `parquet:"max_price,snappy"`

	// DirectRatio is the share of non-stop flights among flagged ones (nullable)
	DirectRatio *float64 `parquet:"direct_ratio,optional,snappy"`

	// DemandScore is the mean demand over the route's scored flights (nullable)
	DemandScore *float64 `parquet:"demand_score,optional,snappy"`
}

// Flight is the row shape for exporting cleaned flights.
type Flight struct {
	Price       float64   `parquet:"price,snappy"`
	Origin      string    `parquet:"origin,snappy"`
	Destination string    `parquet:"destination,snappy"`
	Route       string    `parquet:"route,snappy"`
	Date        time.Time `parquet:"date,snappy"`
	DayOfWeek   string    `parquet:"day_of_week,snappy"`
	Month       string    `parquet:"month,snappy"`
	IsWeekend   bool      `parquet:"is_weekend,snappy"`
	Airline     *string   `parquet:"airline,optional,snappy"`
	Direct      *bool     `parquet:"direct,optional,snappy"`
	Duration    *int32    `parquet:"duration_minutes,optional,snappy"`
	DemandScore *float64  `parquet:"demand_score,optional,snappy"`
	Hour        *int32    `parquet:"hour,optional,snappy"`
	Source      *string   `parquet:"source,optional,snappy"`
}

// RankedRoute is the row shape for exporting the route view.
type RankedRoute struct {
	Rank        int32    `parquet:"rank,snappy"`
	Route       string   `parquet:"route,snappy"`
	FlightCount int32    `parquet:"flight_count,snappy"`
	AvgPrice    float64  `parquet:"avg_price,snappy"`
	MinPrice    float64  `parquet:"min_price,snappy"`
	MaxPrice    float64  `parquet:"max_price,snappy"`
	DirectRatio *float64 `parquet:"direct_ratio,optional,snappy"`
}

// RankedAirline is the row shape for exporting the airline view.
type RankedAirline struct {
	Rank        int32    `parquet:"rank,snappy"`
	Airline     string   `parquet:"airline,snappy"`
	FlightCount int32    `parquet:"flight_count,snappy"`
	AvgPrice    float64  `parquet:"avg_price,snappy"`
	MinPrice    float64  `parquet:"min_price,snappy"`
	MaxPrice    float64  `parquet:"max_price,snappy"`
	DirectRatio *float64 `parquet:"direct_ratio,optional,snappy"`
}

// DailyCount is the row shape for exporting the time view.
type DailyCount struct {
	Date        string `parquet:"date,snappy"`
	FlightCount int32  `parquet:"flight_count,snappy"`
}

// TrendPoint is the row shape for exporting the price trend.
type TrendPoint struct {
	Date        time.Time `parquet:"date,snappy"`
	AvgPrice    float64   `parquet:"avg_price,snappy"`
	FlightCount int32     `parquet:"flight_count,snappy"`
}

// writeParquet writes any row slice to a Parquet file, inferring the
// schema from the row struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRouteStatsParquet writes a slice of RouteStat structs to a Parquet file.
func WriteRouteStatsParquet(data []RouteStat, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteFlightsParquet writes a slice of Flight rows to a Parquet file.
func WriteFlightsParquet(data []Flight, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRankedRoutesParquet writes a slice of RankedRoute rows to a Parquet file.
func WriteRankedRoutesParquet(data []RankedRoute, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRankedAirlinesParquet writes a slice of RankedAirline rows to a Parquet file.
func WriteRankedAirlinesParquet(data []RankedAirline, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteDailyCountsParquet writes a slice of DailyCount rows to a Parquet file.
func WriteDailyCountsParquet(data []DailyCount, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTrendPointsParquet writes a slice of TrendPoint rows to a Parquet file.
func WriteTrendPointsParquet(data []TrendPoint, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertRunRecords converts schema.RunRecord to AnalysisRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			RunID:          record.RunID,
			StartTime:      record.StartTime,
			EndTime:        record.EndTime,
			RunDurationMs:  record.RunDurationMs,
			TotalRecords:   record.TotalRecords,
			KeptRecords:    record.KeptRecords,
			DroppedRecords: record.DroppedRecords,
			ConfigParams:   record.ConfigParams,
		}
	}
	return result
}

// ConvertRouteStatRecords converts schema.RouteStatRecord to RouteStat for Parquet export.
func ConvertRouteStatRecords(records []schema.RouteStatRecord) []RouteStat {
	result := make([]RouteStat, len(records))
	for i, record := range records {
		result[i] = RouteStat{
			RunID:        record.RunID,
			Route:        record.Route,
			AnalysisTime: record.AnalysisTime,
			FlightCount:  record.FlightCount,
			AvgPrice:     record.AvgPrice,
			MinPrice:     record.MinPrice,
			MaxPrice:     record.MaxPrice,
			DirectRatio:  record.DirectRatio,
			DemandScore:  record.DemandScore,
		}
	}
	return result
}

// ConvertFlights converts cleaned schema.Flight values to Flight rows.
func ConvertFlights(flights []schema.Flight) []Flight {
	result := make([]Flight, len(flights))
	for i, f := range flights {
		row := Flight{
			Price:       f.Price,
			Origin:      f.Origin,
			Destination: f.Destination,
			Route:       f.Route,
			Date:        f.Date,
			DayOfWeek:   f.DayOfWeek,
			Month:       f.Month,
			IsWeekend:   f.IsWeekend,
			Direct:      f.Direct,
			DemandScore: f.DemandScore,
		}
		if f.Airline != "" {
			airline := f.Airline
			row.Airline = &airline
		}
		if f.Duration != nil {
			duration := int32(*f.Duration)
			row.Duration = &duration
		}
		if f.Hour != nil {
			hour := int32(*f.Hour)
			row.Hour = &hour
		}
		if f.Source != "" {
			source := f.Source
			row.Source = &source
		}
		result[i] = row
	}
	return result
}

// ConvertRouteStats converts ranked schema.RouteStats to RankedRoute rows.
func ConvertRouteStats(stats []schema.RouteStats) []RankedRoute {
	result := make([]RankedRoute, len(stats))
	for i, s := range stats {
		result[i] = RankedRoute{
			Rank:        int32(i + 1),
			Route:       s.Route,
			FlightCount: int32(s.FlightCount),
			AvgPrice:    s.AvgPrice,
			MinPrice:    s.MinPrice,
			MaxPrice:    s.MaxPrice,
			DirectRatio: s.DirectRatio,
		}
	}
	return result
}

// ConvertAirlineStats converts ranked schema.AirlineStats to RankedAirline rows.
func ConvertAirlineStats(stats []schema.AirlineStats) []RankedAirline {
	result := make([]RankedAirline, len(stats))
	for i, s := range stats {
		result[i] = RankedAirline{
			Rank:        int32(i + 1),
			Airline:     s.Airline,
			FlightCount: int32(s.FlightCount),
			AvgPrice:    s.AvgPrice,
			MinPrice:    s.MinPrice,
			MaxPrice:    s.MaxPrice,
			DirectRatio: s.DirectRatio,
		}
	}
	return result
}

// ConvertDailyCounts converts the daily flight counts of the time view
// to DailyCount rows, ordered by date.
func ConvertDailyCounts(counts map[string]int) []DailyCount {
	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]DailyCount, len(dates))
	for i, date := range dates {
		result[i] = DailyCount{
			Date:        date,
			FlightCount: int32(counts[date]),
		}
	}
	return result
}

// ConvertTrendPoints converts schema.TrendPoint values to TrendPoint rows.
func ConvertTrendPoints(points []schema.TrendPoint) []TrendPoint {
	result := make([]TrendPoint, len(points))
	for i, p := range points {
		result[i] = TrendPoint{
			Date:        p.Date,
			AvgPrice:    p.AvgPrice,
			FlightCount: int32(p.FlightCount),
		}
	}
	return result
}

// MockFetchAnalysisRuns generates sample AnalysisRun data for demonstration.
func MockFetchAnalysisRuns() []AnalysisRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 30*time.Minute)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"origin":"SYD","destination":"MEL","passengers":1}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := now.Add(-23 * time.Hour)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"origin":"MEL","destination":"BNE","passengers":2}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: run 3 is still in flight, so its nullable fields stay nil

	return []AnalysisRun{
		{
			RunID:          1,
			StartTime:      startTime1,
			EndTime:        &endTime1,
			RunDurationMs:  &durationMs1,
			TotalRecords:   150,
			KeptRecords:    141,
			DroppedRecords: 9,
			ConfigParams:   &configParams1,
		},
		{
			RunID:          2,
			StartTime:      startTime2,
			EndTime:        &endTime2,
			RunDurationMs:  &durationMs2,
			TotalRecords:   75,
			KeptRecords:    75,
			DroppedRecords: 0,
			ConfigParams:   &configParams2,
		},
		{
			RunID:        3,
			StartTime:    startTime3,
			EndTime:      nil,
			TotalRecords: 0,
			ConfigParams: nil,
		},
	}
}

// MockFetchRouteStats generates sample RouteStat data for demonstration.
func MockFetchRouteStats() []RouteStat {
	now := time.Now()
	directRatio1 := 0.75
	demandScore1 := 0.82
	directRatio2 := 0.5

	return []RouteStat{
		{
			RunID:        1,
			Route:        "SYD-MEL",
			AnalysisTime: now.Add(-1 * time.Hour),
			FlightCount:  42,
			AvgPrice:     164.5,
			MinPrice:     119,
			MaxPrice:     238,
			DirectRatio:  &directRatio1,
			DemandScore:  &demandScore1,
		},
		{
			RunID:        1,
			Route:        "SYD-BNE",
			AnalysisTime: now.Add(-1 * time.Hour),
			FlightCount:  18,
			AvgPrice:     212.3,
			MinPrice:     171,
			MaxPrice:     265,
			DirectRatio:  &directRatio2,
			DemandScore:  nil,
		},
		{
			RunID:        2,
			Route:        "MEL-BNE",
			AnalysisTime: now.Add(-23 * time.Hour),
			FlightCount:  5,
			AvgPrice:     257.8,
			MinPrice:     221,
			MaxPrice:     289,
			DirectRatio:  nil, // No flight on the route carried a direct flag
			DemandScore:  nil,
		},
	}
}
