package schema

import "time"

// RunRecord represents a row from the farescope_analysis_runs table.
type RunRecord struct {
	RunID          int64
	StartTime      time.Time
	EndTime        *time.Time
	RunDurationMs  *int32
	TotalRecords   int32
	KeptRecords    int32
	DroppedRecords int32
	ConfigParams   *string
}

// RouteStatRecord represents a row from the farescope_route_stats table.
type RouteStatRecord struct {
	RunID        int64
	Route        string
	AnalysisTime time.Time
	FlightCount  int32
	AvgPrice     float64
	MinPrice     float64
	MaxPrice     float64
	DirectRatio  *float64
	DemandScore  *float64
}
