package schema

import "time"

// TrendPoint represents a single day in the price trend.
type TrendPoint struct {
	Date        time.Time `json:"date"`
	AvgPrice    float64   `json:"avg_price"`
	FlightCount int       `json:"flight_count"`
}

// TrendResult holds the daily price trend, oldest day first.
// Route is empty when the trend covers the whole dataset.
type TrendResult struct {
	Points        []TrendPoint   `json:"points"`
	Direction     TrendDirection `json:"direction"`
	ChangePercent float64        `json:"change_percent"` // Last day vs first day
	Route         string         `json:"route,omitempty"`
}
