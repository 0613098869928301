package schema

import "time"

// DateRange holds the first and last departure dates as YYYY-MM-DD strings.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PriceRange holds the price spread of a dataset.
type PriceRange struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
}

// SummaryAnalysis is the headline view of a cleaned dataset.
type SummaryAnalysis struct {
	TotalFlights int        `json:"total_flights"`
	UniqueRoutes int        `json:"unique_routes"`
	DateRange    DateRange  `json:"date_range"`
	PriceRange   PriceRange `json:"price_range"`
	Airlines     int        `json:"airlines"` // Distinct carriers, zero when none carried an airline
}

// PriceStatistics holds the descriptive statistics of all prices.
// Std is the population standard deviation, so a single sample yields zero.
type PriceStatistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// WeekendPremium compares weekend and weekday price levels.
// PremiumPercentage is nil when there are no weekday flights to compare against.
type WeekendPremium struct {
	WeekendAvg        float64  `json:"weekend_avg"`
	WeekdayAvg        float64  `json:"weekday_avg"`
	PremiumPercentage *float64 `json:"premium_percentage,omitempty"`
}

// PriceAnalysis is the price view of a cleaned dataset.
// The by-day and by-month maps only carry labels present in the data.
type PriceAnalysis struct {
	Statistics     PriceStatistics    `json:"statistics"`
	ByDayOfWeek    map[string]float64 `json:"by_day_of_week"`
	ByMonth        map[string]float64 `json:"by_month"`
	WeekendPremium WeekendPremium     `json:"weekend_premium"`
}

// RouteStats holds the per-route aggregates.
// DirectRatio is nil when no flight on the route carried a direct flag.
type RouteStats struct {
	Route       string   `json:"route"`
	FlightCount int      `json:"flight_count"`
	AvgPrice    float64  `json:"avg_price"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	DirectRatio *float64 `json:"direct_ratio,omitempty"`
}

// RouteAnalysis is the route view of a cleaned dataset.
// PopularRoutes holds at most the top ten routes by flight count.
// The most expensive and cheapest pickers carry the full stat row and
// resolve ties to the first occurrence in ranked order.
type RouteAnalysis struct {
	PopularRoutes      []RouteStats `json:"popular_routes"`
	TotalRoutes        int          `json:"total_routes"`
	MostExpensiveRoute RouteStats   `json:"most_expensive_route"`
	CheapestRoute      RouteStats   `json:"cheapest_route"`
}

// TimeAnalysis is the temporal view of a cleaned dataset.
type TimeAnalysis struct {
	DailyFlightCounts map[string]int `json:"daily_flight_counts"` // YYYY-MM-DD to flight count
	WeeklyPattern     map[string]int `json:"weekly_pattern"`      // Weekday label to flight count
	BusiestDay        string         `json:"busiest_day"`         // YYYY-MM-DD, earliest on ties
	QuietestDay       string         `json:"quietest_day"`        // YYYY-MM-DD, earliest on ties
	AvgFlightsPerDay  float64        `json:"avg_flights_per_day"`
}

// PeakTimes holds the hourly departure distribution.
// Ties resolve to the earliest hour.
type PeakTimes struct {
	BusiestHour        int         `json:"busiest_hour"`
	QuietestHour       int         `json:"quietest_hour"`
	HourlyDistribution map[int]int `json:"hourly_distribution"`
}

// DemandAnalysis is the demand view of a cleaned dataset.
// PeakTimes is nil when no record carried a parsable departure time.
type DemandAnalysis struct {
	HighDemandRoutes       map[string]float64 `json:"high_demand_routes"` // Route to mean demand at or above threshold
	DemandThreshold        float64            `json:"demand_threshold"`   // 80th percentile of route mean demand
	PriceDemandCorrelation float64            `json:"price_demand_correlation"`
	PeakTimes              *PeakTimes         `json:"peak_times,omitempty"`
}

// AirlineStats holds the per-carrier aggregates.
// DirectRatio is nil when no flight of the carrier carried a direct flag.
type AirlineStats struct {
	Airline     string   `json:"airline"`
	FlightCount int      `json:"flight_count"`
	AvgPrice    float64  `json:"avg_price"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	DirectRatio *float64 `json:"direct_ratio,omitempty"`
}

// AirlineAnalysis is the carrier view of a cleaned dataset.
// Note is set when no record carried an airline, so consumers can tell
// "no data" apart from "no flights".
type AirlineAnalysis struct {
	Note                 string         `json:"note,omitempty"`
	AirlineRankings      []AirlineStats `json:"airline_rankings"`
	MostFlights          string         `json:"most_flights"`
	CheapestAirline      string         `json:"cheapest_airline"`
	MostExpensiveAirline string         `json:"most_expensive_airline"`
}

// AnalysisResult is the assembled output of a full analysis run. Search params
// and market data pass through verbatim from the caller.
type AnalysisResult struct {
	SearchParams        SearchParams    `json:"search_params"`
	Summary             SummaryAnalysis `json:"summary"`
	PriceAnalysis       PriceAnalysis   `json:"price_analysis"`
	RouteAnalysis       RouteAnalysis   `json:"route_analysis"`
	TimeAnalysis        TimeAnalysis    `json:"time_analysis"`
	DemandAnalysis      DemandAnalysis  `json:"demand_analysis"`
	AirlineAnalysis     AirlineAnalysis `json:"airline_analysis"`
	MarketData          map[string]any  `json:"market_data,omitempty"`
	ProcessingTimestamp time.Time       `json:"processing_timestamp"`
	TotalFlights        int             `json:"total_flights"`
	Flights             []Flight        `json:"flights,omitempty"`
}

// MinMaxRange holds just the endpoints of a price spread.
type MinMaxRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SummaryMetrics is the compact reshape of an AnalysisResult for
// dashboard-style consumers.
type SummaryMetrics struct {
	TotalFlights int         `json:"total_flights"`
	UniqueRoutes int         `json:"unique_routes"`
	AvgPrice     float64     `json:"avg_price"`
	PriceRange   MinMaxRange `json:"price_range"`
	DateRange    DateRange   `json:"date_range"`
	Airlines     int         `json:"airlines"`
}

// NewEmptyResult returns an AnalysisResult for a dataset with zero flights.
// Every view is present with empty collections so consumers never have to
// branch on missing keys.
func NewEmptyResult() *AnalysisResult {
	return &AnalysisResult{
		Summary: SummaryAnalysis{},
		PriceAnalysis: PriceAnalysis{
			ByDayOfWeek: map[string]float64{},
			ByMonth:     map[string]float64{},
		},
		RouteAnalysis: RouteAnalysis{
			PopularRoutes: []RouteStats{},
		},
		TimeAnalysis: TimeAnalysis{
			DailyFlightCounts: map[string]int{},
			WeeklyPattern:     map[string]int{},
		},
		DemandAnalysis: DemandAnalysis{
			HighDemandRoutes: map[string]float64{},
		},
		AirlineAnalysis: AirlineAnalysis{
			AirlineRankings: []AirlineStats{},
		},
	}
}
