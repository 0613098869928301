// Package schema has models, constants and shared helpers for all parts of farescope.
package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawRecord represents a single flight offer as collected, before any cleaning.
// Fields mirror the loose shape of upstream feeds: the price may arrive as a
// number or a string, codes may be lowercase, and every field past the first
// four is optional.
type RawRecord struct {
	Price       any      `json:"price"`                      // Numeric or string price, cleaned later
	Origin      string   `json:"origin"`                     // Origin airport code, any casing
	Destination string   `json:"destination"`                // Destination airport code, any casing
	Date        string   `json:"date"`                       // Departure date in one of several layouts
	Time        string   `json:"time,omitempty"`             // Departure time as HH:MM, optional
	Airline     string   `json:"airline,omitempty"`          // Carrier name, optional
	Direct      *bool    `json:"direct,omitempty"`           // Whether the flight is non-stop, optional
	Duration    *int     `json:"duration_minutes,omitempty"` // Flight duration in minutes, optional
	DemandScore *float64 `json:"demand_score,omitempty"`     // Relative demand in [0,1], optional
	Source      string   `json:"source,omitempty"`           // Collector that produced the record, optional
}

// Fingerprint returns a canonical rendering of every raw field.
// Two records are duplicates exactly when their fingerprints match, so the
// rendering must distinguish an absent field from a zero value and a numeric
// price from its string spelling.
func (r RawRecord) Fingerprint() string {
	parts := []string{
		renderPrice(r.Price),
		r.Origin,
		r.Destination,
		r.Date,
		r.Time,
		r.Airline,
		renderBool(r.Direct),
		renderInt(r.Duration),
		renderFloat(r.DemandScore),
		r.Source,
	}
	return strings.Join(parts, "|")
}

func renderPrice(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return "s:" + p
	case float64:
		return "n:" + strconv.FormatFloat(p, 'g', -1, 64)
	case int:
		return "n:" + strconv.FormatFloat(float64(p), 'g', -1, 64)
	default:
		return fmt.Sprintf("?:%v", p)
	}
}

func renderBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func renderInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func renderFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// Flight represents a single cleaned flight offer with derived calendar fields.
// Every field that survives cleaning is trustworthy: the price is positive,
// the codes are uppercase, and the date parsed.
type Flight struct {
	Price       float64   `json:"price"`                      // Positive price after coercion
	Origin      string    `json:"origin"`                     // Uppercase origin airport code
	Destination string    `json:"destination"`                // Uppercase destination airport code
	Route       string    `json:"route"`                      // Origin and destination joined with a hyphen
	Date        time.Time `json:"date"`                       // Departure date at UTC midnight
	DayOfWeek   string    `json:"day_of_week"`                // English weekday label, e.g. "Monday"
	Month       string    `json:"month"`                      // English month label, e.g. "January"
	IsWeekend   bool      `json:"is_weekend"`                 // True for Saturday or Sunday departures
	Airline     string    `json:"airline,omitempty"`          // Carrier name when provided
	Direct      *bool     `json:"direct,omitempty"`           // Non-stop flag when provided
	Duration    *int      `json:"duration_minutes,omitempty"` // Duration in minutes when provided
	DemandScore *float64  `json:"demand_score,omitempty"`     // Demand in [0,1] when provided
	Hour        *int      `json:"hour,omitempty"`             // Departure hour when the time parsed
	Source      string    `json:"source,omitempty"`           // Collector that produced the record
}

// DateKey returns the flight date as a canonical YYYY-MM-DD key.
func (f Flight) DateKey() string {
	return f.Date.Format(DateKeyFormat)
}

// SearchParams describes the query a dataset was collected for. The analysis
// carries it through untouched so downstream consumers can tell result sets apart.
type SearchParams struct {
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers,omitempty"`
}
