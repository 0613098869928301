// Package clean has the cleaning logic for raw flight offer records.
package clean

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/farescope/farescope/schema"
)

// dateLayouts are the accepted departure date layouts, tried in order.
// Day-first layouts match the upstream feeds for this market.
var dateLayouts = []string{
	schema.DateKeyFormat, // 2006-01-02
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
}

// Normalize validates and coerces raw records into cleaned flights.
// Duplicates collapse to one record, prices must coerce to a positive
// number, and dates must parse; everything else degrades field by field.
// The output order is deterministic but unrelated to the input order.
// An empty result is not an error, it is the degenerate dataset.
func Normalize(records []schema.RawRecord) ([]schema.Flight, schema.CleanReport) {
	report := schema.CleanReport{
		TotalRecords:  len(records),
		DropsByReason: make(map[schema.DropReason]int),
	}

	// 1. Collapse field-wise identical records.
	deduped, duplicates := dedupeRecords(records)
	if duplicates > 0 {
		report.DropsByReason[schema.DropDuplicate] = duplicates
	}

	// 2. Coerce and derive each surviving record.
	flights := make([]schema.Flight, 0, len(deduped))
	for _, raw := range deduped {
		flight, reason, ok := buildFlight(raw)
		if !ok {
			report.DropsByReason[reason]++
			continue
		}
		flights = append(flights, flight)
	}

	report.KeptRecords = len(flights)
	return flights, report
}

// dedupeRecords collapses field-wise identical records and orders the
// survivors by fingerprint so repeated runs yield identical output.
func dedupeRecords(records []schema.RawRecord) ([]schema.RawRecord, int) {
	byFingerprint := make(map[string]schema.RawRecord, len(records))
	fingerprints := make([]string, 0, len(records))
	for _, r := range records {
		fp := r.Fingerprint()
		if _, seen := byFingerprint[fp]; seen {
			continue
		}
		byFingerprint[fp] = r
		fingerprints = append(fingerprints, fp)
	}
	sort.Strings(fingerprints)

	deduped := make([]schema.RawRecord, 0, len(fingerprints))
	for _, fp := range fingerprints {
		deduped = append(deduped, byFingerprint[fp])
	}
	return deduped, len(records) - len(deduped)
}

// buildFlight coerces one raw record into a Flight, reporting the drop
// reason when the record cannot survive cleaning. A missing origin or
// destination is tolerated; such flights keep an empty route and are
// skipped by route-grouped views only.
func buildFlight(raw schema.RawRecord) (schema.Flight, schema.DropReason, bool) {
	price, ok := coercePrice(raw.Price)
	if !ok || price <= 0 {
		return schema.Flight{}, schema.DropBadPrice, false
	}

	date, ok := parseDate(raw.Date)
	if !ok {
		return schema.Flight{}, schema.DropBadDate, false
	}

	origin := strings.ToUpper(strings.TrimSpace(raw.Origin))
	destination := strings.ToUpper(strings.TrimSpace(raw.Destination))

	flight := schema.Flight{
		Price:       price,
		Origin:      origin,
		Destination: destination,
		Date:        date,
		DayOfWeek:   date.Weekday().String(),
		Month:       date.Month().String(),
		IsWeekend:   isWeekend(date),
		Airline:     strings.TrimSpace(raw.Airline),
		Direct:      copyBool(raw.Direct),
		Duration:    copyInt(raw.Duration),
		DemandScore: copyFloat(raw.DemandScore),
		Hour:        parseClock(raw.Time),
		Source:      strings.TrimSpace(raw.Source),
	}
	if origin != "" && destination != "" {
		flight.Route = schema.RouteKey(origin, destination)
	}
	return flight, "", true
}

// coercePrice accepts numeric prices as-is and parses string prices after
// trimming whitespace. Non-finite values never pass.
func coercePrice(v any) (float64, bool) {
	switch p := v.(type) {
	case float64:
		return p, isFinite(p)
	case int:
		return float64(p), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, false
		}
		return f, isFinite(f)
	default:
		return 0, false
	}
}

// parseDate tries each accepted layout in order, then falls back to
// RFC3339 for timestamped feeds. The result is pinned to UTC midnight.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnightUTC(t), true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return midnightUTC(t.UTC()), true
	}
	return time.Time{}, false
}

// parseClock derives the departure hour from an HH:MM string.
// Absent or malformed times yield a nil hour rather than zero.
func parseClock(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(schema.ClockFormat, s)
	if err != nil {
		return nil
	}
	h := t.Hour()
	return &h
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func copyBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	b := *v
	return &b
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}
