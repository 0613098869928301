package flightdata

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// Generator tuning. Prices swing around the route base price with a
// bounded jitter, then pick up weekend and peak-hour premiums.
const (
	defaultBasePrice   = 300.0
	samplePriceJitter  = 0.15
	weekendMultiplier  = 1.2
	peakHourMultiplier = 1.15

	sampleFlightsPerDayMin = 3
	sampleFlightsPerDayMax = 8
	sampleHourMin          = 6
	sampleHourMax          = 22
	sampleDurationMin      = 90
	sampleDurationMax      = 300
	sampleDemandMin        = 0.30
	sampleDemandMax        = 1.00

	sampleSourceName = "sample"
)

// sampleRoutes lists the directed routes the generator covers, in a
// fixed order so the same seed always yields the same dataset.
var sampleRoutes = []string{
	"SYD-MEL", "MEL-SYD",
	"SYD-BNE", "BNE-SYD",
	"MEL-BNE", "BNE-MEL",
	"SYD-PER", "PER-SYD",
	"MEL-ADL", "ADL-MEL",
}

// routeBasePrices holds the base fare per directed route.
var routeBasePrices = map[string]float64{
	"SYD-MEL": 150, "MEL-SYD": 150,
	"SYD-BNE": 200, "BNE-SYD": 200,
	"MEL-BNE": 250, "BNE-MEL": 250,
	"SYD-PER": 400, "PER-SYD": 400,
	"MEL-ADL": 180, "ADL-MEL": 180,
}

// sampleAirlines lists the carriers the generator draws from.
var sampleAirlines = []string{"Jetstar", "Qantas", "Virgin Australia", "Rex"}

// SampleOptions controls the synthetic dataset generator.
type SampleOptions struct {
	Count       int       // Maximum number of records to generate
	Seed        int64     // RNG seed, the same seed yields the same dataset
	Origin      string    // Restrict routes to this origin when set
	Destination string    // Restrict routes to this destination when set
	StartDate   time.Time // First departure day, today when zero
	EndDate     time.Time // Last departure day inclusive, open-ended when zero
}

// SampleOptionsFromConfig assembles generator options from a validated config.
func SampleOptionsFromConfig(cfg *contract.Config) SampleOptions {
	opts := SampleOptions{
		Count:       cfg.SampleCount,
		Seed:        cfg.SampleSeed,
		Origin:      cfg.Origin,
		Destination: cfg.Destination,
	}
	if t, err := time.Parse(schema.DateKeyFormat, cfg.DepartureDate); err == nil {
		opts.StartDate = t.UTC()
	}
	if t, err := time.Parse(schema.DateKeyFormat, cfg.ReturnDate); err == nil {
		opts.EndDate = t.UTC()
	}
	return opts
}

// GenerateSample produces a deterministic synthetic dataset of raw
// flight records. Generation walks day by day from the start date,
// emitting a few flights per route per day, and stops once the record
// count is reached or the explicit end date passes.
func GenerateSample(opts SampleOptions) []schema.RawRecord {
	rng := rand.New(rand.NewSource(opts.Seed))
	routes := sampleRouteSet(opts.Origin, opts.Destination)

	start := opts.StartDate
	if start.IsZero() {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	count := opts.Count
	if count <= 0 {
		count = contract.DefaultSampleCount
	}

	records := make([]schema.RawRecord, 0, count)
	for day := start; ; day = day.AddDate(0, 0, 1) {
		if !opts.EndDate.IsZero() && day.After(opts.EndDate) {
			break
		}
		for _, route := range routes {
			flights := sampleFlightsPerDayMin + rng.Intn(sampleFlightsPerDayMax-sampleFlightsPerDayMin+1)
			for range flights {
				records = append(records, sampleRecord(rng, route, day))
				if len(records) == count {
					return records
				}
			}
		}
	}
	return records
}

// sampleRouteSet applies origin and destination restrictions to the
// covered routes. A restriction that matches nothing still yields one
// synthesized route so the generator never returns an empty dataset.
func sampleRouteSet(origin, destination string) []string {
	if origin == "" && destination == "" {
		return sampleRoutes
	}
	routes := make([]string, 0, len(sampleRoutes))
	for _, route := range sampleRoutes {
		o, d, _ := strings.Cut(route, "-")
		if origin != "" && o != origin {
			continue
		}
		if destination != "" && d != destination {
			continue
		}
		routes = append(routes, route)
	}
	if len(routes) > 0 {
		return routes
	}
	switch {
	case origin != "" && destination != "":
		return []string{schema.RouteKey(origin, destination)}
	case origin != "":
		return []string{schema.RouteKey(origin, "SYD")}
	default:
		return []string{schema.RouteKey("SYD", destination)}
	}
}

// sampleRecord draws one raw flight record for a route and day.
func sampleRecord(rng *rand.Rand, route string, day time.Time) schema.RawRecord {
	origin, destination, _ := strings.Cut(route, "-")
	base, ok := routeBasePrices[route]
	if !ok {
		base = defaultBasePrice
	}

	hour := sampleHourMin + rng.Intn(sampleHourMax-sampleHourMin+1)
	minute := rng.Intn(60)

	multiplier := 1 + (rng.Float64()*2-1)*samplePriceJitter
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		multiplier *= weekendMultiplier
	}
	if isPeakHour(hour) {
		multiplier *= peakHourMultiplier
	}

	direct := rng.Intn(3) < 2 // Two out of three flights are non-stop
	duration := sampleDurationMin + rng.Intn(sampleDurationMax-sampleDurationMin+1)
	demand := sampleDemandMin + rng.Float64()*(sampleDemandMax-sampleDemandMin)

	return schema.RawRecord{
		Price:       math.Round(base * multiplier),
		Origin:      origin,
		Destination: destination,
		Date:        day.Format(schema.DateKeyFormat),
		Time:        fmt.Sprintf("%02d:%02d", hour, minute),
		Airline:     sampleAirlines[rng.Intn(len(sampleAirlines))],
		Direct:      &direct,
		Duration:    &duration,
		DemandScore: &demand,
		Source:      sampleSourceName,
	}
}

// isPeakHour reports whether an hour falls into the morning or evening
// commuter window.
func isPeakHour(hour int) bool {
	return (hour >= 6 && hour <= 9) || (hour >= 17 && hour <= 20)
}
