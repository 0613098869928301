// Package view has the six aggregation views computed over cleaned flights.
//
// Every view is a pure function over the same flight slice. None depends on
// another's output, so the engine is free to compute them in parallel.
package view

import (
	"sort"

	"github.com/farescope/farescope/schema"
)

// pricesOf collects every flight price in input order.
func pricesOf(flights []schema.Flight) []float64 {
	prices := make([]float64, len(flights))
	for i, f := range flights {
		prices[i] = f.Price
	}
	return prices
}

// groupByRoute buckets flights by route, skipping flights whose route could
// not be derived because a code was missing.
func groupByRoute(flights []schema.Flight) map[string][]schema.Flight {
	groups := make(map[string][]schema.Flight)
	for _, f := range flights {
		if f.Route == "" {
			continue
		}
		groups[f.Route] = append(groups[f.Route], f)
	}
	return groups
}

// aggregatePrices computes the shared per-group price aggregates.
// The direct ratio is nil when no flight in the group carries the flag.
func aggregatePrices(group []schema.Flight) (count int, avg, minPrice, maxPrice float64, directRatio *float64) {
	count = len(group)
	if count == 0 {
		return 0, 0, 0, 0, nil
	}

	minPrice = group[0].Price
	maxPrice = group[0].Price
	sum := 0.0
	directKnown := 0
	directYes := 0

	for _, f := range group {
		if f.Price < minPrice {
			minPrice = f.Price
		}
		if f.Price > maxPrice {
			maxPrice = f.Price
		}
		sum += f.Price

		if f.Direct != nil {
			directKnown++
			if *f.Direct {
				directYes++
			}
		}
	}

	avg = sum / float64(count)
	if directKnown > 0 {
		ratio := float64(directYes) / float64(directKnown)
		directRatio = &ratio
	}
	return count, avg, minPrice, maxPrice, directRatio
}

// sortedStringKeys returns map keys in ascending order for deterministic scans.
func sortedStringKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedIntKeys returns map keys in ascending order for deterministic scans.
func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
