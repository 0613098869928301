package core

import (
	"testing"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCheckResult(t *testing.T) {
	tests := []struct {
		name         string
		report       schema.CleanReport
		minRecords   int
		maxDropRatio float64
		wantPassed   bool
		wantRules    []string
	}{
		{
			name: "clean dataset passes",
			report: schema.CleanReport{
				TotalRecords:  10,
				KeptRecords:   10,
				DropsByReason: map[schema.DropReason]int{},
			},
			minRecords:   1,
			maxDropRatio: 0.5,
			wantPassed:   true,
		},
		{
			name: "too few kept records",
			report: schema.CleanReport{
				TotalRecords:  10,
				KeptRecords:   3,
				DropsByReason: map[schema.DropReason]int{schema.DropBadPrice: 7},
			},
			minRecords:   5,
			maxDropRatio: 0.9,
			wantPassed:   false,
			wantRules:    []string{"min-records"},
		},
		{
			name: "drop ratio exceeded",
			report: schema.CleanReport{
				TotalRecords:  10,
				KeptRecords:   4,
				DropsByReason: map[schema.DropReason]int{schema.DropBadDate: 6},
			},
			minRecords:   1,
			maxDropRatio: 0.5,
			wantPassed:   false,
			wantRules:    []string{"max-drop-ratio"},
		},
		{
			name: "both thresholds violated",
			report: schema.CleanReport{
				TotalRecords: 10,
				KeptRecords:  2,
				DropsByReason: map[schema.DropReason]int{
					schema.DropBadPrice:  4,
					schema.DropDuplicate: 4,
				},
			},
			minRecords:   5,
			maxDropRatio: 0.5,
			wantPassed:   false,
			wantRules:    []string{"min-records", "max-drop-ratio"},
		},
		{
			name: "empty input fails min-records",
			report: schema.CleanReport{
				DropsByReason: map[schema.DropReason]int{},
			},
			minRecords:   1,
			maxDropRatio: 0.5,
			wantPassed:   false,
			wantRules:    []string{"min-records"},
		},
		{
			name: "empty input passes with zero min-records",
			report: schema.CleanReport{
				DropsByReason: map[schema.DropReason]int{},
			},
			minRecords:   0,
			maxDropRatio: 0.5,
			wantPassed:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{MinRecords: tt.minRecords, MaxDropRatio: tt.maxDropRatio}

			result := buildCheckResult(tt.report, cfg)

			assert.Equal(t, tt.wantPassed, result.Passed)
			var rules []string
			for _, f := range result.Failures {
				rules = append(rules, f.Rule)
			}
			assert.Equal(t, tt.wantRules, rules)
		})
	}
}

func TestBuildCheckResultFailureValues(t *testing.T) {
	report := schema.CleanReport{
		TotalRecords:  4,
		KeptRecords:   1,
		DropsByReason: map[schema.DropReason]int{schema.DropBadPrice: 3},
	}
	cfg := &contract.Config{MinRecords: 2, MaxDropRatio: 0.5}

	result := buildCheckResult(report, cfg)

	require.Len(t, result.Failures, 2)
	assert.Equal(t, "min-records", result.Failures[0].Rule)
	assert.Equal(t, 1.0, result.Failures[0].Observed)
	assert.Equal(t, 2.0, result.Failures[0].Threshold)
	assert.Equal(t, "max-drop-ratio", result.Failures[1].Rule)
	assert.InDelta(t, 0.75, result.Failures[1].Observed, 1e-9)
	assert.Equal(t, 0.5, result.Failures[1].Threshold)
	assert.Equal(t, 3, result.DroppedTotal)
	assert.InDelta(t, 0.75, result.DropRatio, 1e-9)
}

func TestPrintCheckResult(t *testing.T) {
	// Test that printCheckResult doesn't panic with various inputs
	tests := []struct {
		name   string
		result schema.CheckResult
	}{
		{
			name: "all passed",
			result: schema.CheckResult{
				Passed:        true,
				TotalRecords:  10,
				KeptRecords:   10,
				MinRecords:    1,
				MaxDropRatio:  0.5,
				DropsByReason: map[schema.DropReason]int{},
			},
		},
		{
			name: "some failed",
			result: schema.CheckResult{
				Passed:       false,
				TotalRecords: 10,
				KeptRecords:  2,
				DroppedTotal: 8,
				DropRatio:    0.8,
				MinRecords:   5,
				MaxDropRatio: 0.5,
				DropsByReason: map[schema.DropReason]int{
					schema.DropDuplicate: 2,
					schema.DropBadPrice:  4,
					schema.DropBadDate:   2,
				},
				Failures: []schema.CheckFailure{
					{Rule: "min-records", Observed: 2, Threshold: 5},
					{Rule: "max-drop-ratio", Observed: 0.8, Threshold: 0.5},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Just ensure it doesn't panic
			assert.NotPanics(t, func() {
				printCheckResult(&tt.result, time.Second)
			})
		})
	}
}

func TestFormatCheckValue(t *testing.T) {
	assert.Equal(t, "2", formatCheckValue("min-records", 2))
	assert.Equal(t, "0.76", formatCheckValue("max-drop-ratio", 0.756))
}

func TestSortedDropReasons(t *testing.T) {
	drops := map[schema.DropReason]int{
		schema.DropDuplicate: 1,
		schema.DropBadDate:   2,
		schema.DropBadPrice:  3,
	}

	reasons := sortedDropReasons(drops)

	assert.Equal(t, []schema.DropReason{
		schema.DropBadDate,
		schema.DropBadPrice,
		schema.DropDuplicate,
	}, reasons)
}
