package core

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/farescope/farescope/core/clean"
	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/internal/flightdata"
	"github.com/farescope/farescope/schema"
)

// ExecuteCheck runs the data quality gate for CI/CD use.
// It cleans the dataset, checks the drop accounting against the configured
// thresholds, and returns a non-zero exit code when a threshold is violated.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()

	source := flightdata.NewSource(cfg)
	records, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records from %s: %w", source.Describe(), err)
	}

	_, report := clean.Normalize(records)
	result := buildCheckResult(report, cfg)
	printCheckResult(&result, time.Since(start))

	// Return error exit code if check failed
	if !result.Passed {
		os.Exit(1)
	}
	return nil
}

// buildCheckResult evaluates the drop accounting against the thresholds.
// The ratio counts every discarded record, duplicate collapses included.
func buildCheckResult(report schema.CleanReport, cfg *contract.Config) schema.CheckResult {
	result := schema.CheckResult{
		TotalRecords:  report.TotalRecords,
		KeptRecords:   report.KeptRecords,
		DroppedTotal:  report.DroppedTotal(),
		DropRatio:     report.DropRatio(),
		DropsByReason: report.DropsByReason,
		MinRecords:    cfg.MinRecords,
		MaxDropRatio:  cfg.MaxDropRatio,
	}

	if result.KeptRecords < cfg.MinRecords {
		result.Failures = append(result.Failures, schema.CheckFailure{
			Rule:      "min-records",
			Observed:  float64(result.KeptRecords),
			Threshold: float64(cfg.MinRecords),
		})
	}
	if result.DropRatio > cfg.MaxDropRatio {
		result.Failures = append(result.Failures, schema.CheckFailure{
			Rule:      "max-drop-ratio",
			Observed:  result.DropRatio,
			Threshold: cfg.MaxDropRatio,
		})
	}

	result.Passed = len(result.Failures) == 0
	return result
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *schema.CheckResult, duration time.Duration) {
	printCheckHeader(result, duration)

	if result.Passed {
		printCheckSuccess(result)
	} else {
		printCheckFailure(result)
	}

	printDropsByReason(result)
}

// printCheckHeader prints the common header information for check results.
func printCheckHeader(result *schema.CheckResult, duration time.Duration) {
	fmt.Println("Data Quality Check Results:")

	// Define labels and values for dynamic padding
	labels := []string{"Input:", "Kept:", "Dropped:", "Thresholds:"}
	values := []any{
		result.TotalRecords,
		result.KeptRecords,
		fmt.Sprintf("%d (ratio %.2f)", result.DroppedTotal, result.DropRatio),
		fmt.Sprintf("min-records=%d, max-drop-ratio=%.2f", result.MinRecords, result.MaxDropRatio),
	}

	// Find the longest label for consistent padding
	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}

	// Print each label-value pair with consistent padding
	for i, label := range labels {
		fmt.Printf("  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Println()

	fmt.Printf("Checked %d records in %v\n\n", result.TotalRecords, duration)
}

// printCheckSuccess prints the success case output.
func printCheckSuccess(result *schema.CheckResult) {
	fmt.Printf("✅ Dataset passed quality checks: kept %d of %d records\n", result.KeptRecords, result.TotalRecords)
}

// printCheckFailure prints the failure case output.
func printCheckFailure(result *schema.CheckResult) {
	fmt.Printf("❌ Quality check failed: %d violation(s) found\n\n", len(result.Failures))

	for _, f := range result.Failures {
		fmt.Printf("  - %s: observed %s, threshold %s\n",
			f.Rule,
			formatCheckValue(f.Rule, f.Observed),
			formatCheckValue(f.Rule, f.Threshold))
	}
}

// printDropsByReason lists per-reason drop counts in stable order.
func printDropsByReason(result *schema.CheckResult) {
	fmt.Println()
	if result.DroppedTotal == 0 {
		fmt.Println("No records were dropped during cleaning.")
		return
	}

	fmt.Println("Drops by reason:")
	for _, reason := range sortedDropReasons(result.DropsByReason) {
		fmt.Printf("  %s: %d\n", reason, result.DropsByReason[reason])
	}
}

// formatCheckValue renders a threshold or observation for its rule:
// record counts as integers, ratios with two decimals.
func formatCheckValue(rule string, v float64) string {
	if rule == "min-records" {
		return strconv.Itoa(int(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// sortedDropReasons returns drop reasons in alphabetical order.
func sortedDropReasons(drops map[schema.DropReason]int) []schema.DropReason {
	reasons := make([]schema.DropReason, 0, len(drops))
	for reason := range drops {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	return reasons
}
