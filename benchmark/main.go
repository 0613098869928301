// Package main provides a comprehensive performance benchmarking tool for the Farescope CLI.
// It measures execution times across different dataset sizes and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - farescope binary installed and available in PATH
// - Writable dataset directory (datasets are generated on first use)
//
// Usage: go run benchmark/main.go [dataset-dir]
//
//	dataset-dir: Directory to hold generated benchmark datasets
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset     string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DataDir      string
	Timeout      time.Duration
	NoCacheRuns  int
	CacheRuns    int
	TestDatasets []string
	DatasetSizes map[string]int
	TrendRoute   string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [dataset-dir]\n", os.Args[0])
		os.Exit(1)
	}
	dataDir := os.Args[1]

	config := BenchmarkConfig{
		DataDir:      dataDir,
		Timeout:      5 * time.Minute,
		NoCacheRuns:  3,
		CacheRuns:    4,
		TestDatasets: []string{"1k", "10k", "100k"},
		DatasetSizes: map[string]int{
			"1k":   1000,
			"10k":  10000,
			"100k": 100000,
		},
		TrendRoute: "SYD-MEL",
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	if err := generateDatasets(config); err != nil {
		fmt.Printf("Dataset generation failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the farescope binary and dataset directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if farescope is available
	if _, err := exec.LookPath("farescope"); err != nil {
		return fmt.Errorf("farescope binary not found in PATH")
	}

	// Ensure the dataset directory exists
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("cannot create dataset directory %s: %w", config.DataDir, err)
	}

	return nil
}

// datasetPath returns the file path for a generated dataset label.
func datasetPath(config BenchmarkConfig, label string) string {
	return filepath.Join(config.DataDir, fmt.Sprintf("offers_%s.json", label))
}

// generateDatasets creates one reproducible dataset per configured size.
func generateDatasets(config BenchmarkConfig) error {
	for _, label := range config.TestDatasets {
		count := config.DatasetSizes[label]
		path := datasetPath(config, label)

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Dataset %s already exists, skipping generation\n", label)
			continue
		}

		fmt.Printf("Generating %s dataset (%d records)\n", label, count)
		cmd := exec.Command("farescope", "sample", "--count", strconv.Itoa(count), "--seed", "42", "--output-file", path)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("failed to generate dataset %s: %v\nOutput: %s", label, err, string(output))
		}
	}
	return nil
}

// clearResultCache drops all cached results via the CLI.
func clearResultCache() {
	clearCmd := exec.Command("farescope", "results", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	}
}

// runBenchmarks executes all benchmark tests across configured datasets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.TestDatasets), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, label := range config.TestDatasets {
		fmt.Printf("Benchmarking %s\n", label)

		dataPath := datasetPath(config, label)

		// Full analysis
		result := runBenchmarkSuite(config, label, dataPath, "analyze", "full analysis", "")
		results = append(results, result)

		// Route analysis
		result = runBenchmarkSuite(config, label, dataPath, "routes", "route analysis", "")
		results = append(results, result)

		// Trend analysis
		args := fmt.Sprintf("--route %s", config.TrendRoute)
		desc := fmt.Sprintf("trend analysis (%s)", config.TrendRoute)
		result = runBenchmarkSuite(config, label, dataPath, "trends", desc, args)
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, label, dataPath, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, label)

	// Results are cached by dataset and config, not by command, so each
	// suite clears first to keep its cold run cold.
	clearResultCache()

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, dataPath, command, extraArgs, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:     label,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a farescope command multiple times with specified cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, dataPath, command, extraArgs, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command, dataPath, "--cache-backend", cacheBackend}
	if extraArgs != "" {
		args = append(args, parseArgs(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("farescope", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

func parseArgs(argsStr string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range argsStr {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes && current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			} else if inQuotes {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Analysis completed in") &&
		strings.Contains(outputStr, "Cache backend:")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/farescope_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "analyze", "Full Analysis:")
	printCommandSummary(results, "routes", "Route Analysis:")
	printCommandSummary(results, "trends", "Trend Analysis:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-cache: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
