package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
)

// currentCacheVersion defines the version of the cached result encoding
const currentCacheVersion = 1

// cachedAnalyze computes the assembled result with a result-cache fast path.
// Cleaning always runs on the caller side; the cache only skips the view
// computation and assembly. The raw records feed the key so a changed
// dataset can never serve a stale result.
func cachedAnalyze(cfg *contract.Config, records []schema.RawRecord, flights []schema.Flight, mgr contract.StoreManager) (*schema.AnalysisResult, error) {
	results := mgr.GetResultStore()
	if results == nil || cfg.NoCache {
		// Fallback to direct computation
		return analyze(cfg, flights)
	}

	key := generateCacheKey(cfg, records)

	// Check for cache hit
	if result := checkCacheHit(results, key); result != nil {
		return result, nil
	}

	// Cache miss: compute and store
	return computeAndStore(cfg, flights, results, key)
}

// checkCacheHit attempts to retrieve and validate a cached result
func checkCacheHit(results contract.ResultStore, key string) *schema.AnalysisResult {
	data, version, ts, err := results.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= contract.CacheTTL {
			var result schema.AnalysisResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// computeAndStore computes the result and stores it in cache
func computeAndStore(cfg *contract.Config, flights []schema.Flight, results contract.ResultStore, key string) (*schema.AnalysisResult, error) {
	result, err := analyze(cfg, flights)
	if err != nil {
		return nil, err
	}

	// Store in cache
	if data, err := json.Marshal(result); err == nil {
		_ = results.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return result, nil
}

// generateCacheKey creates a unique key from the dataset and the analysis
// parameters. Record fingerprints are hashed in sorted order so load order
// never changes the key.
func generateCacheKey(cfg *contract.Config, records []schema.RawRecord) string {
	fingerprints := make([]string, len(records))
	for i, r := range records {
		fingerprints[i] = r.Fingerprint()
	}
	sort.Strings(fingerprints)

	h := sha256.New()
	for _, fp := range fingerprints {
		h.Write([]byte(fp))
		h.Write([]byte{'\n'})
	}
	fmt.Fprintf(h, "%s:%s:%s:%s:%d:%s",
		cfg.Origin,
		cfg.Destination,
		cfg.DepartureDate,
		cfg.ReturnDate,
		cfg.Passengers,
		cfg.MarketDataPath,
	)
	return fmt.Sprintf("%x", h.Sum(nil))
}
