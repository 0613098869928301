package flightdata

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/farescope/farescope/internal/contract"
)

// MarketTrends returns the static market context that rides along with
// analysis results as the opaque market_data mapping.
func MarketTrends() map[string]any {
	return map[string]any{
		"popular_routes": []map[string]any{
			{"route": "SYD-MEL", "volume": 1250, "avg_price": 165, "trend": "up"},
			{"route": "MEL-SYD", "volume": 1180, "avg_price": 158, "trend": "stable"},
			{"route": "SYD-BNE", "volume": 890, "avg_price": 220, "trend": "down"},
			{"route": "BNE-SYD", "volume": 845, "avg_price": 215, "trend": "up"},
			{"route": "MEL-BNE", "volume": 650, "avg_price": 275, "trend": "stable"},
		},
		"seasonal_trends": map[string]any{
			"peak_months":       []string{"December", "January", "July"},
			"low_months":        []string{"February", "March", "August"},
			"price_variation":   "15-30%",
			"booking_lead_time": "21-45 days",
		},
		"last_updated": time.Now().UTC().Format(time.RFC3339),
	}
}

// LoadMarketData reads a market context mapping from a JSON file.
func LoadMarketData(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market data: %w", err)
	}
	var market map[string]any
	if err := json.Unmarshal(data, &market); err != nil {
		return nil, fmt.Errorf("failed to parse market data: %w", err)
	}
	return market, nil
}

// ResolveMarketData returns the market context for a run: the JSON
// override when one is configured, the static trends otherwise.
func ResolveMarketData(cfg *contract.Config) (map[string]any, error) {
	if cfg.MarketDataPath == "" {
		return MarketTrends(), nil
	}
	return LoadMarketData(cfg.MarketDataPath)
}
