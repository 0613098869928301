package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/farescope/farescope/core"
	"github.com/farescope/farescope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleAnalyzeFlights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}
	if o := request.GetString("origin", ""); o != "" {
		cfg.Origin = strings.ToUpper(strings.TrimSpace(o))
	}
	if d := request.GetString("destination", ""); d != "" {
		cfg.Destination = strings.ToUpper(strings.TrimSpace(d))
	}

	result, _, err := core.GetAnalysisResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFlightSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}

	result, _, err := core.GetAnalysisResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	metrics := core.Project(result)
	jsonData, _ := json.MarshalIndent(metrics, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRouteRankings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}

	result, _, err := core.GetAnalysisResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	// The limit trims this tool's listing only, the underlying view is untouched
	view := result.RouteAnalysis
	if l := request.GetInt("limit", 0); l > 0 && l < len(view.PopularRoutes) {
		view.PopularRoutes = view.PopularRoutes[:l]
	}

	jsonData, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPriceTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data_path", ""); p != "" {
		cfg.DataPath = p
	}

	// Re-validate specifically for route normalization
	if r := request.GetString("route", ""); r != "" {
		route, err := contract.NormalizeRoute(r)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid trend parameters: %v", err)), nil
		}
		cfg.TrendRoute = route
	}

	trend, _, err := core.GetTrendResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(trend, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
