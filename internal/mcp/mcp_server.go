// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/farescope/farescope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Farescope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Farescope Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_flights ---
	s.AddTool(mcp.NewTool("analyze_flights",
		mcp.WithDescription("Clean a flight offer dataset and run the full multi-view price analysis."),
		mcp.WithString("data_path", mcp.Description("Path to the dataset (.json, .csv or .xlsx). A generated sample dataset is analyzed if not specified.")),
		mcp.WithString("origin", mcp.Description("Origin airport code to record in the search parameters.")),
		mcp.WithString("destination", mcp.Description("Destination airport code to record in the search parameters.")),
	), h.handleAnalyzeFlights)

	// --- 2. Tool: get_flight_summary ---
	s.AddTool(mcp.NewTool("get_flight_summary",
		mcp.WithDescription("Return headline metrics (flight totals, price range, date range, carrier count) for a flight offer dataset."),
		mcp.WithString("data_path", mcp.Description("Path to the dataset (.json, .csv or .xlsx).")),
	), h.handleGetFlightSummary)

	// --- 3. Tool: get_route_rankings ---
	s.AddTool(mcp.NewTool("get_route_rankings",
		mcp.WithDescription("Return routes ranked by flight count, with price spreads and direct-flight ratios."),
		mcp.WithString("data_path", mcp.Description("Path to the dataset (.json, .csv or .xlsx).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked routes returned.")),
	), h.handleGetRouteRankings)

	// --- 4. Tool: get_price_trends ---
	s.AddTool(mcp.NewTool("get_price_trends",
		mcp.WithDescription("Return the average fare per calendar day and the overall direction (up, down, stable)."),
		mcp.WithString("data_path", mcp.Description("Path to the dataset (.json, .csv or .xlsx).")),
		mcp.WithString("route", mcp.Description("Restrict the trend to one route, e.g. 'SYD-MEL'.")),
	), h.handleGetPriceTrends)

	return s
}

// StartMCPServer starts the Farescope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
