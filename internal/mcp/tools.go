package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/foliohq/folio-portal/internal/client"
	"github.com/foliohq/folio-portal/internal/config"
	"github.com/foliohq/folio-portal/internal/portfolio"
)

// RegisterTools registers the portfolio tools on the MCP server and
// returns the tool count.
func RegisterTools(s *server.MCPServer, service *portfolio.Service, mc *client.MarketClient) int {
	s.AddTool(getPortfolioTool(), getPortfolioHandler(service))
	s.AddTool(addHoldingTool(), addHoldingHandler(service))
	s.AddTool(removeHoldingTool(), removeHoldingHandler(service))
	s.AddTool(getMarketContextTool(), getMarketContextHandler(mc))
	s.AddTool(versionTool(), versionHandler())
	return 5
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return errorResult("failed to marshal result"), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
	}, nil
}

func getPortfolioTool() mcp.Tool {
	return mcp.NewTool("get_portfolio",
		mcp.WithDescription("Get the current portfolio: holdings with live prices, value, and P/L."),
	)
}

func getPortfolioHandler(service *portfolio.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, err := service.Fetch(ctx)
		if err != nil {
			return errorResult("failed to fetch portfolio: " + err.Error()), nil
		}
		return jsonResult(p)
	}
}

func addHoldingTool() mcp.Tool {
	return mcp.NewTool("add_holding",
		mcp.WithDescription("Add shares of a symbol to the portfolio. Merges into an existing position with a weighted-average cost."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Ticker symbol, e.g. AAPL")),
		mcp.WithNumber("shares", mcp.Description("Share count; defaults to 1")),
		mcp.WithNumber("cost_average", mcp.Description("Average price paid per share; 0 means not set")),
	)
}

func addHoldingHandler(service *portfolio.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol := r.GetString("symbol", "")
		if symbol == "" {
			return errorResult("symbol is required"), nil
		}
		shares := r.GetFloat("shares", 0)
		costAverage := r.GetFloat("cost_average", 0)

		if err := service.Add(ctx, symbol, shares, costAverage); err != nil {
			return errorResult("failed to add holding: " + err.Error()), nil
		}
		return jsonResult(map[string]string{"status": "ok"})
	}
}

func removeHoldingTool() mcp.Tool {
	return mcp.NewTool("remove_holding",
		mcp.WithDescription("Remove a symbol's position from the portfolio."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Ticker symbol to remove")),
	)
}

func removeHoldingHandler(service *portfolio.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol := r.GetString("symbol", "")
		if symbol == "" {
			return errorResult("symbol is required"), nil
		}
		if err := service.Remove(ctx, symbol); err != nil {
			return errorResult("failed to remove holding: " + err.Error()), nil
		}
		return jsonResult(map[string]string{"status": "ok"})
	}
}

func getMarketContextTool() mcp.Tool {
	return mcp.NewTool("get_market_context",
		mcp.WithDescription("Get the generated market overview narrative."),
	)
}

func getMarketContextHandler(mc *client.MarketClient) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		analysis, err := mc.GetMarketContext(ctx)
		if err != nil {
			return errorResult("failed to fetch market context: " + err.Error()), nil
		}
		return jsonResult(analysis)
	}
}

func versionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get folio-portal version info. Use this to verify connectivity."),
	)
}

func versionHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]string{
			"version":    config.GetVersion(),
			"build":      config.GetBuild(),
			"git_commit": config.GetGitCommit(),
		})
	}
}
