package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/foliohq/folio-portal/internal/models"
)

// APIError is a non-success response from the market API. Detail carries
// the server-provided message when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("market API returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("market API returned %d", e.StatusCode)
}

// MarketClient communicates with the market data REST API.
type MarketClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMarketClient creates a new client targeting the given API base URL.
func NewMarketClient(baseURL string) *MarketClient {
	return &MarketClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// BaseURL returns the configured API base URL.
func (c *MarketClient) BaseURL() string {
	return c.baseURL
}

// GetStock fetches and validates a single quote.
// GET /api/stock/{symbol}
func (c *MarketClient) GetStock(ctx context.Context, symbol string) (*models.Quote, error) {
	var quote models.Quote
	if err := c.getJSON(ctx, "/api/stock/"+url.PathEscape(symbol), &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetPrices fetches a batch price snapshot for the given symbols.
// GET /api/portfolio/prices?symbols=CSV
func (c *MarketClient) GetPrices(ctx context.Context, symbols []string) (models.PriceMap, error) {
	if len(symbols) == 0 {
		return models.PriceMap{}, nil
	}
	var result models.PriceResponse
	path := "/api/portfolio/prices?symbols=" + url.QueryEscape(strings.Join(symbols, ","))
	if err := c.getJSON(ctx, path, &result); err != nil {
		return nil, err
	}
	if result.Prices == nil {
		result.Prices = models.PriceMap{}
	}
	return result.Prices, nil
}

// GetPortfolio fetches the server-authoritative portfolio view.
// GET /api/portfolio
func (c *MarketClient) GetPortfolio(ctx context.Context) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := c.getJSON(ctx, "/api/portfolio", &portfolio); err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// AddHolding adds a position on the server.
// POST /api/portfolio/add?symbol&shares&cost_average
func (c *MarketClient) AddHolding(ctx context.Context, symbol string, shares, costAverage float64) error {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("shares", formatFloat(shares))
	q.Set("cost_average", formatFloat(costAverage))
	return c.doMutation(ctx, http.MethodPost, "/api/portfolio/add?"+q.Encode())
}

// UpdateHolding replaces a position on the server.
// PUT /api/portfolio/update/{symbol}?shares&cost_average
func (c *MarketClient) UpdateHolding(ctx context.Context, symbol string, shares, costAverage float64) error {
	q := url.Values{}
	q.Set("shares", formatFloat(shares))
	q.Set("cost_average", formatFloat(costAverage))
	return c.doMutation(ctx, http.MethodPut, "/api/portfolio/update/"+url.PathEscape(symbol)+"?"+q.Encode())
}

// RemoveHolding deletes a position on the server.
// DELETE /api/portfolio/remove/{symbol}
func (c *MarketClient) RemoveHolding(ctx context.Context, symbol string) error {
	return c.doMutation(ctx, http.MethodDelete, "/api/portfolio/remove/"+url.PathEscape(symbol))
}

// GetNews fetches headlines and sentiment for a symbol.
// GET /api/news/{symbol}
func (c *MarketClient) GetNews(ctx context.Context, symbol string) (*models.SymbolNews, error) {
	var news models.SymbolNews
	if err := c.getJSON(ctx, "/api/news/"+url.PathEscape(symbol), &news); err != nil {
		return nil, err
	}
	return &news, nil
}

// GetMarketFeed fetches the general market headline feed.
// GET /api/market-feed
func (c *MarketClient) GetMarketFeed(ctx context.Context) (*models.MarketFeed, error) {
	var feed models.MarketFeed
	if err := c.getJSON(ctx, "/api/market-feed", &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// GetSectors fetches the sector performance snapshot.
// GET /api/sectors
func (c *MarketClient) GetSectors(ctx context.Context) (*models.SectorSnapshot, error) {
	var snapshot models.SectorSnapshot
	if err := c.getJSON(ctx, "/api/sectors", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetPortfolioAnalysis fetches the generated portfolio narrative.
// GET /api/portfolio-analysis?symbols=CSV
func (c *MarketClient) GetPortfolioAnalysis(ctx context.Context, symbols []string) (*models.Analysis, error) {
	path := "/api/portfolio-analysis"
	if len(symbols) > 0 {
		path += "?symbols=" + url.QueryEscape(strings.Join(symbols, ","))
	}
	var analysis models.Analysis
	if err := c.getJSON(ctx, path, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GetMarketContext fetches the generated market overview narrative.
// GET /api/market-context
func (c *MarketClient) GetMarketContext(ctx context.Context) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := c.getJSON(ctx, "/api/market-context", &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *MarketClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach market API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Detail: extractDetail(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *MarketClient) doMutation(ctx context.Context, method, path string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach market API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Detail: extractDetail(body)}
	}
	return nil
}

// extractDetail pulls the "detail" field from an error body when present,
// falling back to the raw body text.
func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(body))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
