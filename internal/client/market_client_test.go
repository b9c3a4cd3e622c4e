package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetStock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stock/AAPL" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"AAPL","name":"Apple Inc.","price":195.5,"change":1.2,"change_percent":0.62}`))
	}))
	defer server.Close()

	c := NewMarketClient(server.URL)
	quote, err := c.GetStock(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetStock failed: %v", err)
	}
	if quote.Symbol != "AAPL" || quote.Price != 195.5 {
		t.Errorf("unexpected quote: %+v", quote)
	}
}

func TestGetStock_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Stock not found: ZZZZ"}`))
	}))
	defer server.Close()

	c := NewMarketClient(server.URL)
	_, err := c.GetStock(context.Background(), "ZZZZ")
	if err == nil {
		t.Fatal("expected error for unknown symbol")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "Stock not found: ZZZZ" {
		t.Errorf("expected server detail, got %q", apiErr.Detail)
	}
}

func TestGetPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/portfolio/prices" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbols"); got != "AAPL,MSFT" {
			t.Errorf("unexpected symbols param: %s", got)
		}
		w.Write([]byte(`{"prices":{"AAPL":{"price":195.5,"name":"Apple Inc.","change_percent":0.62},"MSFT":{"price":420.1,"name":"Microsoft","change_percent":-0.3}}}`))
	}))
	defer server.Close()

	c := NewMarketClient(server.URL)
	prices, err := c.GetPrices(context.Background(), []string{"AAPL", "MSFT"})
	if err != nil {
		t.Fatalf("GetPrices failed: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(prices))
	}
	if prices["MSFT"].ChangePercent != -0.3 {
		t.Errorf("unexpected MSFT entry: %+v", prices["MSFT"])
	}
}

func TestGetPrices_NoSymbols(t *testing.T) {
	c := NewMarketClient("http://unreachable.invalid")
	prices, err := c.GetPrices(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty symbol list should not hit the network: %v", err)
	}
	if len(prices) != 0 {
		t.Errorf("expected empty map, got %d entries", len(prices))
	}
}

func TestAddHolding_QueryParams(t *testing.T) {
	var gotMethod, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	c := NewMarketClient(server.URL)
	if err := c.AddHolding(context.Background(), "AAPL", 10, 150.25); err != nil {
		t.Fatalf("AddHolding failed: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotQuery != "cost_average=150.25&shares=10&symbol=AAPL" {
		t.Errorf("unexpected query: %s", gotQuery)
	}
}

func TestRemoveHolding_ServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"AAPL not in portfolio"}`))
	}))
	defer server.Close()

	c := NewMarketClient(server.URL)
	err := c.RemoveHolding(context.Background(), "AAPL")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Detail != "AAPL not in portfolio" {
		t.Errorf("expected server detail, got %q", apiErr.Detail)
	}
}

func TestGetNews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/news/NVDA" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"symbol":"NVDA","news":[{"title":"Chips rally","url":"https://example.com/a","source":"Wire","published_at":"2026-08-25T10:00:00Z","sentiment":"bullish","sentiment_score":0.8}],"overall_sentiment":"bullish","sentiment_score":0.8}`))
	}))
	defer server.Close()

	c := NewMarketClient(server.URL)
	news, err := c.GetNews(context.Background(), "NVDA")
	if err != nil {
		t.Fatalf("GetNews failed: %v", err)
	}
	if news.OverallSentiment != "bullish" || len(news.News) != 1 {
		t.Errorf("unexpected news payload: %+v", news)
	}
}

func TestGetSectors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sectors":[{"name":"Technology","change_percent":1.4}],"top_gainers":[{"symbol":"NVDA","name":"NVIDIA","price":900,"change":20,"change_percent":2.3}],"top_losers":[]}`))
	}))
	defer server.Close()

	c := NewMarketClient(server.URL)
	snapshot, err := c.GetSectors(context.Background())
	if err != nil {
		t.Fatalf("GetSectors failed: %v", err)
	}
	if len(snapshot.Sectors) != 1 || snapshot.Sectors[0].Name != "Technology" {
		t.Errorf("unexpected snapshot: %+v", snapshot)
	}
	if len(snapshot.TopGainers) != 1 || snapshot.TopGainers[0].Symbol != "NVDA" {
		t.Errorf("unexpected top gainers: %+v", snapshot.TopGainers)
	}
}

func TestGetPortfolioAnalysis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/portfolio-analysis" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbols"); got != "AAPL,MSFT" {
			t.Errorf("unexpected symbols param: %s", got)
		}
		w.Write([]byte(`{"summary":"**Solid** quarter","generated_at":"2026-08-25T10:00:00Z","cached":true}`))
	}))
	defer server.Close()

	c := NewMarketClient(server.URL)
	analysis, err := c.GetPortfolioAnalysis(context.Background(), []string{"AAPL", "MSFT"})
	if err != nil {
		t.Fatalf("GetPortfolioAnalysis failed: %v", err)
	}
	if !analysis.Cached || analysis.Summary != "**Solid** quarter" {
		t.Errorf("unexpected analysis: %+v", analysis)
	}
}

func TestGetMarketContext_NetworkError(t *testing.T) {
	c := NewMarketClient("http://127.0.0.1:1")
	if _, err := c.GetMarketContext(context.Background()); err == nil {
		t.Error("expected network error")
	}
}
