package models

// Quote is a single stock quote as returned by the market API.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume,omitempty"`
	MarketCap     int64   `json:"market_cap,omitempty"`
	Sector        string  `json:"sector,omitempty"`
}

// PriceEntry is one symbol's entry in a batch price response.
type PriceEntry struct {
	Price         float64 `json:"price"`
	Name          string  `json:"name"`
	ChangePercent float64 `json:"change_percent"`
}

// PriceMap maps upper-case symbols to their latest price entry.
type PriceMap map[string]PriceEntry

// PriceResponse is the batch price payload.
type PriceResponse struct {
	Prices PriceMap `json:"prices"`
}

// NewsArticle is a single headline with its scored sentiment.
type NewsArticle struct {
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Source         string  `json:"source"`
	PublishedAt    string  `json:"published_at"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
}

// SymbolNews is the per-symbol news payload including the aggregate
// sentiment over the returned articles.
type SymbolNews struct {
	Symbol           string        `json:"symbol"`
	News             []NewsArticle `json:"news"`
	OverallSentiment string        `json:"overall_sentiment"`
	SentimentScore   float64       `json:"sentiment_score"`
}

// Sector is a single sector's aggregate performance.
type Sector struct {
	Name          string  `json:"name"`
	ChangePercent float64 `json:"change_percent"`
	TopSymbol     string  `json:"top_symbol,omitempty"`
}

// SectorSnapshot is the sector overview payload.
type SectorSnapshot struct {
	Sectors    []Sector `json:"sectors"`
	TopGainers []Quote  `json:"top_gainers"`
	TopLosers  []Quote  `json:"top_losers"`
}

// FeedItem is one article in the general market feed.
type FeedItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	Summary     string `json:"summary,omitempty"`
}

// MarketFeed is the general market news payload.
type MarketFeed struct {
	Articles  []FeedItem `json:"articles"`
	FetchedAt string     `json:"fetched_at"`
	Source    string     `json:"source"`
}

// Analysis is a generated narrative payload. The body may contain
// light markup (bold, italic) which the renderer converts to HTML.
type Analysis struct {
	Summary     string `json:"summary"`
	GeneratedAt string `json:"generated_at"`
	Cached      bool   `json:"cached"`
}
