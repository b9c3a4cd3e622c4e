package handlers

import (
	"net/http"

	"github.com/foliohq/folio-portal/internal/cache"
	"github.com/foliohq/folio-portal/internal/client"
	"github.com/foliohq/folio-portal/internal/common"
	"github.com/foliohq/folio-portal/internal/portfolio"
	"github.com/foliohq/folio-portal/internal/refresh"
	"github.com/foliohq/folio-portal/internal/render"
)

// FragmentHandler serves rendered HTML fragments for the dashboard
// panels. Prefetched snapshots are served when available; otherwise the
// handler fetches live. A fetch or parse failure renders a muted
// placeholder with status 200 so one panel's failure never breaks the
// page.
type FragmentHandler struct {
	service *portfolio.Service
	client  *client.MarketClient
	cache   *cache.SnapshotCache
	logger  *common.Logger
}

// NewFragmentHandler creates a fragment handler.
func NewFragmentHandler(service *portfolio.Service, mc *client.MarketClient, c *cache.SnapshotCache, logger *common.Logger) *FragmentHandler {
	return &FragmentHandler{
		service: service,
		client:  mc,
		cache:   c,
		logger:  logger,
	}
}

// Portfolio serves the holdings grid and summary bar.
func (h *FragmentHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if snap, ok := h.cache.Get(refresh.KeyPortfolio); ok {
		WriteFragment(w, snap.HTML)
		return
	}

	p, err := h.service.Fetch(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Portfolio fragment failed")
		WriteFragment(w, render.ErrorPanel("Portfolio"))
		return
	}

	html := render.SummaryBar(p) + render.HoldingsGrid(p, h.service.Selection().Current())
	h.cache.Set(refresh.KeyPortfolio, html)
	WriteFragment(w, html)
}

// Sectors serves the sector snapshot cards.
func (h *FragmentHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if snap, ok := h.cache.Get(refresh.KeySectors); ok {
		WriteFragment(w, snap.HTML)
		return
	}

	snapshot, err := h.client.GetSectors(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Sectors fragment failed")
		WriteFragment(w, render.ErrorPanel("Sectors"))
		return
	}

	html := render.SectorCards(snapshot)
	h.cache.Set(refresh.KeySectors, html)
	WriteFragment(w, html)
}

// News serves headlines for the selected symbol. With nothing selected
// the panel prompts for a selection instead of erroring.
func (h *FragmentHandler) News(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := h.service.Selection().Current()
	if symbol == "" {
		WriteFragment(w, `<div class="news-empty">Select a holding to see its news.</div>`)
		return
	}

	key := refresh.KeyNews + ":" + symbol
	if snap, ok := h.cache.Get(key); ok {
		WriteFragment(w, snap.HTML)
		return
	}

	news, err := h.client.GetNews(r.Context(), symbol)
	if err != nil {
		h.logger.Warn().Err(err).Str("symbol", symbol).Msg("News fragment failed")
		WriteFragment(w, render.ErrorPanel("News"))
		return
	}

	html := render.NewsList(news)
	h.cache.Set(key, html)
	WriteFragment(w, html)
}

// Feed serves the general market headline feed.
func (h *FragmentHandler) Feed(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if snap, ok := h.cache.Get(refresh.KeyFeed); ok {
		WriteFragment(w, snap.HTML)
		return
	}

	feed, err := h.client.GetMarketFeed(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Feed fragment failed")
		WriteFragment(w, render.ErrorPanel("Market feed"))
		return
	}

	html := render.FeedList(feed)
	h.cache.Set(refresh.KeyFeed, html)
	WriteFragment(w, html)
}

// Analysis serves the generated portfolio narrative for the current
// holdings. Always fetched live: the backend caches generation.
func (h *FragmentHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbols := h.service.Symbols(r.Context())
	if len(symbols) == 0 {
		WriteFragment(w, `<div class="analysis-empty">Add holdings to get an analysis.</div>`)
		return
	}

	analysis, err := h.client.GetPortfolioAnalysis(r.Context(), symbols)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Analysis fragment failed")
		WriteFragment(w, render.ErrorPanel("Analysis"))
		return
	}

	WriteFragment(w, render.AnalysisPanel(analysis))
}

// Context serves the generated market overview.
func (h *FragmentHandler) Context(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if snap, ok := h.cache.Get(refresh.KeyMarketContext); ok {
		WriteFragment(w, snap.HTML)
		return
	}

	analysis, err := h.client.GetMarketContext(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Market context fragment failed")
		WriteFragment(w, render.ErrorPanel("Market context"))
		return
	}

	html := render.AnalysisPanel(analysis)
	h.cache.Set(refresh.KeyMarketContext, html)
	WriteFragment(w, html)
}
