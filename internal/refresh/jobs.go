package refresh

import (
	"context"
	"time"

	"github.com/foliohq/folio-portal/internal/cache"
	"github.com/foliohq/folio-portal/internal/client"
	"github.com/foliohq/folio-portal/internal/portfolio"
	"github.com/foliohq/folio-portal/internal/render"
)

const jobTimeout = 15 * time.Second

// Cache keys, one per dashboard resource.
const (
	KeyPortfolio     = "portfolio"
	KeySectors       = "sectors"
	KeyNews          = "news"
	KeyFeed          = "feed"
	KeyMarketContext = "context"
)

func jobContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), jobTimeout)
}

// PortfolioJob refreshes the holdings grid and summary bar. Registered
// only when holdings are locally stored; the server variant renders on
// demand from the backend's portfolio view.
type PortfolioJob struct {
	service *portfolio.Service
	cache   *cache.SnapshotCache
}

func NewPortfolioJob(service *portfolio.Service, c *cache.SnapshotCache) *PortfolioJob {
	return &PortfolioJob{service: service, cache: c}
}

func (j *PortfolioJob) Name() string { return "portfolio" }

func (j *PortfolioJob) Run() error {
	ctx, cancel := jobContext()
	defer cancel()

	p, err := j.service.Fetch(ctx)
	if err != nil {
		return err
	}

	html := render.SummaryBar(p) + render.HoldingsGrid(p, j.service.Selection().Current())
	j.cache.Set(KeyPortfolio, html)
	return nil
}

// SectorsJob refreshes the sector snapshot.
type SectorsJob struct {
	client *client.MarketClient
	cache  *cache.SnapshotCache
}

func NewSectorsJob(mc *client.MarketClient, c *cache.SnapshotCache) *SectorsJob {
	return &SectorsJob{client: mc, cache: c}
}

func (j *SectorsJob) Name() string { return "sectors" }

func (j *SectorsJob) Run() error {
	ctx, cancel := jobContext()
	defer cancel()

	snapshot, err := j.client.GetSectors(ctx)
	if err != nil {
		return err
	}

	j.cache.Set(KeySectors, render.SectorCards(snapshot))
	return nil
}

// NewsJob refreshes headlines for the selected symbol. With nothing
// selected it refreshes the general market feed instead.
type NewsJob struct {
	client    *client.MarketClient
	selection *portfolio.Selection
	cache     *cache.SnapshotCache
}

func NewNewsJob(mc *client.MarketClient, selection *portfolio.Selection, c *cache.SnapshotCache) *NewsJob {
	return &NewsJob{client: mc, selection: selection, cache: c}
}

func (j *NewsJob) Name() string { return "news" }

func (j *NewsJob) Run() error {
	ctx, cancel := jobContext()
	defer cancel()

	symbol := j.selection.Current()
	if symbol == "" {
		feed, err := j.client.GetMarketFeed(ctx)
		if err != nil {
			return err
		}
		j.cache.Set(KeyFeed, render.FeedList(feed))
		return nil
	}

	news, err := j.client.GetNews(ctx, symbol)
	if err != nil {
		return err
	}
	j.cache.Set(KeyNews+":"+symbol, render.NewsList(news))
	return nil
}

// MarketContextJob pre-fetches the generated market overview.
type MarketContextJob struct {
	client *client.MarketClient
	cache  *cache.SnapshotCache
}

func NewMarketContextJob(mc *client.MarketClient, c *cache.SnapshotCache) *MarketContextJob {
	return &MarketContextJob{client: mc, cache: c}
}

func (j *MarketContextJob) Name() string { return "market-context" }

func (j *MarketContextJob) Run() error {
	ctx, cancel := jobContext()
	defer cancel()

	analysis, err := j.client.GetMarketContext(ctx)
	if err != nil {
		return err
	}

	j.cache.Set(KeyMarketContext, render.AnalysisPanel(analysis))
	return nil
}
