package app

import (
	"strings"
	"time"

	"github.com/foliohq/folio-portal/internal/cache"
	"github.com/foliohq/folio-portal/internal/client"
	"github.com/foliohq/folio-portal/internal/common"
	"github.com/foliohq/folio-portal/internal/config"
	"github.com/foliohq/folio-portal/internal/handlers"
	"github.com/foliohq/folio-portal/internal/holdings"
	"github.com/foliohq/folio-portal/internal/interfaces"
	"github.com/foliohq/folio-portal/internal/mcp"
	"github.com/foliohq/folio-portal/internal/portfolio"
	"github.com/foliohq/folio-portal/internal/refresh"
	"github.com/foliohq/folio-portal/internal/storage"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Storage   interfaces.StorageManager
	Client    *client.MarketClient
	Store     *holdings.Store
	Selection *portfolio.Selection
	Service   *portfolio.Service
	Cache     *cache.SnapshotCache
	Scheduler *refresh.Scheduler

	// HTTP handlers
	PageHandler      *handlers.PageHandler
	FragmentHandler  *handlers.FragmentHandler
	HoldingsHandler  *handlers.HoldingsHandler
	SelectionHandler *handlers.SelectionHandler
	HealthHandler    *handlers.HealthHandler
	VersionHandler   *handlers.VersionHandler
	MCPHandler       *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("RUNNING IN DEV MODE, expecting a local market API")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	a.Client = client.NewMarketClient(cfg.APIBaseURL())
	a.Selection = portfolio.NewSelection()
	a.Cache = cache.New(10*time.Minute, 64)

	if cfg.LocalHoldings() {
		manager, err := storage.NewStorageManager(logger, cfg)
		if err != nil {
			return nil, err
		}
		a.Storage = manager
		a.Store = holdings.NewStore(manager.KeyValueStorage(), logger)
	} else {
		logger.Info().Msg("Holdings are server-authoritative, local store disabled")
	}

	a.Service = portfolio.NewService(a.Store, a.Client, a.Selection, cfg.LocalHoldings(), logger)

	a.initScheduler()
	a.initHandlers()

	logger.Info().
		Str("api_url", a.Client.BaseURL()).
		Str("holdings_source", cfg.Holdings.Source).
		Msg("application initialization complete")

	return a, nil
}

// initScheduler registers the per-resource refresh jobs. The portfolio
// job runs only when holdings are locally stored; the server variant
// renders on demand.
func (a *App) initScheduler() {
	a.Scheduler = refresh.NewScheduler(a.Logger)

	if a.Config.LocalHoldings() {
		a.Scheduler.AddJob(a.Config.Refresh.PortfolioSeconds, refresh.NewPortfolioJob(a.Service, a.Cache))
	}
	a.Scheduler.AddJob(a.Config.Refresh.SectorsSeconds, refresh.NewSectorsJob(a.Client, a.Cache))
	a.Scheduler.AddJob(a.Config.Refresh.NewsSeconds, refresh.NewNewsJob(a.Client, a.Selection, a.Cache))
	a.Scheduler.AddJob(a.Config.Refresh.MarketContextSeconds, refresh.NewMarketContextJob(a.Client, a.Cache))
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.PageHandler = handlers.NewPageHandler(a.Logger, a.Config.IsDevMode(), a.Config.Refresh)
	a.FragmentHandler = handlers.NewFragmentHandler(a.Service, a.Client, a.Cache, a.Logger)
	a.HoldingsHandler = handlers.NewHoldingsHandler(a.Service, a.Cache, a.Logger)
	a.SelectionHandler = handlers.NewSelectionHandler(a.Selection, a.Cache, a.Logger)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.MCPHandler = mcp.NewHandler(a.Service, a.Client, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// StartScheduler warms the market-context cache and begins ticking.
func (a *App) StartScheduler() {
	a.Scheduler.RunNow(refresh.NewMarketContextJob(a.Client, a.Cache))
	a.Scheduler.Start()
}

// Close closes all application resources.
func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
