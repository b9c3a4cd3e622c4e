package portfolio

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/foliohq/folio-portal/internal/client"
	"github.com/foliohq/folio-portal/internal/common"
	"github.com/foliohq/folio-portal/internal/holdings"
	"github.com/foliohq/folio-portal/internal/models"
)

// Service assembles the display portfolio and applies holding mutations.
// With local holdings it joins the store against live prices; with
// server-authoritative holdings it proxies the backend's portfolio view.
type Service struct {
	store     *holdings.Store
	client    *client.MarketClient
	selection *Selection
	local     bool
	logger    *common.Logger
}

// NewService creates a portfolio service. store may be nil when holdings
// are server-authoritative.
func NewService(store *holdings.Store, mc *client.MarketClient, selection *Selection, local bool, logger *common.Logger) *Service {
	return &Service{
		store:     store,
		client:    mc,
		selection: selection,
		local:     local,
		logger:    logger,
	}
}

// Selection returns the shared selection state.
func (s *Service) Selection() *Selection {
	return s.selection
}

// Fetch builds the current portfolio view.
func (s *Service) Fetch(ctx context.Context) (*models.Portfolio, error) {
	if !s.local {
		return s.client.GetPortfolio(ctx)
	}

	stored := s.store.Get(ctx)
	prices, err := s.client.GetPrices(ctx, s.Symbols(ctx))
	if err != nil {
		return nil, err
	}

	p := Reconcile(stored, prices)
	return &p, nil
}

// Symbols returns the sorted symbols currently held. For the server
// variant this requires a portfolio fetch.
func (s *Service) Symbols(ctx context.Context) []string {
	if s.local {
		stored := s.store.Get(ctx)
		symbols := make([]string, 0, len(stored))
		for symbol := range stored {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)
		return symbols
	}

	p, err := s.client.GetPortfolio(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to list portfolio symbols")
		return nil
	}
	symbols := make([]string, 0, len(p.Holdings))
	for _, v := range p.Holdings {
		symbols = append(symbols, v.Symbol)
	}
	return symbols
}

// Add records a purchase. Zero or NaN shares coerce to 1; negative
// shares are rejected before any backend call.
func (s *Service) Add(ctx context.Context, symbol string, shares, costAverage float64) error {
	symbol = holdings.Normalize(symbol)
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if shares < 0 {
		return fmt.Errorf("shares must be positive")
	}
	if shares == 0 || math.IsNaN(shares) {
		shares = 1
	}

	if s.local {
		return s.store.Add(ctx, symbol, shares, costAverage)
	}
	return s.client.AddHolding(ctx, symbol, shares, costAverage)
}

// Update replaces a position outright.
func (s *Service) Update(ctx context.Context, symbol string, shares, costAverage float64) error {
	symbol = holdings.Normalize(symbol)
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if shares <= 0 || math.IsNaN(shares) {
		return fmt.Errorf("shares must be positive")
	}

	if s.local {
		return s.store.Upsert(ctx, symbol, shares, costAverage)
	}
	return s.client.UpdateHolding(ctx, symbol, shares, costAverage)
}

// Remove deletes a position and clears the selection if it was focused.
func (s *Service) Remove(ctx context.Context, symbol string) error {
	symbol = holdings.Normalize(symbol)
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}

	var err error
	if s.local {
		err = s.store.Remove(ctx, symbol)
	} else {
		err = s.client.RemoveHolding(ctx, symbol)
	}
	if err != nil {
		return err
	}

	s.selection.ClearIf(symbol)
	return nil
}
