package holdings

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/foliohq/folio-portal/internal/common"
	"github.com/foliohq/folio-portal/internal/interfaces"
	"github.com/foliohq/folio-portal/internal/models"
)

// StorageKey is the single key under which the holdings map is persisted.
const StorageKey = "portfolio.holdings"

// Store persists the holdings map as a JSON document in key-value storage.
// Reads fail open: a missing or corrupt document yields an empty map so
// the dashboard always renders.
type Store struct {
	kv     interfaces.KeyValueStorage
	logger *common.Logger
}

// NewStore creates a holdings store over the given key-value storage.
func NewStore(kv interfaces.KeyValueStorage, logger *common.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Get loads the holdings map. Missing or unparseable data returns an
// empty map, never an error.
func (s *Store) Get(ctx context.Context) models.HoldingMap {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return models.HoldingMap{}
	}

	var m models.HoldingMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		s.logger.Warn().Err(err).Msg("Holdings document unparseable, starting empty")
		return models.HoldingMap{}
	}
	if m == nil {
		m = models.HoldingMap{}
	}
	return m
}

// Put replaces the entire holdings map.
func (s *Store) Put(ctx context.Context, m models.HoldingMap) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal holdings: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist holdings: %w", err)
	}
	return nil
}

// Upsert sets a symbol's position outright, replacing any existing entry.
// Shares of zero or NaN are coerced to 1; negative shares are rejected.
func (s *Store) Upsert(ctx context.Context, symbol string, shares, costAverage float64) error {
	symbol = Normalize(symbol)
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	shares, err := normalizeShares(shares)
	if err != nil {
		return err
	}
	if costAverage < 0 || math.IsNaN(costAverage) {
		costAverage = 0
	}

	m := s.Get(ctx)
	m[symbol] = models.Holding{Shares: shares, CostAverage: costAverage}
	return s.Put(ctx, m)
}

// Add merges a purchase into an existing position using a weighted
// average cost. A new symbol is simply inserted.
func (s *Store) Add(ctx context.Context, symbol string, shares, costAverage float64) error {
	symbol = Normalize(symbol)
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	shares, err := normalizeShares(shares)
	if err != nil {
		return err
	}
	if costAverage < 0 || math.IsNaN(costAverage) {
		costAverage = 0
	}

	m := s.Get(ctx)
	if existing, ok := m[symbol]; ok {
		totalShares := existing.Shares + shares
		blended := 0.0
		if totalShares > 0 {
			blended = (existing.Shares*existing.CostAverage + shares*costAverage) / totalShares
		}
		m[symbol] = models.Holding{Shares: totalShares, CostAverage: blended}
	} else {
		m[symbol] = models.Holding{Shares: shares, CostAverage: costAverage}
	}
	return s.Put(ctx, m)
}

// Remove deletes a symbol's position. Removing an absent symbol is a no-op.
func (s *Store) Remove(ctx context.Context, symbol string) error {
	symbol = Normalize(symbol)
	m := s.Get(ctx)
	if _, ok := m[symbol]; !ok {
		return nil
	}
	delete(m, symbol)
	return s.Put(ctx, m)
}

// Normalize upper-cases and trims a symbol.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func normalizeShares(shares float64) (float64, error) {
	if math.IsNaN(shares) || shares == 0 {
		return 1, nil
	}
	if shares < 0 {
		return 0, fmt.Errorf("shares must be positive")
	}
	return shares, nil
}
