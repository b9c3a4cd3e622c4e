package portfolio

import (
	"sync"

	"github.com/foliohq/folio-portal/internal/holdings"
)

// Selection tracks the single symbol the dashboard has focused, driving
// which symbol the news panel loads. Safe for concurrent use.
type Selection struct {
	mu     sync.Mutex
	symbol string
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Select sets the focused symbol, replacing any previous selection.
func (s *Selection) Select(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbol = holdings.Normalize(symbol)
}

// Current returns the focused symbol, or "" when nothing is selected.
func (s *Selection) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.symbol
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbol = ""
}

// ClearIf drops the selection only when it matches the given symbol.
// Used when a holding is removed so a stale symbol never stays focused.
func (s *Selection) ClearIf(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.symbol == holdings.Normalize(symbol) {
		s.symbol = ""
	}
}
