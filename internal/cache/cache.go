package cache

import (
	"strings"
	"sync"
	"time"
)

// Snapshot holds a rendered fragment prefetched by a refresh job, along
// with when it was fetched so handlers can tell how stale it is.
type Snapshot struct {
	HTML      string
	FetchedAt time.Time
}

// entry wraps a snapshot with expiry and insertion order tracking.
type entry struct {
	snap      *Snapshot
	expiry    time.Time
	insertIdx int64
}

// SnapshotCache stores the latest rendered fragment per resource so page
// loads between refresh ticks serve without a backend round-trip.
// Keys are resource names ("portfolio", "sectors", ...).
// Thread-safe with sync.RWMutex.
type SnapshotCache struct {
	mu         sync.RWMutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	nextIdx    int64
}

// New creates a new SnapshotCache with the given TTL and max entry count.
func New(ttl time.Duration, maxEntries int) *SnapshotCache {
	return &SnapshotCache{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns a cached snapshot if found and not expired.
func (c *SnapshotCache) Get(key string) (*Snapshot, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(e.expiry) {
		// Expired: remove lazily
		c.mu.Lock()
		if e2, ok2 := c.items[key]; ok2 && time.Now().After(e2.expiry) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.snap, true
}

// Set stores a rendered fragment. Evicts the oldest entry if at capacity.
func (c *SnapshotCache) Set(key, html string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{
		snap:      &Snapshot{HTML: html, FetchedAt: time.Now()},
		expiry:    time.Now().Add(c.ttl),
		insertIdx: c.nextIdx,
	}
	c.nextIdx++

	// If key already exists, update in place (no capacity change)
	if _, exists := c.items[key]; exists {
		c.items[key] = e
		return
	}

	// Evict oldest if at capacity
	if len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	c.items[key] = e
}

// InvalidatePrefix removes all entries whose key contains the given prefix.
// Holding mutations use this to drop the stale portfolio fragment.
func (c *SnapshotCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.Contains(key, prefix) {
			delete(c.items, key)
		}
	}
}

// evictOldest removes the entry with the lowest insertIdx. Must be called with mu held.
func (c *SnapshotCache) evictOldest() {
	var oldestKey string
	var oldestIdx int64 = -1

	for key, e := range c.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
