package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stockbot/internal/provider"
)

// entry stores one cached value with expiry.
type entry[T any] struct {
	expiresAt time.Time
	val       T
}

// Provider caches per-symbol lookups for a TTL in front of another
// provider, keeping repeated chat queries for the same ticker from burning
// through the provider's request budget.
type Provider struct {
	P        provider.Provider
	TTL      time.Duration
	MaxItems int

	mu      sync.RWMutex
	snaps   map[string]entry[provider.Snapshot]
	closes  map[string]entry[[]float64]
	healths map[string]entry[provider.Health]
}

func New(p provider.Provider, ttl time.Duration, maxItems int) *Provider {
	return &Provider{
		P:        p,
		TTL:      ttl,
		MaxItems: maxItems,
		snaps:    make(map[string]entry[provider.Snapshot]),
		closes:   make(map[string]entry[[]float64]),
		healths:  make(map[string]entry[provider.Health]),
	}
}

func (c *Provider) Name() string { return c.P.Name() }

func (c *Provider) Snapshot(ctx context.Context, symbol string) (provider.Snapshot, error) {
	if c.TTL <= 0 {
		return c.P.Snapshot(ctx, symbol)
	}
	if v, ok := lookup(&c.mu, c.snaps, symbol); ok {
		return v, nil
	}
	v, err := c.P.Snapshot(ctx, symbol)
	if err != nil {
		return v, err
	}
	store(&c.mu, c.snaps, symbol, v, c.TTL, c.MaxItems)
	return v, nil
}

func (c *Provider) RecentCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	if c.TTL <= 0 {
		return c.P.RecentCloses(ctx, symbol, days)
	}
	key := fmt.Sprintf("%d:%s", days, symbol)
	if v, ok := lookup(&c.mu, c.closes, key); ok {
		return v, nil
	}
	v, err := c.P.RecentCloses(ctx, symbol, days)
	if err != nil {
		return v, err
	}
	store(&c.mu, c.closes, key, v, c.TTL, c.MaxItems)
	return v, nil
}

func (c *Provider) Health(ctx context.Context, symbol string) (provider.Health, error) {
	if c.TTL <= 0 {
		return c.P.Health(ctx, symbol)
	}
	if v, ok := lookup(&c.mu, c.healths, symbol); ok {
		return v, nil
	}
	v, err := c.P.Health(ctx, symbol)
	if err != nil {
		return v, err
	}
	store(&c.mu, c.healths, symbol, v, c.TTL, c.MaxItems)
	return v, nil
}

func lookup[T any](mu *sync.RWMutex, m map[string]entry[T], key string) (T, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := m[key]
	if !ok || time.Now().After(e.expiresAt) {
		var zero T
		return zero, false
	}
	return e.val, true
}

// store caches v under key. When the map is full, expired entries are
// dropped first; if it is still full the value is simply not cached.
func store[T any](mu *sync.RWMutex, m map[string]entry[T], key string, v T, ttl time.Duration, max int) {
	mu.Lock()
	defer mu.Unlock()
	if max > 0 && len(m) >= max {
		now := time.Now()
		for k, e := range m {
			if now.After(e.expiresAt) {
				delete(m, k)
			}
		}
		if len(m) >= max {
			return
		}
	}
	m[key] = entry[T]{expiresAt: time.Now().Add(ttl), val: v}
}

var _ provider.Provider = (*Provider)(nil)
