// Package rediscache is a Redis-backed variant of the per-symbol lookup
// cache, for deployments running more than one bot instance against a
// shared provider request budget.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"stockbot/internal/provider"
)

type Provider struct {
	P      provider.Provider
	RDB    *redis.Client
	TTL    time.Duration
	Logger *slog.Logger
}

func (c *Provider) Name() string { return c.P.Name() }

func (c *Provider) Snapshot(ctx context.Context, symbol string) (provider.Snapshot, error) {
	key := "quote:snapshot:" + symbol
	var snap provider.Snapshot
	if c.fetch(ctx, key, &snap) {
		return snap, nil
	}
	snap, err := c.P.Snapshot(ctx, symbol)
	if err != nil {
		return snap, err
	}
	c.save(ctx, key, snap)
	return snap, nil
}

func (c *Provider) RecentCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	key := fmt.Sprintf("quote:closes:%d:%s", days, symbol)
	var closes []float64
	if c.fetch(ctx, key, &closes) {
		return closes, nil
	}
	closes, err := c.P.RecentCloses(ctx, symbol, days)
	if err != nil {
		return closes, err
	}
	c.save(ctx, key, closes)
	return closes, nil
}

func (c *Provider) Health(ctx context.Context, symbol string) (provider.Health, error) {
	key := "quote:health:" + symbol
	var h provider.Health
	if c.fetch(ctx, key, &h) {
		return h, nil
	}
	h, err := c.P.Health(ctx, symbol)
	if err != nil {
		return h, err
	}
	c.save(ctx, key, h)
	return h, nil
}

// fetch reports whether key held a value. A cache failure is logged and
// treated as a miss; it never fails the lookup.
func (c *Provider) fetch(ctx context.Context, key string, dst any) bool {
	b, err := c.RDB.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.Logger.Warn("redis get failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		c.Logger.Warn("redis entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *Provider) save(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.RDB.Set(ctx, key, b, c.TTL).Err(); err != nil {
		c.Logger.Warn("redis set failed", "key", key, "error", err)
	}
}

var _ provider.Provider = (*Provider)(nil)
