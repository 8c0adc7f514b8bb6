package ratelimit

import (
	"context"
	"sync"
	"time"

	"stockbot/internal/provider"
)

// TokenBucket provides a stdlib-only token bucket limiter.
// - rate: tokens per second
// - capacity: maximum tokens the bucket can hold (burst)
type TokenBucket struct {
	rate     float64
	capacity float64

	mu     sync.Mutex
	tokens float64
	last   time.Time
}

func NewTokenBucket(tokensPerSecond float64, burst int) *TokenBucket {
	if tokensPerSecond <= 0 {
		tokensPerSecond = 0.0000001
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		rate:     tokensPerSecond,
		capacity: float64(burst),
		tokens:   float64(burst), // start full to allow an initial burst
		last:     time.Now(),
	}
}

// wait blocks until one token is available or context is canceled.
func (tb *TokenBucket) wait(ctx context.Context) error {
	for {
		tb.mu.Lock()
		now := time.Now()
		// Refill
		elapsed := now.Sub(tb.last).Seconds()
		if elapsed > 0 {
			tb.tokens += elapsed * tb.rate
			if tb.tokens > tb.capacity {
				tb.tokens = tb.capacity
			}
			tb.last = now
		}
		if tb.tokens >= 1 {
			tb.tokens -= 1
			tb.mu.Unlock()
			return nil
		}
		// Need to wait for the remaining fraction
		deficit := 1 - tb.tokens
		tb.mu.Unlock()
		// time needed to accumulate one token
		waitDur := time.Duration(deficit/tb.rate*1e9) * time.Nanosecond
		if waitDur <= 0 {
			waitDur = time.Millisecond
		}
		timer := time.NewTimer(waitDur)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// TokenBucketProvider wraps a Provider and gates every lookup through a
// shared token bucket. It gates only; failed lookups are never retried.
type TokenBucketProvider struct {
	P  provider.Provider
	TB *TokenBucket
}

func (t *TokenBucketProvider) Name() string { return t.P.Name() }

func (t *TokenBucketProvider) Snapshot(ctx context.Context, symbol string) (provider.Snapshot, error) {
	if err := t.TB.wait(ctx); err != nil {
		return provider.Snapshot{}, err
	}
	return t.P.Snapshot(ctx, symbol)
}

func (t *TokenBucketProvider) RecentCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	if err := t.TB.wait(ctx); err != nil {
		return nil, err
	}
	return t.P.RecentCloses(ctx, symbol, days)
}

func (t *TokenBucketProvider) Health(ctx context.Context, symbol string) (provider.Health, error) {
	if err := t.TB.wait(ctx); err != nil {
		return provider.Health{}, err
	}
	return t.P.Health(ctx, symbol)
}

var _ provider.Provider = (*TokenBucketProvider)(nil)
