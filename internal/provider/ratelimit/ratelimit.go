package ratelimit

import (
	"context"
	"sync"
	"time"

	"stockbot/internal/provider"
)

// MinInterval wraps a provider and enforces a minimum time between calls.
// Concurrent calls wait until the interval has elapsed since the last call,
// or return early if the context is canceled.
type MinInterval struct {
	P        provider.Provider
	Interval time.Duration
	mu       sync.Mutex
	last     time.Time
}

func (m *MinInterval) Name() string { return m.P.Name() }

func (m *MinInterval) Snapshot(ctx context.Context, symbol string) (provider.Snapshot, error) {
	if err := m.gate(ctx); err != nil {
		return provider.Snapshot{}, err
	}
	defer m.mark()
	return m.P.Snapshot(ctx, symbol)
}

func (m *MinInterval) RecentCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	if err := m.gate(ctx); err != nil {
		return nil, err
	}
	defer m.mark()
	return m.P.RecentCloses(ctx, symbol, days)
}

func (m *MinInterval) Health(ctx context.Context, symbol string) (provider.Health, error) {
	if err := m.gate(ctx); err != nil {
		return provider.Health{}, err
	}
	defer m.mark()
	return m.P.Health(ctx, symbol)
}

// gate ensures at least Interval has passed since the last call.
func (m *MinInterval) gate(ctx context.Context) error {
	if m.Interval <= 0 {
		return nil
	}
	m.mu.Lock()
	wait := time.Until(m.last.Add(m.Interval))
	m.mu.Unlock()
	if wait <= 0 {
		return nil
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *MinInterval) mark() {
	if m.Interval <= 0 {
		return
	}
	m.mu.Lock()
	m.last = time.Now()
	m.mu.Unlock()
}

var _ provider.Provider = (*MinInterval)(nil)
