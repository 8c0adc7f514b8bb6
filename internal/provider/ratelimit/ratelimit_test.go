package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockbot/internal/provider"
)

type stubProvider struct {
	calls int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Snapshot(ctx context.Context, symbol string) (provider.Snapshot, error) {
	s.calls++
	return provider.Snapshot{Current: 600}, nil
}

func (s *stubProvider) RecentCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	s.calls++
	return nil, nil
}

func (s *stubProvider) Health(ctx context.Context, symbol string) (provider.Health, error) {
	s.calls++
	return provider.Health{}, nil
}

func TestTokenBucketBurst(t *testing.T) {
	inner := &stubProvider{}
	p := &TokenBucketProvider{P: inner, TB: NewTokenBucket(1, 3)}

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := p.Snapshot(context.Background(), "2330.TW")
		require.NoError(t, err)
	}
	require.Less(t, time.Since(start), 500*time.Millisecond)
	require.Equal(t, 3, inner.calls)
}

func TestTokenBucketContextCanceled(t *testing.T) {
	inner := &stubProvider{}
	// Bucket drained by the burst; the next call has to wait.
	p := &TokenBucketProvider{P: inner, TB: NewTokenBucket(0.001, 1)}
	_, err := p.Snapshot(context.Background(), "2330.TW")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = p.Snapshot(ctx, "2330.TW")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, 1, inner.calls)
}

func TestMinIntervalSpacesCalls(t *testing.T) {
	inner := &stubProvider{}
	p := &MinInterval{P: inner, Interval: 30 * time.Millisecond}

	start := time.Now()
	_, err := p.Snapshot(context.Background(), "2330.TW")
	require.NoError(t, err)
	_, err = p.Snapshot(context.Background(), "2330.TW")
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	require.Equal(t, 2, inner.calls)
}
