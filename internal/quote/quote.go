// Package quote looks up stock quotes with a primary snapshot path and a
// historical-close fallback.
package quote

import (
	"context"
	"log/slog"

	"stockbot/internal/provider"
	"stockbot/internal/ticker"
)

// Result is a quote ready for rendering. Price is always present;
// PreviousClose and MarketCap carry presence flags because either path can
// come back without them.
type Result struct {
	Symbol        string
	Price         float64
	PreviousClose float64
	MarketCap     float64
	HasPrevious   bool
	HasMarketCap  bool
}

type Service struct {
	provider provider.Provider
	logger   *slog.Logger
}

func New(p provider.Provider, logger *slog.Logger) *Service {
	return &Service{provider: p, logger: logger}
}

// Lookup fetches a quote for sym. The primary snapshot is used when it
// carries a current price; otherwise the lookup falls back to the two most
// recent daily closes. Every provider fault collapses into
// provider.ErrNoData.
func (s *Service) Lookup(ctx context.Context, sym ticker.Symbol) (Result, error) {
	snap, err := s.provider.Snapshot(ctx, sym.Lookup)
	if err == nil && snap.Current != 0 {
		return Result{
			Symbol:        sym.Display,
			Price:         snap.Current,
			PreviousClose: snap.PreviousClose,
			MarketCap:     snap.MarketCap,
			HasPrevious:   snap.PreviousClose != 0,
			HasMarketCap:  snap.MarketCap != 0,
		}, nil
	}
	if err != nil {
		s.logger.Warn("snapshot lookup failed, trying history", "symbol", sym.Lookup, "error", err)
	}
	return s.fromHistory(ctx, sym)
}

// fromHistory rebuilds a quote from the last two daily closes. Market cap is
// not available on this path and stays absent, never fabricated. With a
// single day of history the previous close degenerates to the current price.
func (s *Service) fromHistory(ctx context.Context, sym ticker.Symbol) (Result, error) {
	closes, err := s.provider.RecentCloses(ctx, sym.Lookup, 2)
	if err != nil {
		s.logger.Warn("history lookup failed", "symbol", sym.Lookup, "error", err)
		return Result{}, provider.ErrNoData
	}
	if len(closes) == 0 {
		return Result{}, provider.ErrNoData
	}
	current := closes[len(closes)-1]
	previous := current
	if len(closes) >= 2 {
		previous = closes[0]
	}
	return Result{
		Symbol:        sym.Display,
		Price:         current,
		PreviousClose: previous,
		HasPrevious:   true,
	}, nil
}
