// Package health runs stock checkups (company name, valuation, beta risk)
// and records successful lookups.
package health

import (
	"context"
	"log/slog"

	"stockbot/internal/provider"
	"stockbot/internal/ticker"
)

// Result is a checkup ready for rendering.
type Result struct {
	Symbol    string
	Company   string
	ForwardPE float64
	Beta      float64
	HasPE     bool
	HasBeta   bool
}

// Lookup is the record persisted for each successful checkup. The row id and
// date are assigned by the store.
type Lookup struct {
	Ticker    string
	Company   string
	Valuation *float64
	Risk      *float64
}

// Recorder appends lookup records. Implementations must tolerate being
// called once per checkup with no retries.
type Recorder interface {
	Record(ctx context.Context, l Lookup) error
}

type Service struct {
	provider provider.Provider
	recorder Recorder // nil disables recording
	logger   *slog.Logger
}

func New(p provider.Provider, rec Recorder, logger *slog.Logger) *Service {
	return &Service{provider: p, recorder: rec, logger: logger}
}

// Checkup fetches company fundamentals for sym. A provider fault or a
// payload without a company name collapses into provider.ErrNoData.
// Recording is a side effect only: a failed insert is logged and swallowed,
// never surfaced to the user.
func (s *Service) Checkup(ctx context.Context, sym ticker.Symbol) (Result, error) {
	h, err := s.provider.Health(ctx, sym.Lookup)
	if err != nil {
		s.logger.Warn("health lookup failed", "symbol", sym.Lookup, "error", err)
		return Result{}, provider.ErrNoData
	}
	if h.Company == "" {
		return Result{}, provider.ErrNoData
	}
	res := Result{
		Symbol:    sym.Lookup,
		Company:   h.Company,
		ForwardPE: h.ForwardPE,
		Beta:      h.Beta,
		HasPE:     h.HasPE,
		HasBeta:   h.HasBeta,
	}
	s.record(ctx, res)
	return res, nil
}

func (s *Service) record(ctx context.Context, res Result) {
	if s.recorder == nil {
		return
	}
	l := Lookup{Ticker: res.Symbol, Company: res.Company}
	if res.HasPE {
		v := res.ForwardPE
		l.Valuation = &v
	}
	if res.HasBeta {
		v := res.Beta
		l.Risk = &v
	}
	if err := s.recorder.Record(ctx, l); err != nil {
		s.logger.Error("record stock lookup", "ticker", l.Ticker, "error", err)
	}
}
