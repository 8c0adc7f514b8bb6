package provider

import (
	"context"
	"errors"
)

// ErrNoData is the uniform outcome for every provider fault: transport
// errors, unknown symbols and empty payloads all collapse into it so the
// message layer can answer with a single "no data" reply.
var ErrNoData = errors.New("no market data for symbol")

// Snapshot is the rich quote shape from the primary lookup.
// A zero field means the provider had no figure for it.
type Snapshot struct {
	Current       float64
	PreviousClose float64
	MarketCap     float64
}

// Health carries the company fundamentals used by the checkup flow.
type Health struct {
	Company   string
	ForwardPE float64
	Beta      float64
	HasPE     bool
	HasBeta   bool
}

// Provider is the market-data source behind quote and checkup lookups.
type Provider interface {
	Name() string
	// Snapshot returns the current quote for a symbol.
	Snapshot(ctx context.Context, symbol string) (Snapshot, error)
	// RecentCloses returns up to days most recent daily closing prices,
	// oldest first.
	RecentCloses(ctx context.Context, symbol string, days int) ([]float64, error)
	// Health returns company fundamentals for a symbol.
	Health(ctx context.Context, symbol string) (Health, error)
}
