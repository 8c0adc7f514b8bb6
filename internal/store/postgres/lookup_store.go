package postgres

import (
	"context"
	"fmt"

	"stockbot/internal/health"
)

// LookupStore appends checkup results to the stock_lookups table. The table
// is append-only from the bot's perspective: rows are never updated or
// deleted, and no read path exists here; querying is left to external
// consumers.
type LookupStore struct {
	pool *Pool
}

func NewLookupStore(pool *Pool) *LookupStore {
	return &LookupStore{pool: pool}
}

// Compile-time interface check.
var _ health.Recorder = (*LookupStore)(nil)

// Init creates the stock_lookups table if it does not exist yet. Called
// once at process startup.
func (s *LookupStore) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS stock_lookups (
			id BIGSERIAL PRIMARY KEY,
			ticker TEXT NOT NULL,
			company_name TEXT,
			valuation DOUBLE PRECISION,
			risk DOUBLE PRECISION,
			date DATE NOT NULL DEFAULT CURRENT_DATE
		)
	`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create stock_lookups table: %w", err)
	}
	return nil
}

// Record appends one lookup row. The id and date columns are assigned by
// the database.
func (s *LookupStore) Record(ctx context.Context, l health.Lookup) error {
	query := `
		INSERT INTO stock_lookups (ticker, company_name, valuation, risk)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.pool.Exec(ctx, query, l.Ticker, l.Company, l.Valuation, l.Risk); err != nil {
		return fmt.Errorf("insert stock lookup %q: %w", l.Ticker, err)
	}
	return nil
}
