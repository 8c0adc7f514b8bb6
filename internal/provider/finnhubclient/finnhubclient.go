// Package finnhubclient implements provider.Provider on top of the Finnhub
// REST API.
package finnhubclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go"
	"github.com/antihax/optional"

	"stockbot/internal/provider"
)

// candleResolution is daily bars; the bot only ever needs closing prices.
const candleResolution = "D"

type Client struct {
	apiKey string
	api    *finnhub.DefaultApiService
	cfg    *finnhub.Configuration
}

// Option is a configuration option for the client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.cfg.HTTPClient = hc
	}
}

// WithBasePath overrides the API base URL, mainly for tests.
func WithBasePath(basePath string) Option {
	return func(c *Client) {
		c.cfg.BasePath = basePath
	}
}

func New(apiKey string, options ...Option) *Client {
	c := &Client{apiKey: apiKey, cfg: finnhub.NewConfiguration()}
	for _, option := range options {
		option(c)
	}
	c.api = finnhub.NewAPIClient(c.cfg).DefaultApi
	return c
}

func (c *Client) Name() string { return "Finnhub" }

// auth returns ctx carrying the API key the generated client expects.
func (c *Client) auth(ctx context.Context) context.Context {
	return context.WithValue(ctx, finnhub.ContextAPIKey, finnhub.APIKey{Key: c.apiKey})
}

// Snapshot combines the quote endpoint with the company profile. Finnhub
// reports zeroes for unknown symbols, which callers treat as absent. A
// profile failure only degrades the market cap to absent; it does not fail
// the snapshot.
func (c *Client) Snapshot(ctx context.Context, symbol string) (provider.Snapshot, error) {
	q, _, err := c.api.Quote(c.auth(ctx), symbol)
	if err != nil {
		return provider.Snapshot{}, fmt.Errorf("finnhub quote %q: %w", symbol, err)
	}
	snap := provider.Snapshot{
		Current:       float64(q.C),
		PreviousClose: float64(q.Pc),
	}
	p, _, err := c.api.CompanyProfile2(c.auth(ctx), &finnhub.CompanyProfile2Opts{
		Symbol: optional.NewString(symbol),
	})
	if err == nil {
		// Profile reports market cap in millions.
		snap.MarketCap = float64(p.MarketCapitalization) * 1e6
	}
	return snap, nil
}

// RecentCloses requests daily candles over the trailing week and returns
// the last days closes, oldest first. The week-wide range guarantees the
// two most recent trading days across weekends and holidays.
func (c *Client) RecentCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -(days + 5))
	candles, _, err := c.api.StockCandles(c.auth(ctx), symbol, candleResolution, from.Unix(), to.Unix(), nil)
	if err != nil {
		return nil, fmt.Errorf("finnhub candles %q: %w", symbol, err)
	}
	if candles.S != "ok" || len(candles.C) == 0 {
		return nil, nil
	}
	closes := candles.C
	if len(closes) > days {
		closes = closes[len(closes)-days:]
	}
	out := make([]float64, len(closes))
	for i, v := range closes {
		out[i] = float64(v)
	}
	return out, nil
}

// Health combines the company profile with the basic-financials metrics.
func (c *Client) Health(ctx context.Context, symbol string) (provider.Health, error) {
	p, _, err := c.api.CompanyProfile2(c.auth(ctx), &finnhub.CompanyProfile2Opts{
		Symbol: optional.NewString(symbol),
	})
	if err != nil {
		return provider.Health{}, fmt.Errorf("finnhub profile %q: %w", symbol, err)
	}
	h := provider.Health{Company: p.Name}
	fin, _, err := c.api.CompanyBasicFinancials(c.auth(ctx), symbol, "all")
	if err != nil {
		return provider.Health{}, fmt.Errorf("finnhub financials %q: %w", symbol, err)
	}
	if v, ok := metricFloat(fin.Metric, "peNormalizedAnnual"); ok {
		h.ForwardPE = v
		h.HasPE = true
	}
	if v, ok := metricFloat(fin.Metric, "beta"); ok {
		h.Beta = v
		h.HasBeta = true
	}
	return h, nil
}

// metricFloat digs a numeric metric out of the free-form metrics object.
func metricFloat(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

var _ provider.Provider = (*Client)(nil)
