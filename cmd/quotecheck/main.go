package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"stockbot/internal/config"
	"stockbot/internal/health"
	"stockbot/internal/httpx"
	"stockbot/internal/provider"
	"stockbot/internal/provider/finnhubclient"
	"stockbot/internal/provider/ratelimit"
	"stockbot/internal/quote"
	"stockbot/internal/reply"
	"stockbot/internal/ticker"
)

// quotecheck runs a single lookup from the command line and prints the text
// the bot would reply with, for poking at provider behavior without a
// webhook in front.
func main() {
	var symbol string
	var checkup bool
	var timeout int
	var configPath string

	flag.StringVar(&symbol, "symbol", os.Getenv("SYMBOL"), "ticker to look up, e.g. 2330 or AAPL")
	flag.BoolVar(&checkup, "checkup", false, "run a stock checkup instead of a quote")
	flag.IntVar(&timeout, "timeout", 0, "request timeout seconds (overrides config)")
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	if cfg.Finnhub.APIKey == "" {
		logger.Error("finnhub api key not set (FINNHUB_API_KEY)")
		os.Exit(1)
	}
	if symbol == "" {
		logger.Error("no symbol provided; use -symbol")
		os.Exit(1)
	}
	if timeout > 0 {
		cfg.Server.RequestTimeoutSec = timeout
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	var p provider.Provider = finnhubclient.New(cfg.Finnhub.APIKey,
		finnhubclient.WithHTTPClient(httpClient.HTTP))
	if cfg.Finnhub.MaxRequestsPerMinute > 0 {
		rate := float64(cfg.Finnhub.MaxRequestsPerMinute) / 60.0
		burst := cfg.Finnhub.Burst
		if burst <= 0 {
			burst = 1
		}
		p = &ratelimit.TokenBucketProvider{P: p, TB: ratelimit.NewTokenBucket(rate, burst)}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec)*time.Second)
	defer cancel()

	sym := ticker.Normalize(symbol, cfg.Market.Suffix)

	if checkup {
		res, err := health.New(p, nil, logger).Checkup(ctx, sym)
		if err != nil {
			fmt.Println(reply.CheckupUnavailable)
			os.Exit(1)
		}
		fmt.Println(reply.Checkup(res))
		return
	}

	res, err := quote.New(p, logger).Lookup(ctx, sym)
	if err != nil {
		fmt.Println(reply.NotFound(sym.Display))
		os.Exit(1)
	}
	fmt.Println(reply.Quote(res))
}
