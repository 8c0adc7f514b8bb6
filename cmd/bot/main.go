package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/redis/go-redis/v9"

	"stockbot/internal/bot"
	"stockbot/internal/config"
	"stockbot/internal/health"
	"stockbot/internal/httpx"
	"stockbot/internal/provider"
	"stockbot/internal/provider/cache"
	"stockbot/internal/provider/finnhubclient"
	"stockbot/internal/provider/ratelimit"
	"stockbot/internal/provider/rediscache"
	"stockbot/internal/quote"
	"stockbot/internal/store/postgres"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	p := buildProvider(cfg, httpClient, logger)

	lineClient, err := linebot.New(cfg.Line.ChannelSecret, cfg.Line.ChannelToken,
		linebot.WithHTTPClient(httpClient.HTTP))
	if err != nil {
		logger.Error("line client", "error", err)
		os.Exit(1)
	}

	var recorder health.Recorder
	if cfg.Store.DSN != "" {
		pool, err := postgres.NewPool(ctx, cfg.Store.DSN)
		if err != nil {
			logger.Error("connect store", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store := postgres.NewLookupStore(pool)
		if err := store.Init(ctx); err != nil {
			logger.Error("init store", "error", err)
			os.Exit(1)
		}
		recorder = store
		logger.Info("lookup recording enabled")
	}

	quotes := quote.New(p, logger)
	checkups := health.New(p, recorder, logger)
	handler := bot.NewHandler(cfg.Line.ChannelSecret, bot.NewLineReplyer(lineClient), quotes, checkups, cfg.Market.Suffix, logger)

	mux := http.NewServeMux()
	mux.Handle("/webhook", handler)
	// Root route keeps platform health checks from seeing 404s.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello, this is my LINE Bot application."))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           recoverPanic(limitBody(mux), logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// buildProvider assembles the provider chain: Finnhub at the bottom, a rate
// limiter above it, a cache on top. Prefer token bucket with burst if RPM is
// set, otherwise use min-interval.
func buildProvider(cfg config.Config, httpClient *httpx.Client, logger *slog.Logger) provider.Provider {
	var p provider.Provider = finnhubclient.New(cfg.Finnhub.APIKey,
		finnhubclient.WithHTTPClient(httpClient.HTTP))

	if cfg.Finnhub.MaxRequestsPerMinute > 0 {
		rate := float64(cfg.Finnhub.MaxRequestsPerMinute) / 60.0
		burst := cfg.Finnhub.Burst
		if burst <= 0 {
			burst = 1
		}
		p = &ratelimit.TokenBucketProvider{P: p, TB: ratelimit.NewTokenBucket(rate, burst)}
	} else if cfg.Finnhub.MinRequestIntervalSec > 0 {
		interval := time.Duration(cfg.Finnhub.MinRequestIntervalSec) * time.Second
		p = &ratelimit.MinInterval{P: p, Interval: interval}
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		p = &rediscache.Provider{
			P:      p,
			RDB:    rdb,
			TTL:    time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second,
			Logger: logger,
		}
		logger.Info("using redis lookup cache", "addr", cfg.Redis.Addr)
	} else if cfg.Finnhub.CacheTTLSeconds > 0 {
		p = cache.New(p, time.Duration(cfg.Finnhub.CacheTTLSeconds)*time.Second, cfg.Finnhub.CacheMaxItems)
	}
	return p
}

// limitBody caps request body size to avoid memory abuse.
func limitBody(next http.Handler) http.Handler {
	const maxBody = 1 << 20 // 1MB
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		}
		next.ServeHTTP(w, r)
	})
}

// recoverPanic protects handlers from panics.
func recoverPanic(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("handler panic", "panic", rec, "path", r.URL.Path)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
