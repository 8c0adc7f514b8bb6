package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

// Line holds the messaging-platform credentials. Both fields are secrets
// and normally come from the environment, never from source.
type Line struct {
	ChannelSecret string `json:"channel_secret"`
	ChannelToken  string `json:"channel_token"`
}

type Finnhub struct {
	APIKey                string `json:"api_key"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec"`
	Burst                 int    `json:"burst"`
	CacheTTLSeconds       int    `json:"cache_ttl_sec"`
	CacheMaxItems         int    `json:"cache_max_items"`
}

type Market struct {
	// Suffix is appended to purely numeric tickers, which are assumed to be
	// Taiwan exchange listings.
	Suffix string `json:"suffix"`
}

type Redis struct {
	Addr            string `json:"addr"`
	DB              int    `json:"db"`
	CacheTTLSeconds int    `json:"cache_ttl_sec"`
}

type Store struct {
	// DSN enables the lookup recorder when set.
	DSN string `json:"dsn"`
}

type Config struct {
	Server  Server  `json:"server"`
	Line    Line    `json:"line"`
	Finnhub Finnhub `json:"finnhub"`
	Market  Market  `json:"market"`
	Redis   Redis   `json:"redis"`
	Store   Store   `json:"store"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "5000", RequestTimeoutSec: 10},
		Finnhub: Finnhub{
			// Finnhub free tier allows 60 requests/minute.
			MaxRequestsPerMinute: 60,
			Burst:                10,
			CacheTTLSeconds:      30,
			CacheMaxItems:        10000,
		},
		Market: Market{Suffix: ".TW"},
		Redis:  Redis{CacheTTLSeconds: 30},
	}
}

// Load reads JSON config from path. If path is empty or the file does not
// exist, it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Validate rejects configs missing the credentials the bot cannot run
// without.
func (c Config) Validate() error {
	if c.Line.ChannelSecret == "" {
		return errors.New("config: line channel secret not set (LINE_CHANNEL_SECRET)")
	}
	if c.Line.ChannelToken == "" {
		return errors.New("config: line channel token not set (LINE_CHANNEL_TOKEN)")
	}
	if c.Finnhub.APIKey == "" {
		return errors.New("config: finnhub api key not set (FINNHUB_API_KEY)")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v, ok := getenvInt("REQUEST_TIMEOUT_SEC"); ok && v > 0 {
		cfg.Server.RequestTimeoutSec = v
	}
	if v := os.Getenv("LINE_CHANNEL_SECRET"); v != "" {
		cfg.Line.ChannelSecret = v
	}
	if v := os.Getenv("LINE_CHANNEL_TOKEN"); v != "" {
		cfg.Line.ChannelToken = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v, ok := getenvInt("FINNHUB_MAX_RPM"); ok && v >= 0 {
		cfg.Finnhub.MaxRequestsPerMinute = v
	}
	if v, ok := getenvInt("FINNHUB_MIN_INTERVAL_SEC"); ok && v >= 0 {
		cfg.Finnhub.MinRequestIntervalSec = v
	}
	if v, ok := getenvInt("FINNHUB_BURST"); ok && v > 0 {
		cfg.Finnhub.Burst = v
	}
	if v, ok := getenvInt("FINNHUB_CACHE_TTL_SEC"); ok && v >= 0 {
		cfg.Finnhub.CacheTTLSeconds = v
	}
	if v, ok := getenvInt("FINNHUB_CACHE_MAX_ITEMS"); ok && v > 0 {
		cfg.Finnhub.CacheMaxItems = v
	}
	if v := os.Getenv("MARKET_SUFFIX"); v != "" {
		cfg.Market.Suffix = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v, ok := getenvInt("REDIS_DB"); ok && v >= 0 {
		cfg.Redis.DB = v
	}
	if v, ok := getenvInt("REDIS_CACHE_TTL_SEC"); ok && v >= 0 {
		cfg.Redis.CacheTTLSeconds = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Store.DSN = v
	}
}

func getenvInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	x, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return x, true
}
