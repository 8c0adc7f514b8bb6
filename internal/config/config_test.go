package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Server.Port)
	require.Equal(t, ".TW", cfg.Market.Suffix)
	require.Equal(t, 60, cfg.Finnhub.MaxRequestsPerMinute)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"port": "8080"},
		"finnhub": {"cache_ttl_sec": 120}
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 120, cfg.Finnhub.CacheTTLSeconds)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LINE_CHANNEL_SECRET", "secret")
	t.Setenv("LINE_CHANNEL_TOKEN", "token")
	t.Setenv("FINNHUB_API_KEY", "key")
	t.Setenv("MARKET_SUFFIX", ".HK")
	t.Setenv("FINNHUB_MAX_RPM", "30")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, "secret", cfg.Line.ChannelSecret)
	require.Equal(t, "token", cfg.Line.ChannelToken)
	require.Equal(t, "key", cfg.Finnhub.APIKey)
	require.Equal(t, ".HK", cfg.Market.Suffix)
	require.Equal(t, 30, cfg.Finnhub.MaxRequestsPerMinute)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.Error(t, cfg.Validate())

	cfg.Line.ChannelSecret = "secret"
	require.Error(t, cfg.Validate())

	cfg.Line.ChannelToken = "token"
	require.Error(t, cfg.Validate())

	cfg.Finnhub.APIKey = "key"
	require.NoError(t, cfg.Validate())
}
