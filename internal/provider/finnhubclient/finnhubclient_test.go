package finnhubclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestClient spins up a fake Finnhub API and returns a client pointed at
// it. Each handler asserts the API key arrived as the token query param.
func newTestClient(t *testing.T, routes map[string]string) *Client {
	t.Helper()
	mux := http.NewServeMux()
	for path, body := range routes {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "test-key", r.URL.Query().Get("token"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New("test-key", WithBasePath(srv.URL), WithHTTPClient(srv.Client()))
}

func TestSnapshot(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/quote":          `{"c":600,"pc":590,"h":610,"l":580,"o":595}`,
		"/stock/profile2": `{"name":"Taiwan Semiconductor","marketCapitalization":500000}`,
	})

	snap, err := c.Snapshot(context.Background(), "2330.TW")
	require.NoError(t, err)
	require.Equal(t, 600.0, snap.Current)
	require.Equal(t, 590.0, snap.PreviousClose)
	require.Equal(t, 500000*1e6, snap.MarketCap)
}

func TestSnapshotProfileFailureDegradesMarketCap(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"c":600,"pc":590}`))
	})
	mux.HandleFunc("/stock/profile2", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream error", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New("test-key", WithBasePath(srv.URL), WithHTTPClient(srv.Client()))

	snap, err := c.Snapshot(context.Background(), "2330.TW")
	require.NoError(t, err)
	require.Equal(t, 600.0, snap.Current)
	require.Zero(t, snap.MarketCap)
}

func TestSnapshotQuoteError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream error", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New("test-key", WithBasePath(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.Snapshot(context.Background(), "2330.TW")
	require.Error(t, err)
}

func TestRecentCloses(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/stock/candle": `{"c":[95,98,100,105],"s":"ok","t":[1,2,3,4]}`,
	})

	closes, err := c.RecentCloses(context.Background(), "AAPL", 2)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 105}, closes)
}

func TestRecentClosesNoData(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/stock/candle": `{"s":"no_data"}`,
	})

	closes, err := c.RecentCloses(context.Background(), "XYZ", 2)
	require.NoError(t, err)
	require.Empty(t, closes)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/stock/profile2": `{"name":"Taiwan Semiconductor"}`,
		"/stock/metric":   `{"metricType":"all","symbol":"2330.TW","metric":{"peNormalizedAnnual":25.5,"beta":1.2}}`,
	})

	h, err := c.Health(context.Background(), "2330.TW")
	require.NoError(t, err)
	require.Equal(t, "Taiwan Semiconductor", h.Company)
	require.True(t, h.HasPE)
	require.Equal(t, 25.5, h.ForwardPE)
	require.True(t, h.HasBeta)
	require.Equal(t, 1.2, h.Beta)
}

func TestHealthMissingMetrics(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/stock/profile2": `{"name":"Acme"}`,
		"/stock/metric":   `{"metricType":"all","symbol":"ACME","metric":{}}`,
	})

	h, err := c.Health(context.Background(), "ACME")
	require.NoError(t, err)
	require.Equal(t, "Acme", h.Company)
	require.False(t, h.HasPE)
	require.False(t, h.HasBeta)
}
