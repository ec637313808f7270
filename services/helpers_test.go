package services

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"chesscoach/config"
)

// countingServer counts every request it serves.
type countingServer struct {
	*httptest.Server
	calls atomic.Int32
}

func newCountingServer(t *testing.T, h http.HandlerFunc) *countingServer {
	t.Helper()
	cs := &countingServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.calls.Add(1)
		h(w, r)
	}))
	t.Cleanup(cs.Close)
	return cs
}

func testConfig(baseURL string) *config.Config {
	cfg := config.Default()
	cfg.Gemini.BaseURL = baseURL
	cfg.Upstream.ChessComBaseURL = baseURL
	cfg.Upstream.LichessBaseURL = baseURL
	cfg.HTTP.Timeout = 2 * time.Second
	return cfg
}
