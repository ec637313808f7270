package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"chesscoach/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const samplePGN = "[Event \"Live Chess\"]\n[Site \"Chess.com\"]\n\n1. e4 e5 2. Nf3 *"

func newTestFetcher(t *testing.T, h http.HandlerFunc) (*GameFetcher, *countingServer) {
	t.Helper()
	srv := newCountingServer(t, h)
	cfg := testConfig(srv.URL)
	return NewGameFetcher(cfg, NewHTTPClient(cfg.HTTP.Timeout), zap.NewNop()), srv
}

func TestFetchChessCom(t *testing.T) {
	fetcher, srv := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/callback/live/game/123456", r.URL.Path)
		assert.Equal(t, "Mozilla/5.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"game":{"id":123456,"pgn":"[Event \"Live Chess\"]\n\n1. e4 *"}}`))
	})

	pgn, err := fetcher.Fetch(context.Background(), models.PlatformChessCom, "123456")
	require.NoError(t, err)
	assert.Equal(t, "[Event \"Live Chess\"]\n\n1. e4 *", pgn)
	assert.EqualValues(t, 1, srv.calls.Load())
}

func TestFetchChessComMissingPGN(t *testing.T) {
	fetcher, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"game":{"id":1}}`))
	})

	_, err := fetcher.Fetch(context.Background(), models.PlatformChessCom, "1")
	var ccErr *ChessComError
	require.True(t, errors.As(err, &ccErr))
	assert.ErrorIs(t, err, ErrPGNNotFound)
}

func TestFetchChessComBlocked(t *testing.T) {
	fetcher, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<html>Access denied</html>`))
	})

	_, err := fetcher.Fetch(context.Background(), models.PlatformChessCom, "1")
	var ccErr *ChessComError
	assert.True(t, errors.As(err, &ccErr))
}

func TestFetchLichess(t *testing.T) {
	fetcher, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/game/export/abcdEFGH", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("literate"))
		_, _ = w.Write([]byte(samplePGN))
	})

	pgn, err := fetcher.Fetch(context.Background(), models.PlatformLichess, "abcdEFGH")
	require.NoError(t, err)
	assert.Equal(t, samplePGN, pgn)
}

func TestFetchLichessInvalidID(t *testing.T) {
	fetcher, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<!DOCTYPE html><title>Page not found</title>`))
	})

	_, err := fetcher.Fetch(context.Background(), models.PlatformLichess, "nope")
	assert.ErrorIs(t, err, ErrInvalidLichessID)
	assert.Equal(t, "Invalid Lichess ID", err.Error())
}

func TestFetchUnsupportedPlatform(t *testing.T) {
	fetcher, srv := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := fetcher.Fetch(context.Background(), "chess24", "1")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Zero(t, srv.calls.Load())
}

func TestFetchBodyTooLarge(t *testing.T) {
	srv := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePGN + samplePGN))
	})
	cfg := testConfig(srv.URL)
	cfg.HTTP.MaxBodyBytes = int64(len(samplePGN))
	fetcher := NewGameFetcher(cfg, NewHTTPClient(cfg.HTTP.Timeout), zap.NewNop())

	_, err := fetcher.FetchLichess(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}
