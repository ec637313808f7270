package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chesscoach/config"
	"chesscoach/metrics"
	"chesscoach/models"

	"go.uber.org/zap"
)

// chess.com rejects requests without a browser User-Agent
const browserUserAgent = "Mozilla/5.0"

// ChessComError wraps every chess.com failure; callers answer it with a
// request to paste the PGN manually.
type ChessComError struct {
	Err error
}

func (e *ChessComError) Error() string { return "chess.com: " + e.Err.Error() }

func (e *ChessComError) Unwrap() error { return e.Err }

// GameFetcher downloads PGNs from chess.com and lichess
type GameFetcher struct {
	chessComBaseURL string
	lichessBaseURL  string
	client          *http.Client
	timeout         time.Duration
	maxBodyBytes    int64
	log             *zap.Logger
}

func NewGameFetcher(cfg *config.Config, client *http.Client, log *zap.Logger) *GameFetcher {
	return &GameFetcher{
		chessComBaseURL: strings.TrimRight(cfg.Upstream.ChessComBaseURL, "/"),
		lichessBaseURL:  strings.TrimRight(cfg.Upstream.LichessBaseURL, "/"),
		client:          client,
		timeout:         cfg.HTTP.Timeout,
		maxBodyBytes:    cfg.HTTP.MaxBodyBytes,
		log:             log.Named("gamefetch"),
	}
}

// Fetch dispatches on platform. Chess.com failures come back as *ChessComError.
func (f *GameFetcher) Fetch(ctx context.Context, platform models.Platform, gameID string) (string, error) {
	switch platform {
	case models.PlatformChessCom:
		pgn, err := f.FetchChessCom(ctx, gameID)
		metrics.ObserveUpstream(metrics.UpstreamChessCom, err)
		if err != nil {
			f.log.Warn("Chess.com fetch failed", zap.String("game_id", gameID), zap.Error(err))
			return "", &ChessComError{Err: err}
		}
		return pgn, nil
	case models.PlatformLichess:
		pgn, err := f.FetchLichess(ctx, gameID)
		metrics.ObserveUpstream(metrics.UpstreamLichess, err)
		if err != nil {
			f.log.Warn("Lichess fetch failed", zap.String("game_id", gameID), zap.Error(err))
			return "", err
		}
		return pgn, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, platform)
	}
}

// FetchChessCom reads the PGN out of the live game callback JSON
func (f *GameFetcher) FetchChessCom(ctx context.Context, gameID string) (string, error) {
	target := f.chessComBaseURL + "/callback/live/game/" + url.PathEscape(gameID)
	body, err := f.get(ctx, target, browserUserAgent)
	if err != nil {
		return "", err
	}

	var payload models.ChessComGame
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("invalid chess.com response: %w", err)
	}
	if payload.Game == nil || payload.Game.PGN == "" {
		return "", ErrPGNNotFound
	}
	return payload.Game.PGN, nil
}

// FetchLichess downloads the annotated PGN export; the status code is not
// checked, a body without a PGN header means the id was wrong.
func (f *GameFetcher) FetchLichess(ctx context.Context, gameID string) (string, error) {
	target := f.lichessBaseURL + "/game/export/" + url.PathEscape(gameID) + "?literate=1"
	body, err := f.get(ctx, target, "")
	if err != nil {
		return "", err
	}

	pgn := string(body)
	if !strings.Contains(pgn, "[Event") {
		return "", ErrInvalidLichessID
	}
	return pgn, nil
}

func (f *GameFetcher) get(ctx context.Context, target, userAgent string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, fmt.Errorf("request to %s failed: %w", uerr.URL, uerr.Err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	return readBody(resp.Body, f.maxBodyBytes)
}
