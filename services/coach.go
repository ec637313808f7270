package services

import (
	"bytes"
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

// CoachService forwards prompts to the Gemini generateContent endpoint
type CoachService struct {
	endpoint     string
	fallbackKey  string
	client       *http.Client
	timeout      time.Duration
	maxBodyBytes int64
	log          *zap.Logger
}

// NewCoachService builds the coach proxy from the gemini and http settings
func NewCoachService(cfg *config.Config, client *http.Client, log *zap.Logger) *CoachService {
	return &CoachService{
		endpoint:     strings.TrimRight(cfg.Gemini.BaseURL, "/") + "/models/" + cfg.Gemini.Model + ":generateContent",
		fallbackKey:  strings.TrimSpace(cfg.Gemini.APIKey),
		client:       client,
		timeout:      cfg.HTTP.Timeout,
		maxBodyBytes: cfg.HTTP.MaxBodyBytes,
		log:          log.Named("coach"),
	}
}

// ResolveKey prefers the caller's key and falls back to the server key
func (s *CoachService) ResolveKey(apiKey string) (string, error) {
	if key := strings.TrimSpace(apiKey); key != "" {
		return key, nil
	}
	if s.fallbackKey != "" {
		return s.fallbackKey, nil
	}
	return "", ErrCoachKeyMissing
}

// Ask sends prompt upstream and returns the upstream JSON body untouched
func (s *CoachService) Ask(ctx context.Context, prompt, apiKey string) (json.RawMessage, error) {
	key, err := s.ResolveKey(apiKey)
	if err != nil {
		return nil, err
	}

	data, err := s.generate(ctx, prompt, key)
	metrics.ObserveUpstream(metrics.UpstreamCoach, err)
	if err != nil {
		s.log.Error("Coach request failed", zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (s *CoachService) generate(ctx context.Context, prompt, key string) (json.RawMessage, error) {
	payload, err := json.Marshal(models.NewGeminiRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	target := s.endpoint + "?" + url.Values{"key": {key}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// url.Error repeats the request URL, which carries the key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body, s.maxBodyBytes)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Service: "Gemini", StatusCode: resp.StatusCode, Body: string(body)}
	}
	if !json.Valid(body) {
		return nil, errors.New("gemini returned invalid JSON")
	}
	return json.RawMessage(body), nil
}
