package services

import (
	"errors"
	"fmt"
)

var (
	ErrCoachKeyMissing     = errors.New("gemini api key missing")
	ErrPGNNotFound         = errors.New("PGN not found")
	ErrInvalidLichessID    = errors.New("Invalid Lichess ID")
	ErrUnsupportedPlatform = errors.New("Unsupported platform")
)

// UpstreamError is returned when a third-party API answers with a non-2xx status
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API Error: %d %s", e.Service, e.StatusCode, e.Body)
}
