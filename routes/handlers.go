package routes

import (
	"context"
	"encoding/json"

	"chesscoach/models"
	"chesscoach/services"

	"go.uber.org/zap"
)

// Coach answers free-text prompts with the upstream JSON
type Coach interface {
	Ask(ctx context.Context, prompt, apiKey string) (json.RawMessage, error)
}

// GameSource downloads a PGN for a game on a platform
type GameSource interface {
	Fetch(ctx context.Context, platform models.Platform, gameID string) (string, error)
}

// ScenarioSource picks endgame training scenarios
type ScenarioSource interface {
	Pick(category string, prevIndex int) services.Pick
}

// Handlers holds the dependencies of every HTTP handler
type Handlers struct {
	Coach     Coach
	Games     GameSource
	Scenarios ScenarioSource
	StaticDir string
	Log       *zap.Logger
}
