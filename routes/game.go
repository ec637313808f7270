package routes

import (
	"errors"
	"net/http"

	"chesscoach/models"
	"chesscoach/services"

	"github.com/gin-gonic/gin"
)

const msgChessComBlocked = "Chess.com blocked request. Please copy the PGN text manually."

// FetchGame returns the PGN of a chess.com or lichess game
func (h *Handlers) FetchGame(c *gin.Context) {
	platform := c.Query("platform")
	gameID := c.Query("gameId")
	if platform == "" || gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing params"})
		return
	}

	pgn, err := h.Games.Fetch(c.Request.Context(), models.Platform(platform), gameID)
	var chessComErr *services.ChessComError
	switch {
	case errors.As(err, &chessComErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgChessComBlocked})
		return
	case errors.Is(err, services.ErrUnsupportedPlatform):
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrUnsupportedPlatform.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.FetchGameResponse{PGN: pgn})
}
