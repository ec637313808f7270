package routes

import (
	"errors"
	"io"
	"net/http"

	"chesscoach/models"
	"chesscoach/services"

	"github.com/gin-gonic/gin"
)

const (
	msgCoachKeyMissing = "Server configuration error: API Key missing."
	msgCoachOffline    = "The Coach is currently offline (API Error)."
)

// AskCoach forwards the prompt to Gemini and relays its JSON answer
func (h *Handlers) AskCoach(c *gin.Context) {
	var req models.AskCoachRequest
	// An empty body is an empty request, the same as {}.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	data, err := h.Coach.Ask(c.Request.Context(), req.Prompt, req.APIKey)
	if errors.Is(err, services.ErrCoachKeyMissing) {
		h.Log.Error("API Key is missing. Ensure GEMINI_API_KEY is set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCoachKeyMissing})
		return
	}
	if err != nil {
		// CoachService has already logged the cause.
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCoachOffline})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
