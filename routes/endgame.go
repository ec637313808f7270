package routes

import (
	"net/http"
	"strconv"

	"chesscoach/metrics"
	"chesscoach/models"

	"github.com/gin-gonic/gin"
)

// ParsePrevIndex turns the prevIndex query value into an index, or -1 when
// it is absent, malformed or negative. Trailing garbage such as "3abc" counts
// as malformed rather than being read as a numeric prefix.
func ParsePrevIndex(raw string) int {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return -1
	}
	return idx
}

// Endgame serves a random training scenario of the requested category
func (h *Handlers) Endgame(c *gin.Context) {
	pick := h.Scenarios.Pick(c.Param("type"), ParsePrevIndex(c.Query("prevIndex")))
	metrics.ObserveScenario(pick.Type)

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, models.ScenarioResponse{
		Scenario: pick.Scenario,
		Type:     pick.Type,
		Index:    pick.Index,
	})
}
