package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SPA serves files from the static directory and falls back to index.html
// for every other GET so the frontend can route deep links itself.
func (h *Handlers) SPA(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	// Cleaning a rooted path drops any ".." that would leave StaticDir.
	rel := path.Clean("/" + c.Request.URL.Path)
	if rel != "/" && rel != "/index.html" {
		full := filepath.Join(h.StaticDir, filepath.FromSlash(rel))
		if info, err := os.Stat(full); err == nil && info.Mode().IsRegular() {
			c.File(full)
			return
		}
	}

	content, err := os.ReadFile(filepath.Join(h.StaticDir, "index.html"))
	if err != nil {
		h.Log.Warn("Entry page not found", zap.String("dir", h.StaticDir), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", content)
}
