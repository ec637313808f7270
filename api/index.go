// Package api is the entry point for serverless hosts, which invoke Handler
// per request instead of running cmd/server.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"

	"chesscoach/config"
	"chesscoach/models"
	"chesscoach/routes"
	"chesscoach/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	once    sync.Once
	handler http.Handler
)

func setup() http.Handler {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return failed()
	}

	logger, err := utils.NewLogger(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		logger = zap.NewNop()
	}

	gin.SetMode(cfg.Server.Mode)
	return routes.SetupRouter(routes.NewHandlers(cfg, logger))
}

// failed answers every request with 500 when the configuration is broken
func failed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Server configuration error."})
	})
}

// Handler serves one request; the router is built on first use
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() { handler = setup() })
	handler.ServeHTTP(w, r)
}
