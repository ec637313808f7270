package routes

import (
	"chesscoach/config"
	"chesscoach/middlewares"
	"chesscoach/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewHandlers wires the production services from cfg
func NewHandlers(cfg *config.Config, log *zap.Logger) *Handlers {
	client := services.NewHTTPClient(cfg.HTTP.Timeout)
	return &Handlers{
		Coach:     services.NewCoachService(cfg, client, log),
		Games:     services.NewGameFetcher(cfg, client, log),
		Scenarios: services.NewScenarioPicker(services.DefaultScenarios, nil),
		StaticDir: cfg.Static.Dir,
		Log:       log,
	}
}

// SetupRouter registers the API routes and the SPA fallback
func SetupRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middlewares.RequestLogger(h.Log), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middlewares.RequestIDHeader},
	}))

	api := router.Group("/api")
	{
		api.POST("/ask-coach", h.AskCoach)
		api.GET("/fetch-game", h.FetchGame)
		api.GET("/endgame/:type", h.Endgame)
	}

	router.NoRoute(h.SPA)
	return router
}
