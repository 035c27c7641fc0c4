package api

import (
	"net/http"

	"esconnector/internal/api/middleware"
	av1 "esconnector/internal/api/v1"
	"esconnector/internal/config"
	dataconfig "esconnector/internal/data/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router handles all routing logic
type Router struct {
	engine *gin.Engine
	config *config.Config
	logger *zap.Logger
}

// NewRouter creates and configures a new router
func NewRouter(cfg *config.Config, cluster av1.Cluster, logger *zap.Logger) *Router {
	gin.SetMode(ginMode(cfg.Data))

	r := &Router{
		engine: gin.New(),
		config: cfg,
		logger: logger.Named("api"),
	}

	r.setupMiddleware()
	r.setupAPIV1(cluster)

	return r
}

// Handler returns the HTTP handler
func (r *Router) Handler() http.Handler {
	return r.engine
}

// setupMiddleware configures all middleware
func (r *Router) setupMiddleware() {
	m := middleware.New(r.logger)

	r.engine.Use(m.RequestID())
	r.engine.Use(m.Logger())
	r.engine.Use(m.Recovery())
	r.engine.Use(m.NoCache())
}

// setupAPIV1 configures v1 API routes
func (r *Router) setupAPIV1(cluster av1.Cluster) {
	api := av1.NewAPI(cluster, r.config.API.ReadTimeout, r.logger)
	api.RegisterRoutes(r.engine.Group("/api/v1"))
}

// ginMode maps data.environment to a gin mode; anything unknown runs in release mode
func ginMode(data *dataconfig.Config) string {
	if data == nil {
		return gin.ReleaseMode
	}
	switch data.Environment {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
