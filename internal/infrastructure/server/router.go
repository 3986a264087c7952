package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	indexHandler   *handler.IndexHandler
	rateLimiter    *middleware.RateLimiter
	metricsHandler http.Handler
	metricsPath    string
	logger         *zap.Logger
}

type RouterConfig struct {
	IndexHandler *handler.IndexHandler
	// RateLimiter and MetricsHandler are optional.
	RateLimiter    *middleware.RateLimiter
	MetricsHandler http.Handler
	MetricsPath    string
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		indexHandler:   cfg.IndexHandler,
		rateLimiter:    cfg.RateLimiter,
		metricsHandler: cfg.MetricsHandler,
		metricsPath:    cfg.MetricsPath,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if r.metricsHandler != nil {
		r.engine.GET(r.metricsPath, gin.WrapH(r.metricsHandler))
	}

	api := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}

	indexes := api.Group("/indexes")
	{
		indexes.POST("", r.indexHandler.Create)
		indexes.GET("", r.indexHandler.List)
		indexes.GET("/:name", r.indexHandler.Get)
		indexes.DELETE("/:name", r.indexHandler.Delete)

		indexes.POST("/:name/points", r.indexHandler.InsertPoints)
		indexes.POST("/:name/seed", r.indexHandler.Seed)

		indexes.GET("/:name/query/box", r.indexHandler.QueryBox)
		indexes.GET("/:name/query/circle", r.indexHandler.QueryCircle)
		indexes.GET("/:name/nodes", r.indexHandler.Nodes)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
