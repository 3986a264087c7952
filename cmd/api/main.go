package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/quadtree-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/quadtree-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/quadtree-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/quadtree-backend/internal/usecase/index"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	indexMetrics := observability.NewIndexMetrics(registry)

	// Repositories
	indexRepo := memory.NewIndexRepo()

	// Use cases
	indexSvc := index.NewService(indexRepo, indexMetrics, logger, index.Config{
		DefaultCapacity: cfg.Index.DefaultCapacity,
		MaxCapacity:     cfg.Index.MaxCapacity,
		MaxBatchPoints:  cfg.Index.MaxBatchPoints,
		MaxSeedPoints:   cfg.Index.MaxSeedPoints,
	})

	if cfg.Index.BootstrapName != "" {
		if err := bootstrapIndex(ctx, indexSvc, cfg.Index, logger); err != nil {
			logger.Fatal("failed to bootstrap index", zap.Error(err))
		}
	}

	// Rate limiting is optional; a missing redis only disables it.
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
		}
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = indexMetrics.Handler()
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		IndexHandler:   handler.NewIndexHandler(indexSvc),
		RateLimiter:    rateLimiter,
		MetricsHandler: metricsHandler,
		MetricsPath:    cfg.Metrics.Path,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

func bootstrapIndex(ctx context.Context, svc *index.Service, cfg config.IndexConfig, logger *zap.Logger) error {
	idx, err := svc.Create(ctx, index.CreateInput{
		Name:     cfg.BootstrapName,
		Boundary: valueobject.NewBoundingBox(cfg.BootstrapCX, cfg.BootstrapCY, cfg.BootstrapHalfW, cfg.BootstrapHalfH),
		Capacity: cfg.BootstrapCapacity,
	})
	if err != nil {
		return err
	}

	if cfg.BootstrapPoints <= 0 {
		return nil
	}

	result, err := svc.Seed(ctx, index.SeedInput{Name: idx.Name, Count: cfg.BootstrapPoints})
	if err != nil {
		return err
	}

	logger.Info("bootstrap index seeded",
		zap.String("index", idx.Name),
		zap.Int("accepted", result.Accepted),
		zap.Int("rejected", result.Rejected),
	)
	return nil
}
