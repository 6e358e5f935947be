package main

// @title Planning Documents Service API
// @version 1.0.0
// @description Документы территориального планирования: стейкхолдеры, связи между документами и геопривязка.
// @description Запись доступна только градостроителям (роль urban_planner), сессия передаётся cookie.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/planning-docs-service/docs"
	"github.com/planning-docs-service/internal/config"
	httpDelivery "github.com/planning-docs-service/internal/delivery/http"
	"github.com/planning-docs-service/internal/delivery/http/handler"
	"github.com/planning-docs-service/internal/pkg/logger"
	"github.com/planning-docs-service/internal/pkg/metrics"
	"github.com/planning-docs-service/internal/repository/cache"
	redisRepo "github.com/planning-docs-service/internal/repository/redis"
	"github.com/planning-docs-service/internal/repository/sqlstore"
	"github.com/planning-docs-service/internal/usecase"
	"go.uber.org/zap"
)

const poolMetricsInterval = 15 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Planning Documents Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// 3. Connect to the database and apply schema
	db, err := sqlstore.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks and migrations
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("Database health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply schema", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	coordRepo := sqlstore.NewCoordinateRepository(db)
	docRepo := sqlstore.NewDocumentRepository(db)
	stakeholderRepo := sqlstore.NewStakeholderRepository(db)
	catalogRepo := sqlstore.NewCatalogRepository(db)
	linkRepo := sqlstore.NewLinkRepository(db)
	userRepo := sqlstore.NewUserRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	sessionRepo := cache.NewSessionRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 7. Initialize use cases
	coordUC := usecase.NewCoordinateUseCase(coordRepo, cacheRepo, streamRepo, cfg.Cache, log)
	docUC := usecase.NewDocumentUseCase(docRepo, cacheRepo, streamRepo, log)
	stakeholderUC := usecase.NewStakeholderUseCase(stakeholderRepo, log)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, log)
	linkUC := usecase.NewLinkUseCase(linkRepo, docRepo, log)
	authUC := usecase.NewAuthUseCase(userRepo, sessionRepo, cfg.Session, log)
	statsUC := usecase.NewStatsUseCase(coordRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, authUC, httpDelivery.Handlers{
		Coordinate: handler.NewCoordinateHandler(coordUC, log),
		Document:   handler.NewDocumentHandler(docUC, log),
		Catalog:    handler.NewCatalogHandler(stakeholderUC, catalogUC, log),
		Link:       handler.NewLinkHandler(linkUC, log),
		Session:    handler.NewSessionHandler(authUC, cfg.Session, log),
		Stats:      handler.NewStatsHandler(statsUC, log),
		Health: handler.NewHealthHandler(map[string]handler.HealthChecker{
			"database": db,
			"redis":    redisClient,
		}, log),
	})

	// 9. Pool metrics
	metricsCtx, stopMetrics := context.WithCancel(context.Background())
	defer stopMetrics()
	go func() {
		ticker := time.NewTicker(poolMetricsInterval)
		defer ticker.Stop()
		for {
			metrics.UpdateDBPoolMetrics(db.Stats())
			select {
			case <-ticker.C:
			case <-metricsCtx.Done():
				return
			}
		}
	}()

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully", zap.String("address", cfg.GetServerAddr()))

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
