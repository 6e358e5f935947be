package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/planning-docs-service/internal/config"
	"github.com/planning-docs-service/internal/pkg/logger"
	"github.com/planning-docs-service/internal/repository/cache"
	redisRepo "github.com/planning-docs-service/internal/repository/redis"
	"github.com/planning-docs-service/internal/repository/sqlstore"
	"github.com/planning-docs-service/internal/usecase"
	"github.com/planning-docs-service/internal/worker"
	"github.com/planning-docs-service/internal/worker/georeference"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting georeference worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Duration("stream_read_timeout", cfg.Worker.StreamReadTimeout),
		zap.Int("batch_size", cfg.Worker.BatchSize))

	// 3. Connect to the database
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

	// 5. Repositories and use cases
	coordRepo := sqlstore.NewCoordinateRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log,
		redisRepo.WithBlock(cfg.Worker.StreamReadTimeout),
		redisRepo.WithBatchSize(cfg.Worker.BatchSize),
		redisRepo.WithClaimIdle(cfg.Worker.ClaimIdle),
	)

	// воркер только читает стрим, события не публикует
	coordUC := usecase.NewCoordinateUseCase(coordRepo, cacheRepo, nil, cfg.Cache, log)
	statsUC := usecase.NewStatsUseCase(coordRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)

	// 6. Workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(georeference.NewCacheWorker(streamRepo, coordUC, statsUC, cfg.Worker.ConsumerGroup, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
