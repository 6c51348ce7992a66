package main

import (
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"kunstkamera-backend/internal/config"
	"kunstkamera-backend/internal/infrastructure/queue"
	"kunstkamera-backend/internal/infrastructure/storage"
	"kunstkamera-backend/pkg/logger"
)

// The worker consumes storage cleanup tasks produced by the API when
// museums or artifacts are deleted. It needs Redis and MinIO, not Postgres.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		logger.Error("connect storage", err)
		os.Exit(1)
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	queue.NewCleanupHandler(store).Register(mux)

	logger.Info("Worker started", map[string]interface{}{
		"env": cfg.App.Environment,
	})

	// Run blocks until SIGINT/SIGTERM and drains in-flight tasks
	if err := srv.Run(mux); err != nil {
		logger.Error("worker stopped", err)
		os.Exit(1)
	}
}
