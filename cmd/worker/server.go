package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"creator-portal-backend/internal/config"
	"creator-portal-backend/internal/domains/creator/job"
	"creator-portal-backend/internal/infrastructure/queue"
	"creator-portal-backend/internal/infrastructure/storage"
	"creator-portal-backend/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Run khởi động asynq server + cron scheduler, block đến khi nhận signal
// Worker chỉ cần Redis + MinIO; không đụng tới Postgres
func Run(cfg *config.Config) error {
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return fmt.Errorf("minio init failed: %w", err)
	}
	log.Info().Str("bucket", cfg.MinIO.Bucket).Msg("✅ MinIO ready")

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.Handle(shared.TypePurgeCreatorMedia, job.NewPurgeMediaHandler(minioStorage))
	mux.Handle(shared.TypeReapOrphanUploads, job.NewOrphanReaperHandler(minioStorage))

	scheduler := queue.NewScheduler(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := scheduler.RegisterCleanupJobs(); err != nil {
		return fmt.Errorf("failed to register scheduled jobs: %w", err)
	}
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	if err := srv.Start(mux); err != nil {
		scheduler.Shutdown()
		return fmt.Errorf("failed to start asynq server: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down worker")

	scheduler.Shutdown()
	srv.Shutdown()

	log.Info().Msg("👋 Worker stopped")
	return nil
}
