package main

import (
	"context"
	"time"

	"creator-portal-backend/internal/config"
	"creator-portal-backend/pkg/container"
	"creator-portal-backend/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env chỉ có ở local dev; production dùng env thật
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.Init(cfg.App.Environment)

	log.Info().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Msg("🚀 Starting Creator Portal API")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	c, err := container.New(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize container")
	}
	defer c.Cleanup()

	// Seed list thắng mọi entry admin tạo trùng tên
	reconcileCtx, cancelReconcile := context.WithTimeout(context.Background(), 30*time.Second)
	if err := c.LocationService.Reconcile(reconcileCtx); err != nil {
		cancelReconcile()
		log.Fatal().Err(err).Msg("Failed to reconcile location registry")
	}
	cancelReconcile()

	router := SetupRouter(c)

	if err := Serve(router, cfg); err != nil {
		log.Fatal().Err(err).Msg("Server exited with error")
	}
}
