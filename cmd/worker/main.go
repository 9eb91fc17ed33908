package main

import (
	"creator-portal-backend/internal/config"
	"creator-portal-backend/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.Init(cfg.App.Environment)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Msg("🚀 Starting Creator Portal worker")

	if err := Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Worker exited with error")
	}
}
