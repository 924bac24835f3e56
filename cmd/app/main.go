package main

import (
	"github.com/rs/zerolog/log"

	"tutorials/config"
	"tutorials/di"
	"tutorials/helper"
	"tutorials/shared/logger"
	"tutorials/shared/timezone"
)

// @title Tutorials API
// @version 1.0
// @description CRUD API for tutorials with title search and a published view.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	if cfg.DB.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	defer cleanup()

	if err := http.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
	}
}
