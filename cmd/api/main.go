package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/campushub/backend/internal/bootstrap"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/pkg/logger"
	"github.com/campushub/backend/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	flag.Parse()

	// .env is a development convenience; absence is not an error
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	app, err := bootstrap.NewApplication(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to start application")
		os.Exit(1)
	}
	defer app.Close()

	if err := server.Run(app); err != nil {
		logger.Error().Err(err).Msg("Server error")
		os.Exit(1)
	}
}
