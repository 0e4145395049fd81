package main

import (
	"os"

	"github.com/Tndevfactory/labtim/internal/bootstrap"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
	"github.com/Tndevfactory/labtim/internal/server"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	database, repos, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, repos)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build dependencies")
	}

	router := bootstrap.SetupRouter(deps)

	if err := server.New(cfg.Server.Port, router).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
