package main

import (
	"log"
	"os"

	"infinite-experiment/flightdeck/internal/cli"
	"infinite-experiment/flightdeck/internal/config"
	"infinite-experiment/flightdeck/internal/logging"
)

func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("flightdeck starting up",
		"environment", cfg.AppEnv,
		"database", cfg.DatabasePath,
	)

	app, err := cli.NewApp(cfg)
	if err != nil {
		logging.Error("startup failed", "error", err.Error())
		os.Exit(1)
	}

	if err := cli.RootCommand(app).Execute(); err != nil {
		logging.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}
