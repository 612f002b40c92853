package main

import (
	"log"

	"github.com/reqcover/reqcover/internal/api"
	"github.com/reqcover/reqcover/internal/config"
	"github.com/reqcover/reqcover/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	server := api.NewServer(cfg, logger)

	logger.Info("starting reqcover server",
		"port", cfg.Server.Port,
		"threshold", cfg.Analysis.Threshold,
	)
	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
