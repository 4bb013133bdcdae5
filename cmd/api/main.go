package main

import (
	"context"
	"fmt"

	"smart-task-planner/config"
	_ "smart-task-planner/docs" // Swagger docs
	"smart-task-planner/internal/httpserver"
	"smart-task-planner/pkg/log"
)

// @title       Smart Task Planner API
// @description Task suggestion service: scores a task batch by importance, urgency, effort, and dependencies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Smart Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger: logger,
		Cfg:    cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
