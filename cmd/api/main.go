package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"time-calculator/config"
	_ "time-calculator/docs" // Swagger docs
	"time-calculator/internal/app"
	"time-calculator/internal/httpserver"
	"time-calculator/pkg/log"
)

// @title       Time Calculator Form API
// @description Field-by-field form session for the time calculator: validation state, presets and submission.
// @version     1
// @host        localhost:8090
// @schemes     http
func main() {
	configFile := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Time Calculator form API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calculation service: %s", cfg.Calculator.BaseURL)

	// 3. Form session
	a, err := app.New(ctx, logger, cfg, app.Options{})
	if err != nil {
		logger.Error(ctx, "Failed to initialize form session: ", err)
		return
	}
	defer a.Close()

	if err := a.Session.Restore(ctx); err != nil {
		logger.Warnf(ctx, "Could not restore last inputs: %v", err)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		FormUseCase:  a.Session,
		SubmitPerMin: cfg.RateLimit.SubmitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
