package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tours/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(context.Background()); closeErr != nil {
			logger.Error("Failed to release resources", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	startWebServer(ctx, e, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func newLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", port)
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
