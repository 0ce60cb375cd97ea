package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-calculator/internal/api"
	"github.com/DanielPopoola/ficmart-calculator/internal/config"
	"github.com/DanielPopoola/ficmart-calculator/internal/server"
	"github.com/DanielPopoola/ficmart-calculator/internal/telemetry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting calculator service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"rate_source", cfg.Rates.Source,
	)

	ctx := context.Background()

	table, err := server.LoadRateTable(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to load rate table", "error", err)
		os.Exit(1)
	}

	doc, err := api.LoadSpec(ctx)
	if err != nil {
		logger.Error("failed to load api spec", "error", err)
		os.Exit(1)
	}

	var metrics *telemetry.Metrics
	if cfg.Metrics.Enabled {
		metrics = telemetry.NewMetrics(cfg.Metrics.Namespace)
	}

	handler := server.NewHandler(server.Dependencies{
		Server:  cfg.Server,
		Logger:  logger,
		Table:   table,
		Metrics: metrics,
		Doc:     doc,
	})

	srv := server.New(cfg.Server, handler)

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
