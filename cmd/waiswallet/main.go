package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"waiswallet/internal/amqp"
	"waiswallet/internal/backend"
	"waiswallet/internal/cli"
	apphttp "waiswallet/internal/http"
	"waiswallet/internal/log"
	"waiswallet/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentApp)

	logger.Info("Starting waiswallet server")

	cfg := cli.LoadAndValidateConfig(logger)

	// Choose the snapshot source (live backend, local cache, or demo data).
	factory := backend.NewFactory(logger.Logger)
	source, err := factory.CreateSource(cfg)
	if err != nil {
		logger.Error("Failed to initialize snapshot source", "error", err, "source", cfg.SnapshotSource)
		os.Exit(1)
	}
	if source.Cleanup != nil {
		defer func() {
			if err := source.Cleanup(); err != nil {
				logger.Error("Snapshot source cleanup failed", "error", err)
			}
		}()
	}

	snapshots := services.NewSnapshotService(source.Reader, cfg.RefreshInterval)

	// AMQP is optional for the web process: without it the refresh button
	// only invalidates local caches instead of asking the worker to refetch.
	var publisher apphttp.RefreshPublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, refresh requests will not reach the worker", "error", err)
		} else {
			defer amqpClient.Close()
			publisher = amqpClient
		}
	}

	srv := apphttp.NewServer(":"+cfg.Port, snapshots, publisher)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	logger.Info("Starting waiswallet server", "port", cfg.Port, "source", cfg.SnapshotSource)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
