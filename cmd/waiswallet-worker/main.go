package main

import (
	"context"
	"os"
	"time"

	"waiswallet/internal/amqp"
	"waiswallet/internal/cli"
	"waiswallet/internal/log"
	"waiswallet/internal/services"
	"waiswallet/internal/source/api"
	"waiswallet/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentWorker)

	logger.Info("Starting waiswallet-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	// The worker always fetches from the live backend and writes into the
	// SQLite cache that the web process reads when SNAPSHOT_SOURCE=cached.
	fetcher := api.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	// AMQP is optional: without it the worker degrades to interval-only
	// refreshes.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, falling back to periodic refresh only", "error", err)
		} else {
			defer amqpClient.Close()
		}
	}

	refresher := services.NewRefreshService(fetcher, repo)
	refreshWorker := worker.NewRefreshWorker(refresher, amqpClient, cfg.RefreshInterval)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	if err := refreshWorker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped gracefully")
}
