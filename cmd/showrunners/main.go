package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/config"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/handlers/cli"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/telemetry"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/retryqueue"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/scheduler"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "invalid configuration", "error", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			logger.Fatal(ctx, "could not initialise telemetry", "error", err)
		}
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Error(ctx, "telemetry shutdown failed", "error", err)
			}
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithServiceName(cfg.ServiceName)); err != nil {
		logger.Fatal(ctx, "could not initialise logger", "error", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal(ctx, "could not open storage", "storage.backend", cfg.Storage.Backend, "error", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(ctx, "storage close failed", "error", err)
		}
	}()

	app := build(ctx, cfg, store)

	sweeper := retryqueue.New(store, app.sender)
	jobs := append(app.jobs, scheduler.RetrySweepJob(sweeper, cfg.Retry.Interval, cfg.JobTimeout, cfg.Retry.BatchLimit, cfg.Retry.MaxRetries))
	sched := scheduler.New(jobs, scheduler.WithDefaultTimeout(cfg.JobTimeout))

	defaults := cli.SweepDefaults{BatchLimit: cfg.Retry.BatchLimit, MaxRetries: cfg.Retry.MaxRetries}
	if err := cli.Run(ctx, sched, app.registry, sweeper, defaults); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
