package main

import (
	"log/slog"

	"github.com/FACorreiaa/complaint-analyzer/internal/domain/complaint/extractor"
	"github.com/FACorreiaa/complaint-analyzer/internal/pipeline"
	"github.com/FACorreiaa/complaint-analyzer/internal/textsource"
	"github.com/FACorreiaa/complaint-analyzer/pkg/config"
	"github.com/FACorreiaa/complaint-analyzer/pkg/cron"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Pipeline  *pipeline.Service
	Scheduler *cron.Scheduler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	sentinel := extractor.SentinelNull
	if cfg.Pipeline.Mode == config.ModeFinancial {
		sentinel = extractor.SentinelEmpty
	}

	deps.Pipeline = pipeline.New(logger, textsource.Extract, pipeline.Options{
		MinBlockChars: cfg.Pipeline.MinBlockChars,
		Workers:       cfg.Pipeline.Workers,
		Sentinel:      sentinel,
	})

	if cfg.Watch.Enabled {
		deps.Scheduler = cron.NewScheduler(cfg.Input.Dir, cfg.Watch.Schedule, deps.runBatch, logger)
	}

	logger.Info("all dependencies initialized successfully")

	return deps
}
