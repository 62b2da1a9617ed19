package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FACorreiaa/complaint-analyzer/internal/pipeline"
	"github.com/FACorreiaa/complaint-analyzer/internal/report"
	"github.com/FACorreiaa/complaint-analyzer/internal/textsource"
	"github.com/FACorreiaa/complaint-analyzer/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	deps := InitDependencies(cfg, logger)

	if cfg.Watch.Enabled {
		if err := runWatch(deps); err != nil {
			logger.Error("watch mode failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	paths, err := textsource.ListDocuments(cfg.Input.Dir)
	if err != nil {
		logger.Error("failed to list input directory",
			slog.String("input_dir", cfg.Input.Dir),
			slog.Any("error", err),
		)
		os.Exit(1)
	}

	if err := deps.runBatch(context.Background(), paths); err != nil {
		logger.Error("batch failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// runWatch runs the scheduler until SIGINT or SIGTERM, scanning once
// immediately so already-present documents are not held until the first
// tick.
func runWatch(deps *Dependencies) error {
	if err := deps.Scheduler.Start(); err != nil {
		return err
	}
	deps.Scheduler.RunNow()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopCtx := deps.Scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		deps.Logger.Warn("scheduler stop timed out")
	}
	return nil
}

// runBatch dispatches a set of documents to the configured analysis mode.
func (d *Dependencies) runBatch(ctx context.Context, paths []string) error {
	if d.Config.Pipeline.Mode == config.ModeFinancial {
		return d.runFinancial(ctx, paths)
	}
	return d.runComplaints(ctx, paths)
}

func (d *Dependencies) runComplaints(ctx context.Context, paths []string) error {
	res, err := d.Pipeline.Run(ctx, paths)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoComplaints) {
			// A clean run with nothing to report, not a failure.
			d.Logger.Warn("no valid complaints were extracted",
				slog.Int("documents", res.Documents),
				slog.Int("skipped", len(res.Skipped)),
			)
			return nil
		}
		return err
	}

	if err := report.WriteComplaints(res.Records, d.Config.Output.ExcelPath); err != nil {
		return err
	}

	d.Logger.Info("complaints report written",
		slog.String("path", d.Config.Output.ExcelPath),
		slog.Int("records", len(res.Records)),
	)
	return nil
}

// runFinancial analyzes a single document. When the input directory holds
// more than one, the first in listing order is used.
func (d *Dependencies) runFinancial(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		d.Logger.Warn("no documents found", slog.String("input_dir", d.Config.Input.Dir))
		return nil
	}
	if len(paths) > 1 {
		d.Logger.Warn("financial mode analyzes one document, using the first",
			slog.String("path", paths[0]),
			slog.Int("ignored", len(paths)-1),
		)
	}

	rep, err := d.Pipeline.RunFinancial(ctx, paths[0])
	if err != nil {
		return err
	}

	if err := report.WriteFinancial(rep, d.Config.Output.ExcelPath); err != nil {
		return err
	}
	d.Logger.Info("financial report written",
		slog.String("path", d.Config.Output.ExcelPath),
		slog.Int("transactions", len(rep.Transactions)),
	)

	if d.Config.Output.CSVPath != "" {
		if err := report.WriteTransactionsCSV(rep.Transactions, d.Config.Output.CSVPath); err != nil {
			return err
		}
		d.Logger.Info("transactions exported", slog.String("path", d.Config.Output.CSVPath))
	}
	return nil
}

// newLogger builds the process logger from the logging configuration.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
