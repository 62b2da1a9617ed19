// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/FACorreiaa/complaint-analyzer/internal/textsource"
)

// BatchFunc processes a set of newly discovered document paths.
type BatchFunc func(ctx context.Context, paths []string) error

// Scheduler re-scans the input directory on a cron schedule and hands any
// documents it has not seen before to the batch function.
type Scheduler struct {
	cron     *cron.Cron
	inputDir string
	spec     string
	run      BatchFunc
	logger   *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

// NewScheduler creates a new job scheduler.
func NewScheduler(inputDir, spec string, run BatchFunc, logger *slog.Logger) *Scheduler {
	// Cron with seconds disabled (standard 5-field format)
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:     c,
		inputDir: inputDir,
		spec:     spec,
		run:      run,
		logger:   logger,
		seen:     make(map[string]struct{}),
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.scanInputDir)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.String("schedule", s.spec),
		slog.String("input_dir", s.inputDir),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers a scan outside the schedule.
func (s *Scheduler) RunNow() {
	go s.scanInputDir()
}

// scanInputDir lists the input directory and processes documents that have
// not been handed to the batch function before.
func (s *Scheduler) scanInputDir() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	paths, err := textsource.ListDocuments(s.inputDir)
	if err != nil {
		s.logger.Error("failed to list input directory",
			slog.String("input_dir", s.inputDir),
			slog.Any("error", err),
		)
		return
	}

	fresh := s.claimUnseen(paths)
	if len(fresh) == 0 {
		s.logger.Debug("no new documents", slog.String("input_dir", s.inputDir))
		return
	}

	s.logger.Info("processing new documents", slog.Int("count", len(fresh)))

	if err := s.run(ctx, fresh); err != nil {
		s.logger.Warn("scheduled batch finished with error", slog.Any("error", err))
		return
	}

	s.logger.Info("scheduled batch completed", slog.Int("documents", len(fresh)))
}

// claimUnseen marks paths as seen and returns the ones claimed for the
// first time. Claiming up front keeps overlapping scans from processing the
// same document twice.
func (s *Scheduler) claimUnseen(paths []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fresh []string
	for _, p := range paths {
		if _, ok := s.seen[p]; ok {
			continue
		}
		s.seen[p] = struct{}{}
		fresh = append(fresh, p)
	}
	return fresh
}
