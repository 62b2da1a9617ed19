// Package pipeline orchestrates a batch run: text extraction per document,
// segmentation, field extraction, the cross-document dedup barrier, and the
// financial mining variant. Documents are independent, so they fan out to a
// worker pool; deduplication runs only after every document has finished.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/FACorreiaa/complaint-analyzer/internal/domain/complaint/dedup"
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/complaint/extractor"
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/complaint/segmenter"
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/aggregate"
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/miner"
	"github.com/FACorreiaa/complaint-analyzer/internal/report"
)

// ErrNoComplaints reports a batch that ran to completion but extracted zero
// records. It is a user-visible terminal outcome for the run, not a crash.
var ErrNoComplaints = errors.New("no valid complaints were extracted")

// TextSource supplies one ordered text stream per document. It is the only
// collaborator allowed to fail.
type TextSource func(path string) (string, error)

// Options tunes a Service.
type Options struct {
	MinBlockChars int
	Workers       int    // <= 0 means GOMAXPROCS
	Sentinel      string // value for never-matched fields
}

// Service runs the extraction pipeline.
type Service struct {
	logger   *slog.Logger
	source   TextSource
	seg      *segmenter.Segmenter
	ext      *extractor.Extractor
	miner    *miner.Miner
	workers  int
}

// New creates a Service using the given text source.
func New(logger *slog.Logger, source TextSource, opts Options) *Service {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Service{
		logger:  logger,
		source:  source,
		seg:     segmenter.New(opts.MinBlockChars),
		ext:     extractor.New(opts.Sentinel),
		miner:   miner.New(),
		workers: workers,
	}
}

// DocumentResult holds the per-document extraction outcome.
type DocumentResult struct {
	Path    string
	Blocks  int
	Records []extractor.Record
}

// SkippedDocument records a document the batch could not ingest.
type SkippedDocument struct {
	Path   string
	Reason string
}

// RunResult is the outcome of a whole batch.
type RunResult struct {
	RunID     uuid.UUID
	Documents int
	Skipped   []SkippedDocument
	Records   []extractor.Record
}

// ProcessDocument extracts the complaint records of a single document. The
// returned error covers ingestion only; extraction itself cannot fail.
func (s *Service) ProcessDocument(ctx context.Context, path string) (*DocumentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := s.source(path)
	if err != nil {
		return nil, err
	}

	blocks := s.seg.Split(text)
	records := make([]extractor.Record, 0, len(blocks))
	for _, block := range blocks {
		s.logUnrecognizedLabels(path, block)
		records = append(records, s.ext.Extract(block))
	}

	s.logger.Debug("document processed",
		slog.String("path", path),
		slog.Int("blocks", len(blocks)),
	)

	return &DocumentResult{Path: path, Blocks: len(blocks), Records: records}, nil
}

// Run processes a batch of documents on a worker pool, then applies the
// dedup barrier across the accumulated records. A document that fails to
// ingest is recorded as skipped and never aborts the batch. A batch that
// yields zero records returns the result alongside ErrNoComplaints.
func (s *Service) Run(ctx context.Context, paths []string) (*RunResult, error) {
	result := &RunResult{RunID: uuid.New(), Documents: len(paths)}
	s.logger.Info("batch started",
		slog.String("run_id", result.RunID.String()),
		slog.Int("documents", len(paths)),
		slog.Int("workers", s.workers),
	)

	type indexed struct {
		idx int
		res *DocumentResult
		err error
	}

	jobs := make(chan int, len(paths))
	results := make(chan indexed, len(paths))

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				res, err := s.ProcessDocument(ctx, paths[idx])
				select {
				case results <- indexed{idx: idx, res: res, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	perDoc := make([]*DocumentResult, len(paths))
	skipped := make([]*SkippedDocument, len(paths))
	for r := range results {
		if r.err != nil {
			s.logger.Warn("document skipped",
				slog.String("run_id", result.RunID.String()),
				slog.String("path", paths[r.idx]),
				slog.Any("error", r.err),
			)
			skipped[r.idx] = &SkippedDocument{Path: paths[r.idx], Reason: r.err.Error()}
			continue
		}
		perDoc[r.idx] = r.res
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Barrier: every document is done before cross-document dedup. Results
	// flatten in input order so first-occurrence wins deterministically.
	var all []extractor.Record
	for _, doc := range perDoc {
		if doc != nil {
			all = append(all, doc.Records...)
		}
	}
	for _, sk := range skipped {
		if sk != nil {
			result.Skipped = append(result.Skipped, *sk)
		}
	}
	result.Records = dedup.Filter(all)

	s.logger.Info("batch finished",
		slog.String("run_id", result.RunID.String()),
		slog.Int("records_raw", len(all)),
		slog.Int("records_unique", len(result.Records)),
		slog.Int("skipped", len(result.Skipped)),
	)

	if len(result.Records) == 0 {
		return result, ErrNoComplaints
	}
	return result, nil
}

// RunFinancial processes one document in the financial variant: main fields
// from the full text with the empty-string sentinel, mined transactions, and
// both aggregations.
func (s *Service) RunFinancial(ctx context.Context, path string) (*report.FinancialReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := s.source(path)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}

	fin := extractor.New(extractor.SentinelEmpty)
	txns := s.miner.Mine(text)

	s.logger.Info("financial analysis finished",
		slog.String("path", path),
		slog.Int("transactions", len(txns)),
	)

	return &report.FinancialReport{
		MainFields:   fin.Extract(text),
		Transactions: txns,
		Daily:        aggregate.Daily(txns),
		Destinations: aggregate.Destinations(txns),
	}, nil
}

// logUnrecognizedLabels flags labeled lines the pattern table missed,
// suggesting the closest schema field so new spellings can be added.
func (s *Service) logUnrecognizedLabels(path, block string) {
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !extractor.LooksLabeled(line) || extractor.Recognized(line) {
			continue
		}
		label := line[:strings.Index(line, ":")]
		if field, rank, ok := extractor.SuggestField(label); ok {
			s.logger.Debug("unrecognized label",
				slog.String("path", path),
				slog.String("label", strings.TrimSpace(label)),
				slog.String("closest_field", field),
				slog.Int("rank", rank),
			)
		}
	}
}
