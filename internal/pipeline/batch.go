package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/oportunia/radar/internal/domain"
)

const defaultConcurrency = 8

// Result holds the enrichment outcome for a single video.
type Result struct {
	Video     domain.Video          `json:"video"`
	Breakdown domain.ScoreBreakdown `json:"breakdown"`
	Error     error                 `json:"-"`
}

// BatchScorer enriches and scores many videos in parallel using a worker
// pool. Per-video results are independent; input order is preserved in the
// output.
type BatchScorer struct {
	enricher    *Enricher
	concurrency int
	logger      Logger
}

// NewBatchScorer creates a batch scorer.
func NewBatchScorer(enricher *Enricher, concurrency int, logger Logger) *BatchScorer {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &BatchScorer{
		enricher:    enricher,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Process enriches and scores the batch. The returned slice is index-aligned
// with the input; a per-video failure is carried in its Result, never
// aborting the batch.
func (b *BatchScorer) Process(ctx context.Context, videos []domain.Video) []Result {
	if len(videos) == 0 {
		return []Result{}
	}

	b.logger.Info("starting batch scoring",
		"batch_size", len(videos),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()
	results := make([]Result, len(videos))
	jobs := make(chan int, len(videos))

	if tp := b.enricher.telemetry; tp != nil {
		tp.RecordBatchSize(len(videos))
		tp.SetQueueDepth(len(videos))
		tp.SetActiveWorkers(b.concurrency)
		defer func() {
			tp.SetQueueDepth(0)
			tp.SetActiveWorkers(0)
		}()
	}

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, videos, results, &wg)
	}

	for i := range videos {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	duration := time.Since(startTime)
	successCount := 0
	for i := range results {
		if results[i].Error == nil {
			successCount++
		}
	}

	b.logger.Info("batch scoring complete",
		"total", len(videos),
		"success", successCount,
		"errors", len(videos)-successCount,
		"duration_ms", duration.Milliseconds(),
	)

	return results
}

func (b *BatchScorer) worker(
	ctx context.Context,
	id int,
	jobs <-chan int,
	videos []domain.Video,
	results []Result,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	b.logger.Debug("worker started", "worker_id", id)

	for idx := range jobs {
		select {
		case <-ctx.Done():
			b.logger.Warn("worker stopping, context cancelled", "worker_id", id)
			results[idx] = Result{Video: videos[idx], Error: ctx.Err()}
			continue
		default:
		}

		video := videos[idx]
		breakdown, err := b.enricher.Enrich(ctx, &video)
		results[idx] = Result{Video: video, Breakdown: breakdown, Error: err}
	}

	b.logger.Debug("worker finished", "worker_id", id)
}
