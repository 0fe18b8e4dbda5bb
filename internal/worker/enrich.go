package worker

import (
	"context"
	"fmt"
	"time"

	"enricher/internal/enricher"
	"enricher/pkg/logger"
	"enricher/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EnrichWorker is a River worker that executes enrichment runs. Every attempt
// of a job processes the same run ID, so the pipeline replays the steps that
// completed during earlier attempts.
//
// Error handling: failures caused by the input file (unreachable, empty or
// oversized) cancel the job since retrying cannot help. Other errors are
// returned so River retries the job with its backoff policy.
type EnrichWorker struct {
	river.WorkerDefaults[enricher.JobArgs]

	enricher enricher.Enricher
	timeout  time.Duration
}

// NewEnrichWorker constructs an EnrichWorker. A non-positive timeout keeps
// River's default job timeout.
func NewEnrichWorker(enricher enricher.Enricher, timeout time.Duration) *EnrichWorker {
	return &EnrichWorker{
		enricher: enricher,
		timeout:  timeout,
	}
}

// Timeout returns the maximum duration of a single attempt.
func (w *EnrichWorker) Timeout(job *river.Job[enricher.JobArgs]) time.Duration {
	if w.timeout <= 0 {
		return w.WorkerDefaults.Timeout(job)
	}

	return w.timeout
}

// Work processes the run of a single job.
func (w *EnrichWorker) Work(ctx context.Context, job *river.Job[enricher.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("runID", string(job.Args.RunID)))

	result, err := w.enricher.Process(ctx, job.Args.RunID, job.Args.Event())
	if err != nil {
		if !serrors.IsRetryable(err) {
			logger.Warn(ctx, "run failed permanently, cancelling job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in processing run", zap.Error(err))

		return fmt.Errorf("could not process run: %w", err)
	}

	logger.Info(ctx, "run processed successfully",
		zap.Int("processed", result.Processed), zap.Int("domains", result.Domains))

	return nil
}
