// Package worker runs enrichment jobs in the background with River.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"enricher/internal/config"
	"enricher/internal/enricher"
	"enricher/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client started by Start.
type Options struct {
	// MaxWorkers is the number of runs processed concurrently.
	MaxWorkers int
	// JobTimeout bounds a single attempt of a run.
	JobTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		JobTimeout: cfg.Worker.JobTimeout,
	}
}

// Start creates a River client working enrichment jobs and starts it.
func Start(ctx context.Context, dbPool *pgxpool.Pool, enricher enricher.Enricher, options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewEnrichWorker(enricher, options.JobTimeout))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
