// Package enricher is the intake service of the application. It accepts
// trigger events, records runs and hands them to the background worker, and
// answers queries about runs and enriched domains.
package enricher

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"enricher/internal/config"
	"enricher/internal/extractor"
	"enricher/internal/pipeline"
	"enricher/pkg/domain"
	"enricher/pkg/logger"
	"enricher/pkg/serrors"
	"enricher/pkg/storage"

	"go.uber.org/zap"
)

// MaxPageSize caps the limit of a domains page.
const MaxPageSize = 500

// Options configure how enrichment jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker makes
	// for a run before the job is discarded.
	MaxAttempts int
	// UniquePeriod is the window during which a second trigger for the same
	// file does not create a new run.
	UniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Worker.MaxAttempts,
		UniquePeriod: cfg.Worker.UniquePeriod,
	}
}

type enricher struct {
	options  Options
	storage  storage.Storage
	pipeline *pipeline.Pipeline
}

// New creates a new Enricher backed by the provided storage and pipeline.
func New(storage storage.Storage, pipeline *pipeline.Pipeline, options Options) Enricher {
	return &enricher{
		options:  options,
		storage:  storage,
		pipeline: pipeline,
	}
}

// Submit validates event, stores a pending run and enqueues the job that
// processes it. Both happen in one transaction. A file already queued within
// the unique period is reported as a conflict.
func (e *enricher) Submit(ctx context.Context, event domain.TriggerEvent) (*domain.Run, error) {
	event, err := validateEvent(event)
	if err != nil {
		return nil, err
	}

	var run *domain.Run
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		run, err = tx.StoreRun(ctx, domain.Run{
			ID:         domain.NewRunID(),
			FileName:   event.FileName,
			URL:        event.URL,
			UploadedAt: event.UploadedAt,
			State:      domain.RunStatePending,
		})
		if err != nil {
			return fmt.Errorf("could not store run: %w", err)
		}

		added, err := tx.AddJob(ctx, JobArgs{
			RunID:        run.ID,
			URL:          event.URL,
			FileName:     event.FileName,
			UploadedAt:   event.UploadedAt,
			maxAttempts:  e.options.MaxAttempts,
			uniquePeriod: e.options.UniquePeriod,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		if !added {
			return serrors.With(serrors.ErrConflict, "file %q is already being processed", event.FileName)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit run: %w", err)
	}

	logger.Info(ctx, "run submitted", zap.String("runID", string(run.ID)), zap.String("fileName", run.FileName))

	return run, nil
}

// Process executes the run synchronously.
func (e *enricher) Process(ctx context.Context, runID domain.RunID, event domain.TriggerEvent) (domain.RunResult, error) {
	return e.pipeline.Run(ctx, runID, event) //nolint: wrapcheck
}

func (e *enricher) Run(ctx context.Context, runID domain.RunID) (*domain.Run, error) {
	run, err := e.storage.RunByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("could not get run: %w", err)
	}
	if run == nil {
		return nil, serrors.With(serrors.ErrNotFound, "run not found")
	}

	return run, nil
}

// Domains returns a page of enriched domains, newest first.
func (e *enricher) Domains(ctx context.Context, limit, offset uint) (storage.DomainPage, error) {
	if limit == 0 || limit > MaxPageSize {
		return storage.DomainPage{}, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxPageSize)
	}

	page, err := e.storage.Domains(ctx, limit, offset)
	if err != nil {
		return storage.DomainPage{}, fmt.Errorf("could not get domains: %w", err)
	}

	return page, nil
}

// Domain looks a domain up by name. The name goes through the same extraction
// and normalization as CSV cells, so "WWW.Example.com." finds "example.com".
func (e *enricher) Domain(ctx context.Context, name string) (*domain.DomainRow, error) {
	candidate, ok := extractor.ExtractDomain(strings.TrimRight(strings.TrimSpace(name), "."))
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid domain %q", name)
	}
	normalized, ok := extractor.Normalize(candidate)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid domain %q", name)
	}

	row, err := e.storage.DomainByName(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}
	if row == nil {
		return nil, serrors.With(serrors.ErrNotFound, "domain not found")
	}

	return row, nil
}

func (e *enricher) Preview(ctx context.Context, location string) (*pipeline.Preview, error) {
	if _, err := parseFileURL(location); err != nil {
		return nil, err
	}

	return e.pipeline.Preview(ctx, location) //nolint: wrapcheck
}

// validateEvent checks the URL and fills a missing file name and upload time.
func validateEvent(event domain.TriggerEvent) (domain.TriggerEvent, error) {
	u, err := parseFileURL(event.URL)
	if err != nil {
		return event, err
	}
	event.URL = u.String()

	event.FileName = strings.TrimSpace(event.FileName)
	if event.FileName == "" {
		event.FileName = path.Base(u.Path)
	}
	if event.FileName == "" || event.FileName == "/" || event.FileName == "." {
		return event, serrors.With(serrors.ErrBadRequest, "file name is required")
	}

	if event.UploadedAt.IsZero() {
		event.UploadedAt = time.Now().UTC()
	}

	return event, nil
}

func parseFileURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid file URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "file URL must be an absolute http(s) URL")
	}

	return u, nil
}
