// Package pipeline orchestrates a CSV enrichment run: download, scan,
// deduplicate, enrich and persist. Every stage is a checkpointed step so that
// a retried run replays completed stages instead of executing them again.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"enricher/internal/extractor"
	"enricher/internal/resolver"
	"enricher/pkg/domain"
	"enricher/pkg/logger"
	"enricher/pkg/metrics"
	"enricher/pkg/storage"

	"github.com/tinylib/msgp/msgp"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Step names used as checkpoint keys.
const (
	StepDownload = "download"
	StepScan     = "scan"
	StepDedupe   = "dedupe"
	StepPersist  = "persist"
)

// StepEnrich returns the checkpoint key of the given enrichment batch.
func StepEnrich(batch int) string {
	return fmt.Sprintf("enrich/%04d", batch)
}

// Pipeline runs enrichment runs against a store.
type Pipeline struct {
	storage   storage.Storage
	fetcher   Fetcher
	scheduler *resolver.Scheduler
	writer    *Writer
	options   Options
	tracer    trace.Tracer
}

// New constructs a Pipeline.
func New(storage storage.Storage, fetcher Fetcher, scheduler *resolver.Scheduler, options Options) *Pipeline {
	if options.MaxDomains <= 0 {
		options.MaxDomains = extractor.DefaultMaxDomains
	}

	return &Pipeline{
		storage:   storage,
		fetcher:   fetcher,
		scheduler: scheduler,
		writer:    NewWriter(storage, options.WriteMode),
		options:   options,
		tracer:    otel.Tracer("enricher/internal/pipeline"),
	}
}

// Run executes the run identified by runID for the file announced by event.
// A run that already finished successfully returns its stored result. On
// failure the returned error is a *StageError naming the failed stage and the
// run record is marked failed.
func (p *Pipeline) Run(ctx context.Context, runID domain.RunID, event domain.TriggerEvent) (domain.RunResult, error) {
	ctx = logger.WithFields(ctx, zap.String("runID", string(runID)), zap.String("fileName", event.FileName))
	ctx, span := p.tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(
		attribute.String("run.id", string(runID)),
		attribute.String("run.file_name", event.FileName),
	))
	defer span.End()

	run, err := p.start(ctx, runID, event)
	if err != nil {
		return domain.RunResult{}, err
	}
	if run.State == domain.RunStateDone {
		logger.Info(ctx, "run already finished")

		return run.Result(), nil
	}

	result, err := p.execute(ctx, runID, event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.fail(ctx, runID, err)

		return result, err
	}

	if _, err := p.storage.UpdateRun(ctx, runID, storage.RunUpdates{
		State:     domain.RunStateDone,
		Processed: &result.Processed,
		Domains:   &result.Domains,
	}); err != nil {
		return result, fmt.Errorf("could not mark run as done: %w", err)
	}
	metrics.Runs.WithLabelValues(string(domain.RunStateDone), "").Inc()
	logger.Info(ctx, "run finished", zap.Int("processed", result.Processed), zap.Int("domains", result.Domains))

	return result, nil
}

// start records the run and a new attempt. A missing schema is created once.
func (p *Pipeline) start(ctx context.Context, runID domain.RunID, event domain.TriggerEvent) (*domain.Run, error) {
	var run *domain.Run
	err := p.withSchema(ctx, func() error {
		var err error
		run, err = p.storage.StoreRun(ctx, domain.Run{
			ID:         runID,
			FileName:   event.FileName,
			URL:        event.URL,
			UploadedAt: event.UploadedAt,
			State:      domain.RunStatePending,
		})

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not store run: %w", err)
	}
	if run.State == domain.RunStateDone {
		return run, nil
	}

	empty := ""
	noStage := domain.RunState("")
	run, err = p.storage.UpdateRun(ctx, runID, storage.RunUpdates{
		State:             domain.RunStateDownloading,
		FailedStage:       &noStage,
		LastError:         &empty,
		IncrementAttempts: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start run: %w", err)
	}
	if run == nil {
		return nil, fmt.Errorf("run %s disappeared", runID)
	}
	logger.Info(ctx, "run started", zap.Int("attempt", run.Attempts))

	return run, nil
}

func (p *Pipeline) execute(ctx context.Context, runID domain.RunID, event domain.TriggerEvent) (domain.RunResult, error) {
	result := domain.RunResult{FileName: event.FileName, URL: event.URL}

	var download downloadOutput
	if err := p.stage(ctx, runID, domain.RunStateDownloading, func(ctx context.Context) error {
		return step(ctx, p.storage, runID, StepDownload, &download, func(ctx context.Context) error {
			data, err := p.fetcher.Fetch(ctx, event.URL)
			if err != nil {
				return fetchError(err)
			}
			download = downloadOutput{Data: data, Fingerprint: xxh3.Hash(data)}

			return nil
		})
	}); err != nil {
		return result, err
	}
	logger.Info(ctx, "file downloaded",
		zap.Int("bytes", len(download.Data)), zap.String("fingerprint", strconv.FormatUint(download.Fingerprint, 16)))

	var scanned scanOutput
	if err := p.stage(ctx, runID, domain.RunStateScanning, func(ctx context.Context) error {
		return step(ctx, p.storage, runID, StepScan, &scanned, func(context.Context) error {
			scanner := extractor.NewRowScanner(download.Data, extractor.ScanOptions{DetectHeader: p.options.DetectHeader})
			candidates := []string{}
			for candidate := range scanner.Candidates() {
				candidates = append(candidates, candidate)
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			stats := scanner.Stats()
			for _, diagnostic := range stats.Diagnostics {
				logger.Debug(ctx, "malformed csv row",
					zap.Int("line", diagnostic.Line), zap.Int("column", diagnostic.Column), zap.String("error", diagnostic.Message))
			}
			scanned = scanOutput{
				Candidates: candidates,
				Rows:       stats.Rows,
				UsableRows: stats.UsableRows,
				Malformed:  stats.Malformed,
			}

			return nil
		})
	}); err != nil {
		return result, err
	}
	logger.Info(ctx, "file scanned",
		zap.Int("rows", scanned.Rows), zap.Int("candidates", len(scanned.Candidates)), zap.Int("malformed", scanned.Malformed))

	var set dedupeOutput
	if err := p.stage(ctx, runID, domain.RunStateDeduplicating, func(ctx context.Context) error {
		return step(ctx, p.storage, runID, StepDedupe, &set, func(context.Context) error {
			set = dedupeOutput(extractor.Dedupe(slices.Values(scanned.Candidates), p.options.MaxDomains))

			return nil
		})
	}); err != nil {
		return result, err
	}
	if set.Dropped > 0 {
		metrics.DomainsTruncated.Add(float64(set.Dropped))
		logger.Warn(ctx, "domain cap reached, dropping the rest",
			zap.Int("max", p.options.MaxDomains), zap.Int("dropped", set.Dropped))
	}
	result.Domains = len(set.Domains)
	if len(set.Domains) == 0 {
		logger.Info(ctx, "no domains found")
		result.Success = true

		return result, nil
	}

	var enriched []domain.EnrichedDomain
	if err := p.stage(ctx, runID, domain.RunStateEnriching, func(ctx context.Context) error {
		var err error
		enriched, err = p.scheduler.Run(ctx, set.Domains, p.batchMemo(runID))

		return err
	}); err != nil {
		return result, err
	}

	var persisted persistOutput
	if err := p.stage(ctx, runID, domain.RunStatePersisting, func(ctx context.Context) error {
		return step(ctx, p.storage, runID, StepPersist, &persisted, func(ctx context.Context) error {
			return p.withSchema(ctx, func() error {
				written, err := p.writer.Persist(ctx, enriched)
				persisted.Written = written

				return err
			})
		})
	}); err != nil {
		return result, err
	}

	result.Success = true
	result.Processed = persisted.Written

	return result, nil
}

// stage records the transition into state and runs fn inside a span.
func (p *Pipeline) stage(ctx context.Context, runID domain.RunID, state domain.RunState, fn func(ctx context.Context) error) error {
	if _, err := p.storage.UpdateRun(ctx, runID, storage.RunUpdates{State: state}); err != nil {
		return stageError(state, fmt.Errorf("could not update run state: %w", err))
	}

	ctx, span := p.tracer.Start(ctx, "pipeline."+string(state))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	metrics.StageDuration.WithLabelValues(string(state)).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return stageError(state, err)
	}

	return nil
}

func (p *Pipeline) fail(ctx context.Context, runID domain.RunID, err error) {
	stage := domain.RunState("")
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		stage = stageErr.Stage
	}
	message := err.Error()

	metrics.Runs.WithLabelValues(string(domain.RunStateFailed), string(stage)).Inc()
	logger.Error(ctx, "run failed", zap.String("stage", string(stage)), zap.Error(err))

	// the run context may be the reason for the failure
	ctx = context.WithoutCancel(ctx)
	if _, updateErr := p.storage.UpdateRun(ctx, runID, storage.RunUpdates{
		State:       domain.RunStateFailed,
		FailedStage: &stage,
		LastError:   &message,
	}); updateErr != nil {
		logger.Error(ctx, "could not mark run as failed", zap.Error(updateErr))
	}
}

// withSchema runs fn and, if the store reports a missing schema, creates the
// schema and runs fn exactly once more.
func (p *Pipeline) withSchema(ctx context.Context, fn func() error) error {
	err := fn()
	if !errors.Is(err, storage.ErrNotInitialized) {
		return err
	}

	logger.Warn(ctx, "store not initialized, creating schema", zap.Error(err))
	if err := p.storage.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}

	return fn()
}

func (p *Pipeline) batchMemo(runID domain.RunID) resolver.BatchMemo {
	return func(
		ctx context.Context,
		index int,
		run func(ctx context.Context) ([]domain.EnrichedDomain, error),
	) ([]domain.EnrichedDomain, error) {
		var out enrichOutput
		err := step(ctx, p.storage, runID, StepEnrich(index), &out, func(ctx context.Context) error {
			records, err := run(ctx)
			out.Records = records

			return err
		})

		return out.Records, err
	}
}

type checkpointable interface {
	msgp.Marshaler
	msgp.Unmarshaler
}

// step loads the checkpoint of (runID, name) into out. Without a checkpoint
// fn fills out and the result is saved.
func step(
	ctx context.Context,
	store storage.CheckpointStorage,
	runID domain.RunID,
	name string,
	out checkpointable,
	fn func(ctx context.Context) error,
) error {
	payload, found, err := store.Checkpoint(ctx, runID, name)
	if err != nil {
		return fmt.Errorf("could not load checkpoint %q: %w", name, err)
	}
	if found {
		_, decodeErr := out.UnmarshalMsg(payload)
		if decodeErr == nil {
			logger.Debug(ctx, "replaying step", zap.String("step", name))

			return nil
		}
		logger.Warn(ctx, "discarding unreadable checkpoint", zap.String("step", name), zap.Error(decodeErr))
	}

	if err := fn(ctx); err != nil {
		return err
	}

	payload, err = out.MarshalMsg(nil)
	if err != nil {
		return fmt.Errorf("could not encode checkpoint %q: %w", name, err)
	}
	if err := store.SaveCheckpoint(ctx, runID, name, payload); err != nil {
		return fmt.Errorf("could not save checkpoint %q: %w", name, err)
	}

	return nil
}
