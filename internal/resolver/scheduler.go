package resolver

import (
	"context"
	"fmt"
	"time"

	"enricher/pkg/domain"
	"enricher/pkg/logger"
	"enricher/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchSize is the number of domains resolved concurrently.
	DefaultBatchSize = 10
	// DefaultBatchPause is the pause between two executed batches.
	DefaultBatchPause = 50 * time.Millisecond
)

// DomainResolver resolves a single domain.
type DomainResolver interface {
	Resolve(ctx context.Context, name string) (domain.EnrichedDomain, error)
}

var _ DomainResolver = (*Resolver)(nil)

// BatchMemo wraps the execution of one batch. Implementations may return a
// previously saved result for index instead of calling run, or save what run
// returns. The returned slice must hold one record per domain of the batch.
type BatchMemo func(
	ctx context.Context,
	index int,
	run func(ctx context.Context) ([]domain.EnrichedDomain, error),
) ([]domain.EnrichedDomain, error)

// SchedulerOptions configure a Scheduler.
type SchedulerOptions struct {
	// BatchSize is the number of domains resolved concurrently. Batches run
	// strictly one after another.
	BatchSize int
	// Pause is waited after each executed batch except the last.
	Pause time.Duration
}

// Scheduler enriches a list of domains in sequential batches.
type Scheduler struct {
	resolver DomainResolver
	options  SchedulerOptions
}

// NewScheduler constructs a Scheduler. A non-positive BatchSize means
// DefaultBatchSize.
func NewScheduler(resolver DomainResolver, options SchedulerOptions) *Scheduler {
	if options.BatchSize <= 0 {
		options.BatchSize = DefaultBatchSize
	}

	return &Scheduler{
		resolver: resolver,
		options:  options,
	}
}

// Batches returns the number of batches needed for n domains.
func (s *Scheduler) Batches(n int) int {
	return (n + s.options.BatchSize - 1) / s.options.BatchSize
}

// Run enriches domains and returns one record per domain in input order.
// A domain whose resolution fails gets a defaulted record. Only context
// cancellation or a memo failure aborts the run; the in-flight batch is lost.
func (s *Scheduler) Run(ctx context.Context, domains []string, memo BatchMemo) ([]domain.EnrichedDomain, error) {
	if memo == nil {
		memo = func(ctx context.Context, _ int, run func(context.Context) ([]domain.EnrichedDomain, error)) ([]domain.EnrichedDomain, error) {
			return run(ctx)
		}
	}

	out := make([]domain.EnrichedDomain, 0, len(domains))
	for index, start := 0, 0; start < len(domains); index, start = index+1, start+s.options.BatchSize {
		end := min(start+s.options.BatchSize, len(domains))
		batch := domains[start:end]

		executed := false
		results, err := memo(ctx, index, func(ctx context.Context) ([]domain.EnrichedDomain, error) {
			executed = true

			return s.resolveBatch(ctx, batch)
		})
		if err != nil {
			return nil, fmt.Errorf("could not enrich batch %d: %w", index, err)
		}
		if len(results) != len(batch) {
			return nil, fmt.Errorf("batch %d holds %d records, want %d", index, len(results), len(batch))
		}
		out = append(out, results...)

		if executed && end < len(domains) && s.options.Pause > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.options.Pause):
			}
		}
	}

	return out, nil
}

func (s *Scheduler) resolveBatch(ctx context.Context, batch []string) ([]domain.EnrichedDomain, error) {
	results := make([]domain.EnrichedDomain, len(batch))

	var g errgroup.Group
	g.SetLimit(s.options.BatchSize)
	for i, name := range batch {
		g.Go(func() error {
			record, err := s.resolver.Resolve(ctx, name)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn(ctx, "could not resolve domain, storing defaults", zap.String("domain", name), zap.Error(err))
				metrics.ResolveFailures.Inc()
				record = domain.DefaultEnrichedDomain(name)
			}
			results[i] = record

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
