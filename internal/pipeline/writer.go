package pipeline

import (
	"context"
	"errors"
	"fmt"

	"enricher/pkg/domain"
	"enricher/pkg/logger"
	"enricher/pkg/metrics"
	"enricher/pkg/storage"

	"go.uber.org/zap"
)

// Writer persists enriched records with upsert-by-domain semantics.
type Writer struct {
	store storage.DomainStorage
	mode  WriteMode
}

// NewWriter constructs a Writer. Unknown modes fall back to WriteModeBulk.
func NewWriter(store storage.DomainStorage, mode WriteMode) *Writer {
	if mode != WriteModeRow {
		mode = WriteModeBulk
	}

	return &Writer{
		store: store,
		mode:  mode,
	}
}

// Persist upserts records and returns how many were written. Records the
// store rejects are logged and skipped; Persist fails only when every record
// was rejected or the store reports storage.ErrNotInitialized.
func (w *Writer) Persist(ctx context.Context, records []domain.EnrichedDomain) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	if w.mode == WriteModeBulk {
		err := w.store.UpsertDomains(ctx, records...)
		if err == nil {
			metrics.DomainsPersisted.Add(float64(len(records)))

			return len(records), nil
		}
		if errors.Is(err, storage.ErrNotInitialized) || ctx.Err() != nil {
			return 0, err
		}
		logger.Warn(ctx, "bulk upsert failed, writing records one by one",
			zap.Int("records", len(records)), zap.Error(err))
	}

	return w.persistRows(ctx, records)
}

func (w *Writer) persistRows(ctx context.Context, records []domain.EnrichedDomain) (int, error) {
	var (
		written int
		lastErr error
	)
	for _, record := range records {
		err := w.store.UpsertDomain(ctx, record)
		if err == nil {
			written++
			metrics.DomainsPersisted.Inc()

			continue
		}
		if errors.Is(err, storage.ErrNotInitialized) || ctx.Err() != nil {
			return written, err
		}

		lastErr = err
		metrics.RowsRejected.Inc()
		logger.Warn(ctx, "could not persist domain, skipping",
			zap.String("domain", record.Domain), zap.Error(err))
	}

	if written == 0 {
		return 0, fmt.Errorf("all %d records were rejected: %w", len(records), lastErr)
	}

	return written, nil
}
