package storage

import (
	"context"

	"enricher/pkg/domain"
)

// RunUpdates describes the fields changed by RunStorage.UpdateRun. State is
// always written; the remaining fields only when non-nil.
type RunUpdates struct {
	State domain.RunState
	// FailedStage, when provided, sets the failed stage. An empty value clears it.
	FailedStage *domain.RunState
	// LastError, when provided, sets the last error text. An empty value clears it.
	LastError *string
	Processed *int
	Domains   *int
	// IncrementAttempts bumps the attempt counter by one.
	IncrementAttempts bool
}

// RunStorage persists pipeline run records.
type RunStorage interface {
	// StoreRun inserts the run unless a run with the same ID exists, and returns
	// the stored row in both cases.
	StoreRun(ctx context.Context, run domain.Run) (*domain.Run, error)
	// UpdateRun applies updates to the run with the given ID and returns the
	// updated row, or nil when the run does not exist.
	UpdateRun(ctx context.Context, id domain.RunID, updates RunUpdates) (*domain.Run, error)
	// RunByID returns the run with the given ID or nil when it does not exist.
	RunByID(ctx context.Context, id domain.RunID) (*domain.Run, error)
}
