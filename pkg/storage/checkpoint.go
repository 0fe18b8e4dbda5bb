package storage

import (
	"context"

	"enricher/pkg/domain"
)

// CheckpointStorage memoizes the serialized output of completed pipeline steps
// so a retried run replays them instead of executing them again.
type CheckpointStorage interface {
	// Checkpoint returns the payload saved for (runID, step). The boolean is
	// false when no checkpoint exists.
	Checkpoint(ctx context.Context, runID domain.RunID, step string) ([]byte, bool, error)
	// SaveCheckpoint stores the payload for (runID, step), replacing any
	// previous value.
	SaveCheckpoint(ctx context.Context, runID domain.RunID, step string, payload []byte) error
}
