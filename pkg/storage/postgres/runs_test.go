package postgres_test

import (
	"context"
	"testing"
	"time"

	"enricher/pkg/domain"
	"enricher/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Runs(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	id := domain.NewRunID()
	uploadedAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	run, err := pgSQL.StoreRun(ctx, domain.Run{
		ID:         id,
		FileName:   "leads.csv",
		URL:        "https://files.example/leads.csv",
		UploadedAt: uploadedAt,
		State:      domain.RunStatePending,
	})
	require.NoError(t, err)
	require.Equal(t, id, run.ID)
	require.Equal(t, domain.RunStatePending, run.State)
	require.True(t, run.UploadedAt.Equal(uploadedAt))
	require.False(t, run.CreatedAt.IsZero())

	// storing the same run again keeps the existing row
	again, err := pgSQL.StoreRun(ctx, domain.Run{ID: id, FileName: "other.csv", URL: "x", State: domain.RunStateDone})
	require.NoError(t, err)
	require.Equal(t, "leads.csv", again.FileName)
	require.Equal(t, domain.RunStatePending, again.State)

	failed := domain.RunStateEnriching
	updated, err := pgSQL.UpdateRun(ctx, id, storage.RunUpdates{
		State:             domain.RunStateFailed,
		FailedStage:       &failed,
		LastError:         ptr("doh down"),
		IncrementAttempts: true,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RunStateFailed, updated.State)
	require.Equal(t, domain.RunStateEnriching, updated.FailedStage)
	require.Equal(t, "doh down", updated.LastError)
	require.Equal(t, 1, updated.Attempts)
	require.False(t, updated.UpdatedAt.IsZero())

	cleared := domain.RunState("")
	updated, err = pgSQL.UpdateRun(ctx, id, storage.RunUpdates{
		State:       domain.RunStateDone,
		FailedStage: &cleared,
		LastError:   ptr(""),
		Processed:   ptr(2),
		Domains:     ptr(2),
	})
	require.NoError(t, err)
	require.Equal(t, domain.RunStateDone, updated.State)
	require.Empty(t, updated.FailedStage)
	require.Empty(t, updated.LastError)
	require.Equal(t, 2, updated.Processed)
	require.Equal(t, 2, updated.Domains)

	got, err := pgSQL.RunByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, updated.State, got.State)

	missing, err := pgSQL.RunByID(ctx, domain.NewRunID())
	require.NoError(t, err)
	require.Nil(t, missing)

	missing, err = pgSQL.UpdateRun(ctx, domain.NewRunID(), storage.RunUpdates{State: domain.RunStateDone})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_Checkpoints(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	id := domain.NewRunID()
	_, err := pgSQL.StoreRun(ctx, domain.Run{ID: id, FileName: "a.csv", URL: "https://x", State: domain.RunStatePending})
	require.NoError(t, err)

	_, found, err := pgSQL.Checkpoint(ctx, id, "download")
	require.NoError(t, err)
	require.False(t, found)

	// binary payloads including invalid UTF-8 survive the round trip
	payload := []byte{0x82, 0xa1, 'u', 0xff, 0x00, 0xc1}
	require.NoError(t, pgSQL.SaveCheckpoint(ctx, id, "download", payload))

	got, found, err := pgSQL.Checkpoint(ctx, id, "download")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, payload, got)

	require.NoError(t, pgSQL.SaveCheckpoint(ctx, id, "download", []byte{1}))
	got, _, err = pgSQL.Checkpoint(ctx, id, "download")
	require.NoError(t, err)
	require.Equal(t, []byte{1}, got)
}
