package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"enricher/pkg/domain"
	"enricher/pkg/logger"
	"enricher/pkg/serrors"
	"enricher/pkg/storage"
	"enricher/pkg/storage/sqlite"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func ptr[T any](v T) *T { return &v }

func setupEmptyDB(t *testing.T) *sqlite.SQLite {
	t.Helper()

	db, err := sqlite.New(sqlite.Options{Path: filepath.Join(t.TempDir(), "data", "enricher.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func setupTestDB(t *testing.T) *sqlite.SQLite {
	t.Helper()

	db := setupEmptyDB(t)
	require.NoError(t, db.EnsureSchema(context.Background()))

	return db
}

func enriched(name string) domain.EnrichedDomain {
	return domain.EnrichedDomain{
		Raw:    name,
		Domain: name,
		HasMX:  true,
		MX:     []domain.MXRecord{{Exchange: "mx." + name, Priority: 5}},
		SPF:    ptr("v=spf1 -all"),
		DMARC:  ptr("v=DMARC1; p=none"),
	}
}

func TestSQLite_NotInitialized(t *testing.T) {
	t.Parallel()

	db := setupEmptyDB(t)
	err := db.UpsertDomains(context.Background(), enriched("acme.com"))
	require.ErrorIs(t, err, storage.ErrNotInitialized)
	require.Equal(t, storage.ErrNotInitialized, serrors.KindOf(err))

	require.NoError(t, db.EnsureSchema(context.Background()))
	// applying twice is a no-op
	require.NoError(t, db.EnsureSchema(context.Background()))
	require.NoError(t, db.UpsertDomains(context.Background(), enriched("acme.com")))
}

func TestSQLite_Domains(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.UpsertDomains(ctx))
	require.NoError(t, db.UpsertDomains(ctx, enriched("acme.com"), enriched("globex.com")))
	require.NoError(t, db.UpsertDomain(ctx, enriched("initech.com")))

	row, err := db.DomainByName(ctx, "acme.com")
	require.NoError(t, err)
	require.NotNil(t, row)
	require.True(t, row.HasMX)
	require.Equal(t, []domain.MXRecord{{Exchange: "mx.acme.com", Priority: 5}}, row.MX)
	require.Equal(t, "v=spf1 -all", *row.SPF)
	require.False(t, row.CreatedAt.IsZero())
	first := row

	// created_at has millisecond resolution
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, db.UpsertDomain(ctx, domain.DefaultEnrichedDomain("acme.com")))
	row, err = db.DomainByName(ctx, "acme.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, row.ID)
	require.True(t, row.CreatedAt.After(first.CreatedAt))
	require.False(t, row.HasMX)
	require.Empty(t, row.MX)
	require.Nil(t, row.SPF)
	require.Nil(t, row.DMARC)

	page, err := db.Domains(ctx, 2, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, page.Total)
	require.Len(t, page.Domains, 2)

	page, err = db.Domains(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Domains, 1)

	missing, err := db.DomainByName(ctx, "missing.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSQLite_Runs(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	id := domain.NewRunID()
	uploadedAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	run, err := db.StoreRun(ctx, domain.Run{
		ID:         id,
		FileName:   "leads.csv",
		URL:        "file:///tmp/leads.csv",
		UploadedAt: uploadedAt,
		State:      domain.RunStatePending,
	})
	require.NoError(t, err)
	require.Equal(t, id, run.ID)
	require.True(t, run.UploadedAt.Equal(uploadedAt))

	again, err := db.StoreRun(ctx, domain.Run{ID: id, FileName: "other.csv", State: domain.RunStateDone})
	require.NoError(t, err)
	require.Equal(t, "leads.csv", again.FileName)

	failed := domain.RunStateEnriching
	updated, err := db.UpdateRun(ctx, id, storage.RunUpdates{
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

	updated, err = db.UpdateRun(ctx, id, storage.RunUpdates{
		State:       domain.RunStateDone,
		FailedStage: ptr(domain.RunState("")),
		LastError:   ptr(""),
		Processed:   ptr(10),
		Domains:     ptr(7),
	})
	require.NoError(t, err)
	require.Equal(t, domain.RunStateDone, updated.State)
	require.Empty(t, updated.FailedStage)
	require.Empty(t, updated.LastError)
	require.Equal(t, 10, updated.Processed)
	require.Equal(t, 7, updated.Domains)

	missing, err := db.UpdateRun(ctx, domain.NewRunID(), storage.RunUpdates{State: domain.RunStateDone})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSQLite_Checkpoints(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	id := domain.NewRunID()
	_, err := db.StoreRun(ctx, domain.Run{ID: id, FileName: "a.csv", URL: "file:///a.csv", State: domain.RunStatePending})
	require.NoError(t, err)

	_, found, err := db.Checkpoint(ctx, id, "scan")
	require.NoError(t, err)
	require.False(t, found)

	payload := []byte{0x00, 0x91, 0xff, '\''}
	require.NoError(t, db.SaveCheckpoint(ctx, id, "scan", payload))
	require.NoError(t, db.SaveCheckpoint(ctx, id, "scan", payload))

	got, found, err := db.Checkpoint(ctx, id, "scan")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, payload, got)
}

func TestSQLite_WithTx(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(s storage.AllStorage) error {
		require.NoError(t, s.UpsertDomain(ctx, enriched("rollback.com")))

		return serrors.ErrConflict
	})
	require.ErrorIs(t, err, serrors.ErrConflict)

	row, err := db.DomainByName(ctx, "rollback.com")
	require.NoError(t, err)
	require.Nil(t, row)

	require.NoError(t, db.WithTx(ctx, func(s storage.AllStorage) error {
		return s.UpsertDomain(ctx, enriched("commit.com"))
	}))
	row, err = db.DomainByName(ctx, "commit.com")
	require.NoError(t, err)
	require.NotNil(t, row)

	_, err = db.AddJob(ctx, nil, nil)
	require.ErrorIs(t, err, storage.ErrJobsUnsupported)
}
