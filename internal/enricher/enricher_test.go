package enricher_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"enricher/internal/enricher"
	"enricher/pkg/domain"
	"enricher/pkg/logger"
	"enricher/pkg/serrors"
	"enricher/pkg/storage"
	mockstorage "enricher/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newTestEnricher(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, enricher.Enricher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	e := enricher.New(st, nil, enricher.Options{MaxAttempts: 3, UniquePeriod: time.Hour})

	return ctrl, st, e
}

// expectWithTx wires Storage.WithTx to execute the callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func storeRun(_ context.Context, run domain.Run) (*domain.Run, error) {
	return &run, nil
}

func TestEnricher_Submit(t *testing.T) {
	ctrl, st, e := newTestEnricher(t)
	uploadedAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRun(gomock.Any(), gomock.Any()).DoAndReturn(storeRun)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				job, ok := args.(enricher.JobArgs)
				require.True(t, ok)
				require.Equal(t, "EnrichCSVJob", job.Kind())
				require.NotEmpty(t, job.RunID)
				require.Equal(t, domain.TriggerEvent{
					URL:        "https://files.example/leads.csv",
					FileName:   "leads.csv",
					UploadedAt: uploadedAt,
				}, job.Event())

				opts := job.InsertOpts()
				require.Equal(t, 3, opts.MaxAttempts)
				require.True(t, opts.UniqueOpts.ByArgs)
				require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)

				return true, nil
			})
	})

	run, err := e.Submit(context.Background(), domain.TriggerEvent{
		URL:        "https://files.example/leads.csv",
		FileName:   " leads.csv ",
		UploadedAt: uploadedAt,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RunStatePending, run.State)
	require.Equal(t, "leads.csv", run.FileName)
	_, err = domain.ParseRunID(string(run.ID))
	require.NoError(t, err)
}

func TestEnricher_Submit_defaults(t *testing.T) {
	ctrl, st, e := newTestEnricher(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRun(gomock.Any(), gomock.Any()).DoAndReturn(storeRun)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	run, err := e.Submit(context.Background(), domain.TriggerEvent{URL: "https://files.example/uploads/contacts.csv"})
	require.NoError(t, err)
	require.Equal(t, "contacts.csv", run.FileName)
	require.False(t, run.UploadedAt.IsZero())
}

func TestEnricher_Submit_duplicate(t *testing.T) {
	ctrl, st, e := newTestEnricher(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRun(gomock.Any(), gomock.Any()).DoAndReturn(storeRun)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
	})

	_, err := e.Submit(context.Background(), domain.TriggerEvent{URL: "https://files.example/leads.csv"})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestEnricher_Submit_invalid(t *testing.T) {
	_, _, e := newTestEnricher(t)

	for _, raw := range []string{"", "ftp://files.example/a.csv", "/tmp/a.csv", "https://", "https://files.example/"} {
		_, err := e.Submit(context.Background(), domain.TriggerEvent{URL: raw})
		require.ErrorIs(t, err, serrors.ErrBadRequest, raw)
	}
}

func TestEnricher_Submit_storeError(t *testing.T) {
	ctrl, st, e := newTestEnricher(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRun(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	})

	_, err := e.Submit(context.Background(), domain.TriggerEvent{URL: "https://files.example/leads.csv"})
	require.ErrorContains(t, err, "boom")
}

func TestEnricher_Run(t *testing.T) {
	_, st, e := newTestEnricher(t)
	id := domain.NewRunID()

	st.EXPECT().RunByID(gomock.Any(), id).Return(&domain.Run{ID: id, State: domain.RunStateDone}, nil)
	run, err := e.Run(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, domain.RunStateDone, run.State)

	st.EXPECT().RunByID(gomock.Any(), id).Return(nil, nil)
	_, err = e.Run(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestEnricher_Domains(t *testing.T) {
	_, st, e := newTestEnricher(t)

	st.EXPECT().Domains(gomock.Any(), uint(50), uint(100)).Return(storage.DomainPage{Total: 120}, nil)
	page, err := e.Domains(context.Background(), 50, 100)
	require.NoError(t, err)
	require.EqualValues(t, 120, page.Total)

	_, err = e.Domains(context.Background(), 0, 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	_, err = e.Domains(context.Background(), enricher.MaxPageSize+1, 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestEnricher_Domain(t *testing.T) {
	_, st, e := newTestEnricher(t)

	row := &domain.DomainRow{EnrichedDomain: domain.DefaultEnrichedDomain("example.com")}
	st.EXPECT().DomainByName(gomock.Any(), "example.com").Return(row, nil)
	got, err := e.Domain(context.Background(), "WWW.Example.com.")
	require.NoError(t, err)
	require.Equal(t, row, got)

	st.EXPECT().DomainByName(gomock.Any(), "missing.org").Return(nil, nil)
	_, err = e.Domain(context.Background(), "missing.org")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = e.Domain(context.Background(), "not a domain")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestEnricher_Preview_invalidURL(t *testing.T) {
	_, _, e := newTestEnricher(t)

	_, err := e.Preview(context.Background(), "file:///etc/passwd")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
