package sqlite

import (
	"context"

	"enricher/pkg/domain"
	"enricher/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	runsTable        = "pipeline_runs"
	checkpointsTable = "pipeline_checkpoints"
)

// StoreRun inserts the run unless it exists and returns the stored row.
func (s *SQLite) StoreRun(ctx context.Context, run domain.Run) (*domain.Run, error) {
	if _, err := s.Builder.Insert(runsTable).
		Prepared(true).
		Rows(newRunRow(run)).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return nil, translateError(err, "could not store run into sqlite")
	}

	return s.RunByID(ctx, run.ID)
}

// UpdateRun applies updates and returns the updated row.
func (s *SQLite) UpdateRun(ctx context.Context, id domain.RunID, updates storage.RunUpdates) (*domain.Run, error) {
	rec := goqu.Record{
		"state":      string(updates.State),
		"updated_at": goqu.L(now),
	}
	if updates.FailedStage != nil {
		rec["failed_stage"] = nullIfEmpty(string(*updates.FailedStage))
	}
	if updates.LastError != nil {
		rec["last_error"] = nullIfEmpty(*updates.LastError)
	}
	if updates.Processed != nil {
		rec["processed"] = *updates.Processed
	}
	if updates.Domains != nil {
		rec["domains"] = *updates.Domains
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}

	res, err := s.Builder.Update(runsTable).
		Set(rec).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, translateError(err, "could not update run in sqlite")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}

	return s.RunByID(ctx, id)
}

// RunByID returns the run or nil.
func (s *SQLite) RunByID(ctx context.Context, id domain.RunID) (*domain.Run, error) {
	var row runRow
	found, err := s.Builder.From(runsTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(err, "could not fetch run by id")
	}
	if !found {
		return nil, nil
	}

	return row.toDomain(), nil
}

// Checkpoint returns the payload saved for the run step.
func (s *SQLite) Checkpoint(ctx context.Context, runID domain.RunID, step string) ([]byte, bool, error) {
	var payload []byte
	found, err := s.Builder.From(checkpointsTable).
		Prepared(true).
		Select("payload").
		Where(goqu.I("run_id").Eq(string(runID)), goqu.I("step").Eq(step)).
		ScanValContext(ctx, &payload)
	if err != nil {
		return nil, false, translateError(err, "could not fetch checkpoint %q", step)
	}

	return payload, found, nil
}

// SaveCheckpoint upserts the payload of the run step.
func (s *SQLite) SaveCheckpoint(ctx context.Context, runID domain.RunID, step string, payload []byte) error {
	if _, err := s.Builder.Insert(checkpointsTable).
		Prepared(true).
		Rows(goqu.Record{"run_id": string(runID), "step": step, "payload": payload}).
		OnConflict(goqu.DoUpdate("run_id, step", goqu.Record{
			"payload":    goqu.L("excluded.payload"),
			"created_at": goqu.L(now),
		})).
		Executor().ExecContext(ctx); err != nil {
		return translateError(err, "could not save checkpoint %q", step)
	}

	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}

	return s
}
