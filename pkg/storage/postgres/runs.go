package postgres

import (
	"context"

	"enricher/pkg/domain"
	"enricher/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	runsTable = "pipeline_runs"
)

// runUpdateRecord converts updates into the column set of an UPDATE statement.
func runUpdateRecord(updates storage.RunUpdates) goqu.Record {
	rec := goqu.Record{
		"state":      string(updates.State),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.FailedStage != nil {
		if *updates.FailedStage == "" {
			rec["failed_stage"] = goqu.L("NULL")
		} else {
			rec["failed_stage"] = string(*updates.FailedStage)
		}
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
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

	return rec
}

// StoreRun inserts the run if it does not exist yet and returns the stored row.
func (p *PgSQL) StoreRun(ctx context.Context, run domain.Run) (*domain.Run, error) {
	var row PgRun
	row.FromDomain(run)

	if _, err := p.Builder.Insert(runsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return nil, translateError(err, "could not store run into pg")
	}

	return p.RunByID(ctx, run.ID)
}

// UpdateRun updates the run with the given ID and returns the updated row.
func (p *PgSQL) UpdateRun(ctx context.Context, id domain.RunID, updates storage.RunUpdates) (*domain.Run, error) {
	var row PgRun
	found, err := p.Builder.Update(runsTable).
		Set(runUpdateRecord(updates)).
		Where(goqu.I("id").Eq(string(id))).
		Returning(&PgRun{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(err, "could not update run in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RunByID returns the run with the given ID.
func (p *PgSQL) RunByID(ctx context.Context, id domain.RunID) (*domain.Run, error) {
	var row PgRun
	found, err := p.Builder.From(runsTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(err, "could not fetch run by id")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
