package postgres

import (
	"context"

	"enricher/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	checkpointsTable = "pipeline_checkpoints"
)

// Checkpoint returns the payload stored for the given run step.
func (p *PgSQL) Checkpoint(ctx context.Context, runID domain.RunID, step string) ([]byte, bool, error) {
	var payload []byte
	found, err := p.Builder.From(checkpointsTable).
		Prepared(true).
		Select("payload").
		Where(
			goqu.I("run_id").Eq(string(runID)),
			goqu.I("step").Eq(step),
		).
		ScanValContext(ctx, &payload)
	if err != nil {
		return nil, false, translateError(err, "could not fetch checkpoint %q", step)
	}

	return payload, found, nil
}

// SaveCheckpoint upserts the payload of the given run step. Payloads are binary
// so the statement is always sent with bound parameters.
func (p *PgSQL) SaveCheckpoint(ctx context.Context, runID domain.RunID, step string, payload []byte) error {
	if _, err := p.Builder.Insert(checkpointsTable).
		Prepared(true).
		Rows(goqu.Record{
			"run_id":  string(runID),
			"step":    step,
			"payload": payload,
		}).
		OnConflict(goqu.DoUpdate("run_id, step", goqu.Record{
			"payload":    goqu.L("EXCLUDED.payload"),
			"created_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return translateError(err, "could not save checkpoint %q", step)
	}

	return nil
}
