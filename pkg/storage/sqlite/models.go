package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"enricher/pkg/domain"

	"github.com/google/uuid"
)

type domainRow struct {
	ID     string         `db:"id"`
	Raw    string         `db:"raw"`
	Domain string         `db:"domain"`
	HasMX  bool           `db:"has_mx"`
	MX     string         `db:"mx"`
	SPF    sql.NullString `db:"spf"`
	DMARC  sql.NullString `db:"dmarc"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func newDomainRow(d domain.EnrichedDomain) (domainRow, error) {
	mx := d.MX
	if mx == nil {
		mx = []domain.MXRecord{}
	}
	b, err := json.Marshal(mx)
	if err != nil {
		return domainRow{}, fmt.Errorf("could not marshal mx records: %w", err)
	}

	row := domainRow{
		ID:     uuid.NewString(),
		Raw:    d.Raw,
		Domain: d.Domain,
		HasMX:  d.HasMX,
		MX:     string(b),
	}
	if d.SPF != nil {
		row.SPF = sql.NullString{String: *d.SPF, Valid: true}
	}
	if d.DMARC != nil {
		row.DMARC = sql.NullString{String: *d.DMARC, Valid: true}
	}

	return row, nil
}

func (r domainRow) toDomain() (domain.DomainRow, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.DomainRow{}, fmt.Errorf("could not parse domain id: %w", err)
	}

	mx := []domain.MXRecord{}
	if err := json.Unmarshal([]byte(r.MX), &mx); err != nil {
		return domain.DomainRow{}, fmt.Errorf("could not unmarshal mx records: %w", err)
	}

	out := domain.DomainRow{
		ID:        domain.DomainID(id),
		CreatedAt: r.CreatedAt,
		EnrichedDomain: domain.EnrichedDomain{
			Raw:    r.Raw,
			Domain: r.Domain,
			HasMX:  r.HasMX,
			MX:     mx,
		},
	}
	if r.SPF.Valid {
		out.SPF = &r.SPF.String
	}
	if r.DMARC.Valid {
		out.DMARC = &r.DMARC.String
	}

	return out, nil
}

type runRow struct {
	ID          string         `db:"id"`
	FileName    string         `db:"file_name"`
	URL         string         `db:"url"`
	UploadedAt  sql.NullTime   `db:"uploaded_at"`
	State       string         `db:"state"`
	FailedStage sql.NullString `db:"failed_stage"`
	LastError   sql.NullString `db:"last_error"`
	Processed   int            `db:"processed"`
	Domains     int            `db:"domains"`
	Attempts    int            `db:"attempts"`
	CreatedAt   time.Time      `db:"created_at" goqu:"skipinsert"`
	UpdatedAt   sql.NullTime   `db:"updated_at" goqu:"skipinsert"`
}

func newRunRow(run domain.Run) runRow {
	return runRow{
		ID:          string(run.ID),
		FileName:    run.FileName,
		URL:         run.URL,
		UploadedAt:  sql.NullTime{Time: run.UploadedAt.UTC(), Valid: !run.UploadedAt.IsZero()},
		State:       string(run.State),
		FailedStage: sql.NullString{String: string(run.FailedStage), Valid: run.FailedStage != ""},
		LastError:   sql.NullString{String: run.LastError, Valid: run.LastError != ""},
		Processed:   run.Processed,
		Domains:     run.Domains,
		Attempts:    run.Attempts,
	}
}

func (r runRow) toDomain() *domain.Run {
	return &domain.Run{
		ID:          domain.RunID(r.ID),
		FileName:    r.FileName,
		URL:         r.URL,
		UploadedAt:  r.UploadedAt.Time,
		State:       domain.RunState(r.State),
		FailedStage: domain.RunState(r.FailedStage.String),
		LastError:   r.LastError.String,
		Processed:   r.Processed,
		Domains:     r.Domains,
		Attempts:    r.Attempts,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}
