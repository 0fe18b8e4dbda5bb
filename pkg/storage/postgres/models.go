package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"enricher/pkg/domain"

	"github.com/google/uuid"
)

type PgDomain struct {
	ID     uuid.UUID `db:"id"`
	Raw    string    `db:"raw"`
	Domain string    `db:"domain"`
	HasMX  bool      `db:"has_mx"`
	// MX holds the JSON encoded []domain.MXRecord.
	MX    string         `db:"mx"`
	SPF   sql.NullString `db:"spf"`
	DMARC sql.NullString `db:"dmarc"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() (*domain.DomainRow, error) {
	mx := []domain.MXRecord{}
	if p.MX != "" {
		if err := json.Unmarshal([]byte(p.MX), &mx); err != nil {
			return nil, fmt.Errorf("could not unmarshal mx records: %w", err)
		}
	}

	row := &domain.DomainRow{
		ID:        domain.DomainID(p.ID),
		CreatedAt: p.CreatedAt,
		EnrichedDomain: domain.EnrichedDomain{
			Raw:    p.Raw,
			Domain: p.Domain,
			HasMX:  p.HasMX,
			MX:     mx,
		},
	}
	if p.SPF.Valid {
		row.SPF = &p.SPF.String
	}
	if p.DMARC.Valid {
		row.DMARC = &p.DMARC.String
	}

	return row, nil
}

func (p *PgDomain) FromDomain(d domain.EnrichedDomain) error {
	mx := d.MX
	if mx == nil {
		mx = []domain.MXRecord{}
	}
	b, err := json.Marshal(mx)
	if err != nil {
		return fmt.Errorf("could not marshal mx records: %w", err)
	}

	*p = PgDomain{
		ID:     uuid.New(),
		Raw:    d.Raw,
		Domain: d.Domain,
		HasMX:  d.HasMX,
		MX:     string(b),
		SPF:    nullString(d.SPF),
		DMARC:  nullString(d.DMARC),
	}

	return nil
}

type PgRun struct {
	ID         string       `db:"id"`
	FileName   string       `db:"file_name"`
	URL        string       `db:"url"`
	UploadedAt sql.NullTime `db:"uploaded_at"`

	State       string         `db:"state"`
	FailedStage sql.NullString `db:"failed_stage"`
	LastError   sql.NullString `db:"last_error"`

	Processed int `db:"processed"`
	Domains   int `db:"domains"`
	Attempts  int `db:"attempts"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRun) ToDomain() *domain.Run {
	return &domain.Run{
		ID:          domain.RunID(p.ID),
		FileName:    p.FileName,
		URL:         p.URL,
		UploadedAt:  p.UploadedAt.Time,
		State:       domain.RunState(p.State),
		FailedStage: domain.RunState(p.FailedStage.String),
		LastError:   p.LastError.String,
		Processed:   p.Processed,
		Domains:     p.Domains,
		Attempts:    p.Attempts,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgRun) FromDomain(run domain.Run) {
	*p = PgRun{
		ID:       string(run.ID),
		FileName: run.FileName,
		URL:      run.URL,
		UploadedAt: sql.NullTime{
			Time:  run.UploadedAt,
			Valid: !run.UploadedAt.IsZero(),
		},
		State: string(run.State),
		FailedStage: sql.NullString{
			String: string(run.FailedStage),
			Valid:  run.FailedStage != "",
		},
		LastError: sql.NullString{
			String: run.LastError,
			Valid:  run.LastError != "",
		},
		Processed: run.Processed,
		Domains:   run.Domains,
		Attempts:  run.Attempts,
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func domainsToPg(domains []domain.EnrichedDomain) ([]PgDomain, error) {
	out := make([]PgDomain, len(domains))
	for i := range out {
		if err := out[i].FromDomain(domains[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgDomainsToDomain(rows []PgDomain) ([]domain.DomainRow, error) {
	out := make([]domain.DomainRow, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
