package postgres

import (
	"context"

	"enricher/pkg/domain"
	"enricher/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	domainsTable = "domains"
)

// upsertDomainRecord overwrites every enrichment column of a conflicting row
// and refreshes created_at. The row ID is kept.
func upsertDomainRecord() exp.ConflictExpression {
	return goqu.DoUpdate("domain", goqu.Record{
		"raw":        goqu.L("EXCLUDED.raw"),
		"has_mx":     goqu.L("EXCLUDED.has_mx"),
		"mx":         goqu.L("EXCLUDED.mx"),
		"spf":        goqu.L("EXCLUDED.spf"),
		"dmarc":      goqu.L("EXCLUDED.dmarc"),
		"created_at": goqu.L("CURRENT_TIMESTAMP"),
	})
}

// UpsertDomains writes all records with a single INSERT ... ON CONFLICT statement.
func (p *PgSQL) UpsertDomains(ctx context.Context, domains ...domain.EnrichedDomain) error {
	if len(domains) == 0 {
		return nil
	}

	rows, err := domainsToPg(domains)
	if err != nil {
		return err
	}

	if _, err := p.Builder.Insert(domainsTable).
		Rows(rows).
		OnConflict(upsertDomainRecord()).
		Executor().ExecContext(ctx); err != nil {
		return translateError(err, "could not upsert %d domains into pg", len(domains))
	}

	return nil
}

// UpsertDomain writes a single record.
func (p *PgSQL) UpsertDomain(ctx context.Context, d domain.EnrichedDomain) error {
	var row PgDomain
	if err := row.FromDomain(d); err != nil {
		return err
	}

	if _, err := p.Builder.Insert(domainsTable).
		Rows(row).
		OnConflict(upsertDomainRecord()).
		Executor().ExecContext(ctx); err != nil {
		return translateError(err, "could not upsert domain %q into pg", d.Domain)
	}

	return nil
}

// Domains returns a page of domains ordered by created_at DESC, id DESC along
// with the total row count.
func (p *PgSQL) Domains(ctx context.Context, limit, offset uint) (storage.DomainPage, error) {
	total, err := p.Builder.From(domainsTable).CountContext(ctx)
	if err != nil {
		return storage.DomainPage{}, translateError(err, "could not count domains in pg")
	}

	var rows []PgDomain
	if err := p.Builder.From(domainsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Offset(offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.DomainPage{}, translateError(err, "could not fetch domains from pg")
	}

	domains, err := pgDomainsToDomain(rows)
	if err != nil {
		return storage.DomainPage{}, err
	}

	return storage.DomainPage{Domains: domains, Total: total}, nil
}

// DomainByName returns a domain row by its normalized name.
func (p *PgSQL) DomainByName(ctx context.Context, name string) (*domain.DomainRow, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("domain").Eq(name)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(err, "could not fetch domain by name")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
