package sqlite

import (
	"context"

	"enricher/pkg/domain"
	"enricher/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const domainsTable = "domains"

func upsertDomainRecord() exp.ConflictExpression {
	return goqu.DoUpdate("domain", goqu.Record{
		"raw":        goqu.L("excluded.raw"),
		"has_mx":     goqu.L("excluded.has_mx"),
		"mx":         goqu.L("excluded.mx"),
		"spf":        goqu.L("excluded.spf"),
		"dmarc":      goqu.L("excluded.dmarc"),
		"created_at": goqu.L(now),
	})
}

// UpsertDomains writes all records with one INSERT ... ON CONFLICT statement.
func (s *SQLite) UpsertDomains(ctx context.Context, domains ...domain.EnrichedDomain) error {
	if len(domains) == 0 {
		return nil
	}

	rows := make([]domainRow, 0, len(domains))
	for _, d := range domains {
		row, err := newDomainRow(d)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if _, err := s.Builder.Insert(domainsTable).
		Prepared(true).
		Rows(rows).
		OnConflict(upsertDomainRecord()).
		Executor().ExecContext(ctx); err != nil {
		return translateError(err, "could not upsert %d domains into sqlite", len(domains))
	}

	return nil
}

// UpsertDomain writes a single record.
func (s *SQLite) UpsertDomain(ctx context.Context, d domain.EnrichedDomain) error {
	row, err := newDomainRow(d)
	if err != nil {
		return err
	}

	if _, err := s.Builder.Insert(domainsTable).
		Prepared(true).
		Rows(row).
		OnConflict(upsertDomainRecord()).
		Executor().ExecContext(ctx); err != nil {
		return translateError(err, "could not upsert domain %q into sqlite", d.Domain)
	}

	return nil
}

// Domains returns a page of domains, newest first.
func (s *SQLite) Domains(ctx context.Context, limit, offset uint) (storage.DomainPage, error) {
	total, err := s.Builder.From(domainsTable).CountContext(ctx)
	if err != nil {
		return storage.DomainPage{}, translateError(err, "could not count domains in sqlite")
	}

	var rows []domainRow
	if err := s.Builder.From(domainsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Offset(offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.DomainPage{}, translateError(err, "could not fetch domains from sqlite")
	}

	page := storage.DomainPage{Total: total, Domains: make([]domain.DomainRow, 0, len(rows))}
	for _, row := range rows {
		d, err := row.toDomain()
		if err != nil {
			return storage.DomainPage{}, err
		}
		page.Domains = append(page.Domains, d)
	}

	return page, nil
}

// DomainByName returns the row of the given domain or nil.
func (s *SQLite) DomainByName(ctx context.Context, name string) (*domain.DomainRow, error) {
	var row domainRow
	found, err := s.Builder.From(domainsTable).
		Where(goqu.I("domain").Eq(name)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(err, "could not fetch domain by name")
	}
	if !found {
		return nil, nil
	}

	d, err := row.toDomain()
	if err != nil {
		return nil, err
	}

	return &d, nil
}
