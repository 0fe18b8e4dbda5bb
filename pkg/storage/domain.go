package storage

import (
	"context"

	"enricher/pkg/domain"
)

// DomainPage is a page of persisted domains together with the total number
// of rows in the store.
type DomainPage struct {
	Domains []domain.DomainRow
	Total   int64
}

// DomainStorage persists enriched domains. The domain name is the unique key
// and upserts are the only write path: writing an existing domain replaces
// its enrichment columns and refreshes created_at.
type DomainStorage interface {
	// UpsertDomains writes all records with a single set-based statement.
	// Records must not contain the same domain twice. The statement is atomic:
	// if it fails, no record is written.
	UpsertDomains(ctx context.Context, domains ...domain.EnrichedDomain) error
	// UpsertDomain writes a single record.
	UpsertDomain(ctx context.Context, d domain.EnrichedDomain) error
	// Domains returns a page of domains ordered by created_at descending.
	Domains(ctx context.Context, limit, offset uint) (DomainPage, error)
	// DomainByName returns the row for the given normalized domain or nil when
	// it does not exist.
	DomainByName(ctx context.Context, name string) (*domain.DomainRow, error)
}
