package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainID uniquely identifies a persisted domain row.
type DomainID uuid.UUID

// String returns the canonical UUID form of the id.
func (id DomainID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id DomainID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *DomainID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// MXRecord is a single mail exchanger of a domain.
type MXRecord struct {
	// Exchange is the mail server host name without the trailing dot.
	Exchange string `json:"exchange"`
	// Priority is the MX preference; lower values are preferred.
	Priority uint16 `json:"priority"`
}

// RecordSet is the ordered, duplicate-free set of normalized domains found in
// one input file, capped at a configured maximum.
type RecordSet struct {
	// Domains holds the unique normalized domains in first-seen order.
	Domains []string `json:"domains"`
	// Dropped counts unique domains discarded because the cap was reached.
	Dropped int `json:"dropped"`
}

// EnrichedDomain is the mail DNS posture of a single domain.
type EnrichedDomain struct {
	// Raw is the value the domain was derived from.
	Raw string `json:"raw"`
	// Domain is the normalized domain name.
	Domain string `json:"domain"`
	// HasMX is true if at least one MX record was found.
	HasMX bool `json:"hasMx"`
	// MX lists the mail exchangers in answer order. Never nil.
	MX []MXRecord `json:"mx"`
	// SPF is the first TXT record starting with "v=spf1", if any.
	SPF *string `json:"spf"`
	// DMARC is the first TXT record at _dmarc.<domain> starting with "v=DMARC1", if any.
	DMARC *string `json:"dmarc"`
}

// DefaultEnrichedDomain returns the record stored for a domain whose lookups failed.
func DefaultEnrichedDomain(name string) EnrichedDomain {
	return EnrichedDomain{
		Raw:    name,
		Domain: name,
		MX:     []MXRecord{},
	}
}

// DomainRow is an EnrichedDomain as persisted in the store.
type DomainRow struct {
	EnrichedDomain

	// ID is the unique identifier of the row.
	ID DomainID `json:"id"`
	// CreatedAt is the time of the last upsert of the row.
	CreatedAt time.Time `json:"createdAt"`
}
