// Package dnsclient defines the minimal DNS query abstraction used by the
// enrichment resolver. Implementations talk to a single upstream resolver and
// return its answers as-is.
package dnsclient

import (
	"context"
)

// Answer is a single resource record of a DNS response.
type Answer struct {
	// Name is the owner name of the record, usually with a trailing dot.
	Name string
	// Type is the numeric record type (e.g. 15 for MX, 16 for TXT).
	Type uint16
	// TTL is the remaining time to live in seconds.
	TTL uint32
	// Data is the presentation form of the record data, e.g. "10 mx.example.com."
	// for MX or the possibly quoted text of a TXT record.
	Data string
}

// Client issues DNS queries against an upstream resolver.
//
//go:generate mockgen -package mockdnsclient -source=interface.go -destination=mock/mockdnsclient.go *
type Client interface {
	// Query resolves name for the given record type. A name without records
	// yields an empty slice and no error. Transport failures and non-2xx
	// responses are returned as errors.
	Query(ctx context.Context, name string, qtype uint16) ([]Answer, error)
}
