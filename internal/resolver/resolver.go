// Package resolver enriches normalized domains with their mail DNS posture
// (MX, SPF and DMARC records) and drives the enrichment of a whole domain set
// in paced, bounded-concurrency batches.
package resolver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"enricher/pkg/dnsclient"
	"enricher/pkg/domain"
	"enricher/pkg/logger"

	"github.com/miekg/dns"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"
)

const (
	spfPrefix   = "v=spf1"
	dmarcPrefix = "v=dmarc1"
)

// Options configure a Resolver.
type Options struct {
	// DMARCOrgFallback queries _dmarc.<organizational domain> when the domain
	// itself publishes no DMARC record.
	DMARCOrgFallback bool
}

// Resolver looks up the MX, SPF and DMARC records of single domains.
type Resolver struct {
	client  dnsclient.Client
	options Options
}

// New constructs a Resolver querying client.
func New(client dnsclient.Client, options Options) *Resolver {
	return &Resolver{
		client:  client,
		options: options,
	}
}

// Resolve runs the MX, SPF and DMARC lookups of name concurrently. Any failed
// lookup fails the whole resolution.
func (r *Resolver) Resolve(ctx context.Context, name string) (domain.EnrichedDomain, error) {
	var (
		mx    []domain.MXRecord
		spf   *string
		dmarc *string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mx, err = r.lookupMX(ctx, name)

		return err
	})
	g.Go(func() error {
		var err error
		spf, err = r.lookupTXT(ctx, name, spfPrefix)

		return err
	})
	g.Go(func() error {
		var err error
		dmarc, err = r.lookupDMARC(ctx, name)

		return err
	})
	if err := g.Wait(); err != nil {
		return domain.EnrichedDomain{}, err
	}

	return domain.EnrichedDomain{
		Raw:    name,
		Domain: name,
		HasMX:  len(mx) > 0,
		MX:     mx,
		SPF:    spf,
		DMARC:  dmarc,
	}, nil
}

func (r *Resolver) lookupMX(ctx context.Context, name string) ([]domain.MXRecord, error) {
	answers, err := r.client.Query(ctx, name, dns.TypeMX)
	if err != nil {
		return nil, fmt.Errorf("could not look up MX of %s: %w", name, err)
	}

	records := []domain.MXRecord{}
	for _, answer := range answers {
		if answer.Type != dns.TypeMX {
			continue
		}
		record, ok := ParseMX(answer.Data)
		if !ok {
			logger.Debug(ctx, "dropping malformed MX answer", zap.String("domain", name), zap.String("data", answer.Data))

			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *Resolver) lookupDMARC(ctx context.Context, name string) (*string, error) {
	record, err := r.lookupTXT(ctx, "_dmarc."+name, dmarcPrefix)
	if err != nil || record != nil || !r.options.DMARCOrgFallback {
		return record, err
	}

	org, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil || org == name {
		return nil, nil
	}

	return r.lookupTXT(ctx, "_dmarc."+org, dmarcPrefix)
}

// lookupTXT returns the first TXT record of name starting with prefix.
func (r *Resolver) lookupTXT(ctx context.Context, name, prefix string) (*string, error) {
	answers, err := r.client.Query(ctx, name, dns.TypeTXT)
	if err != nil {
		return nil, fmt.Errorf("could not look up TXT of %s: %w", name, err)
	}

	for _, answer := range answers {
		if answer.Type != dns.TypeTXT {
			continue
		}
		text := Unquote(answer.Data)
		if hasPrefixFold(text, prefix) {
			return &text, nil
		}
	}

	return nil, nil
}

// ParseMX parses MX record data of the form "<priority> <exchange>.". The
// trailing dot of the exchange is removed. Entries with a priority that does
// not fit 16 bits or without an exchange (such as the null MX "0 .") are
// rejected.
func ParseMX(data string) (domain.MXRecord, bool) {
	fields := strings.Fields(data)
	if len(fields) != 2 {
		return domain.MXRecord{}, false
	}

	priority, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return domain.MXRecord{}, false
	}

	exchange := strings.TrimSuffix(fields[1], ".")
	if exchange == "" {
		return domain.MXRecord{}, false
	}

	return domain.MXRecord{Exchange: exchange, Priority: uint16(priority)}, true
}

// Unquote strips exactly one pair of surrounding double quotes.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
