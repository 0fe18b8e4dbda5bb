package extractor

import (
	"iter"

	"enricher/pkg/domain"
)

// DefaultMaxDomains caps the number of unique domains enriched per run.
const DefaultMaxDomains = 2000

// Dedupe normalizes every candidate, drops the ones that fail normalization
// and collects the rest in first-seen order without duplicates. Only the first
// limit unique domains are kept; the number of unique domains beyond the cap is
// reported in RecordSet.Dropped. A limit of zero or less means DefaultMaxDomains.
func Dedupe(candidates iter.Seq[string], limit int) domain.RecordSet {
	if limit <= 0 {
		limit = DefaultMaxDomains
	}

	set := domain.RecordSet{Domains: []string{}}
	seen := make(map[string]struct{})
	for candidate := range candidates {
		normalized, ok := Normalize(candidate)
		if !ok {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}

		if len(set.Domains) < limit {
			set.Domains = append(set.Domains, normalized)
		} else {
			set.Dropped++
		}
	}

	return set
}
