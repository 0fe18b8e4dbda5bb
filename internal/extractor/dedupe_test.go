package extractor_test

import (
	"fmt"
	"slices"
	"testing"

	"enricher/internal/extractor"

	"github.com/stretchr/testify/require"
)

func TestDedupe_preservesFirstSeenOrder(t *testing.T) {
	set := extractor.Dedupe(slices.Values([]string{"a.com", "b.com", "a.com", "c.com"}), 0)
	require.Equal(t, []string{"a.com", "b.com", "c.com"}, set.Domains)
	require.Zero(t, set.Dropped)
}

func TestDedupe_normalizesBeforeComparing(t *testing.T) {
	set := extractor.Dedupe(slices.Values([]string{"Example.com", "example.com.", "bad", "x.y", "EXAMPLE.COM", "other.org"}), 10)
	require.Equal(t, []string{"example.com", "other.org"}, set.Domains)
}

func TestDedupe_cap(t *testing.T) {
	candidates := make([]string, 0, 3000)
	for i := range 3000 {
		candidates = append(candidates, fmt.Sprintf("domain-%04d.com", i))
	}
	// duplicates beyond the cap are not counted twice
	candidates = append(candidates, "domain-2999.com", "domain-0000.com")

	set := extractor.Dedupe(slices.Values(candidates), extractor.DefaultMaxDomains)
	require.Len(t, set.Domains, 2000)
	require.Equal(t, candidates[:2000], set.Domains)
	require.Equal(t, 1000, set.Dropped)
}

func TestDedupe_empty(t *testing.T) {
	set := extractor.Dedupe(slices.Values([]string(nil)), 5)
	require.NotNil(t, set.Domains)
	require.Empty(t, set.Domains)
}
