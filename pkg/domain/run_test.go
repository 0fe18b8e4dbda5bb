package domain_test

import (
	"testing"

	"enricher/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestRunID(t *testing.T) {
	a := domain.NewRunID()
	b := domain.NewRunID()
	require.NotEqual(t, a, b)
	require.Len(t, string(a), 26)

	parsed, err := domain.ParseRunID(string(a))
	require.NoError(t, err)
	require.Equal(t, a, parsed)

	_, err = domain.ParseRunID("not-a-run-id")
	require.Error(t, err)
}

func TestRunState_IsTerminal(t *testing.T) {
	require.True(t, domain.RunStateDone.IsTerminal())
	require.True(t, domain.RunStateFailed.IsTerminal())
	require.False(t, domain.RunStateEnriching.IsTerminal())
	require.False(t, domain.RunStatePending.IsTerminal())
}

func TestRun_Result(t *testing.T) {
	r := domain.Run{
		FileName:  "leads.csv",
		URL:       "https://files.example/leads.csv",
		State:     domain.RunStateDone,
		Processed: 2,
		Domains:   2,
	}
	require.Equal(t, domain.RunResult{
		Success:   true,
		FileName:  "leads.csv",
		URL:       "https://files.example/leads.csv",
		Processed: 2,
		Domains:   2,
	}, r.Result())

	r.State = domain.RunStateFailed
	require.False(t, r.Result().Success)
}

func TestDefaultEnrichedDomain(t *testing.T) {
	d := domain.DefaultEnrichedDomain("example.com")
	require.Equal(t, "example.com", d.Domain)
	require.False(t, d.HasMX)
	require.NotNil(t, d.MX)
	require.Empty(t, d.MX)
	require.Nil(t, d.SPF)
	require.Nil(t, d.DMARC)
}
