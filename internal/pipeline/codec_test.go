package pipeline

import (
	"testing"

	"enricher/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestEnrichOutput_roundTrip(t *testing.T) {
	spf := "v=spf1 include:_spf.example.com ~all"
	in := enrichOutput{Records: []domain.EnrichedDomain{
		{
			Raw:    "example.com",
			Domain: "example.com",
			HasMX:  true,
			MX: []domain.MXRecord{
				{Exchange: "mail.example.com", Priority: 10},
				{Exchange: "backup.example.com", Priority: 65535},
			},
			SPF: &spf,
		},
		domain.DefaultEnrichedDomain("failed.example"),
	}}

	b, err := in.MarshalMsg(nil)
	require.NoError(t, err)

	var out enrichOutput
	rest, err := out.UnmarshalMsg(b)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, in, out)
	require.NotNil(t, out.Records[1].MX)
	require.Nil(t, out.Records[0].DMARC)
}

func TestCheckpoint_truncatedPayload(t *testing.T) {
	in := scanOutput{Candidates: []string{"a.com", "b.com"}, Rows: 3, UsableRows: 2}
	b, err := in.MarshalMsg(nil)
	require.NoError(t, err)

	var out scanOutput
	_, err = out.UnmarshalMsg(b[:len(b)-2])
	require.Error(t, err)

	// a payload of another step is rejected
	var download downloadOutput
	_, err = download.UnmarshalMsg(b)
	require.Error(t, err)
}

func TestStepEnrich(t *testing.T) {
	require.Equal(t, "enrich/0000", StepEnrich(0))
	require.Equal(t, "enrich/0042", StepEnrich(42))
}
