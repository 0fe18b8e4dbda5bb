package extractor_test

import (
	"slices"
	"testing"

	"enricher/internal/extractor"
	"enricher/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, data string, options extractor.ScanOptions) ([]string, *extractor.RowScanner) {
	t.Helper()

	scanner := extractor.NewRowScanner([]byte(data), options)

	return slices.Collect(scanner.Candidates()), scanner
}

func TestRowScanner_firstColumn(t *testing.T) {
	got, scanner := scan(t, "alice@foo.com,ignored.com\nhttp://www.bar.org/page\nnot-a-domain\n", extractor.ScanOptions{})
	require.NoError(t, scanner.Err())
	require.Equal(t, []string{"foo.com", "bar.org"}, got)

	stats := scanner.Stats()
	require.Equal(t, 3, stats.Rows)
	require.Equal(t, 3, stats.UsableRows)
	require.Equal(t, 2, stats.Extracted)
	require.Empty(t, stats.Diagnostics)
}

func TestRowScanner_skipsBlankRows(t *testing.T) {
	got, scanner := scan(t, "\ufeff\n  \n,,\nexample.com\r\n\r\n , \nexample.org", extractor.ScanOptions{})
	require.NoError(t, scanner.Err())
	require.Equal(t, []string{"example.com", "example.org"}, got)
	require.Equal(t, 2, scanner.Stats().UsableRows)
}

func TestRowScanner_headerTreatedAsDataByDefault(t *testing.T) {
	got, scanner := scan(t, "website,name\nacme.com,Acme\n", extractor.ScanOptions{})
	require.NoError(t, scanner.Err())
	require.Equal(t, []string{"acme.com"}, got)
	require.Equal(t, 2, scanner.Stats().UsableRows)
}

func TestRowScanner_detectHeader(t *testing.T) {
	data := "name,Company Website,Contact Email,Domain\n" +
		"Acme,https://www.acme.com,bob@acme.com,acme-corp.com\n" +
		"Globex,,jane@globex.com,globex.com\n" +
		"Initech,,,\n" +
		"Hooli,n/a,,\n"

	got, scanner := scan(t, data, extractor.ScanOptions{DetectHeader: true})
	require.NoError(t, scanner.Err())
	// first matching column with a domain wins per row
	require.Equal(t, []string{"acme.com", "globex.com"}, got)

	stats := scanner.Stats()
	require.Equal(t, []string{"Company Website", "Domain"}, stats.Columns)
	require.Equal(t, 5, stats.Rows)
	require.Equal(t, 4, stats.UsableRows)
	require.Equal(t, 2, stats.Extracted)
}

func TestRowScanner_detectHeaderWithoutMatch(t *testing.T) {
	got, scanner := scan(t, "www.mysite.com,x\nexample.org,y\n", extractor.ScanOptions{DetectHeader: true})
	require.NoError(t, scanner.Err())
	require.Equal(t, []string{"mysite.com", "example.org"}, got)
	require.Empty(t, scanner.Stats().Columns)
}

func TestRowScanner_malformedRowsAreDiagnostics(t *testing.T) {
	got, scanner := scan(t, "foo.com\nba\"r.com\nbaz.com\n", extractor.ScanOptions{})
	require.NoError(t, scanner.Err())
	require.Equal(t, []string{"foo.com", "baz.com"}, got)

	stats := scanner.Stats()
	require.Equal(t, 1, stats.Malformed)
	require.Len(t, stats.Diagnostics, 1)
	require.Equal(t, 2, stats.Diagnostics[0].Line)
	require.NotEmpty(t, stats.Diagnostics[0].Message)
}

func TestRowScanner_emptyInput(t *testing.T) {
	for _, data := range []string{"", "\n\n  \n", ",,,\n", "\"unterminated"} {
		got, scanner := scan(t, data, extractor.ScanOptions{})
		require.Empty(t, got)
		require.ErrorIs(t, scanner.Err(), serrors.ErrUnprocessable, "%q", data)
	}

	// a header alone leaves no usable rows
	_, scanner := scan(t, "domain\n", extractor.ScanOptions{DetectHeader: true})
	require.ErrorIs(t, scanner.Err(), serrors.ErrUnprocessable)
}

func TestRowScanner_rowsWithoutDomainsAreNotAnError(t *testing.T) {
	got, scanner := scan(t, "hello\nworld\n", extractor.ScanOptions{})
	require.NoError(t, scanner.Err())
	require.Empty(t, got)
	require.Equal(t, 2, scanner.Stats().UsableRows)
}

func TestRowScanner_singlePass(t *testing.T) {
	scanner := extractor.NewRowScanner([]byte("a.com\nb.com\n"), extractor.ScanOptions{})
	require.Len(t, slices.Collect(scanner.Candidates()), 2)
	require.Empty(t, slices.Collect(scanner.Candidates()))
	require.ErrorIs(t, scanner.Err(), extractor.ErrConsumed)
}

func TestRowScanner_earlyStop(t *testing.T) {
	scanner := extractor.NewRowScanner([]byte("a.com\nb.com\nc.com\n"), extractor.ScanOptions{})
	for candidate := range scanner.Candidates() {
		require.Equal(t, "a.com", candidate)

		break
	}
	require.NoError(t, scanner.Err())
	require.Equal(t, 1, scanner.Stats().Extracted)
}
