package extractor

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"enricher/pkg/serrors"
)

// headerKeywords mark a header cell as naming a domain-bearing column.
var headerKeywords = []string{"domain", "website", "url", "site", "hostname", "fqdn"} //nolint: gochecknoglobals

const maxDiagnostics = 100

var utf8BOM = []byte{0xEF, 0xBB, 0xBF} //nolint: gochecknoglobals

// ErrConsumed is returned by Err when Candidates was iterated more than once.
var ErrConsumed = errors.New("row scanner already consumed")

// ScanOptions configure a RowScanner.
type ScanOptions struct {
	// DetectHeader inspects the first non-blank row for column names matching
	// domain-like keywords and scans only the matching columns. Without a
	// match the row is treated as data. When false, column 0 of every row is
	// scanned.
	DetectHeader bool
}

// Diagnostic is a non-fatal CSV parse problem.
type Diagnostic struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// ScanStats summarizes a completed scan.
type ScanStats struct {
	// Rows counts non-blank rows, including a detected header.
	Rows int `json:"rows"`
	// UsableRows counts parsed non-blank data rows.
	UsableRows int `json:"usableRows"`
	// Extracted counts candidate domains produced.
	Extracted int `json:"extracted"`
	// Columns holds the header names of the scanned columns when a header was detected.
	Columns []string `json:"columns,omitempty"`
	// Diagnostics lists parse problems, capped at the first 100.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	// Malformed counts rows the parser rejected.
	Malformed int `json:"malformed"`
}

// RowScanner extracts candidate domains from CSV bytes. Candidates may be
// iterated once; create a new scanner to scan the same bytes again.
type RowScanner struct {
	data     []byte
	options  ScanOptions
	stats    ScanStats
	err      error
	consumed bool
}

// NewRowScanner returns a scanner over data.
func NewRowScanner(data []byte, options ScanOptions) *RowScanner {
	return &RowScanner{
		data:    bytes.TrimPrefix(data, utf8BOM),
		options: options,
	}
}

// Candidates yields one candidate domain per data row whose selected cell
// contains one. Rows without a candidate are skipped silently.
func (s *RowScanner) Candidates() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.consumed {
			s.err = ErrConsumed

			return
		}
		s.consumed = true

		r := csv.NewReader(bytes.NewReader(s.data))
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		r.ReuseRecord = true

		columns := []int{0}
		headerPending := s.options.DetectHeader
		for {
			record, err := r.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				var parseErr *csv.ParseError
				if !errors.As(err, &parseErr) {
					s.err = fmt.Errorf("could not read csv: %w", err)

					return
				}
				s.diagnose(parseErr)

				continue
			}

			if blank(record) {
				continue
			}
			s.stats.Rows++

			if headerPending {
				headerPending = false
				if matched, names := headerColumns(record); len(matched) > 0 {
					columns = matched
					s.stats.Columns = names

					continue
				}
			}
			s.stats.UsableRows++

			for _, col := range columns {
				if col >= len(record) {
					continue
				}
				if candidate, ok := ExtractDomain(record[col]); ok {
					s.stats.Extracted++
					if !yield(candidate) {
						return
					}

					break
				}
			}
		}

		if s.stats.UsableRows == 0 {
			s.err = serrors.With(serrors.ErrUnprocessable, "empty or unparseable CSV")
		}
	}
}

// Err returns the error that ended the scan, if any. It is only meaningful
// after Candidates has been fully iterated.
func (s *RowScanner) Err() error {
	return s.err
}

// Stats returns the counters collected so far.
func (s *RowScanner) Stats() ScanStats {
	return s.stats
}

func (s *RowScanner) diagnose(err *csv.ParseError) {
	s.stats.Malformed++
	if len(s.stats.Diagnostics) >= maxDiagnostics {
		return
	}
	s.stats.Diagnostics = append(s.stats.Diagnostics, Diagnostic{
		Line:    err.Line,
		Column:  err.Column,
		Message: err.Err.Error(),
	})
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// headerColumns returns the indexes and names of cells naming a domain column.
func headerColumns(record []string) ([]int, []string) {
	var (
		indexes []int
		names   []string
	)
	for i, cell := range record {
		// a value such as "www.mysite.com" is data, not a column name
		if _, ok := ExtractDomain(cell); ok {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, keyword := range headerKeywords {
			if strings.Contains(name, keyword) {
				indexes = append(indexes, i)
				names = append(names, strings.TrimSpace(cell))

				break
			}
		}
	}

	return indexes, names
}
