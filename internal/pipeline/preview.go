package pipeline

import (
	"context"
	"slices"
	"strconv"

	"enricher/internal/extractor"
	"enricher/pkg/domain"
	"enricher/pkg/logger"

	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
)

const previewSampleSize = 10

// Preview is the outcome of a dry run over a CSV file.
type Preview struct {
	// Bytes is the size of the downloaded file.
	Bytes int `json:"bytes"`
	// Fingerprint is the hex xxh3 hash of the file contents.
	Fingerprint string `json:"fingerprint"`
	// Stats describes the parsed rows.
	Stats extractor.ScanStats `json:"stats"`
	// UniqueDomains is the number of domains a run would enrich.
	UniqueDomains int `json:"uniqueDomains"`
	// Dropped counts unique domains beyond the per-run cap.
	Dropped int `json:"dropped"`
	// Sample holds the first domains.
	Sample []string `json:"sample"`
	// Domains holds every domain a run would enrich.
	Domains []string `json:"domains"`
}

// Preview downloads, scans and deduplicates the file at location without
// resolving or writing anything.
func (p *Pipeline) Preview(ctx context.Context, location string) (*Preview, error) {
	data, err := p.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, stageError(domain.RunStateDownloading, fetchError(err))
	}

	scanner := extractor.NewRowScanner(data, extractor.ScanOptions{DetectHeader: p.options.DetectHeader})
	set := extractor.Dedupe(scanner.Candidates(), p.options.MaxDomains)
	if err := scanner.Err(); err != nil {
		return nil, stageError(domain.RunStateScanning, err)
	}

	preview := &Preview{
		Bytes:         len(data),
		Fingerprint:   strconv.FormatUint(xxh3.Hash(data), 16),
		Stats:         scanner.Stats(),
		UniqueDomains: len(set.Domains),
		Dropped:       set.Dropped,
		Sample:        slices.Clone(set.Domains[:min(previewSampleSize, len(set.Domains))]),
		Domains:       set.Domains,
	}
	logger.Info(ctx, "preview computed",
		zap.Int("bytes", preview.Bytes), zap.Int("rows", preview.Stats.Rows), zap.Int("domains", preview.UniqueDomains))

	return preview, nil
}
