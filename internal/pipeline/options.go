package pipeline

import (
	"time"

	"enricher/internal/config"
)

// WriteMode selects how the Writer persists records.
type WriteMode string

const (
	// WriteModeBulk writes all records with one set-based upsert and falls back
	// to WriteModeRow when that statement fails.
	WriteModeBulk WriteMode = "bulk"
	// WriteModeRow upserts records one by one, skipping the ones the store rejects.
	WriteModeRow WriteMode = "row"
)

// Options configure a Pipeline. They are usually derived from the
// application config with NewOptions.
type Options struct {
	// MaxDomains caps the unique domains enriched per run.
	MaxDomains int
	// DetectHeader scans columns named like a domain column instead of column 0.
	DetectHeader bool
	// MaxDownloadBytes caps the size of the downloaded CSV file.
	MaxDownloadBytes int64
	// DownloadTimeout bounds the download.
	DownloadTimeout time.Duration
	// WriteMode selects the persistence strategy.
	WriteMode WriteMode
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxDomains:       cfg.Pipeline.MaxDomains,
		DetectHeader:     cfg.Pipeline.DetectHeader,
		MaxDownloadBytes: cfg.Pipeline.MaxDownloadBytes,
		DownloadTimeout:  cfg.Pipeline.DownloadTimeout,
		WriteMode:        WriteMode(cfg.Pipeline.WriteMode),
	}
}
