package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// RunID identifies a pipeline run. All attempts of a run share the same ID so
// that completed steps are replayed instead of executed again.
type RunID string

// NewRunID returns a new, lexicographically sortable run identifier.
func NewRunID() RunID {
	return RunID(ulid.Make().String())
}

// ParseRunID validates s as a run identifier.
func ParseRunID(s string) (RunID, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return RunID(id.String()), nil
}

// RunState is the lifecycle state of a pipeline run.
type RunState string

const (
	RunStatePending       RunState = "PENDING"
	RunStateDownloading   RunState = "DOWNLOADING"
	RunStateScanning      RunState = "SCANNING"
	RunStateDeduplicating RunState = "DEDUPLICATING"
	RunStateEnriching     RunState = "ENRICHING"
	RunStatePersisting    RunState = "PERSISTING"
	RunStateDone          RunState = "DONE"
	RunStateFailed        RunState = "FAILED"
)

// IsTerminal reports whether no further transitions can happen from s.
func (s RunState) IsTerminal() bool {
	return s == RunStateDone || s == RunStateFailed
}

// TriggerEvent announces that a CSV file is available for processing.
type TriggerEvent struct {
	// URL is an opaque HTTP(S) URL that returns the CSV bytes on GET.
	URL string `json:"url"`
	// FileName is the display name of the uploaded file.
	FileName string `json:"fileName"`
	// UploadedAt is the time the file was uploaded.
	UploadedAt time.Time `json:"uploadedAt"`
}

// RunResult is the outcome reported by a finished run.
type RunResult struct {
	Success   bool   `json:"success"`
	FileName  string `json:"fileName,omitempty"`
	URL       string `json:"url,omitempty"`
	Processed int    `json:"processed"`
	Domains   int    `json:"domains"`
}

// Run is the durable record of a pipeline run.
type Run struct {
	ID         RunID     `json:"id"`
	FileName   string    `json:"fileName"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`

	State RunState `json:"state"`
	// FailedStage is the stage that failed; only set when State is RunStateFailed.
	FailedStage RunState `json:"failedStage,omitempty"`
	LastError   string   `json:"lastError,omitempty"`

	Processed int `json:"processed"`
	Domains   int `json:"domains"`
	// Attempts counts how many times the run has been started.
	Attempts int `json:"attempts"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Result converts the run into the result value reported to callers.
func (r Run) Result() RunResult {
	return RunResult{
		Success:   r.State == RunStateDone,
		FileName:  r.FileName,
		URL:       r.URL,
		Processed: r.Processed,
		Domains:   r.Domains,
	}
}
