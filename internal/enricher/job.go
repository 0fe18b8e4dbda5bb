package enricher

import (
	"time"

	"enricher/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments of an enrichment job submitted to River.
// A file is identified by its URL and name; both are marked as unique so a
// repeated trigger for the same file within the unique period is ignored.
type JobArgs struct {
	// RunID is shared by all attempts of the job so that completed steps are replayed.
	RunID domain.RunID `json:"runId"`

	URL        string    `json:"url" river:"unique"`
	FileName   string    `json:"fileName" river:"unique"`
	UploadedAt time.Time `json:"uploadedAt"`

	maxAttempts  int
	uniquePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the enrich worker.
func (args JobArgs) Kind() string { return "EnrichCSVJob" }

// Event returns the trigger event the job was created for.
func (args JobArgs) Event() domain.TriggerEvent {
	return domain.TriggerEvent{
		URL:        args.URL,
		FileName:   args.FileName,
		UploadedAt: args.UploadedAt,
	}
}

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// one job per file in any state but discarded/cancelled, so a failed
		// file can be submitted again
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
