package verifier

import (
	"idverify/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments of a verification job submitted to River.
// Jobs are unique per entry so a resubmitted entry is never verified twice
// concurrently.
type JobArgs struct {
	EntryID domain.EntryID `json:"entryId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs builds the job for entryID with the given attempt budget.
func NewJobArgs(entryID domain.EntryID, maxAttempts int) JobArgs {
	return JobArgs{EntryID: entryID, maxAttempts: maxAttempts}
}

// Kind returns the River job kind used to register and dispatch the verification worker.
func (args JobArgs) Kind() string { return "VerifyEntryJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
