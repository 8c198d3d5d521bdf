package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the job becomes
// visible only on commit. The returned bool is false when a unique job with
// the same arguments already exists.
type JobStorage interface {
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
	// AddJobs inserts a batch and returns the number of jobs actually added.
	AddJobs(ctx context.Context, params []river.InsertManyParams) (int, error)
}
