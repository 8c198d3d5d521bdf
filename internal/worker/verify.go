package worker

import (
	"context"
	"errors"
	"fmt"
	"idverify/internal/verifier"
	"idverify/pkg/logger"
	"idverify/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DefaultRateLimitSnooze is used when no snooze duration is configured.
const DefaultRateLimitSnooze = 30 * time.Second

// VerifyEntryWorker is a River worker processing one identity entry per job.
//
// Error handling: a missing entry cancels the job. A rate limiter rejection
// snoozes the job, which does not consume an attempt. Other transient errors
// are returned so River retries them with its own backoff; on the last
// attempt the entry is marked FAILED instead so it never stays PENDING.
type VerifyEntryWorker struct {
	river.WorkerDefaults[verifier.JobArgs]

	verifier verifier.Verifier
	snooze   time.Duration
}

// NewVerifyEntryWorker constructs a VerifyEntryWorker.
func NewVerifyEntryWorker(v verifier.Verifier, snooze time.Duration) *VerifyEntryWorker {
	if snooze <= 0 {
		snooze = DefaultRateLimitSnooze
	}

	return &VerifyEntryWorker{verifier: v, snooze: snooze}
}

// Work verifies the entry referenced by the job.
func (w *VerifyEntryWorker) Work(ctx context.Context, job *river.Job[verifier.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("entryID", job.Args.EntryID.String()))

	entry, err := w.verifier.Process(ctx, job.Args.EntryID)
	if err == nil {
		logger.Info(ctx, "entry processed", zap.String("status", string(entry.Status)))

		return nil
	}

	if errors.Is(err, serrors.ErrNotFound) {
		logger.Warn(ctx, "entry no longer exists", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}
	if errors.Is(err, serrors.ErrRateLimited) {
		logger.Warn(ctx, "provider rate limited, snoozing job", zap.Duration("snooze", w.snooze))

		return river.JobSnooze(w.snooze) //nolint: wrapcheck
	}

	logger.Error(ctx, "error in verifying entry", zap.Error(err))
	if job.MaxAttempts > 0 && job.Attempt >= job.MaxAttempts {
		if _, ferr := w.verifier.Fail(ctx, job.Args.EntryID, err); ferr != nil {
			logger.Error(ctx, "could not mark entry failed", zap.Error(ferr))

			return fmt.Errorf("could not mark entry failed: %w", ferr)
		}

		return river.JobCancel(err) //nolint: wrapcheck
	}

	return fmt.Errorf("could not verify entry: %w", err)
}
