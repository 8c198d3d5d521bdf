package worker

import (
	"context"
	"fmt"
	"idverify/internal/config"
	"idverify/internal/verifier"
	"idverify/pkg/logger"
	"idverify/pkg/verification"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// jobTimeoutMargin covers the storage and duplicate check work around the provider calls.
const jobTimeoutMargin = 30 * time.Second

// Options configure the River client running verification jobs.
type Options struct {
	MaxWorkers      int
	RateLimitSnooze time.Duration
	// JobTimeout bounds one job attempt.
	JobTimeout time.Duration
}

// NewOptions derives the worker options from the application config. The job
// timeout is the worst case duration of the slowest provider call.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Worker.MaxWorkers,
		RateLimitSnooze: cfg.Worker.RateLimitSnooze,
		JobTimeout:      max(worstCase(cfg.Datapro.Provider), worstCase(cfg.VerifyData.Provider)) + jobTimeoutMargin,
	}
}

func worstCase(p config.Provider) time.Duration {
	d := time.Duration(p.MaxRetries) * p.Timeout
	for attempt := 1; attempt < p.MaxRetries; attempt++ {
		d += verification.Backoff(p.BackoffBase, attempt)
	}

	return d
}

// Start registers the verification worker and starts a River client
// processing the default queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	v verifier.Verifier,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewVerifyEntryWorker(v, options.RateLimitSnooze))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		JobTimeout: options.JobTimeout,
		Workers:    workers,
		Logger:     slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	logger.Info(ctx, "verification worker started",
		zap.Int("maxWorkers", options.MaxWorkers), zap.Duration("jobTimeout", options.JobTimeout))

	return riverClient, nil
}
