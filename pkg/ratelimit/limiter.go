// Package ratelimit gates outgoing provider calls. Limiter is an in-process
// token bucket with a bounded wait queue; Redis is a fixed-window counter
// shared by every instance pointing at the same Redis; Chain combines them.
package ratelimit

import (
	"context"
	"idverify/pkg/logger"
	"idverify/pkg/metrics"
	"idverify/pkg/serrors"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultRequests is the number of requests allowed per window.
	DefaultRequests = 50
	// DefaultWindow is the refill window.
	DefaultWindow = time.Minute
	// DefaultMaxQueue bounds the number of callers waiting for a token.
	DefaultMaxQueue = 100
)

// Options configures a Limiter.
type Options struct {
	Name     string
	Requests int
	Window   time.Duration
	MaxQueue int
}

// Status is a snapshot of a Limiter.
type Status struct {
	AvailableTokens    int `json:"availableTokens"`
	MaxTokens          int `json:"maxTokens"`
	QueueSize          int `json:"queueSize"`
	MaxQueueSize       int `json:"maxQueueSize"`
	UtilizationPercent int `json:"utilizationPercent"`
}

// Limiter is a token bucket that refills Requests tokens per Window. Callers
// finding the bucket empty wait in a queue of at most MaxQueue entries; when
// the queue is full Acquire fails immediately with serrors.ErrRateLimited.
type Limiter struct {
	opts Options

	mu      sync.Mutex
	bucket  *rate.Limiter
	waiting int
}

// New constructs a Limiter. Zero option fields take the defaults.
func New(opts Options) *Limiter {
	if opts.Requests <= 0 {
		opts.Requests = DefaultRequests
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	if opts.MaxQueue < 0 {
		opts.MaxQueue = 0
	} else if opts.MaxQueue == 0 {
		opts.MaxQueue = DefaultMaxQueue
	}

	l := &Limiter{opts: opts}
	l.bucket = l.newBucket()

	return l
}

func (l *Limiter) newBucket() *rate.Limiter {
	return rate.NewLimiter(rate.Every(l.opts.Window/time.Duration(l.opts.Requests)), l.opts.Requests)
}

// Acquire takes one token, waiting in the queue if none is available.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	bucket := l.bucket
	if bucket.Allow() {
		l.mu.Unlock()

		return nil
	}
	if l.waiting >= l.opts.MaxQueue {
		queued := l.waiting
		l.mu.Unlock()
		metrics.RateLimitRejections.WithLabelValues(l.opts.Name).Inc()
		logger.Warn(ctx, "rate limit queue is full", zap.String("limiter", l.opts.Name), zap.Int("queued", queued))

		return serrors.With(serrors.ErrRateLimited, "Rate limit queue is full. Please try again later.")
	}
	l.waiting++
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.waiting--
		l.mu.Unlock()
	}()

	logger.Debug(ctx, "waiting for rate limit token", zap.String("limiter", l.opts.Name))
	if err := bucket.Wait(ctx); err != nil {
		return serrors.Wrap(serrors.ErrRateLimited, err, "could not wait for rate limit token")
	}

	return nil
}

// Status reports the current token and queue usage.
func (l *Limiter) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	available := int(math.Floor(l.bucket.Tokens()))
	available = max(0, min(available, l.opts.Requests))

	return Status{
		AvailableTokens:    available,
		MaxTokens:          l.opts.Requests,
		QueueSize:          l.waiting,
		MaxQueueSize:       l.opts.MaxQueue,
		UtilizationPercent: int(math.Round(float64(l.opts.Requests-available) / float64(l.opts.Requests) * 100)),
	}
}

// Reset refills the bucket. Callers already waiting keep waiting on the
// previous bucket.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bucket = l.newBucket()
}
