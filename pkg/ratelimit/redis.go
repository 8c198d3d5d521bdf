package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"idverify/pkg/metrics"
	"idverify/pkg/serrors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "idverify:ratelimit:"

// Redis is a fixed-window limiter backed by INCR and EXPIRE, so every
// instance sharing the Redis database shares the budget.
type Redis struct {
	client *redis.Client
	name   string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// RedisOption configures a Redis limiter.
type RedisOption func(*Redis)

// WithClock replaces the clock used to pick the current window.
func WithClock(now func() time.Time) RedisOption {
	return func(r *Redis) { r.now = now }
}

// NewRedis constructs a limiter allowing limit calls per window under name.
func NewRedis(client *redis.Client, name string, limit int, window time.Duration, opts ...RedisOption) *Redis {
	if limit <= 0 {
		limit = DefaultRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	r := &Redis{client: client, name: name, limit: int64(limit), window: window, now: time.Now}
	for _, o := range opts {
		o(r)
	}

	return r
}

func (r *Redis) key() string {
	return fmt.Sprintf("%s%s:%d", redisKeyPrefix, r.name, r.now().UnixNano()/int64(r.window))
}

// Acquire counts the call against the current window.
func (r *Redis) Acquire(ctx context.Context) error {
	key := r.key()

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not increment rate limit counter")
	}

	if incr.Val() > r.limit {
		metrics.RateLimitRejections.WithLabelValues(r.name).Inc()

		return serrors.With(serrors.ErrRateLimited, "rate limit of %d per %s exceeded", r.limit, r.window)
	}

	return nil
}

// Used returns the number of calls counted in the current window.
func (r *Redis) Used(ctx context.Context) (int64, error) {
	n, err := r.client.Get(ctx, r.key()).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, serrors.Wrap(serrors.ErrUnavailable, err, "could not read rate limit counter")
	}

	return n, nil
}
