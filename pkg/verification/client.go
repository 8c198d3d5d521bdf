package verification

import (
	"context"
	"errors"
	"idverify/pkg/logger"
	"idverify/pkg/metrics"
	"io"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a single HTTP attempt.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries is the number of attempts made for transient failures.
	DefaultMaxRetries = 3
	// DefaultBackoffBase is the delay before the second attempt; it doubles after each attempt.
	DefaultBackoffBase = time.Second
)

// Options tunes the retry engine.
type Options struct {
	Timeout     time.Duration
	MaxRetries  int
	BackoffBase time.Duration
}

// DefaultOptions returns the production retry settings.
func DefaultOptions() Options {
	return Options{Timeout: DefaultTimeout, MaxRetries: DefaultMaxRetries, BackoffBase: DefaultBackoffBase}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = d.MaxRetries
	}
	if o.BackoffBase <= 0 {
		o.BackoffBase = d.BackoffBase
	}

	return o
}

// Backoff returns the delay after the given failed attempt: base * 2^(attempt-1).
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	return base << (attempt - 1)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint: wrapcheck
	case <-t.C:
		return nil
	}
}

// Option customizes a Client.
type Option func(*Client)

// WithSleep replaces the backoff sleep, mainly for tests.
func WithSleep(fn SleepFunc) Option {
	return func(c *Client) { c.sleep = fn }
}

// WithTracer replaces the tracer obtained from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// Client runs the retry engine for one provider. It is safe for concurrent use.
type Client struct {
	provider   Provider
	httpClient *http.Client
	limiter    Limiter
	opts       Options
	sleep      SleepFunc
	tracer     trace.Tracer
}

var _ Verifier = (*Client)(nil)

// New constructs a Client for provider. limiter may be nil.
func New(provider Provider, httpClient *http.Client, limiter Limiter, opts Options, options ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		provider:   provider,
		httpClient: httpClient,
		limiter:    limiter,
		opts:       opts.withDefaults(),
		sleep:      Sleep,
		tracer:     otel.Tracer("idverify/pkg/verification"),
	}
	for _, o := range options {
		o(c)
	}

	return c
}

// Name returns the provider name.
func (c *Client) Name() string { return c.provider.Name() }

// FieldMismatch builds a FIELD_MISMATCH error carrying the provider's message.
func (c *Client) FieldMismatch(failedFields []string) *Error {
	return c.classify(&Error{Code: CodeFieldMismatch, FailedFields: failedFields})
}

// Verify validates identity, acquires one rate limiter slot and then makes up
// to MaxRetries attempts. Only transient failures are retried. When every
// attempt fails the last transient error is returned.
func (c *Client) Verify(ctx context.Context, identity string) (*Result, error) {
	name := c.provider.Name()
	ctx, span := c.tracer.Start(ctx, name+".Verify", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	res, verr := c.verify(ctx, identity)
	if verr != nil {
		span.SetAttributes(attribute.String("verification.code", string(verr.Code)))
		span.SetStatus(otelcodes.Error, string(verr.Code))
		metrics.ObserveVerification(name, string(verr.Code), time.Since(start))

		return nil, verr
	}
	span.SetAttributes(attribute.Int("verification.attempts", res.Attempts))
	metrics.ObserveVerification(name, "OK", time.Since(start))

	return res, nil
}

func (c *Client) verify(ctx context.Context, identity string) (*Result, *Error) {
	id, verr := c.provider.Validate(identity)
	if verr != nil {
		logger.Warn(ctx, "rejected identity input",
			zap.String("provider", c.provider.Name()),
			logger.Masked("identity", identity),
			zap.String("code", string(verr.Code)))

		return nil, c.classify(verr)
	}

	ctx = logger.WithFields(ctx, zap.String("provider", c.provider.Name()), logger.Masked("identity", id))
	if !c.provider.Configured() {
		logger.Error(ctx, "provider credential not configured")

		return nil, c.classify(&Error{Code: CodeNotConfigured})
	}

	logger.Info(ctx, "verifying identity")
	if c.limiter != nil {
		if err := c.limiter.Acquire(ctx); err != nil {
			logger.Warn(ctx, "rate limit exceeded", zap.Error(err))

			return nil, c.classify(&Error{Code: CodeRateLimitExceeded, RawMessage: err.Error(), cause: err})
		}
	}

	var last *Error
	for attempt := 1; attempt <= c.opts.MaxRetries; attempt++ {
		logger.Debug(ctx, "sending verification request",
			zap.Int("attempt", attempt), zap.Int("maxRetries", c.opts.MaxRetries))

		res, verr := c.attempt(ctx, id, attempt)
		if verr == nil {
			metrics.VerificationAttempts.WithLabelValues(c.provider.Name(), "OK").Inc()
			res.Provider = c.provider.Name()
			res.Attempts = attempt
			logger.Info(ctx, "identity verified", zap.Int("attempt", attempt))

			return res, nil
		}
		metrics.VerificationAttempts.WithLabelValues(c.provider.Name(), string(verr.Code)).Inc()

		if !verr.Retryable {
			logger.Warn(ctx, "verification failed",
				zap.String("code", string(verr.Code)), zap.Int("statusCode", verr.StatusCode), zap.Int("attempt", attempt))

			return nil, c.classify(verr)
		}

		last = verr
		if attempt == c.opts.MaxRetries {
			break
		}

		delay := Backoff(c.opts.BackoffBase, attempt)
		logger.Warn(ctx, "transient verification failure, retrying",
			zap.String("code", string(verr.Code)), zap.Int("attempt", attempt), zap.Duration("delay", delay))
		if err := c.sleep(ctx, delay); err != nil {
			logger.Warn(ctx, "stopped retrying", zap.Error(err))

			break
		}
	}

	logger.Error(ctx, "all verification attempts failed", zap.Int("maxRetries", c.opts.MaxRetries))
	if last == nil {
		last = &Error{Code: CodeMaxRetriesExceeded}
	}

	return nil, c.classify(last)
}

func (c *Client) attempt(ctx context.Context, id string, attempt int) (*Result, *Error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := c.provider.NewRequest(ctx, id)
	if err != nil {
		return nil, &Error{Code: CodeNotConfigured, RawMessage: err.Error(), Attempt: attempt, cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if status, ok := malformedStatus(err); ok {
			if p, known := c.provider.Policies().Statuses[status]; known {
				return p.apply(nil, status, attempt)
			}
		}

		return nil, networkError(err, attempt)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err, attempt)
	}

	res, verr := c.provider.Policies().Lookup(resp.StatusCode).apply(body, resp.StatusCode, attempt)
	if verr == nil && res == nil {
		return nil, &Error{Code: CodeInvalidResponse, StatusCode: resp.StatusCode, Attempt: attempt}
	}

	return res, verr
}

func (c *Client) classify(e *Error) *Error {
	e.Provider = c.provider.Name()
	e.Message = c.provider.Messages().For(e.Code)

	return e
}

// net/http rejects status lines whose code is not three digits. Providers
// that answer with such codes (Datapro's 87 and 88) surface here.
var malformedStatusErr = regexp.MustCompile(`malformed HTTP status code "(\d{1,2})"`)

// malformedStatus extracts a short status code from a transport error.
func malformedStatus(err error) (int, bool) {
	m := malformedStatusErr.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	status, convErr := strconv.Atoi(m[1])

	return status, convErr == nil
}

func networkError(err error, attempt int) *Error {
	return &Error{
		Code:       CodeNetworkError,
		RawMessage: err.Error(),
		Attempt:    attempt,
		IsTimeout:  isTimeout(err),
		Retryable:  true,
		cause:      err,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error

	return errors.As(err, &ne) && ne.Timeout()
}
