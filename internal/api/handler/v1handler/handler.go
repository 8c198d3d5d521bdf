// Package v1handler implements the v1 HTTP API: bulk submissions, entry
// lookups, single verifications, duplicate checks, usage and rate limiter
// status. Bodies are decoded and encoded with jx.
package v1handler

import (
	"idverify/internal/dedup"
	"idverify/internal/verifier"
	"idverify/pkg/ratelimit"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultLimit is the page size used when the request does not set one.
const DefaultLimit = 20

// MaxLimit caps the page size.
const MaxLimit = 100

// RateLimiter is a limiter whose state can be inspected and reset.
type RateLimiter interface {
	Status() ratelimit.Status
	Reset()
}

// Deps are the services backing the v1 API.
type Deps struct {
	Verifier verifier.Verifier
	Detector dedup.Detector
	// Limiters are the local provider limiters keyed by provider name.
	Limiters map[string]RateLimiter
}

type Handler struct {
	deps     Deps
	requests metric.Int64Counter
}

// Option customizes a Handler.
type Option func(*Handler)

// WithMeterProvider records request counters on mp.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(h *Handler) {
		counter, err := mp.Meter("idverify/api/v1").Int64Counter("idverify.api.requests",
			metric.WithDescription("v1 API requests by route, method and status"))
		if err == nil {
			h.requests = counter
		}
	}
}

func New(deps Deps, opts ...Option) *Handler {
	counter, _ := noop.NewMeterProvider().Meter("").Int64Counter("")
	h := &Handler{deps: deps, requests: counter}
	for _, o := range opts {
		o(h)
	}

	return h
}

// Register mounts the v1 routes on r. Every route requires a bearer token.
func (h *Handler) Register(r chi.Router, sec *SecHandler) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Recoverer)
		r.Use(h.instrument)
		r.Use(sec.Middleware(h))

		r.Route("/lists/{listID}/entries", func(r chi.Router) {
			r.Post("/", h.SubmitEntries)
			r.Get("/", h.ListEntries)
		})
		r.Get("/entries/{entryID}", h.GetEntry)

		r.Post("/verifications/{type}", h.Verify)

		r.Post("/duplicates/check", h.CheckDuplicate)
		r.Post("/duplicates/batch", h.BatchCheckDuplicates)
		r.Get("/duplicates/cache", h.CacheStats)
		r.Delete("/duplicates/cache", h.ClearCache)

		r.Get("/usage", h.Usage)
		r.Get("/ratelimit", h.RateLimitStatus)
		r.Post("/ratelimit/{name}/reset", h.ResetRateLimit)
	})
}

func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.requests.Add(r.Context(), 1, metric.WithAttributes(
			attribute.String("route", route),
			attribute.String("method", r.Method),
			attribute.String("status", strconv.Itoa(status)),
		))
	})
}
