// Package metrics holds the Prometheus collectors shared across the service.
// Collectors register with the default registry on package initialization and
// are exposed by the HTTP server on the metrics path.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// VerificationAttempts counts HTTP attempts per provider and outcome code.
	VerificationAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idverify_verification_attempts_total",
		Help: "Provider HTTP attempts by provider and outcome",
	}, []string{"provider", "outcome"})

	// VerificationDuration observes whole Verify calls, retries and backoff included.
	VerificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "idverify_verification_duration_seconds",
		Help:    "Duration of verification calls by provider and result code",
		Buckets: append(DefaultBuckets, 30, 60, 120),
	}, []string{"provider", "code"})

	// DedupLookups counts duplicate cache lookups by result (hit or miss).
	DedupLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idverify_dedup_cache_lookups_total",
		Help: "Duplicate cache lookups by result",
	}, []string{"result"})

	// DedupScans counts full scans of verified records.
	DedupScans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "idverify_dedup_scans_total",
		Help: "Full scans of verified records performed by the duplicate detector",
	})

	// DedupFailOpen counts checks resolved to non-duplicate because of an internal failure.
	DedupFailOpen = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idverify_dedup_fail_open_total",
		Help: "Duplicate checks resolved as non-duplicate after an internal failure",
	}, []string{"reason"})

	// DedupCacheEntries reports the current number of cached verdicts.
	DedupCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "idverify_dedup_cache_entries",
		Help: "Number of entries held by the duplicate cache",
	})

	// RateLimitRejections counts limiter rejections per limiter name.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idverify_rate_limit_rejections_total",
		Help: "Requests rejected by a rate limiter",
	}, []string{"limiter"})
)

// ObserveVerification records the duration and result code of a Verify call.
func ObserveVerification(provider, code string, d time.Duration) {
	VerificationDuration.WithLabelValues(provider, code).Observe(d.Seconds())
}
