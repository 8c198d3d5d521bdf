// Package api builds the HTTP server of the verification service: the v1
// routes, Prometheus metrics, the OpenAPI document with its Swagger UI and
// the pprof endpoints.
package api

import (
	_ "embed"
	"fmt"
	"idverify/internal/api/handler/v1handler"
	"idverify/internal/config"
	"idverify/pkg/controller"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds the HTTP server settings. Zero durations fall back to the
// net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer token validation for v1 routes.
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath is where Prometheus metrics are served.
	MetricsPath string
	// CORSOrigin is the origin allowed to call the API from a browser.
	CORSOrigin string
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigin:        cfg.HTTP.CORSOrigin,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer returns a configured *http.Server. Routes:
//   - MetricsPath: Prometheus metrics, OpenTelemetry instruments included
//   - /specs/v1.yaml and /v1/docs/: the OpenAPI document and Swagger UI
//   - /v1/...: the authenticated API
//   - /debug/pprof/: profiling
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1 := v1handler.New(deps.Deps, v1handler.WithMeterProvider(mp))

	r := chi.NewRouter()
	r.Use(controller.WithLogger)
	r.Use(controller.WithCORS(opts.CORSOrigin))

	r.Handle(opts.MetricsPath, promhttp.Handler())
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	r.Route("/v1", func(r chi.Router) {
		r.Handle("/docs/*", v5emb.New("Identity Verification Service", "/specs/v1.yaml", "/v1/docs/"))
		v1.Register(r, secHandler)
	})
	r.Mount("/debug/pprof", controller.PprofRouter())

	var handler http.Handler = r
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(r, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
