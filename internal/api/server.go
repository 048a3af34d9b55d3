// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the RECAP service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"recap/internal/api/handler/v1handler"
	"recap/internal/api/specs/v1specs"
	"recap/internal/config"
	"recap/pkg/controller"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	HandlerOptions v1handler.Options
	// SecHandlerOptions configures bearer token verification on /v1 routes.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// DocsPath is where the Swagger UI is served.
	DocsPath string
	// Pprof mounts /debug/pprof when set.
	Pprof bool
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HandlerOptions:    v1handler.NewOptions(cfg),
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		DocsPath:          cfg.HTTP.DocsPath,
		Pprof:             cfg.HTTP.Pprof,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewHandler builds the root handler:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI (DocsPath)
// - v1 API backed by the generated server and handlers
// - pprof endpoints when enabled
// wrapped with CORS, access logging and the request timeout.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	mux.Handle("GET "+opts.MetricsPath, promhttp.Handler())

	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	docsPath := strings.TrimSuffix(opts.DocsPath, "/") + "/"
	mux.Handle(docsPath, v5emb.New(
		"RECAP Service",
		"/specs/v1.yaml",
		docsPath,
	))

	secOptions := opts.SecHandlerOptions
	if secOptions == nil {
		secOptions = &v1handler.SecHandlerOptions{}
	}
	secHandler, err := v1handler.NewSecHandler(secOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1Srv, err := v1specs.NewServer(v1handler.New(deps.Deps, opts.HandlerOptions),
		secHandler,
		v1specs.WithMeterProvider(otel.GetMeterProvider()),
		v1specs.WithTracerProvider(otel.GetTracerProvider()),
		v1specs.WithErrorHandler(v1handler.ErrorHandler),
		v1specs.WithMiddleware(secHandler.RequireToken()),
		v1specs.WithPathPrefix("/v1"))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	mux.Handle("/v1/", v1Srv)

	if opts.Pprof {
		mux.Handle("/debug/pprof/", controller.PprofMux("/debug/pprof"))
	}

	handler := controller.WithCORS(mux)
	handler = controller.WithLogger(handler)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"UNAVAILABLE","message":"request timed out"}`)
	}

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
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
