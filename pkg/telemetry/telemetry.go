// Package telemetry provides OpenTelemetry metrics for swaramap, exported in
// the Prometheus text format.
package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Provider bundles a meter provider with the handler that exposes it.
type Provider struct {
	// MeterProvider creates meters. It is a no-op provider when metrics are disabled.
	MeterProvider metric.MeterProvider

	// Handler serves the Prometheus scrape endpoint. Nil when metrics are disabled.
	Handler http.Handler

	shutdown func(context.Context) error
}

// NewProvider creates a Prometheus-backed meter provider.
// Returns a no-op provider if enabled is false.
// The caller is responsible for calling Shutdown on the returned provider.
func NewProvider(enabled bool) (*Provider, error) {
	if !enabled {
		return &Provider{
			MeterProvider: noop.NewMeterProvider(),
			shutdown:      func(context.Context) error { return nil },
		}, nil
	}

	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	return &Provider{
		MeterProvider: mp,
		Handler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		shutdown:      mp.Shutdown,
	}, nil
}

// Enabled reports whether metrics are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.Handler != nil
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.shutdown == nil {
		return nil
	}
	return p.shutdown(ctx)
}
