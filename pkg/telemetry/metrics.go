package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/swaramap/swaramap/pkg/types"
)

const (
	// MatchMetricsMeterName is the name used for the match metrics meter
	MatchMetricsMeterName = "github.com/swaramap/swaramap/match"

	// CatalogMetricsMeterName is the name used for the catalog metrics meter
	CatalogMetricsMeterName = "github.com/swaramap/swaramap/catalog"
)

// MatchMetrics holds the OpenTelemetry instruments for match queries
type MatchMetrics struct {
	queriesTotal   metric.Int64Counter
	matchedRegions metric.Int64Histogram
}

// NewMatchMetrics creates a new MatchMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewMatchMetrics(provider metric.MeterProvider) (*MatchMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(MatchMetricsMeterName)

	queriesTotal, err := meter.Int64Counter(
		"swaramap_match_queries_total",
		metric.WithDescription("Total number of match queries"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	matchedRegions, err := meter.Int64Histogram(
		"swaramap_match_regions",
		metric.WithDescription("Number of regions matched per query"),
		metric.WithUnit("{region}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 3, 5, 8, 13, 21),
	)
	if err != nil {
		return nil, err
	}

	return &MatchMetrics{
		queriesTotal:   queriesTotal,
		matchedRegions: matchedRegions,
	}, nil
}

// RecordMatch records one evaluated query and the size of its result.
// The rhythm attribute is the token name when the filter is a token, "text"
// for other non-empty filters and "none" otherwise, to bound cardinality.
func (m *MatchMetrics) RecordMatch(ctx context.Context, q types.MatchQuery, isToken bool, matched int) {
	if m == nil || m.queriesTotal == nil {
		return
	}

	rhythm := "none"
	switch {
	case isToken:
		rhythm = q.RhythmFilter
	case q.RhythmFilter != "":
		rhythm = "text"
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("instrument", q.InstrumentQuery != ""),
		attribute.String("rhythm", rhythm),
	}

	m.queriesTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.matchedRegions.Record(ctx, int64(matched), metric.WithAttributes(attrs...))
}

// CatalogMetrics holds the OpenTelemetry instruments for dataset loading
type CatalogMetrics struct {
	regionsTotal   metric.Int64Gauge
	reloadDuration metric.Float64Histogram
}

// NewCatalogMetrics creates a new CatalogMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewCatalogMetrics(provider metric.MeterProvider) (*CatalogMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(CatalogMetricsMeterName)

	regionsTotal, err := meter.Int64Gauge(
		"swaramap_catalog_regions",
		metric.WithDescription("Number of regions in the active dataset"),
		metric.WithUnit("{region}"),
	)
	if err != nil {
		return nil, err
	}

	reloadDuration, err := meter.Float64Histogram(
		"swaramap_catalog_reload_duration_seconds",
		metric.WithDescription("Duration of dataset reloads in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30),
	)
	if err != nil {
		return nil, err
	}

	return &CatalogMetrics{
		regionsTotal:   regionsTotal,
		reloadDuration: reloadDuration,
	}, nil
}

// RecordReload records a reload and, on success, the new region count.
func (m *CatalogMetrics) RecordReload(ctx context.Context, duration time.Duration, regions int, success bool) {
	if m == nil || m.reloadDuration == nil {
		return
	}

	m.reloadDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(attribute.Bool("success", success)))
	if success {
		m.regionsTotal.Record(ctx, int64(regions))
	}
}
