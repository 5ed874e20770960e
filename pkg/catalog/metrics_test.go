package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/swaramap/swaramap/pkg/telemetry"
	"github.com/swaramap/swaramap/pkg/types"
)

func TestCore_RecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	c, err := New(context.Background(), nil, Options{MeterProvider: provider})
	require.NoError(t, err)

	c.Match(types.MatchQuery{RhythmFilter: "Fast"})
	c.Match(types.MatchQuery{InstrumentQuery: "sarangi"})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	scopes := make(map[string][]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		scopes[sm.Scope.Name] = sm.Metrics
	}
	require.Contains(t, scopes, telemetry.MatchMetricsMeterName)
	require.Contains(t, scopes, telemetry.CatalogMetricsMeterName)

	for _, m := range scopes[telemetry.MatchMetricsMeterName] {
		if m.Name != "swaramap_match_queries_total" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		var total int64
		for _, dp := range sum.DataPoints {
			total += dp.Value
		}
		assert.Equal(t, int64(2), total)
	}

	for _, m := range scopes[telemetry.CatalogMetricsMeterName] {
		if m.Name != "swaramap_catalog_regions" {
			continue
		}
		gauge, ok := m.Data.(metricdata.Gauge[int64])
		require.True(t, ok)
		require.Len(t, gauge.DataPoints, 1)
		assert.Equal(t, int64(10), gauge.DataPoints[0].Value)
	}
}
