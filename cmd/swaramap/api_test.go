package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaramap/swaramap/pkg/telemetry"
)

func TestNewAPIHandler(t *testing.T) {
	tests := []struct {
		name        string
		metrics     bool
		wantMetrics int
	}{
		{"metrics disabled", false, http.StatusNotFound},
		{"metrics enabled", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := telemetry.NewProvider(tt.metrics)
			require.NoError(t, err)
			t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

			env, err := openEnv(t.Context(), provider.MeterProvider)
			require.NoError(t, err)
			t.Cleanup(env.Close)

			handler, err := newAPIHandler(env, provider)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/match?instrument=sarangi", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "rajasthan")
			assert.NotEmpty(t, rec.Header().Get("Content-Type"))

			rec = httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			assert.Equal(t, tt.wantMetrics, rec.Code)
			if tt.metrics {
				assert.Contains(t, rec.Body.String(), "swaramap_match_queries_total")
			}
		})
	}
}
