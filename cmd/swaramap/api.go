package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swaramap/swaramap/pkg/api"
	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/config"
	"github.com/swaramap/swaramap/pkg/telemetry"
)

var (
	apiWatch         bool
	apiWatchDebounce time.Duration
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the HTTP API",
	Long: `Serve the catalog over HTTP.

Endpoints:
  GET /health                 liveness
  GET /regions                regions with emphasis for ?instrument=&rhythm=
  GET /regions/{id}           one region
  GET /regions/{id}/artists   artists of a region
  GET /match                  matched region IDs for ?instrument=&rhythm=
  GET /map                    map states with emphasis and colour
  GET /search                 ranked search with facet filters
  GET /news                   news, featured first
  GET /stats                  distributions
  GET /tokens                 rhythm tokens
  GET /metrics                Prometheus metrics (with --metrics)`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().String("address", config.DefaultAddress, "Address to listen on")
	apiCmd.Flags().Bool("metrics", false, "Expose Prometheus metrics at /metrics")
	apiCmd.Flags().BoolVar(&apiWatch, "watch", false, "Reload the dataset when files in --dataset change")
	apiCmd.Flags().DurationVar(&apiWatchDebounce, "watch-debounce", catalog.DefaultDebounce, "Delay before reloading after a change")

	bindFlags(apiCmd, map[string]string{
		config.KeyAddress:        "address",
		config.KeyMetricsEnabled: "metrics",
	}, false)
}

func runAPI(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if apiWatch && cfg.Dataset == "" {
		return fmt.Errorf("--watch requires --dataset")
	}

	provider, err := telemetry.NewProvider(cfg.Metrics.Enabled)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}()

	env, err := openEnv(ctx, provider.MeterProvider)
	if err != nil {
		return err
	}
	defer env.Close()

	handler, err := newAPIHandler(env, provider)
	if err != nil {
		return err
	}

	if apiWatch {
		go func() {
			if err := env.core.Watch(ctx, cfg.Dataset, apiWatchDebounce); err != nil && ctx.Err() == nil {
				env.logger.Error("dataset watch stopped", zap.Error(err))
			}
		}()
	}

	return api.ListenAndServe(ctx, cfg.Address, handler, env.logger)
}

// newAPIHandler builds the router with request ids, panic recovery, request
// logging and, when enabled, HTTP metrics.
func newAPIHandler(env *runtimeEnv, provider *telemetry.Provider) (http.Handler, error) {
	middlewares := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		api.LoggingMiddleware(env.logger),
	}
	opts := []api.ServerOption{api.WithLogger(env.logger)}

	if provider.Enabled() {
		httpMetrics, err := telemetry.NewHTTPMetrics(provider.MeterProvider)
		if err != nil {
			return nil, err
		}
		middlewares = append(middlewares, httpMetrics.Middleware)
		opts = append(opts, api.WithMetricsHandler(provider.Handler))
	}

	opts = append(opts, api.WithMiddlewares(middlewares...))
	return api.NewServer(env.core, opts...), nil
}
