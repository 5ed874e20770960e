// Package catalog serves a loaded dataset: region lookup, matching,
// emphasis, artists, news, search and statistics.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/swaramap/swaramap/pkg/dataset"
	"github.com/swaramap/swaramap/pkg/matcher"
	"github.com/swaramap/swaramap/pkg/search"
	"github.com/swaramap/swaramap/pkg/stats"
	"github.com/swaramap/swaramap/pkg/store"
	"github.com/swaramap/swaramap/pkg/telemetry"
	"github.com/swaramap/swaramap/pkg/types"
)

// ErrRegionNotFound is returned when a region ID is not in the catalog.
var ErrRegionNotFound = errors.New("region not found")

// Options configures a Core.
type Options struct {
	// Filter restricts the loaded regions by ID pattern.
	Filter dataset.FilterConfig

	// Matcher evaluates queries. Nil uses the default token table.
	Matcher *matcher.Matcher

	// Store receives every loaded dataset. Nil keeps nothing beyond memory.
	Store store.Store

	// Logger receives load and reload events. Nil disables logging.
	Logger *zap.Logger

	// MeterProvider records match and reload metrics. Nil disables metrics.
	MeterProvider metric.MeterProvider
}

// snapshot is one immutable loaded dataset with its lookup index.
type snapshot struct {
	ds   *dataset.Dataset
	byID map[string]*types.Region
}

// Core wraps a dataset source, the matcher and an optional store.
// It is safe for concurrent readers; Reload swaps the dataset atomically.
type Core struct {
	source  Source
	opts    Options
	matcher *matcher.Matcher
	logger  *zap.Logger

	matchMetrics  *telemetry.MatchMetrics
	reloadMetrics *telemetry.CatalogMetrics

	mu   sync.RWMutex
	snap *snapshot
}

// New loads src and returns a ready Core.
func New(ctx context.Context, src Source, opts Options) (*Core, error) {
	if src == nil {
		src = PathSource("")
	}
	c := &Core{
		source:  src,
		opts:    opts,
		matcher: opts.Matcher,
		logger:  opts.Logger,
	}
	if c.matcher == nil {
		c.matcher = matcher.Default()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	var err error
	if c.matchMetrics, err = telemetry.NewMatchMetrics(opts.MeterProvider); err != nil {
		return nil, fmt.Errorf("creating match metrics: %w", err)
	}
	if c.reloadMetrics, err = telemetry.NewCatalogMetrics(opts.MeterProvider); err != nil {
		return nil, fmt.Errorf("creating catalog metrics: %w", err)
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromDataset returns a Core over an already loaded dataset.
// Reload on the result reloads the same dataset.
func NewFromDataset(ctx context.Context, ds *dataset.Dataset, opts Options) (*Core, error) {
	return New(ctx, staticSource{ds}, opts)
}

type staticSource struct{ ds *dataset.Dataset }

func (s staticSource) Load(context.Context) (*dataset.Dataset, error) {
	if s.ds == nil {
		return nil, fmt.Errorf("dataset is nil")
	}
	// Apply assigns fresh slices, so filtering the copy leaves ds intact
	cp := *s.ds
	return &cp, nil
}

// Reload loads the source again, validates it and swaps it in.
// On error the previous dataset stays active.
func (c *Core) Reload(ctx context.Context) error {
	start := time.Now()
	n, err := c.reload(ctx)
	c.reloadMetrics.RecordReload(ctx, time.Since(start), n, err == nil)
	return err
}

func (c *Core) reload(ctx context.Context) (int, error) {
	ds, err := c.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading dataset: %w", err)
	}
	if err := ds.Apply(c.opts.Filter); err != nil {
		return 0, fmt.Errorf("filtering dataset: %w", err)
	}
	if err := dataset.Validate(ds); err != nil {
		return 0, fmt.Errorf("validating dataset: %w", err)
	}

	if c.opts.Store != nil {
		stats, err := store.Import(c.opts.Store, ds)
		if err != nil {
			return 0, fmt.Errorf("storing dataset: %w", err)
		}
		c.logger.Debug("dataset stored",
			zap.Int("regions", stats.Regions),
			zap.Int("artists", stats.Artists))
	}

	snap := &snapshot{ds: ds, byID: make(map[string]*types.Region, len(ds.Regions))}
	for _, r := range ds.Regions {
		snap.byID[r.ID] = r
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	c.logger.Info("dataset loaded",
		zap.Int("regions", len(ds.Regions)),
		zap.Int("artists", len(ds.Artists)),
		zap.Int("news", len(ds.News)),
		zap.Int("states", len(ds.States)))
	return len(ds.Regions), nil
}

func (c *Core) current() *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Dataset returns the active dataset. Callers must not modify it.
func (c *Core) Dataset() *dataset.Dataset {
	return c.current().ds
}

// Matcher returns the matcher used by Match.
func (c *Core) Matcher() *matcher.Matcher {
	return c.matcher
}

// Regions returns every region in dataset order.
func (c *Core) Regions() []*types.Region {
	return c.current().ds.Regions
}

// Region returns the region with id.
func (c *Core) Region(id string) (*types.Region, error) {
	r, ok := c.current().byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, id)
	}
	return r, nil
}

// Artists returns the artists of a region in dataset order.
// An unknown region is ErrRegionNotFound.
func (c *Core) Artists(regionID string) ([]*types.Artist, error) {
	snap := c.current()
	if _, ok := snap.byID[regionID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, regionID)
	}
	artists := snap.ds.ArtistsFor(regionID)
	if artists == nil {
		artists = []*types.Artist{}
	}
	return artists, nil
}

// States returns every map state in dataset order.
func (c *Core) States() []*types.MapState {
	return c.current().ds.States
}

// Search runs a ranked search over the regions.
func (c *Core) Search(f search.Filters) []search.Result {
	return search.Search(c.Regions(), f)
}

// Stats computes distributions over the regions.
func (c *Core) Stats() stats.Report {
	return stats.Compute(c.Regions())
}
