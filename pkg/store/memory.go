package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/swaramap/swaramap/pkg/types"
)

// MemoryStore implements Store using in-memory maps.
// Records are kept by pointer; callers must not mutate them after adding.
type MemoryStore struct {
	mu      sync.RWMutex
	regions map[string]*types.Region
	artists map[string]*types.Artist
	news    map[string]*types.News
	states  map[string]*types.MapState
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		regions: make(map[string]*types.Region),
		artists: make(map[string]*types.Artist),
		news:    make(map[string]*types.News),
		states:  make(map[string]*types.MapState),
	}
}

// AddRegion stores a region.
func (m *MemoryStore) AddRegion(r *types.Region) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("region ID is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions[r.ID] = r
	return nil
}

// GetRegion retrieves a region by ID.
func (m *MemoryStore) GetRegion(id string) (*types.Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.regions[id]
	if !ok {
		return nil, fmt.Errorf("region %s: %w", id, ErrNotFound)
	}
	return r, nil
}

// GetRegions retrieves all regions ordered by ID.
func (m *MemoryStore) GetRegions() ([]*types.Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedValues(m.regions), nil
}

// AddArtist stores an artist.
func (m *MemoryStore) AddArtist(a *types.Artist) error {
	if a == nil || a.ID == "" {
		return fmt.Errorf("artist ID is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artists[a.ID] = a
	return nil
}

// GetArtists retrieves the artists of a region ordered by ID.
func (m *MemoryStore) GetArtists(regionID string) ([]*types.Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*types.Artist, 0)
	for _, a := range sortedValues(m.artists) {
		if regionID == "" || a.RegionID == regionID {
			result = append(result, a)
		}
	}
	return result, nil
}

// AddNews stores a news item.
func (m *MemoryStore) AddNews(n *types.News) error {
	if n == nil || n.ID == "" {
		return fmt.Errorf("news ID is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.news[n.ID] = n
	return nil
}

// GetNews retrieves all news ordered by date, then ID.
func (m *MemoryStore) GetNews() ([]*types.News, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := sortedValues(m.news)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

// AddState stores a map state.
func (m *MemoryStore) AddState(s *types.MapState) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("state ID is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[s.ID] = s
	return nil
}

// GetStates retrieves all map states ordered by ID.
func (m *MemoryStore) GetStates() ([]*types.MapState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedValues(m.states), nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// sortedValues returns the values of records ordered by key.
func sortedValues[T any](records map[string]*T) []*T {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*T, len(keys))
	for i, k := range keys {
		out[i] = records[k]
	}
	return out
}
