package store

import (
	"errors"
	"strings"

	"github.com/swaramap/swaramap/pkg/types"
)

// ErrNotFound is returned when a record with the requested ID does not exist.
var ErrNotFound = errors.New("not found")

// MemoryPath selects the in-memory backend.
const MemoryPath = ":memory:"

// Store provides persistence for catalog records.
// This interface abstracts the underlying storage implementation,
// allowing for different backends (memory, SQLite, PostgreSQL).
// Every Add method is an upsert keyed by record ID.
type Store interface {
	// AddRegion stores a region, replacing any region with the same ID.
	AddRegion(r *types.Region) error

	// GetRegion retrieves a region by ID. Returns ErrNotFound if absent.
	GetRegion(id string) (*types.Region, error)

	// GetRegions retrieves all regions ordered by ID.
	GetRegions() ([]*types.Region, error)

	// AddArtist stores an artist.
	AddArtist(a *types.Artist) error

	// GetArtists retrieves the artists of a region ordered by ID.
	// An empty regionID returns every artist.
	GetArtists(regionID string) ([]*types.Artist, error)

	// AddNews stores a news item.
	AddNews(n *types.News) error

	// GetNews retrieves all news items ordered by date, then ID.
	GetNews() ([]*types.News, error)

	// AddState stores a map state.
	AddState(s *types.MapState) error

	// GetStates retrieves all map states ordered by ID.
	GetStates() ([]*types.MapState, error)

	// Close closes the database connection.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path selects the backend:
	//   ":memory:"                     in-memory store
	//   "postgres://..." or "postgresql://..."  PostgreSQL DSN
	//   anything else                  SQLite database file
	Path string
}

// IsPostgres reports whether path is a PostgreSQL DSN.
func IsPostgres(path string) bool {
	return strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://")
}
