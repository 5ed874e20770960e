//go:build !wasm

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/swaramap/swaramap/pkg/types"
)

// SQLiteStore implements Store using SQLite (pure Go driver, no CGO).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store.
// Use ":memory:" for an in-memory database (useful for testing).
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)

	// Initialize schema
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddRegion stores a region.
func (s *SQLiteStore) AddRegion(r *types.Region) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("region ID is required")
	}
	doc, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling region: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO regions (id, name, doc) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, doc = excluded.doc
	`, r.ID, r.Name, string(doc))
	if err != nil {
		return fmt.Errorf("inserting region: %w", err)
	}
	return nil
}

// GetRegion retrieves a region by ID.
func (s *SQLiteStore) GetRegion(id string) (*types.Region, error) {
	var doc string
	err := s.db.QueryRow("SELECT doc FROM regions WHERE id = ?", id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("region %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying region: %w", err)
	}

	var r types.Region
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return nil, fmt.Errorf("unmarshaling region: %w", err)
	}
	return &r, nil
}

// GetRegions retrieves all regions ordered by ID.
func (s *SQLiteStore) GetRegions() ([]*types.Region, error) {
	return queryDocs[types.Region](s.db, "regions", "SELECT doc FROM regions ORDER BY id")
}

// AddArtist stores an artist.
func (s *SQLiteStore) AddArtist(a *types.Artist) error {
	if a == nil || a.ID == "" {
		return fmt.Errorf("artist ID is required")
	}
	doc, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling artist: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO artists (id, region_id, doc) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET region_id = excluded.region_id, doc = excluded.doc
	`, a.ID, a.RegionID, string(doc))
	if err != nil {
		return fmt.Errorf("inserting artist: %w", err)
	}
	return nil
}

// GetArtists retrieves the artists of a region ordered by ID.
func (s *SQLiteStore) GetArtists(regionID string) ([]*types.Artist, error) {
	if regionID == "" {
		return queryDocs[types.Artist](s.db, "artists", "SELECT doc FROM artists ORDER BY id")
	}
	return queryDocs[types.Artist](s.db, "artists", "SELECT doc FROM artists WHERE region_id = ? ORDER BY id", regionID)
}

// AddNews stores a news item.
func (s *SQLiteStore) AddNews(n *types.News) error {
	if n == nil || n.ID == "" {
		return fmt.Errorf("news ID is required")
	}
	doc, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshaling news: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO news (id, region_id, date, doc) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET region_id = excluded.region_id, date = excluded.date, doc = excluded.doc
	`, n.ID, n.Region, n.Date, string(doc))
	if err != nil {
		return fmt.Errorf("inserting news: %w", err)
	}
	return nil
}

// GetNews retrieves all news ordered by date, then ID.
func (s *SQLiteStore) GetNews() ([]*types.News, error) {
	return queryDocs[types.News](s.db, "news", "SELECT doc FROM news ORDER BY date, id")
}

// AddState stores a map state.
func (s *SQLiteStore) AddState(st *types.MapState) error {
	if st == nil || st.ID == "" {
		return fmt.Errorf("state ID is required")
	}
	doc, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO states (id, doc) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET doc = excluded.doc
	`, st.ID, string(doc))
	if err != nil {
		return fmt.Errorf("inserting state: %w", err)
	}
	return nil
}

// GetStates retrieves all map states ordered by ID.
func (s *SQLiteStore) GetStates() ([]*types.MapState, error) {
	return queryDocs[types.MapState](s.db, "states", "SELECT doc FROM states ORDER BY id")
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// queryDocs runs a single-column doc query and decodes every row.
func queryDocs[T any](db *sql.DB, table, query string, args ...any) ([]*T, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	result := make([]*T, 0)
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		var v T
		if err := json.Unmarshal([]byte(doc), &v); err != nil {
			return nil, fmt.Errorf("unmarshaling %s: %w", table, err)
		}
		result = append(result, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return result, nil
}
