//go:build !wasm

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swaramap/swaramap/pkg/types"
)

// postgresTimeout bounds a single statement.
const postgresTimeout = 10 * time.Second

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to dsn and creates the schema.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.createSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) createSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO schema_version (version)
		SELECT $1::integer WHERE NOT EXISTS (SELECT 1 FROM schema_version)
	`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("writing schema version: %w", err)
	}
	return nil
}

// AddRegion stores a region.
func (s *PostgresStore) AddRegion(r *types.Region) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("region ID is required")
	}
	return s.upsert("region", r, `
		INSERT INTO regions (id, name, doc) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, doc = EXCLUDED.doc
	`, r.ID, r.Name)
}

// GetRegion retrieves a region by ID.
func (s *PostgresStore) GetRegion(id string) (*types.Region, error) {
	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	var doc string
	err := s.pool.QueryRow(ctx, "SELECT doc FROM regions WHERE id = $1", id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
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
func (s *PostgresStore) GetRegions() ([]*types.Region, error) {
	return pgDocs[types.Region](s.pool, "regions", "SELECT doc FROM regions ORDER BY id")
}

// AddArtist stores an artist.
func (s *PostgresStore) AddArtist(a *types.Artist) error {
	if a == nil || a.ID == "" {
		return fmt.Errorf("artist ID is required")
	}
	return s.upsert("artist", a, `
		INSERT INTO artists (id, region_id, doc) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET region_id = EXCLUDED.region_id, doc = EXCLUDED.doc
	`, a.ID, a.RegionID)
}

// GetArtists retrieves the artists of a region ordered by ID.
func (s *PostgresStore) GetArtists(regionID string) ([]*types.Artist, error) {
	if regionID == "" {
		return pgDocs[types.Artist](s.pool, "artists", "SELECT doc FROM artists ORDER BY id")
	}
	return pgDocs[types.Artist](s.pool, "artists", "SELECT doc FROM artists WHERE region_id = $1 ORDER BY id", regionID)
}

// AddNews stores a news item.
func (s *PostgresStore) AddNews(n *types.News) error {
	if n == nil || n.ID == "" {
		return fmt.Errorf("news ID is required")
	}
	return s.upsert("news", n, `
		INSERT INTO news (id, region_id, date, doc) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET region_id = EXCLUDED.region_id, date = EXCLUDED.date, doc = EXCLUDED.doc
	`, n.ID, n.Region, n.Date)
}

// GetNews retrieves all news ordered by date, then ID.
func (s *PostgresStore) GetNews() ([]*types.News, error) {
	return pgDocs[types.News](s.pool, "news", "SELECT doc FROM news ORDER BY date, id")
}

// AddState stores a map state.
func (s *PostgresStore) AddState(st *types.MapState) error {
	if st == nil || st.ID == "" {
		return fmt.Errorf("state ID is required")
	}
	return s.upsert("state", st, `
		INSERT INTO states (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`, st.ID)
}

// GetStates retrieves all map states ordered by ID.
func (s *PostgresStore) GetStates() ([]*types.MapState, error) {
	return pgDocs[types.MapState](s.pool, "states", "SELECT doc FROM states ORDER BY id")
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// upsert marshals record and executes query with keys followed by the doc.
func (s *PostgresStore) upsert(kind string, record any, query string, keys ...any) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", kind, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	args := append(keys, string(doc))
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting %s: %w", kind, err)
	}
	return nil
}

func pgDocs[T any](pool *pgxpool.Pool, table, query string, args ...any) ([]*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", table, err)
	}

	result := make([]*T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal([]byte(doc), &v); err != nil {
			return nil, fmt.Errorf("unmarshaling %s: %w", table, err)
		}
		result = append(result, &v)
	}
	return result, nil
}
