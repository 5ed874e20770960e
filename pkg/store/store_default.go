//go:build !wasm

package store

import (
	"context"
	"fmt"
)

// New creates a store for native builds.
// ":memory:" returns a MemoryStore, a postgres:// DSN a PostgresStore and any
// other path a SQLite database file.
func New(cfg Config) (Store, error) {
	switch {
	case cfg.Path == "":
		return nil, fmt.Errorf("path is required")
	case cfg.Path == MemoryPath:
		return NewMemory(), nil
	case IsPostgres(cfg.Path):
		return NewPostgres(context.Background(), cfg.Path)
	default:
		return NewSQLite(cfg.Path)
	}
}
