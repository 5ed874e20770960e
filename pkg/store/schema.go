package store

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Record tables. Every record is a JSON document keyed by its ID; the other
// columns exist for lookup and ordering.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS regions (
		id TEXT PRIMARY KEY NOT NULL,
		name TEXT NOT NULL,
		doc TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id TEXT PRIMARY KEY NOT NULL,
		region_id TEXT NOT NULL,
		doc TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_artists_region_id ON artists(region_id)`,
	`CREATE TABLE IF NOT EXISTS news (
		id TEXT PRIMARY KEY NOT NULL,
		region_id TEXT NOT NULL,
		date TEXT NOT NULL,
		doc TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS states (
		id TEXT PRIMARY KEY NOT NULL,
		doc TEXT NOT NULL
	)`,
}

// Tables lists the record tables created by the schema.
var Tables = []string{"regions", "artists", "news", "states"}

// CreateSchema creates the database schema if it doesn't exist.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}

	// Insert version if table is empty
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
			return fmt.Errorf("writing schema version: %w", err)
		}
	}

	return nil
}

func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i]
		}
	}
	return s
}
