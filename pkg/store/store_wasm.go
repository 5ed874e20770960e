//go:build wasm

package store

import "fmt"

// New creates a store for WASM builds. Only the in-memory backend is
// available; SQLite files and PostgreSQL DSNs are rejected.
func New(cfg Config) (Store, error) {
	if cfg.Path != MemoryPath {
		return nil, fmt.Errorf("datastore %q is not supported in wasm builds (want %s)", cfg.Path, MemoryPath)
	}
	return NewMemory(), nil
}
