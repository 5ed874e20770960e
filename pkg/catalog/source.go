package catalog

import (
	"context"
	"fmt"

	"github.com/swaramap/swaramap/pkg/dataset"
	"github.com/swaramap/swaramap/pkg/store"
)

// Source produces a dataset. Reload calls Load again.
type Source interface {
	Load(ctx context.Context) (*dataset.Dataset, error)
}

// PathSource loads a YAML file or directory. An empty path is the built-in dataset.
type PathSource string

// Load loads the dataset at the path.
func (p PathSource) Load(ctx context.Context) (*dataset.Dataset, error) {
	return dataset.Load(ctx, string(p))
}

// StoreSource reads a dataset back from a datastore.
type StoreSource struct {
	Store store.Store
}

// Load exports every record of the store.
func (s StoreSource) Load(ctx context.Context) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := store.Export(s.Store)
	if err != nil {
		return nil, fmt.Errorf("loading dataset from store: %w", err)
	}
	return ds, nil
}

var (
	_ Source = PathSource("")
	_ Source = StoreSource{}
	_ Source = (*dataset.GitSource)(nil)
)
