package dataset

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/swaramap/swaramap/pkg/types"
)

// IgnoreFile is the name of the ignore file honoured by LoadDir.
// It uses .gitignore syntax relative to the dataset directory.
const IgnoreFile = ".datasetignore"

// Loader handles loading datasets from YAML files.
type Loader struct {
	fs   fs.FS  // filesystem holding dataset files
	root string // directory inside fs to walk
}

// NewLoader creates a loader over the built-in embedded dataset.
func NewLoader() *Loader {
	return &Loader{
		fs:   builtinFS,
		root: builtinRoot,
	}
}

// NewLoaderWithFS creates a loader with a custom filesystem rooted at ".".
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{
		fs:   fsys,
		root: ".",
	}
}

// LoadBuiltin loads the embedded dataset.
func LoadBuiltin() (*Dataset, error) {
	return NewLoader().Load()
}

// Load loads every YAML file under the loader root, in lexical order.
func (l *Loader) Load() (*Dataset, error) {
	ds := &Dataset{}

	err := fs.WalkDir(l.fs, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(p) {
			return nil
		}

		data, err := fs.ReadFile(l.fs, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		parsed, err := Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}
		ds.Merge(parsed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ds, nil
}

// Parse decodes a dataset from YAML bytes.
// Returns error if YAML is invalid or the document has no known section.
func Parse(data []byte) (*Dataset, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if f.empty() {
		return nil, fmt.Errorf("no regions, artists, news or states found in YAML")
	}
	return fromYAML(&f), nil
}

// LoadRegions loads regions from YAML bytes.
// Returns error if YAML is invalid or contains no regions.
func LoadRegions(data []byte) ([]*types.Region, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(f.Regions) == 0 {
		return nil, fmt.Errorf("no regions found in YAML")
	}
	return f.Regions, nil
}

// LoadFile loads a dataset from a YAML file path.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", path, err)
	}
	return ds, nil
}

// Load loads a dataset from path: a directory, a single file, or the
// built-in dataset when path is empty.
func Load(ctx context.Context, path string) (*Dataset, error) {
	if path == "" {
		return LoadBuiltin()
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadDir(ctx, path)
	}
	return LoadFile(path)
}

// LoadDir loads and merges every YAML file below dir.
// Phase 1: Walk directory tree and collect eligible file paths (sequential).
// Phase 2: Read and parse files in parallel, then merge in walk order.
func LoadDir(ctx context.Context, dir string) (*Dataset, error) {
	var ignore *gitignore.GitIgnore
	ignorePath := filepath.Join(dir, IgnoreFile)
	if _, err := os.Stat(ignorePath); err == nil {
		ignore, err = gitignore.CompileIgnoreFile(ignorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", ignorePath, err)
		}
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isYAML(p) {
			return nil
		}
		if ignore != nil {
			rel, err := filepath.Rel(dir, p)
			if err != nil {
				return err
			}
			if ignore.MatchesPath(rel) {
				return nil
			}
		}

		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	parsed := make([]*Dataset, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			ds, err := LoadFile(p)
			if err != nil {
				return err
			}
			parsed[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for _, p := range parsed {
		ds.Merge(p)
	}
	return ds, nil
}

func isYAML(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}
