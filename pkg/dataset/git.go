//go:build !wasm

package dataset

import (
	"context"
	"fmt"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// GitSource is a dataset file kept in a Git repository.
type GitSource struct {
	URL   string // repository URL or local path
	Ref   string // branch name; empty uses the remote HEAD
	Path  string // file path inside the repository, e.g., "regions.yml"
	Depth int    // clone depth; 0 clones full history
}

// NewGitSource returns a shallow source for path at ref.
func NewGitSource(url, ref, path string) *GitSource {
	return &GitSource{URL: url, Ref: ref, Path: path, Depth: 1}
}

// Fetch clones the repository into memory and returns the file contents at HEAD.
func (s *GitSource) Fetch(ctx context.Context) ([]byte, error) {
	if s.URL == "" {
		return nil, fmt.Errorf("git source URL is required")
	}
	if s.Path == "" {
		return nil, fmt.Errorf("git source path is required")
	}

	opts := &git.CloneOptions{
		URL:   s.URL,
		Depth: s.Depth,
	}
	if s.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(s.Ref)
		opts.SingleBranch = true
	}

	// go-git wants separate filesystems for the storer and the checked out files
	storer := filesystem.NewStorage(memfs.New(), cache.NewObjectLRUDefault())
	repo, err := git.CloneContext(ctx, storer, memfs.New(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to clone repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference: %w", err)
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit object: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}
	file, err := tree.File(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", s.Path, err)
	}
	content, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read file contents: %w", err)
	}

	return []byte(content), nil
}

// Load fetches the file and parses it as a dataset.
func (s *GitSource) Load(ctx context.Context) (*Dataset, error) {
	data, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading dataset from %s:%s: %w", s.URL, s.Path, err)
	}
	return ds, nil
}
