package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "regions.yml", twoRegionsYAML)

	c, err := New(context.Background(), PathSource(dir), Options{Logger: zap.NewNop()})
	require.NoError(t, err)
	require.Len(t, c.Regions(), 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx, dir, 20*time.Millisecond) }()

	// the watcher registers asynchronously; keep writing until it notices
	assert.Eventually(t, func() bool {
		writeFile(t, dir, "more.yaml", oneRegionYAML)
		return len(c.Regions()) == 3
	}, 5*time.Second, 50*time.Millisecond)

	// ignored extension
	writeFile(t, dir, "notes.txt", "hello")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingDir(t *testing.T) {
	c := builtinCore(t)
	err := c.Watch(context.Background(), "/nonexistent/dataset", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}
