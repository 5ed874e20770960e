package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/swaramap/swaramap/pkg/dataset"
)

// DefaultDebounce is how long Watch waits for writes to settle before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Watch reloads the catalog whenever a YAML file below dir changes.
// It blocks until ctx is done. Reload errors are logged and the previous
// dataset stays active. Directories created after Watch starts are not watched.
func (c *Core) Watch(ctx context.Context, dir string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	c.logger.Info("watching dataset", zap.String("dir", dir))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			c.logger.Debug("dataset file changed",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()))
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			if err := c.Reload(ctx); err != nil {
				c.logger.Warn("reload failed, keeping previous dataset", zap.Error(err))
			}
		}
	}
}

// relevant reports whether event touches a YAML dataset file or the ignore file.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".yml", ".yaml":
		return true
	}
	return base == dataset.IgnoreFile
}
