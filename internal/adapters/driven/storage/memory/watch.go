package memory

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Replace swaps the catalog contents with those of other.
func (c *Catalog) Replace(other *Catalog) {
	other.mu.RLock()
	products, categories := other.products, other.categories
	other.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.categories = categories
}

// Watch reloads the catalog from path whenever the file is created or
// written, until ctx is cancelled. onReload, if set, runs after each
// successful reload. A fixture that fails to parse leaves the current
// contents in place.
//
// The parent directory is watched so editors that save by rename are seen.
func (c *Catalog) Watch(ctx context.Context, path string, onReload func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve catalog file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				fresh, err := LoadCatalogFile(abs)
				if err != nil {
					logger.Warn("catalog reload: %v", err)
					continue
				}
				c.Replace(fresh)
				logger.Debug("catalog reloaded from %s", abs)
				if onReload != nil {
					onReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("catalog watcher: %v", err)
			}
		}
	}()

	return nil
}
