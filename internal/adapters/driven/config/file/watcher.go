package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/lookup/internal/logger"
)

// DefaultWatchDebounce coalesces bursts of writes (editors often write twice).
const DefaultWatchDebounce = 100 * time.Millisecond

// Watcher reports changes to a single config file.
// The parent directory is watched so atomic rename-on-save is seen.
type Watcher struct {
	path     string
	debounce time.Duration
	changes  chan struct{}
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultWatchDebounce,
		changes:  make(chan struct{}, 1),
	}
}

// Changes delivers one value per settled burst of writes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	logger.Debug("watching config file %s", w.path)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}
