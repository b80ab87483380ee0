// Package watch re-runs an action whenever a source file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher calls an action each time one file is written or re-created.
// The parent directory is watched so that editors which replace the file
// on save are still followed.
type Watcher struct {
	path   string
	run    func() error
	logger *log.Logger
	ready  chan struct{}
}

// New creates a Watcher for path. A nil logger selects log.Default().
func New(path string, run func() error, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		path:   filepath.Clean(path),
		run:    run,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the file system watch is in place.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is done. Errors returned by the action are logged
// and do not stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	close(w.ready)
	w.logger.Debug("watching", "file", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.logger.Info("file changed", "file", event.Name)
				if err := w.run(); err != nil {
					w.logger.Error("rebuild failed", "err", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)
		}
	}
}

// Watch is shorthand for New(path, run, logger).Run(ctx).
func Watch(ctx context.Context, path string, run func() error, logger *log.Logger) error {
	return New(path, run, logger).Run(ctx)
}
