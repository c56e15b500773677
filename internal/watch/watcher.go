// Package watch re-runs a callback whenever a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is invoked after the watched file settles.
type ChangeFunc func(ctx context.Context) error

// FileWatcher monitors one file and calls OnChange after each debounced change.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange ChangeFunc
}

// New creates a FileWatcher for path. A zero debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, onChange ChangeFunc) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FileWatcher{path: absPath, debounce: debounce, onChange: onChange}, nil
}

// Path returns the absolute path being watched.
func (fw *FileWatcher) Path() string { return fw.path }

// Run blocks until ctx is canceled. Errors returned by OnChange are logged and
// do not stop the watcher.
func (fw *FileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			slog.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	// Editors often replace files by rename, which drops a direct file watch.
	dir := filepath.Dir(fw.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	slog.Info("Watching for changes", logfields.Path(fw.path))

	name := filepath.Base(fw.path)
	fired := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				slog.Warn("Watched file removed", logfields.File(event.Name))
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("Change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(fw.debounce, func() {
				select {
				case fired <- struct{}{}:
				default:
				}
			})
		case <-fired:
			if err := fw.onChange(ctx); err != nil {
				slog.Error("Change handler failed", logfields.Path(fw.path), logfields.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}
