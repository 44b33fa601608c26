package world

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to a level file. Bursts of events (editors often
// write, chmod and rename in one save) collapse into one notification.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	changes  chan struct{}
	log      *slog.Logger
}

// WatchLevel watches path until ctx is done. The parent directory is watched
// so that atomic rename-on-save keeps working.
func WatchLevel(ctx context.Context, path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fw,
		changes:  make(chan struct{}, 1),
		log:      slog.With("component", "watcher", "path", abs),
	}
	go w.run(ctx)
	return w, nil
}

// Changes delivers at most one pending notification at a time.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *Watcher) run(ctx context.Context) {
	defer w.fs.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("level watch error", "error", err)
		case <-timer.C:
			w.log.Debug("level changed")
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}
