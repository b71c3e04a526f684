package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/analysis"
	"github.com/fsnotify/fsnotify"
	"go-micro.dev/v4/logger"
)

const watchDebounce = 500 * time.Millisecond

const watchOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watch refreshes catalog when media files or manifest change. It returns after the watcher is set up,
// events are handled in background until ctx is done.
func (m *Manager) Watch(ctx context.Context) error {
	dirs := map[string]struct{}{}
	if m.s.Directory != nil {
		dirs[filepath.Clean(m.s.Directory.Directory())] = struct{}{}
	}
	if m.s.Manifest != "" {
		dirs[filepath.Dir(filepath.Clean(m.s.Manifest))] = struct{}{}
	}
	if len(dirs) == 0 {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher failed: %w", err)
	}
	for dir := range dirs {
		if err = w.Add(dir); err != nil {
			_ = w.Close()
			return fmt.Errorf("watch '%s' failed: %w", dir, err)
		}
	}

	go m.watch(ctx, w)
	return nil
}

func (m *Manager) watch(ctx context.Context, w *fsnotify.Watcher) {
	defer w.Close()

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if m.isRelevant(ev) {
				logger.Debugf("Catalog source changed: %s", ev)
				debounce.Reset(watchDebounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warnf("Watch catalog sources failed: %s", err)

		case <-debounce.C:
			if err := m.Refresh(ctx); err != nil {
				logger.Errorf("Refresh catalog failed: %s", err)
			}
		}
	}
}

func (m *Manager) isRelevant(ev fsnotify.Event) bool {
	if ev.Op&watchOps == 0 {
		return false
	}
	name := filepath.Clean(ev.Name)
	if m.s.Manifest != "" && name == filepath.Clean(m.s.Manifest) {
		return true
	}
	return m.s.Directory != nil &&
		filepath.Dir(name) == filepath.Clean(m.s.Directory.Directory()) &&
		analysis.IsMediaFile(name)
}
