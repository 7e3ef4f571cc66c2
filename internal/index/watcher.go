package index

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch rebuilds the tag index whenever a collection changes, until ctx is
// cancelled. Bursts of file events are debounced into a single rebuild, and
// a rebuild whose rendered output is unchanged skips the write.
//
// New directories created under a collection at runtime are added to the
// watch list automatically. A failing rebuild is logged and the watch
// continues; only watcher setup and the initial build are fatal.
func Watch(ctx context.Context, b *Builder, root string, debounce time.Duration, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the root itself so collections created later are noticed, then
	// every existing collection tree. Watches are registered before the
	// initial build; changes during the build window still produce events.
	if err := w.Add(root); err != nil {
		return err
	}
	for _, coll := range b.cfg.Collections {
		dir := filepath.Join(root, coll)
		if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
			continue
		}
		if err := addDirsRecursive(w, dir); err != nil {
			return err
		}
	}

	s, err := b.Build(ctx)
	if err != nil {
		return err
	}
	last := s.Checksum

	logger.Info("watch: started",
		slog.String("root", root),
		slog.String("debounce", debounce.String()))

	// rebuildTimer debounces change events into one rebuild.
	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time

	scheduleRebuild := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(debounce)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			logger.Info("watch: stopped")
			return nil

		case <-rebuildCh:
			s, err := b.BuildIfChanged(ctx, last)
			if err != nil {
				logger.Error("watch: rebuild failed", slog.String("error", err.Error()))
				continue
			}
			if s.Written {
				last = s.Checksum
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			rel, ok := b.relevantPath(root, ev.Name)
			if !ok {
				continue
			}

			// New directories under a collection join the watch list so
			// files created inside them are seen.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watch: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watch: watching new dir", slog.String("path", ev.Name))
					}
				}
			}

			logger.Debug("watch: change", slog.String("path", rel), slog.String("op", ev.Op.String()))
			scheduleRebuild()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch: error", slog.String("error", watchErr.Error()))
		}
	}
}

// relevantPath reports whether abs refers to something inside one of the
// builder's collections, or to a collection directory itself, and returns
// its slash-relative form. Events for the output file and for temp files at
// the root do not qualify, so the builder's own writes never retrigger it.
func (b *Builder) relevantPath(root, abs string) (string, bool) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	first := rel
	if i := strings.Index(rel, "/"); i >= 0 {
		first = rel[:i]
	}
	for _, coll := range b.cfg.Collections {
		if first == coll {
			return rel, true
		}
	}
	return "", false
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
