package catalog

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

// ChangeKind classifies a watcher event.
type ChangeKind uint8

const (
	FileCreated ChangeKind = iota
	FileRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case FileCreated:
		return "created"
	case FileRemoved:
		return "removed"
	}
	return "unknown"
}

// Change reports one library mutation observed on disk. Path is relative
// to the library root.
type Change struct {
	Kind ChangeKind
	File FileRecord
}

// Watch runs an fsnotify watcher over the library root until ctx is
// cancelled, calling emit for every book file that appears or disappears.
// The callback is expected to funnel the change into the application's
// serial event queue; the watcher itself never touches shared state.
//
// Directories created at runtime are added to the watch list. Write bursts
// are debounced so a file still being copied in is reported once.
func Watch(ctx context.Context, root string, logger *slog.Logger, emit func(Change)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}
	logger.Info("watcher: started", slog.String("root", root))

	// pending holds paths seen in a write burst, flushed after a quiet period.
	pending := make(map[string]struct{})
	var flushTimer *time.Timer
	var flushCh <-chan time.Time

	scheduleFlush := func(path string) {
		pending[path] = struct{}{}
		if flushTimer == nil {
			flushTimer = time.NewTimer(200 * time.Millisecond)
			flushCh = flushTimer.C
		} else {
			flushTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if flushTimer != nil {
				flushTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-flushCh:
			for path := range pending {
				delete(pending, path)
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					continue
				}
				info, statErr := os.Stat(path)
				if statErr != nil {
					continue
				}
				rec := FileRecord{
					Path: filepath.ToSlash(rel),
					Kind: FileKind(path),
					Size: uint64(info.Size()),
				}
				logger.Debug("watcher: file settled", slog.String("path", rec.Path))
				emit(Change{Kind: FileCreated, File: rec})
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := ev.Name
			if strings.HasPrefix(filepath.Base(name), ".") {
				continue
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", name),
							slog.String("error", addErr.Error()))
					}
					continue
				}
			}

			if FileKind(name) == "" {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				scheduleFlush(name)
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				delete(pending, name)
				rel, relErr := filepath.Rel(root, name)
				if relErr != nil {
					continue
				}
				rec := FileRecord{Path: filepath.ToSlash(rel), Kind: FileKind(name)}
				logger.Debug("watcher: file removed", slog.String("path", rec.Path))
				emit(Change{Kind: FileRemoved, File: rec})
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: error", slog.String("error", err.Error()))
		}
	}
}

// addDirsRecursive adds dir and every non-hidden subdirectory to the
// watcher.
func addDirsRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
