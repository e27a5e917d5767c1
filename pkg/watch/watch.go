// Package watch evaluates file events live: it watches a directory
// tree with fsnotify and feeds every settled write to the matcher.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dotskills/skillhook/pkg/hookio"
	"github.com/dotskills/skillhook/pkg/logging"
	"github.com/dotskills/skillhook/pkg/types"
)

// skipDirs are directory names never worth watching.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	".idea":        true,
	"dist":         true,
	"build":        true,
}

// Handler receives one debounced file event.
type Handler func(event types.FileEvent)

// Watcher debounces filesystem writes under a root directory and
// hands them to a Handler as matcher file events with content.
type Watcher struct {
	root     string
	debounce time.Duration
	handler  Handler

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher for the given root. Paths handed to the
// handler are relative to root, matching how pathPatterns are written.
func New(root string, debounce time.Duration, handler Handler) *Watcher {
	return &Watcher{
		root:     root,
		debounce: debounce,
		handler:  handler,
		timers:   make(map[string]*time.Timer),
	}
}

// Run watches until the context is cancelled. Subdirectories created
// while running are added to the watch set.
func (w *Watcher) Run(ctx context.Context) error {
	logger := logging.GetLogger("watch")

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := w.addTree(fsw, w.root); err != nil {
		return err
	}
	logger.Info().Str("root", w.root).Msg("Watching for file changes")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.dispatch(fsw, event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

func (w *Watcher) dispatch(fsw *fsnotify.Watcher, event fsnotify.Event) {
	logger := logging.GetLogger("watch")

	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		if event.Op&fsnotify.Create != 0 {
			if err := w.addTree(fsw, event.Name); err != nil {
				logger.Warn().Err(err).Str("dir", event.Name).Msg("Cannot watch new directory")
			}
		}
		return
	}

	// Editors fire bursts of writes; only the settled state matters.
	path := event.Name
	w.mu.Lock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.emit(path)
	})
	w.mu.Unlock()
}

func (w *Watcher) emit(path string) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}

	ev := types.FileEvent{Path: filepath.ToSlash(rel)}
	if content, err := hookio.ReadFileCapped(path); err == nil {
		ev = ev.WithContent(content)
	}
	w.handler(ev)
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
