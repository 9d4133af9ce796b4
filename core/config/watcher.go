package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/genesis-engine/genesis-backend/core/storage"
)

// watchDebounce is how long edits settle before a reload fires. Editors
// commonly emit several write events per save.
const watchDebounce = 200 * time.Millisecond

// Watch starts hot reload of the layered config files. A change to any
// layer reloads the full stack after the debounce interval; reloads that
// fail keep the previous snapshot. Watching stops when ctx is cancelled
// or the manager is closed.
func (m *Manager) Watch(ctx context.Context) error {
	if !m.watching.CompareAndSwap(false, true) {
		return nil
	}

	project := storage.ResolveProjectDirs(".")
	files := []string{
		project.Config,
		filepath.Join(project.Local, "config.yaml"),
		m.dirs.ConfigDir("config.yaml"),
	}

	w, err := newFileWatcher(files, watchDebounce)
	if err != nil {
		m.watching.Store(false)
		return err
	}

	go w.run(ctx, m.stopWatch, func() {
		// Broken intermediate file states are normal while editing; the
		// next event retries.
		_ = m.Load()
	})

	return nil
}

type fileWatcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// newFileWatcher watches the parent directories of the given files so
// that creation of not-yet-existing files is observed. Directories that
// do not exist are skipped.
func newFileWatcher(files []string, debounce time.Duration) (*fileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &fileWatcher{
		fsw:      fsw,
		files:    make(map[string]struct{}, len(files)),
		debounce: debounce,
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		_ = fsw.Add(dir)
	}

	return w, nil
}

func (w *fileWatcher) run(ctx context.Context, stop <-chan struct{}, onChange func()) {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event, onChange)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *fileWatcher) handleEvent(event fsnotify.Event, onChange func()) {
	if !w.watched(event.Name) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}
	w.schedule(onChange)
}

func (w *fileWatcher) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

func (w *fileWatcher) schedule(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, onChange)
}

func (w *fileWatcher) close() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.fsw.Close()
}
