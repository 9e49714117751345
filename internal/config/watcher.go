package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the write bursts editors produce when
// saving a file.
const defaultDebounce = 100 * time.Millisecond

// Watcher reloads settings when the file changes and hands them to a
// callback. The callback runs on the watcher goroutine; callers apply
// the new settings at their next frame boundary.
type Watcher struct {
	path     string
	onChange func(Settings)
	log      *slog.Logger

	fw   *fsnotify.Watcher
	done chan struct{}

	mu      sync.Mutex
	pending *time.Timer
}

// Watch starts watching a settings file. The file's directory is
// watched so the reload survives rename-based saves.
func Watch(path string, onChange func(Settings)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving settings path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		log:      slog.Default(),
		fw:       fw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("settings watcher error", "error", err)
		}
	}
}

// schedule debounces a reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(defaultDebounce, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}
	s, err := Load(w.path)
	if err != nil {
		w.log.Warn("settings reload failed", "path", w.path, "error", err)
		return
	}
	w.onChange(s)
}
