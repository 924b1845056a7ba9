// Package watcher reloads plan files when they change on disk, so an open
// plan follows external edits.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PlanWatcher watches a single plan file and triggers a callback after
// writes, debounced so editors that write in bursts cause one reload.
type PlanWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
}

// New creates a watcher for the given plan file. The callback runs on the
// watcher goroutine after the debounce interval.
func New(path string, debounce time.Duration, callback func(string)) (*PlanWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory rather than the file: editors that replace the
	// file on save would otherwise drop the watch.
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	pw := &PlanWatcher{
		watcher:  fsWatcher,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}
	go pw.run()
	return pw, nil
}

func (pw *PlanWatcher) run() {
	for {
		select {
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != pw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pw.scheduleReload()
			}

		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}

// scheduleReload restarts the debounce timer
func (pw *PlanWatcher) scheduleReload() {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.timer = time.AfterFunc(pw.debounce, func() {
		pw.callback(pw.path)
	})
}

// Close stops watching
func (pw *PlanWatcher) Close() error {
	pw.mu.Lock()
	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.mu.Unlock()
	return pw.watcher.Close()
}
