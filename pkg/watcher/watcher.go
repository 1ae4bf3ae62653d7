// Package watcher re-triggers analysis when mesh files change on disk,
// so exported estimates can track a model that is still being edited in
// a CAD tool. Change events are debounced because CAD exporters tend to
// write a file in several bursts.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files and invokes a callback with the path
// of any file that changed, after the debounce interval has passed
// without further writes.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	onChange func(path string)

	mu      sync.Mutex
	watched map[string]bool
	timers  map[string]*time.Timer
}

// New creates a watcher that calls onChange for every settled change.
func New(debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fs:       fs,
		debounce: debounce,
		onChange: onChange,
		watched:  make(map[string]bool),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Add starts watching the given files.
func (w *Watcher) Add(paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		if err := w.fs.Add(abs); err != nil {
			return fmt.Errorf("failed to watch %s: %w", abs, err)
		}
		w.watched[abs] = true
	}

	return nil
}

// Start begins delivering change events. It returns immediately; the
// event loop runs until Close is called.
func (w *Watcher) Start(errs func(error)) {
	go func() {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					w.schedule(event.Name)
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				if errs != nil {
					errs(err)
				}
			}
		}
	}()
}

// schedule arms (or re-arms) the debounce timer for a changed file.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.watched[path] {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.onChange(path)
	})
}

// Close stops the watcher and its event loop.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
