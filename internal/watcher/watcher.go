package watcher

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"explorer/internal/constants"
	apperrors "explorer/internal/errors"
)

// Change describes a burst of filesystem events in the watched directory
type Change struct {
	Dir   string
	Names []string // immediate children that changed, sorted
	// DirRemoved is set when the watched directory itself was removed or renamed.
	DirRemoved bool
}

// Watcher reports changes to the immediate children of a single directory.
// Events are coalesced for Debounce before onChange is called.
type Watcher struct {
	Debounce time.Duration

	fsw        *fsnotify.Watcher
	onChange   func(Change)
	debugPrint func(format string, args ...interface{})

	mu         sync.Mutex
	dir        string
	pending    map[string]struct{}
	dirRemoved bool
	timer      *time.Timer
	generation uint64
	stopped    bool
	done       chan struct{}
}

// New creates a watcher. onChange is called from a background goroutine;
// UI updates must be marshalled by the caller.
func New(onChange func(Change), debugPrint func(format string, args ...interface{})) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.NewWatcherError("create", "", "cannot create watcher", err)
	}
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	w := &Watcher{
		Debounce:   constants.WatcherDebounce,
		fsw:        fsw,
		onChange:   onChange,
		debugPrint: debugPrint,
		pending:    make(map[string]struct{}),
		done:       make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch switches the watcher to dir. Pending events for the previous
// directory are discarded.
func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return apperrors.NewWatcherError("watch", dir, "watcher stopped", nil)
	}
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsw.Remove(w.dir); err != nil {
			w.debugPrint("watcher: remove %s: %v", w.dir, err)
		}
	}
	w.resetLocked()
	w.dir = ""
	if err := w.fsw.Add(dir); err != nil {
		return apperrors.NewWatcherError("watch", dir, "cannot watch directory", err)
	}
	w.dir = dir
	w.debugPrint("watcher: watching %s", dir)
	return nil
}

// Dir returns the directory currently watched, or "" when none.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Stop releases the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	w.resetLocked()
	w.dir = ""
	w.mu.Unlock()

	if err := w.fsw.Close(); err != nil {
		w.debugPrint("watcher: close: %v", err)
	}
	<-w.done
}

func (w *Watcher) resetLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = make(map[string]struct{})
	w.dirRemoved = false
	w.generation++
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.debugPrint("watcher: error: %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	name := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dir == "" {
		return
	}
	switch {
	case name == w.dir:
		if !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
			return
		}
		w.dirRemoved = true
	case filepath.Dir(name) == w.dir:
		w.pending[filepath.Base(name)] = struct{}{}
	default:
		return
	}
	w.debugPrint("watcher: %s", ev)

	if w.timer != nil {
		w.timer.Stop()
	}
	gen := w.generation
	w.timer = time.AfterFunc(w.Debounce, func() { w.flush(gen) })
}

func (w *Watcher) flush(gen uint64) {
	w.mu.Lock()
	if gen != w.generation || w.stopped {
		w.mu.Unlock()
		return
	}
	change := Change{Dir: w.dir, DirRemoved: w.dirRemoved}
	for name := range w.pending {
		change.Names = append(change.Names, name)
	}
	sort.Strings(change.Names)
	w.pending = make(map[string]struct{})
	w.dirRemoved = false
	w.timer = nil
	w.mu.Unlock()

	if len(change.Names) == 0 && !change.DirRemoved {
		return
	}
	w.debugPrint("watcher: %s changed (%d entries)", change.Dir, len(change.Names))
	if w.onChange != nil {
		w.onChange(change)
	}
}
