// Package watch reports when listed disc images appear or disappear.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the kind of file change.
type EventType int

const (
	EventAppeared EventType = iota
	EventRemoved
)

func (t EventType) String() string {
	if t == EventRemoved {
		return "removed"
	}
	return "appeared"
}

// Event represents a change to a watched image.
type Event struct {
	Type      EventType
	Path      string
	Timestamp time.Time
}

// Watcher watches the directories of a set of image paths and emits events
// for those paths only.
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan Event
	done   chan struct{}
	once   sync.Once

	mu    sync.Mutex
	paths map[string]bool
	dirs  map[string]bool
}

// NewWatcher creates a watcher with nothing watched.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fs:     fw,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
		paths:  make(map[string]bool),
		dirs:   make(map[string]bool),
	}, nil
}

// Events returns the channel of image events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// SetPaths replaces the watched set. Directories that no longer hold a
// watched path are dropped; directories that cannot be watched, typically
// because they do not exist, are skipped.
func (w *Watcher) SetPaths(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	nextPaths := make(map[string]bool, len(paths))
	nextDirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		nextPaths[p] = true
		nextDirs[filepath.Dir(p)] = true
	}

	for dir := range w.dirs {
		if !nextDirs[dir] {
			_ = w.fs.Remove(dir)
			delete(w.dirs, dir)
		}
	}
	for dir := range nextDirs {
		if w.dirs[dir] {
			continue
		}
		if err := w.fs.Add(dir); err == nil {
			w.dirs[dir] = true
		}
	}
	w.paths = nextPaths
}

// Watched returns the number of directories being watched.
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dirs)
}

// Start forwards events until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	defer close(w.events)
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case _, ok := <-w.fs.Errors:
			// Queue overflows only lose events; keep watching.
			if !ok {
				return nil
			}
		case fe, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			evt, ok := w.translate(fe)
			if !ok {
				continue
			}
			select {
			case w.events <- evt:
			default:
				// Drop event if channel is full
			}
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.once.Do(func() { close(w.done) })
}

// Close stops the watcher and releases its file descriptors. Use it for a
// watcher that was never started.
func (w *Watcher) Close() error {
	w.Stop()
	return w.fs.Close()
}

func (w *Watcher) translate(fe fsnotify.Event) (Event, bool) {
	path := filepath.Clean(fe.Name)

	w.mu.Lock()
	watched := w.paths[path]
	w.mu.Unlock()
	if !watched {
		return Event{}, false
	}

	var typ EventType
	switch {
	case fe.Has(fsnotify.Create):
		typ = EventAppeared
	case fe.Has(fsnotify.Remove), fe.Has(fsnotify.Rename):
		typ = EventRemoved
	default:
		return Event{}, false
	}
	return Event{Type: typ, Path: path, Timestamp: time.Now()}, true
}
