// Package recent keeps the list of recently used disc images, projects it
// into a menu, routes menu selections to image swaps, and persists it to the
// settings store.
//
// Entries are stored oldest first and shown newest first. Any change to
// membership destroys every projected menu item and rebuilds the menu, since
// item identifiers are derived from list positions.
package recent

import (
	"log/slog"

	"github.com/tessro/isoshelf/internal/core"
	"github.com/tessro/isoshelf/internal/logging"
	"github.com/tessro/isoshelf/internal/menu"
	"github.com/tessro/isoshelf/internal/pathutil"
)

// NoSelection is the selection index when nothing is selected.
const NoSelection = -1

// Probe reports whether an image file exists.
type Probe interface {
	Exists(path string) bool
}

// Paths canonicalizes raw paths and derives display names.
type Paths interface {
	Normalize(raw string) string
	Filename(path string) string
}

// Prefs exposes the live configuration values the list depends on.
type Prefs interface {
	RecentCapacity() int
	AskOnBoot() bool
}

// Entry is one recent image. The menu item is owned by the host; the entry
// only keeps a reference to it until the next rebuild.
type Entry struct {
	Path string
	item menu.Item
}

// Projected reports whether the entry currently has a menu item.
func (e Entry) Projected() bool { return e.item != nil }

// List is the recent image list.
type List struct {
	entries  []Entry
	capacity int
	cursel   int

	host    menu.Host
	firstID int
	ids     map[int]int

	separator      menu.Item
	clearSeparator menu.Item
	clearMissing   menu.Item
	clearAll       menu.Item

	engine core.Engine
	prefs  Prefs
	probe  Probe
	paths  Paths
	logger *slog.Logger
}

// Option configures a List.
type Option func(*List)

// WithFirstID projects entry i with identifier firstID+i. menu.AnyID lets
// the host assign identifiers.
func WithFirstID(firstID int) Option {
	return func(l *List) { l.firstID = firstID }
}

// WithProbe replaces the filesystem existence check.
func WithProbe(p Probe) Option {
	return func(l *List) { l.probe = p }
}

// WithPaths replaces path normalization.
func WithPaths(p Paths) Option {
	return func(l *List) { l.paths = p }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) { l.logger = logging.NewComponentLogger(logger, "recent") }
}

// New creates an empty list projecting into host. host may be nil, in which
// case nothing is projected and selections cannot be routed by identifier.
func New(host menu.Host, eng core.Engine, prefs Prefs, opts ...Option) *List {
	l := &List{
		capacity: 1,
		cursel:   NoSelection,
		host:     host,
		firstID:  menu.AnyID,
		ids:      make(map[int]int),
		engine:   eng,
		prefs:    prefs,
		probe:    pathutil.OS{},
		paths:    pathutil.OS{},
		logger:   logging.NewNop(),
	}
	if prefs != nil {
		l.SetCapacity(prefs.RecentCapacity())
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add records raw as the most recent image. An empty path is ignored. A path
// already in the list only becomes the current selection; its position does
// not change.
func (l *List) Add(raw string) {
	if raw == "" {
		return
	}
	normalized := l.paths.Normalize(raw)
	if normalized == "" {
		return
	}

	if i := l.indexOf(normalized); i >= 0 {
		l.cursel = i
		if item := l.entries[i].item; item != nil {
			item.Check()
		}
		return
	}

	l.RemoveAll()
	l.entries = append(l.entries, Entry{Path: normalized})
	l.evict()
	l.Repopulate()

	l.cursel = len(l.entries) - 1
	if item := l.entries[l.cursel].item; item != nil {
		item.Check()
	}
	l.logger.Debug("recent image added", slog.String("path", normalized), slog.Int("entries", len(l.entries)))
}

// Clear removes every entry.
func (l *List) Clear() {
	l.RemoveAll()
	l.entries = nil
	l.cursel = NoSelection
	l.Repopulate()
	l.logger.Info("recent list cleared")
}

// ClearMissing removes entries whose file no longer exists, keeping the
// order of the rest.
func (l *List) ClearMissing() {
	l.RemoveAll()

	selected := l.selectedPath()
	kept := l.entries[:0:0]
	for _, e := range l.entries {
		if l.probe.Exists(e.Path) {
			kept = append(kept, Entry{Path: e.Path})
		}
	}
	removed := len(l.entries) - len(kept)
	l.entries = kept
	l.cursel = l.indexOf(selected)

	l.Repopulate()
	l.logger.Info("missing recent images cleared", slog.Int("removed", removed))
}

// GetMissing returns the entries whose file does not exist.
func (l *List) GetMissing() []Entry {
	var missing []Entry
	for _, e := range l.entries {
		if !l.probe.Exists(e.Path) {
			missing = append(missing, e)
		}
	}
	return missing
}

// SetCapacity changes the maximum number of entries. Existing entries are
// not evicted until the next Add or Trim.
func (l *List) SetCapacity(n int) {
	if n < 1 {
		n = 1
	}
	if n != l.capacity {
		l.logger.Debug("recent capacity changed", slog.Int("from", l.capacity), slog.Int("to", n))
		l.capacity = n
	}
}

// Trim evicts the oldest entries until the list fits its capacity, and
// rebuilds the menu if anything was removed.
func (l *List) Trim() {
	if len(l.entries) <= l.capacity {
		return
	}
	l.RemoveAll()
	l.evict()
	l.Repopulate()
}

// Capacity returns the maximum number of entries.
func (l *List) Capacity() int { return l.capacity }

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Entries returns the entries, oldest first.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Paths returns the entry paths, oldest first.
func (l *List) Paths() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Path
	}
	return out
}

// Selected returns the index of the current selection, or NoSelection.
func (l *List) Selected() int { return l.cursel }

// Exists reports whether the entry's file exists, using the list's probe.
func (l *List) Exists(e Entry) bool { return l.probe.Exists(e.Path) }

// evict drops entries from the front until the list fits. The selection
// index shifts with the remaining entries.
func (l *List) evict() {
	n := len(l.entries) - l.capacity
	if n <= 0 {
		return
	}
	for _, e := range l.entries[:n] {
		l.logger.Debug("recent image evicted", slog.String("path", e.Path))
	}
	l.entries = append(l.entries[:0:0], l.entries[n:]...)
	if l.cursel != NoSelection {
		l.cursel -= n
		if l.cursel < 0 {
			l.cursel = NoSelection
		}
	}
}

func (l *List) indexOf(path string) int {
	if path == "" {
		return -1
	}
	for i, e := range l.entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}

func (l *List) selectedPath() string {
	if l.cursel < 0 || l.cursel >= len(l.entries) {
		return ""
	}
	return l.entries[l.cursel].Path
}
