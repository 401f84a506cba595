package recent

import (
	"fmt"
	"log/slog"

	"github.com/tessro/isoshelf/internal/settings"
)

// SettingsGroup is the settings group holding the list.
const SettingsGroup = "RecentIso"

// Settings is the store the list is loaded from and saved to.
type Settings interface {
	OK() bool
	IsSaving() bool
	Portable() bool
	SetRecordDefaults(record bool)
	DeleteGroup(name string)
	Group(name string) settings.Section
}

// Key returns the settings key of slot i.
func Key(i int) string {
	return fmt.Sprintf("Filename%02d", i)
}

// LoadFrom adds the persisted entries, oldest first, followed by the image
// the engine is using. Nothing happens if the store is unusable. Entries
// already in the list are kept.
func (l *List) LoadFrom(s Settings) {
	if s == nil || !s.OK() {
		return
	}

	s.SetRecordDefaults(false)
	defer s.SetRecordDefaults(true)

	if l.prefs != nil {
		l.SetCapacity(l.prefs.RecentCapacity())
	}
	l.RemoveAll()

	g := s.Group(SettingsGroup)
	for i := 0; i < l.capacity; i++ {
		if p := g.Path(Key(i), ""); p != "" {
			l.Add(p)
		}
	}
	if l.engine != nil {
		if cur := l.engine.Current(); cur.IsImage() {
			l.Add(cur.Path)
		}
	}

	// Every Add may have hit an existing entry, leaving nothing projected.
	if !l.projected() {
		l.Repopulate()
	}
	l.logger.Debug("recent list loaded", slog.Int("entries", len(l.entries)), slog.Int("capacity", l.capacity))
}

// SaveTo writes the list when s is saving, replacing the whole group so no
// stale slots survive a smaller list. When s is loading it delegates to
// LoadFrom.
func (l *List) SaveTo(s Settings) {
	if s == nil {
		return
	}
	if !s.IsSaving() {
		l.LoadFrom(s)
		return
	}

	s.SetRecordDefaults(false)
	defer s.SetRecordDefaults(true)

	s.DeleteGroup(SettingsGroup)
	g := s.Group(SettingsGroup)

	// Only capacity slots are read back; keep the newest.
	start := max(0, len(l.entries)-l.capacity)
	for i, e := range l.entries[start:] {
		g.SetPath(Key(i), e.Path, s.Portable())
	}
	l.logger.Debug("recent list saved", slog.Int("entries", len(l.entries)-start))
}
