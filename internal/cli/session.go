package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/tessro/isoshelf/internal/config"
	"github.com/tessro/isoshelf/internal/engine"
	apperr "github.com/tessro/isoshelf/internal/errors"
	"github.com/tessro/isoshelf/internal/logging"
	"github.com/tessro/isoshelf/internal/menu"
	"github.com/tessro/isoshelf/internal/pathutil"
	"github.com/tessro/isoshelf/internal/recent"
	"github.com/tessro/isoshelf/internal/settings"
)

// session is the state shared by commands that touch the recent list: the
// settings store, the engine and the list projected into an in-memory menu.
type session struct {
	cfg    *config.Config
	store  *settings.Store
	host   *menu.Memory
	engine *engine.Local
	list   *recent.List
	logger *slog.Logger
}

// openSession loads the engine and recent list from the settings file. An
// unreadable settings file still yields a session with an empty list; it
// cannot be saved.
func openSession(c *config.Config, log *slog.Logger) (*session, error) {
	if c == nil {
		c = config.Default()
	}
	if log == nil {
		log = logging.NewNop()
	}

	store, err := settings.Open(c.Paths.Settings, settings.Options{
		BaseDir:  c.Paths.AppDir,
		Portable: c.Paths.Portable,
	})
	if store == nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrSettingsUnavailable, err)
	}
	if err != nil {
		log.Warn("settings file unusable, starting empty",
			slog.String("path", c.Paths.Settings),
			logging.Error(err))
	}

	eng := engine.NewLocal(engine.WithLogger(log))
	host := menu.NewMemory()
	list := recent.New(host, eng, c,
		recent.WithFirstID(c.Recent.FirstMenuID),
		recent.WithLogger(log))

	if store.OK() {
		eng.LoadFrom(store.Group(engine.SettingsGroup))
	}
	list.LoadFrom(store)

	return &session{
		cfg:    c,
		store:  store,
		host:   host,
		engine: eng,
		list:   list,
		logger: log,
	}, nil
}

// save writes the list and engine state back to the settings file. A store
// that could not be read is never overwritten.
func (s *session) save() error {
	if !s.store.OK() {
		return apperr.WithSuggestion(
			fmt.Errorf("%w: %s could not be read", apperr.ErrSettingsUnavailable, s.store.Path()),
			"Fix or remove the settings file, then try again")
	}

	s.store.SetMode(settings.Saving)
	defer s.store.SetMode(settings.Loading)

	s.list.SaveTo(s.store)
	s.engine.SaveTo(s.store.Group(engine.SettingsGroup), s.store.Portable())

	if err := s.store.Flush(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.logger.Debug("settings saved", slog.String("path", s.store.Path()), slog.Int("entries", s.list.Len()))
	return nil
}

// entryView is how a recent entry is reported to the user. Position 1 is the
// newest entry, matching the menu order.
type entryView struct {
	Position int       `json:"position"`
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	Exists   bool      `json:"exists"`
	Active   bool      `json:"active"`
	Selected bool      `json:"selected"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified,omitzero"`
}

// views lists the entries newest first. Stat failures other than a missing
// file are collected rather than aborting the listing.
func (s *session) views() apperr.PartialResult[[]entryView] {
	entries := s.list.Entries()
	res := apperr.PartialResult[[]entryView]{Data: make([]entryView, 0, len(entries))}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		v := entryView{
			Position: len(entries) - i,
			Path:     e.Path,
			Name:     pathutil.Filename(e.Path),
			Exists:   s.list.Exists(e),
			Active:   s.list.IsActive(e.Path),
			Selected: s.list.Selected() == i,
			Size:     -1,
		}
		info, err := os.Stat(e.Path)
		switch {
		case err == nil:
			v.Size = info.Size()
			v.Modified = info.ModTime()
		case !errors.Is(err, fs.ErrNotExist):
			res.AddError(err)
		}
		res.Data = append(res.Data, v)
	}
	return res
}

// resolve maps a 1-based newest-first position, or a path already in the
// list, to a list index.
func (s *session) resolve(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		idx := s.list.Len() - n
		if n < 1 || idx < 0 {
			return 0, fmt.Errorf("entry %d: %w", n, apperr.ErrNoSuchEntry)
		}
		return idx, nil
	}

	want := pathutil.Normalize(arg)
	for i, p := range s.list.Paths() {
		if p == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: %w", arg, apperr.ErrNoSuchEntry)
}

// add records path and returns its list index. It reports false when the
// path normalizes to nothing and the list is left unchanged.
func (s *session) add(path string) (int, bool) {
	want := pathutil.Normalize(path)
	if want == "" {
		return 0, false
	}
	s.list.Add(path)
	for i, p := range s.list.Paths() {
		if p == want {
			return i, true
		}
	}
	return 0, false
}
