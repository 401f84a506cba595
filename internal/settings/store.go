// Package settings stores UI state as groups of string keys in a TOML file.
//
// A Store is either loading or saving. The same code path can run in both
// modes: while loading, reads return persisted values and absent keys may be
// recorded with their defaults; while saving, writes replace the values that
// Flush persists.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/tessro/isoshelf/internal/pathutil"
)

// Mode selects whether a Store is being read from or written to.
type Mode int

const (
	Loading Mode = iota
	Saving
)

func (m Mode) String() string {
	if m == Saving {
		return "saving"
	}
	return "loading"
}

// Options configures a Store.
type Options struct {
	// BaseDir is the directory portable paths are relative to.
	BaseDir string
	// Portable stores paths inside BaseDir relative to it.
	Portable bool
}

// Section is a named group of keys within a Store.
type Section interface {
	Name() string
	String(key, def string) string
	SetString(key, value string)
	Path(key, def string) string
	SetPath(key, value string, relative bool)
	Keys() []string
}

// Store is a file-backed settings store.
type Store struct {
	path           string
	opts           Options
	mode           Mode
	ok             bool
	recordDefaults bool
	dirty          bool
	groups         map[string]map[string]string
}

// Open reads the settings file at path. A missing file yields an empty,
// usable store. A file that cannot be parsed yields an unusable store and
// the parse error.
func Open(path string, opts Options) (*Store, error) {
	s := &Store{
		path:           path,
		opts:           opts,
		recordDefaults: true,
		groups:         make(map[string]map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.ok = true
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if _, err := toml.Decode(string(data), &s.groups); err != nil {
		s.groups = make(map[string]map[string]string)
		return s, fmt.Errorf("failed to parse settings file: %w", err)
	}
	s.ok = true
	return s, nil
}

// OK reports whether the store was read successfully.
func (s *Store) OK() bool { return s != nil && s.ok }

// Path returns the settings file location.
func (s *Store) Path() string { return s.path }

// Mode returns the current mode.
func (s *Store) Mode() Mode { return s.mode }

// SetMode switches between loading and saving.
func (s *Store) SetMode(m Mode) { s.mode = m }

// IsSaving reports whether the store is in saving mode.
func (s *Store) IsSaving() bool { return s.mode == Saving }

// Portable reports whether paths are written relative to the base directory.
func (s *Store) Portable() bool { return s.opts.Portable }

// SetRecordDefaults controls whether reading an absent key writes its
// default back into the store.
func (s *Store) SetRecordDefaults(record bool) { s.recordDefaults = record }

// RecordDefaults reports whether defaults are being recorded.
func (s *Store) RecordDefaults() bool { return s.recordDefaults }

// DeleteGroup removes a group and all of its keys.
func (s *Store) DeleteGroup(name string) {
	if _, ok := s.groups[name]; ok {
		delete(s.groups, name)
		s.dirty = true
	}
}

// HasGroup reports whether a group exists.
func (s *Store) HasGroup(name string) bool {
	_, ok := s.groups[name]
	return ok
}

// Group returns the named section. The group is created lazily on first write.
func (s *Store) Group(name string) Section {
	return &group{store: s, name: name}
}

// Dirty reports whether there are unflushed changes.
func (s *Store) Dirty() bool { return s.dirty }

// Flush writes the store to disk atomically.
func (s *Store) Flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := toml.NewEncoder(tmp).Encode(s.groups); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	s.dirty = false
	s.ok = true
	return nil
}

func (s *Store) get(groupName, key string) (string, bool) {
	g, ok := s.groups[groupName]
	if !ok {
		return "", false
	}
	v, ok := g[key]
	return v, ok
}

func (s *Store) set(groupName, key, value string) {
	g, ok := s.groups[groupName]
	if !ok {
		g = make(map[string]string)
		s.groups[groupName] = g
	}
	if cur, ok := g[key]; ok && cur == value {
		return
	}
	g[key] = value
	s.dirty = true
}

type group struct {
	store *Store
	name  string
}

func (g *group) Name() string { return g.name }

func (g *group) String(key, def string) string {
	if v, ok := g.store.get(g.name, key); ok {
		return v
	}
	if g.store.recordDefaults {
		g.store.set(g.name, key, def)
	}
	return def
}

func (g *group) SetString(key, value string) {
	g.store.set(g.name, key, value)
}

// Path reads a path value, resolving relative values against the base
// directory regardless of the portable flag.
func (g *group) Path(key, def string) string {
	return pathutil.Resolve(g.store.opts.BaseDir, g.String(key, def))
}

func (g *group) SetPath(key, value string, relative bool) {
	if relative {
		value = pathutil.Relative(g.store.opts.BaseDir, value)
	}
	g.store.set(g.name, key, value)
}

func (g *group) Keys() []string {
	m := g.store.groups[g.name]
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
