// Package pathutil canonicalizes image paths and probes the filesystem for
// their existence.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Normalize canonicalizes a raw path into the key used to compare recent
// entries: home expansion, absolute, cleaned. Empty input stays empty.
func Normalize(raw string) string {
	p := strings.TrimSpace(raw)
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return filepath.Clean(p)
}

// Filename returns the display name of a full path.
func Filename(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// FileExists returns true if path names an existing regular file.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Relative returns path relative to base when it lies inside base, otherwise
// path unchanged.
func Relative(base, path string) string {
	if base == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Resolve turns a stored path back into an absolute path, resolving relative
// values against base.
func Resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

// OS implements the filesystem collaborators on top of the real filesystem.
type OS struct{}

// Exists reports whether path names an existing regular file.
func (OS) Exists(path string) bool { return FileExists(path) }

// Normalize canonicalizes raw.
func (OS) Normalize(raw string) string { return Normalize(raw) }

// Filename returns the display name of path.
func (OS) Filename(path string) string { return Filename(path) }
