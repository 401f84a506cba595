package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"/games/../games/a.iso", "/games/a.iso"},
		{"/games//b.iso", "/games/b.iso"},
		{"c.iso", filepath.Join(wd, "c.iso")},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got, want := Normalize("~/isos/a.iso"), filepath.Join(home, "isos", "a.iso"); got != want {
		t.Errorf("Normalize(~/isos/a.iso) = %q, want %q", got, want)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("/games/Rock & Roll.iso"); got != "Rock & Roll.iso" {
		t.Errorf("Filename() = %q", got)
	}
	if got := Filename(""); got != "" {
		t.Errorf("Filename(\"\") = %q, want empty", got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.iso")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if !FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if FileExists(dir) {
		t.Error("FileExists(dir) = true, want false for directory")
	}
	if FileExists(filepath.Join(dir, "missing.iso")) {
		t.Error("FileExists(missing) = true, want false")
	}
	if FileExists("") {
		t.Error("FileExists(\"\") = true, want false")
	}
}

func TestRelativeAndResolve(t *testing.T) {
	base := "/opt/isoshelf"
	tests := []struct {
		path string
		rel  string
	}{
		{"/opt/isoshelf/isos/a.iso", filepath.Join("isos", "a.iso")},
		{"/games/b.iso", "/games/b.iso"},
		{"/opt/isoshelf-other/c.iso", "/opt/isoshelf-other/c.iso"},
	}
	for _, tt := range tests {
		got := Relative(base, tt.path)
		if got != tt.rel {
			t.Errorf("Relative(%q) = %q, want %q", tt.path, got, tt.rel)
		}
		if back := Resolve(base, got); back != tt.path {
			t.Errorf("Resolve(Relative(%q)) = %q, want original", tt.path, back)
		}
	}
	if got := Relative("", "/a/b"); got != "/a/b" {
		t.Errorf("Relative with empty base = %q", got)
	}
	if got := Resolve(base, ""); got != "" {
		t.Errorf("Resolve(empty) = %q, want empty", got)
	}
}
