package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tessro/isoshelf/internal/config"
	"github.com/tessro/isoshelf/internal/core"
	"github.com/tessro/isoshelf/internal/engine"
	"github.com/tessro/isoshelf/internal/menu"
	"github.com/tessro/isoshelf/internal/recent"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("iso"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func newTestApp(t *testing.T, paths ...string) *App {
	t.Helper()
	host := menu.NewMemory()
	eng := engine.NewLocal()
	cfg := config.Default()
	list := recent.New(host, eng, cfg, recent.WithFirstID(config.DefaultFirstMenuID))
	for _, p := range paths {
		list.Add(p)
	}
	return &App{List: list, Host: host, Engine: eng}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestEnterSwapsToEntry(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.iso")
	b := touch(t, dir, "b.iso")
	app := newTestApp(t, a, b)
	m := NewModel(app)

	// Cursor starts on b.iso, the newest; move to a.iso.
	m = press(t, m, runeKey("j"), tea.KeyMsg{Type: tea.KeyEnter})

	if got := app.Engine.Current(); got.Type != core.SourceImage || got.Path != a {
		t.Errorf("Current() = %+v, want image %s", got, a)
	}
	if m.lastError != nil {
		t.Errorf("lastError = %v, want nil", m.lastError)
	}
	if !strings.HasPrefix(m.status, "Now using") {
		t.Errorf("status = %q, want swap confirmation", m.status)
	}
}

func TestEnterOnActiveImageReportsAlreadyUsing(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.iso")
	app := newTestApp(t, a)
	app.Engine.SetSource(core.MediaSource{Type: core.SourceImage, Path: a})
	m := NewModel(app)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.HasPrefix(m.status, "Already using") {
		t.Errorf("status = %q, want already-using notice", m.status)
	}
}

func TestClearMissingKey(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.iso")
	gone := filepath.Join(dir, "gone.iso")
	app := newTestApp(t, a, gone)
	m := NewModel(app)

	m = press(t, m, runeKey("x"))

	if got := app.List.Paths(); len(got) != 1 || got[0] != a {
		t.Errorf("Paths() = %v, want [%s]", got, a)
	}
	if !strings.Contains(m.status, "Removed 1") {
		t.Errorf("status = %q", m.status)
	}
}

func TestClearAllNeedsConfirmation(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp(t, touch(t, dir, "a.iso"))
	m := NewModel(app)

	m = press(t, m, runeKey("X"), runeKey("n"))
	if app.List.Len() != 1 {
		t.Fatalf("Len() = %d after cancelling, want 1", app.List.Len())
	}

	press(t, m, runeKey("X"), runeKey("y"))
	if app.List.Len() != 0 {
		t.Errorf("Len() = %d after confirming, want 0", app.List.Len())
	}
	if app.Host.Len() != 0 {
		t.Errorf("menu has %d items after clear, want 0", app.Host.Len())
	}
}

func TestAddThroughInput(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.iso")
	app := newTestApp(t)
	m := NewModel(app)

	m = press(t, m, runeKey("a"))
	if !m.adding {
		t.Fatal("adding = false after pressing a")
	}
	m = press(t, m, runeKey(a), tea.KeyMsg{Type: tea.KeyEnter})

	if m.adding {
		t.Error("adding = true after enter")
	}
	if got := app.List.Paths(); len(got) != 1 || got[0] != a {
		t.Errorf("Paths() = %v, want [%s]", got, a)
	}
}

func TestLockWhileRunningDisablesEntries(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.iso")
	app := newTestApp(t, a)
	app.LockWhileRunning = true
	app.Engine.Start()
	m := NewModel(app)

	if item := app.Host.Find(100); item == nil || item.Enabled() {
		t.Fatalf("entry enabled while engine runs with lock on")
	}

	press(t, m, runeKey("p"))
	if app.Engine.Running() {
		t.Fatal("Running() = true after pause key")
	}
	if item := app.Host.Find(100); !item.Enabled() {
		t.Error("entry disabled after pausing the engine")
	}
}

func TestAskOnBootKeepsEntriesDisabled(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.iso")
	host := menu.NewMemory()
	eng := engine.NewLocal()
	cfg := config.Default()
	cfg.Boot.AskOnBoot = true
	list := recent.New(host, eng, cfg, recent.WithFirstID(config.DefaultFirstMenuID))
	list.Add(a)
	app := &App{List: list, Host: host, Engine: eng, AskOnBoot: true}
	m := NewModel(app)

	if item := app.Host.Find(100); item == nil || item.Enabled() {
		t.Fatal("entry enabled with ask on boot set")
	}

	// Pausing refreshes enabled state; it must not re-enable the entry.
	app.Engine.Start()
	press(t, m, runeKey("p"))
	if item := app.Host.Find(100); item.Enabled() {
		t.Error("entry enabled after display refresh with ask on boot set")
	}
}

func TestViewRendersPanels(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp(t, touch(t, dir, "a.iso"), filepath.Join(dir, "gone.iso"))
	m := NewModel(app)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.(Model).View()

	for _, want := range []string{"Recent Images", "Engine", "Missing", "gone.iso", "Clear image list"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(newTestApp(t))
	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).quitting {
		t.Error("quitting = false after q")
	}
	if cmd == nil {
		t.Error("q returned no command, want tea.Quit")
	}
}
