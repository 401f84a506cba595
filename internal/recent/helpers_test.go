package recent

import (
	"context"
	"path"

	"github.com/tessro/isoshelf/internal/core"
	"github.com/tessro/isoshelf/internal/menu"
)

type fakePrefs struct {
	capacity  int
	askOnBoot bool
}

func (p *fakePrefs) RecentCapacity() int { return p.capacity }
func (p *fakePrefs) AskOnBoot() bool     { return p.askOnBoot }

// fakeFS treats every path as already normalized and reports existence from
// a set.
type fakeFS struct {
	present map[string]bool
}

func newFakeFS(present ...string) *fakeFS {
	fs := &fakeFS{present: make(map[string]bool)}
	for _, p := range present {
		fs.present[p] = true
	}
	return fs
}

func (f *fakeFS) Exists(p string) bool        { return f.present[p] }
func (f *fakeFS) Normalize(raw string) string { return path.Clean(raw) }
func (f *fakeFS) Filename(p string) string    { return path.Base(p) }

type fakeEngine struct {
	running  bool
	source   core.MediaSource
	swapErr  error
	calls    []string
	swapped  []string
	messages []string
}

func (e *fakeEngine) Running() bool { return e.running }

func (e *fakeEngine) Suspend(context.Context) error {
	e.calls = append(e.calls, "suspend")
	e.running = false
	return nil
}

func (e *fakeEngine) Resume(context.Context) error {
	e.calls = append(e.calls, "resume")
	e.running = true
	return nil
}

func (e *fakeEngine) Current() core.MediaSource { return e.source }

func (e *fakeEngine) SwapImage(_ context.Context, p, message string) error {
	e.calls = append(e.calls, "swap")
	e.swapped = append(e.swapped, p)
	e.messages = append(e.messages, message)
	if e.swapErr != nil {
		return e.swapErr
	}
	e.source = core.MediaSource{Type: core.SourceImage, Path: p}
	return nil
}

type fixture struct {
	list   *List
	host   *menu.Memory
	fs     *fakeFS
	engine *fakeEngine
	prefs  *fakePrefs
}

func newFixture(capacity int, present ...string) *fixture {
	f := &fixture{
		host:   menu.NewMemory(),
		fs:     newFakeFS(present...),
		engine: &fakeEngine{running: true},
		prefs:  &fakePrefs{capacity: capacity},
	}
	f.list = New(f.host, f.engine, f.prefs,
		WithFirstID(100),
		WithProbe(f.fs),
		WithPaths(f.fs),
	)
	return f
}

// entryLabels returns the labels of projected radio items in menu order.
func entryLabels(m *menu.Memory) []string {
	var labels []string
	for _, it := range m.Items() {
		if it.Kind() == menu.KindRadio {
			labels = append(labels, it.Label())
		}
	}
	return labels
}
