package recent

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tessro/isoshelf/internal/core"
	apperr "github.com/tessro/isoshelf/internal/errors"
)

func TestRouteUnknownIDPassesThrough(t *testing.T) {
	f := newFixture(3, "/a.iso")
	f.list.Add("/a.iso")

	for _, id := range []int{99, IDClear, IDClearMissing} {
		handled, err := f.list.Route(context.Background(), id)
		if handled || err != nil {
			t.Errorf("Route(%d) = %v, %v, want false, nil", id, handled, err)
		}
	}
	if len(f.engine.calls) != 0 {
		t.Errorf("engine calls = %v, want none", f.engine.calls)
	}
}

func TestRouteActiveImageIsSuppressed(t *testing.T) {
	f := newFixture(3, "/a.iso", "/b.iso")
	f.list.Add("/a.iso")
	f.list.Add("/b.iso")
	f.engine.source = core.MediaSource{Type: core.SourceImage, Path: "/a.iso"}
	f.list.Add("/b.iso")
	sel := f.list.Selected()

	handled, err := f.list.Route(context.Background(), 100)
	if handled || err != nil {
		t.Errorf("Route() = %v, %v, want false, nil", handled, err)
	}
	if len(f.engine.calls) != 0 {
		t.Errorf("engine calls = %v, want no pause, swap or resume", f.engine.calls)
	}
	if f.list.Selected() != sel {
		t.Errorf("Selected() = %d, want unchanged %d", f.list.Selected(), sel)
	}
}

func TestRouteSameImageFromDiscIsNotSuppressed(t *testing.T) {
	f := newFixture(3, "/a.iso")
	f.list.Add("/a.iso")
	f.engine.source = core.MediaSource{Type: core.SourceDisc, Path: "/a.iso"}

	handled, err := f.list.Route(context.Background(), 100)
	if !handled || err != nil {
		t.Fatalf("Route() = %v, %v, want true, nil", handled, err)
	}
}

func TestRouteSwapsDifferentEntry(t *testing.T) {
	f := newFixture(3, "/a.iso", "/b.iso")
	f.list.Add("/a.iso")
	f.list.Add("/b.iso")
	f.engine.source = core.MediaSource{Type: core.SourceImage, Path: "/b.iso"}

	handled, err := f.list.Route(context.Background(), 100)
	if !handled || err != nil {
		t.Fatalf("Route() = %v, %v, want true, nil", handled, err)
	}

	if want := []string{"suspend", "swap", "resume"}; !reflect.DeepEqual(f.engine.calls, want) {
		t.Errorf("engine calls = %v, want %v", f.engine.calls, want)
	}
	if !reflect.DeepEqual(f.engine.swapped, []string{"/a.iso"}) {
		t.Errorf("swapped = %v, want [/a.iso]", f.engine.swapped)
	}
	if f.engine.messages[0] != core.ImageChangedMessage {
		t.Errorf("message = %q, want image changed message", f.engine.messages[0])
	}
	if f.list.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", f.list.Selected())
	}
	if checked := f.host.Checked(); checked == nil || checked.Help() != "/a.iso" {
		t.Errorf("checked item = %v, want /a.iso", checked)
	}
	if got, want := f.list.Paths(), []string{"/a.iso", "/b.iso"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, selection must not reorder", got)
	}
}

func TestRouteSwapFailureStillResumes(t *testing.T) {
	f := newFixture(3, "/a.iso")
	f.list.Add("/a.iso")
	f.engine.swapErr = apperr.ErrImageNotFound

	handled, err := f.list.Route(context.Background(), 100)
	if !handled {
		t.Error("Route() handled = false, want true")
	}
	if !errors.Is(err, apperr.ErrImageNotFound) {
		t.Errorf("Route() error = %v, want swap error", err)
	}
	if want := []string{"suspend", "swap", "resume"}; !reflect.DeepEqual(f.engine.calls, want) {
		t.Errorf("engine calls = %v, want %v", f.engine.calls, want)
	}
	if !f.engine.running {
		t.Error("engine should be running again after a failed swap")
	}
}

func TestRouteWhileEngineStopped(t *testing.T) {
	f := newFixture(3, "/a.iso")
	f.list.Add("/a.iso")
	f.engine.running = false

	handled, err := f.list.Route(context.Background(), 100)
	if !handled || err != nil {
		t.Fatalf("Route() = %v, %v, want true, nil", handled, err)
	}
	if want := []string{"swap"}; !reflect.DeepEqual(f.engine.calls, want) {
		t.Errorf("engine calls = %v, want %v", f.engine.calls, want)
	}
	if f.engine.running {
		t.Error("a stopped engine should stay stopped")
	}
}

type refusingEngine struct{ fakeEngine }

func (e *refusingEngine) Suspend(context.Context) error {
	e.calls = append(e.calls, "suspend")
	return errors.New("busy")
}

func TestRouteFailsClosedWhenPauseRefused(t *testing.T) {
	fs := newFakeFS("/a.iso")
	eng := &refusingEngine{fakeEngine{running: true}}
	l := New(nil, eng, &fakePrefs{capacity: 3}, WithProbe(fs), WithPaths(fs))
	l.Add("/a.iso")

	handled, err := l.SelectIndex(context.Background(), 0)
	if !handled || !errors.Is(err, apperr.ErrEngineUnavailable) {
		t.Fatalf("SelectIndex() = %v, %v, want true, ErrEngineUnavailable", handled, err)
	}
	if want := []string{"suspend"}; !reflect.DeepEqual(eng.calls, want) {
		t.Errorf("engine calls = %v, want %v (no swap)", eng.calls, want)
	}
}

func TestSelectIndexOutOfRange(t *testing.T) {
	f := newFixture(3)
	if _, err := f.list.SelectIndex(context.Background(), 0); !errors.Is(err, apperr.ErrNoSuchEntry) {
		t.Errorf("SelectIndex() error = %v, want ErrNoSuchEntry", err)
	}
}

func TestRouteAfterRebuildUsesNewIDs(t *testing.T) {
	f := newFixture(2, "/a.iso", "/b.iso", "/c.iso")
	f.list.Add("/a.iso")
	f.list.Add("/b.iso")
	f.list.Add("/c.iso")

	if _, err := f.list.Route(context.Background(), 100); err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if !reflect.DeepEqual(f.engine.swapped, []string{"/b.iso"}) {
		t.Errorf("swapped = %v, want [/b.iso] (id 100 now maps to the oldest surviving entry)", f.engine.swapped)
	}
}
