package recent

import (
	"reflect"
	"testing"

	"github.com/tessro/isoshelf/internal/menu"
)

func TestRepopulateReverseOrder(t *testing.T) {
	f := newFixture(2, "/b.iso", "/c.iso")
	f.list.Add("/a.iso")
	f.list.Add("/b.iso")
	f.list.Add("/c.iso")

	items := f.host.Items()
	kinds := make([]menu.Kind, len(items))
	for i, it := range items {
		kinds[i] = it.Kind()
	}
	wantKinds := []menu.Kind{
		menu.KindSeparator,
		menu.KindRadio, menu.KindRadio,
		menu.KindSeparator,
		menu.KindNormal, menu.KindNormal,
	}
	if !reflect.DeepEqual(kinds, wantKinds) {
		t.Fatalf("menu kinds = %v, want %v", kinds, wantKinds)
	}

	if got, want := entryLabels(f.host), []string{"c.iso", "b.iso"}; !reflect.DeepEqual(got, want) {
		t.Errorf("menu order = %v, want %v", got, want)
	}
	if items[4].ID() != IDClearMissing || items[4].Label() != LabelClearMissing {
		t.Errorf("item 4 = %d %q, want clear missing action", items[4].ID(), items[4].Label())
	}
	if items[5].ID() != IDClear || items[5].Label() != LabelClear {
		t.Errorf("item 5 = %d %q, want clear action", items[5].ID(), items[5].Label())
	}
}

func TestRepopulateIDsFollowStoreIndex(t *testing.T) {
	f := newFixture(3)
	f.list.Add("/a.iso")
	f.list.Add("/b.iso")

	if f.host.Find(100) == nil || f.host.Find(100).Help() != "/a.iso" {
		t.Error("entry 0 should be projected with id 100")
	}
	if f.host.Find(101) == nil || f.host.Find(101).Help() != "/b.iso" {
		t.Error("entry 1 should be projected with id 101")
	}
	if id, ok := f.list.ItemID(1); !ok || id != 101 {
		t.Errorf("ItemID(1) = %d, %v, want 101, true", id, ok)
	}

	// Eviction shifts store indices, so identifiers are reassigned.
	f.list.Add("/c.iso")
	f.list.Add("/d.iso")
	if f.host.Find(100).Help() != "/b.iso" {
		t.Errorf("id 100 = %q after eviction, want /b.iso", f.host.Find(100).Help())
	}
	if f.host.Find(103) != nil {
		t.Error("id 103 should not exist with capacity 3")
	}
}

func TestRepopulateHostAssignedIDs(t *testing.T) {
	fs := newFakeFS()
	host := menu.NewMemory()
	eng := &fakeEngine{}
	l := New(host, eng, &fakePrefs{capacity: 3}, WithProbe(fs), WithPaths(fs))
	l.Add("/a.iso")
	l.Add("/b.iso")

	for i := 0; i < 2; i++ {
		id, ok := l.ItemID(i)
		if !ok {
			t.Fatalf("ItemID(%d) not projected", i)
		}
		if id == 100+i {
			t.Errorf("ItemID(%d) = %d, want host-assigned identifier", i, id)
		}
		if host.Find(id) == nil {
			t.Errorf("host has no item %d", id)
		}
	}
}

func TestRepopulateEscapesAmpersand(t *testing.T) {
	f := newFixture(3, "/games/Rock & Roll.iso")
	f.list.Add("/games/Rock & Roll.iso")

	item := f.host.Find(100)
	if item.Label() != "Rock && Roll.iso" {
		t.Errorf("Label() = %q, want %q", item.Label(), "Rock && Roll.iso")
	}
	if item.Help() != "/games/Rock & Roll.iso" {
		t.Errorf("Help() = %q, want the full path", item.Help())
	}
}

func TestRepopulateEnabledState(t *testing.T) {
	f := newFixture(3, "/here.iso")
	f.list.Add("/here.iso")
	f.list.Add("/gone.iso")

	if !f.host.Find(100).Enabled() {
		t.Error("existing image should be enabled")
	}
	if f.host.Find(101).Enabled() {
		t.Error("missing image should be disabled")
	}

	f.prefs.askOnBoot = true
	f.list.Repopulate()
	if f.host.Find(100).Enabled() {
		t.Error("entries should be disabled while ask-on-boot is on")
	}
}

func TestRepopulateEmptyShowsNothing(t *testing.T) {
	f := newFixture(3)
	f.list.Repopulate()
	if f.host.Len() != 0 {
		t.Errorf("menu has %d items for empty list", f.host.Len())
	}
}

func TestRepopulateTwiceDoesNotDuplicate(t *testing.T) {
	f := newFixture(3)
	f.list.Add("/a.iso")
	n := f.host.Len()
	f.list.Repopulate()
	if f.host.Len() != n {
		t.Errorf("menu has %d items after second Repopulate, want %d", f.host.Len(), n)
	}
}

func TestRemoveAllIdempotent(t *testing.T) {
	f := newFixture(3)
	f.list.Add("/a.iso")

	f.list.RemoveAll()
	f.list.RemoveAll()

	if f.host.Len() != 0 {
		t.Errorf("menu has %d items after RemoveAll", f.host.Len())
	}
	for _, e := range f.list.Entries() {
		if e.Projected() {
			t.Errorf("entry %s still references a menu item", e.Path)
		}
	}
	if _, ok := f.list.ItemID(0); ok {
		t.Error("ItemID(0) reported a projection after RemoveAll")
	}
}

func TestSetEnabled(t *testing.T) {
	f := newFixture(3, "/here.iso")
	f.list.Add("/here.iso")
	f.list.Add("/gone.iso")
	before := f.host.Items()

	f.list.SetEnabled(false)
	if f.host.Find(100).Enabled() || f.host.Find(101).Enabled() {
		t.Error("SetEnabled(false) should disable every entry")
	}

	f.list.SetEnabled(true)
	if !f.host.Find(100).Enabled() {
		t.Error("SetEnabled(true) should enable existing entries")
	}
	if f.host.Find(101).Enabled() {
		t.Error("SetEnabled(true) should keep missing entries disabled")
	}

	after := f.host.Items()
	for i := range after {
		if after[i] != before[i] {
			t.Fatal("SetEnabled must not rebuild the menu")
		}
	}
}
