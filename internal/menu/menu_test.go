package menu

import "testing"

func TestMemoryAssignsIDs(t *testing.T) {
	m := NewMemory()
	sep := m.AppendSeparator()
	fixed := m.AppendRadioItem(100, "a.iso", "/games/a.iso")
	auto := m.AppendRadioItem(AnyID, "b.iso", "/games/b.iso")

	if fixed.ID() != 100 {
		t.Errorf("fixed ID = %d, want 100", fixed.ID())
	}
	if sep.ID() == auto.ID() {
		t.Error("host-assigned IDs should be unique")
	}
	if auto.ID() < FirstAutoID {
		t.Errorf("auto ID = %d, want >= %d", auto.ID(), FirstAutoID)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestMemoryRadioGroup(t *testing.T) {
	m := NewMemory()
	m.AppendSeparator()
	a := m.AppendRadioItem(1, "a", "")
	b := m.AppendRadioItem(2, "b", "")
	m.AppendSeparator()
	other := m.AppendRadioItem(3, "c", "")

	if m.Find(1).Checked() != true {
		t.Error("first radio item of a group should start checked")
	}
	if !m.Find(3).Checked() {
		t.Error("first radio item of a second group should start checked")
	}

	b.Check()
	if m.Find(1).Checked() {
		t.Error("checking b should uncheck a")
	}
	if !m.Find(2).Checked() {
		t.Error("b should be checked")
	}
	if !m.Find(3).Checked() {
		t.Error("checking b should not affect a separate group")
	}

	a.Check()
	if !m.Find(1).Checked() || m.Find(2).Checked() {
		t.Error("checking a should move the check back")
	}
	_ = other
}

func TestMemoryEnableAndDestroy(t *testing.T) {
	m := NewMemory()
	sep := m.AppendSeparator()
	item := m.Append(7, "Clear")

	item.Enable(false)
	if m.Find(7).Enabled() {
		t.Error("Enabled() = true after Enable(false)")
	}
	sep.Enable(true)
	if m.Items()[0].Enabled() {
		t.Error("separators should never be enabled")
	}

	m.Destroy(item)
	if m.Find(7) != nil {
		t.Error("Find() returned destroyed item")
	}
	m.Destroy(item)
	m.Destroy(nil)
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMemoryChecked(t *testing.T) {
	m := NewMemory()
	if m.Checked() != nil {
		t.Error("Checked() on empty menu should be nil")
	}
	m.AppendRadioItem(1, "a", "")
	b := m.AppendRadioItem(2, "b", "")
	b.Check()
	if got := m.Checked(); got == nil || got.ID() != 2 {
		t.Errorf("Checked() = %v, want item 2", got)
	}
}
