// Package menu defines the menu host the recent list projects into, and an
// in-memory host used by the CLI and the dashboard.
package menu

// AnyID asks the host to assign an item identifier.
const AnyID = -1

// FirstAutoID is where host-assigned identifiers start. Configured identifier
// ranges must stay below it.
const FirstAutoID = 10000

// Item is a host-owned menu item.
type Item interface {
	ID() int
	Enable(enabled bool)
	Check()
}

// Host creates and destroys menu items.
type Host interface {
	AppendSeparator() Item
	AppendRadioItem(id int, label, help string) Item
	Append(id int, label string) Item
	Destroy(item Item)
}

// Kind describes what a MemoryItem renders as.
type Kind int

const (
	KindNormal Kind = iota
	KindRadio
	KindSeparator
)

// MemoryItem is an item owned by a Memory host.
type MemoryItem struct {
	id      int
	kind    Kind
	label   string
	help    string
	enabled bool
	checked bool
	owner   *Memory
}

func (i *MemoryItem) ID() int           { return i.id }
func (i *MemoryItem) Kind() Kind        { return i.kind }
func (i *MemoryItem) Label() string     { return i.label }
func (i *MemoryItem) Help() string      { return i.help }
func (i *MemoryItem) Enabled() bool     { return i.enabled }
func (i *MemoryItem) Checked() bool     { return i.checked }
func (i *MemoryItem) IsSeparator() bool { return i.kind == KindSeparator }

// Enable sets whether the item can be selected. Separators ignore it.
func (i *MemoryItem) Enable(enabled bool) {
	if i.kind == KindSeparator {
		return
	}
	i.enabled = enabled
}

// Check marks a radio item as the checked member of its group, clearing the
// others. Non-radio items ignore it.
func (i *MemoryItem) Check() {
	if i.kind != KindRadio {
		return
	}
	if i.owner != nil {
		i.owner.checkInGroup(i)
		return
	}
	i.checked = true
}

// Memory is an in-process Host. Items keep insertion order; consecutive
// radio items form one group.
type Memory struct {
	items  []*MemoryItem
	nextID int
}

// NewMemory creates an empty menu.
func NewMemory() *Memory {
	return &Memory{nextID: FirstAutoID}
}

// AppendSeparator adds a separator line.
func (m *Memory) AppendSeparator() Item {
	return m.append(&MemoryItem{id: m.assign(AnyID), kind: KindSeparator})
}

// AppendRadioItem adds a radio item. The first item of a new radio group
// starts checked.
func (m *Memory) AppendRadioItem(id int, label, help string) Item {
	item := &MemoryItem{id: m.assign(id), kind: KindRadio, label: label, help: help, enabled: true}
	if n := len(m.items); n == 0 || m.items[n-1].kind != KindRadio {
		item.checked = true
	}
	return m.append(item)
}

// Append adds a plain action item.
func (m *Memory) Append(id int, label string) Item {
	return m.append(&MemoryItem{id: m.assign(id), kind: KindNormal, label: label, enabled: true})
}

// Destroy removes an item. Destroying an item that is not in the menu is a
// no-op.
func (m *Memory) Destroy(item Item) {
	mi, ok := item.(*MemoryItem)
	if !ok {
		return
	}
	for i, cur := range m.items {
		if cur == mi {
			m.items = append(m.items[:i], m.items[i+1:]...)
			mi.owner = nil
			return
		}
	}
}

// Items returns the current items in display order.
func (m *Memory) Items() []*MemoryItem {
	out := make([]*MemoryItem, len(m.items))
	copy(out, m.items)
	return out
}

// Len returns the number of items, separators included.
func (m *Memory) Len() int { return len(m.items) }

// Find returns the item with the given identifier, or nil.
func (m *Memory) Find(id int) *MemoryItem {
	for _, it := range m.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

// Checked returns the checked radio item, or nil.
func (m *Memory) Checked() *MemoryItem {
	for _, it := range m.items {
		if it.kind == KindRadio && it.checked {
			return it
		}
	}
	return nil
}

func (m *Memory) assign(id int) int {
	if id != AnyID {
		return id
	}
	id = m.nextID
	m.nextID++
	return id
}

func (m *Memory) append(item *MemoryItem) Item {
	item.owner = m
	m.items = append(m.items, item)
	return item
}

func (m *Memory) checkInGroup(target *MemoryItem) {
	idx := -1
	for i, it := range m.items {
		if it == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		target.checked = true
		return
	}
	start, end := idx, idx
	for start > 0 && m.items[start-1].kind == KindRadio {
		start--
	}
	for end < len(m.items)-1 && m.items[end+1].kind == KindRadio {
		end++
	}
	for i := start; i <= end; i++ {
		m.items[i].checked = i == idx
	}
}
