package recent

import (
	"log/slog"
	"strings"

	"github.com/tessro/isoshelf/internal/config"
	"github.com/tessro/isoshelf/internal/menu"
)

// Identifiers of the trailing actions. They lie outside any entry range.
const (
	IDClearMissing = config.ClearMissingMenuID
	IDClear        = config.ClearMenuID
)

// Labels of the trailing actions.
const (
	LabelClearMissing = "Clear missing files"
	LabelClear        = "Clear image list"
)

// RemoveAll destroys every projected item and forgets their identifiers.
// It is a no-op when nothing is projected.
func (l *List) RemoveAll() {
	clear(l.ids)
	if l.host == nil {
		return
	}

	// Items were appended newest first; tear them down from the oldest.
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].item == nil {
			continue
		}
		l.host.Destroy(l.entries[i].item)
		l.entries[i].item = nil
	}

	l.destroy(&l.separator)
	l.destroy(&l.clearSeparator)
	l.destroy(&l.clearMissing)
	l.destroy(&l.clearAll)
}

// Repopulate projects the list into the menu: a separator, one radio item
// per entry newest first, another separator and the two clear actions.
// Nothing is shown for an empty list. Any existing projection is removed
// first.
func (l *List) Repopulate() {
	if l.host == nil {
		return
	}
	if l.projected() {
		l.RemoveAll()
	}
	if len(l.entries) == 0 {
		return
	}

	l.separator = l.host.AppendSeparator()
	for i := len(l.entries) - 1; i >= 0; i-- {
		l.insertIntoMenu(i)
	}
	l.clearSeparator = l.host.AppendSeparator()
	l.clearMissing = l.host.Append(IDClearMissing, LabelClearMissing)
	l.clearAll = l.host.Append(IDClear, LabelClear)

	if l.cursel >= 0 && l.cursel < len(l.entries) {
		l.entries[l.cursel].item.Check()
	}
	l.logger.Debug("recent menu rebuilt", slog.Int("entries", len(l.entries)))
}

// SetEnabled enables entry items that exist on disk when display is true,
// and disables all of them otherwise. The menu is not rebuilt.
func (l *List) SetEnabled(display bool) {
	for _, e := range l.entries {
		if e.item == nil {
			continue
		}
		// Missing files stay greyed out.
		e.item.Enable(display && l.probe.Exists(e.Path))
	}
}

// Label returns the menu label for path: its file name with '&' doubled so
// it is not read as an accelerator marker.
func (l *List) Label(path string) string {
	return strings.ReplaceAll(l.paths.Filename(path), "&", "&&")
}

// ItemID returns the menu identifier projected for entry i.
func (l *List) ItemID(i int) (int, bool) {
	if i < 0 || i >= len(l.entries) || l.entries[i].item == nil {
		return 0, false
	}
	return l.entries[i].item.ID(), true
}

func (l *List) insertIntoMenu(i int) {
	entry := &l.entries[i]

	id := menu.AnyID
	if l.firstID != menu.AnyID {
		id = l.firstID + i
	}

	entry.item = l.host.AppendRadioItem(id, l.Label(entry.Path), entry.Path)
	entry.item.Enable(l.probe.Exists(entry.Path) && !l.askOnBoot())
	l.ids[entry.item.ID()] = i
}

func (l *List) projected() bool {
	return l.separator != nil || len(l.ids) > 0
}

func (l *List) destroy(item *menu.Item) {
	if *item == nil {
		return
	}
	l.host.Destroy(*item)
	*item = nil
}

func (l *List) askOnBoot() bool {
	return l.prefs != nil && l.prefs.AskOnBoot()
}
