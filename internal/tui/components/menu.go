package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tessro/isoshelf/internal/menu"
	"github.com/tessro/isoshelf/internal/tui/styles"
)

// Menu displays the recent image menu and tracks the cursor
type Menu struct {
	cursor int
}

// NewMenu creates a new Menu component
func NewMenu() *Menu {
	return &Menu{cursor: -1}
}

// Current returns the item under the cursor, or nil
func (m *Menu) Current(items []*menu.MemoryItem) *menu.MemoryItem {
	m.clamp(items)
	if m.cursor < 0 {
		return nil
	}
	return items[m.cursor]
}

// SelectNext moves the cursor to the next selectable item
func (m *Menu) SelectNext(items []*menu.MemoryItem) {
	m.clamp(items)
	for i := m.cursor + 1; i < len(items); i++ {
		if !items[i].IsSeparator() {
			m.cursor = i
			return
		}
	}
}

// SelectPrev moves the cursor to the previous selectable item
func (m *Menu) SelectPrev(items []*menu.MemoryItem) {
	m.clamp(items)
	for i := m.cursor - 1; i >= 0; i-- {
		if !items[i].IsSeparator() {
			m.cursor = i
			return
		}
	}
}

// Reset moves the cursor to the first selectable item
func (m *Menu) Reset() {
	m.cursor = -1
}

// clamp keeps the cursor on a selectable item after the menu was rebuilt
func (m *Menu) clamp(items []*menu.MemoryItem) {
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor >= 0 && !items[m.cursor].IsSeparator() {
		return
	}
	for i, it := range items {
		if !it.IsSeparator() {
			m.cursor = i
			return
		}
	}
	m.cursor = -1
}

// Render renders the menu panel
func (m *Menu) Render(items []*menu.MemoryItem, width, height int, focused bool) string {
	title := styles.PanelTitle("Recent Images", focused)

	var content string
	if len(items) == 0 {
		content = styles.Muted.Render("No recent images. Press a to add one.")
	} else {
		content = m.renderItems(items, width-4, height-4, focused)
	}

	panel := styles.Panel("", focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (m *Menu) renderItems(items []*menu.MemoryItem, width, maxLines int, focused bool) string {
	m.clamp(items)
	lines := make([]string, 0, len(items))

	for i, it := range items {
		if len(lines) >= maxLines {
			break
		}
		if it.IsSeparator() {
			lines = append(lines, styles.Dim.Render(styles.Repeat("─", width)))
			continue
		}

		selector := "  "
		if focused && i == m.cursor {
			selector = "▸ "
		}

		prefix := ""
		if it.Kind() == menu.KindRadio {
			prefix = styles.Radio(it.Checked()) + " "
		}

		label := runewidth.Truncate(DisplayLabel(it.Label()), width-8, "…")
		switch {
		case !it.Enabled():
			label = styles.Dim.Render(label)
		case focused && i == m.cursor:
			label = styles.Highlight.Render(label)
		}

		lines = append(lines, selector+prefix+label)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// DisplayLabel undoes accelerator escaping for display
func DisplayLabel(label string) string {
	return strings.ReplaceAll(label, "&&", "&")
}
