package components

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tessro/isoshelf/internal/pathutil"
	"github.com/tessro/isoshelf/internal/tui/styles"
)

// Missing displays recent images whose file is gone
type Missing struct{}

// NewMissing creates a new Missing component
func NewMissing() *Missing {
	return &Missing{}
}

// Render renders the missing files panel
func (m *Missing) Render(paths []string, width, height int, focused bool) string {
	title := styles.PanelTitle("Missing", focused)

	var content string
	if len(paths) == 0 {
		content = styles.Muted.Render("All recent images are present")
	} else {
		content = m.renderPaths(paths, width-4, height-4)
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

func (m *Missing) renderPaths(paths []string, width, maxLines int) string {
	lines := make([]string, 0, maxLines)

	// Newest first, matching the menu
	for i := len(paths) - 1; i >= 0; i-- {
		if len(lines) >= maxLines {
			break
		}
		name := runewidth.Truncate(pathutil.Filename(paths[i]), width-2, "…")
		dir := runewidth.Truncate(filepath.Dir(paths[i]), width-4, "…")
		lines = append(lines, styles.Failed.Render("✗ ")+name)
		if len(lines) < maxLines {
			lines = append(lines, "  "+styles.Dim.Render(dir))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
