package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/isoshelf/internal/core"
	"github.com/tessro/isoshelf/internal/pathutil"
	"github.com/tessro/isoshelf/internal/tui/styles"
)

// EngineState is what the engine panel shows
type EngineState struct {
	Running  bool
	Source   core.MediaSource
	Message  string
	Entries  int
	Capacity int
}

// Engine displays the engine run state and active media
type Engine struct{}

// NewEngine creates a new Engine component
func NewEngine() *Engine {
	return &Engine{}
}

// Render renders the engine panel
func (e *Engine) Render(state EngineState, width, height int, focused bool) string {
	title := styles.PanelTitle("Engine", focused)

	icon := styles.StatusIcon(state.Running)
	runState := "paused"
	if state.Running {
		runState = "running"
	}

	var media string
	switch state.Source.Type {
	case core.SourceImage:
		media = styles.Title.Width(width - 6).Render(pathutil.Filename(state.Source.Path))
	case core.SourceDisc:
		media = styles.Title.Render("Disc drive")
	default:
		media = styles.Muted.Render("No media")
	}

	lines := []string{
		icon + " " + media,
		"  " + styles.Subtitle.Render(runState),
	}
	if state.Source.Path != "" {
		lines = append(lines, "  "+styles.Dim.Render(state.Source.Path))
	}
	lines = append(lines, "", styles.Muted.Render(fmt.Sprintf("%d of %d recent slots used", state.Entries, state.Capacity)))
	if state.Message != "" {
		lines = append(lines, "", styles.Dim.Width(width-4).Render(state.Message))
	}

	panel := styles.Panel("", focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	))
}
