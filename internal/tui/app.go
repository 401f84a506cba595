package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/isoshelf/internal/browser"
	"github.com/tessro/isoshelf/internal/engine"
	"github.com/tessro/isoshelf/internal/logging"
	"github.com/tessro/isoshelf/internal/menu"
	"github.com/tessro/isoshelf/internal/recent"
	"github.com/tessro/isoshelf/internal/tui/components"
	"github.com/tessro/isoshelf/internal/tui/styles"
	"github.com/tessro/isoshelf/internal/watch"
)

// Panel represents which panel is focused
type Panel int

const (
	PanelMenu Panel = iota
	PanelEngine
	PanelMissing
	panelCount
)

const statusTimeout = 5 * time.Second

// App holds the TUI application state
type App struct {
	List    *recent.List
	Host    *menu.Memory
	Engine  *engine.Local
	Watcher *watch.Watcher

	// Save persists the list and engine state on exit.
	Save func() error

	// LockWhileRunning disables image entries while the engine runs.
	LockWhileRunning bool
	// AskOnBoot keeps image entries disabled while the engine confirms
	// each boot.
	AskOnBoot bool
	Theme     string
	Logger    *slog.Logger
}

// Model is the main TUI model
type Model struct {
	app          *App
	width        int
	height       int
	focusedPanel Panel
	keys         keyMap
	help         help.Model

	// Components
	menuView    *components.Menu
	engineView  *components.Engine
	missingView *components.Missing

	// Overlays
	showHelp     bool
	confirmClear bool

	// Add state
	adding   bool
	addInput textinput.Model

	// Status line
	status       string
	lastError    error
	statusExpiry time.Time

	quitting bool
}

// NewModel creates a new TUI model
func NewModel(app *App) Model {
	if app.Logger == nil {
		app.Logger = logging.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/image.iso"
	ti.CharLimit = 4096
	ti.Width = 50

	m := Model{
		app:          app,
		focusedPanel: PanelMenu,
		keys:         defaultKeyMap(),
		help:         help.New(),
		menuView:     components.NewMenu(),
		engineView:   components.NewEngine(),
		missingView:  components.NewMissing(),
		addInput:     ti,
	}
	m.applyDisplay()
	return m
}

// Messages
type tickMsg time.Time
type watchMsg watch.Event

// Commands
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) waitForWatch() tea.Cmd {
	if m.app.Watcher == nil {
		return nil
	}
	events := m.app.Watcher.Events()
	return func() tea.Msg {
		evt, ok := <-events
		if !ok {
			return nil
		}
		return watchMsg(evt)
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForWatch())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
			m.status = ""
			m.lastError = nil
			m.statusExpiry = time.Time{}
		}
		return m, tick()

	case watchMsg:
		m.app.Logger.Debug("image file changed",
			slog.String("path", msg.Path),
			slog.String("event", msg.Type.String()))
		m.applyDisplay()
		return m, m.waitForWatch()
	}

	if m.adding {
		var inputCmd tea.Cmd
		m.addInput, inputCmd = m.addInput.Update(msg)
		return m, inputCmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.adding {
		return m.handleAddKeyPress(msg)
	}

	if m.confirmClear {
		m.confirmClear = false
		if msg.String() == "y" || msg.String() == "Y" {
			m.app.List.Clear()
			m.applyDisplay()
			m.setStatus("Image list cleared")
		} else {
			m.setStatus("Clear cancelled")
		}
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	items := m.app.Host.Items()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.NextPanel):
		m.focusedPanel = (m.focusedPanel + 1) % panelCount

	case key.Matches(msg, m.keys.PrevPanel):
		m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount

	case key.Matches(msg, m.keys.Down):
		m.menuView.SelectNext(items)

	case key.Matches(msg, m.keys.Up):
		m.menuView.SelectPrev(items)

	case key.Matches(msg, m.keys.Select):
		if m.focusedPanel == PanelMenu {
			m.activate(m.menuView.Current(items))
		}

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.addInput.SetValue("")
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.Copy):
		m.copyPath(m.menuView.Current(items))

	case key.Matches(msg, m.keys.Reveal):
		m.reveal(m.menuView.Current(items))

	case key.Matches(msg, m.keys.Pause):
		m.togglePause()

	case key.Matches(msg, m.keys.ClearMissing):
		m.clearMissing()

	case key.Matches(msg, m.keys.ClearAll):
		if m.app.List.Len() > 0 {
			m.confirmClear = true
		}
	}

	return m, nil
}

func (m Model) handleAddKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.addInput.Blur()
		return m, nil

	case "enter":
		path := m.addInput.Value()
		m.adding = false
		m.addInput.Blur()
		if path == "" {
			return m, nil
		}
		m.app.List.Add(path)
		m.applyDisplay()
		m.menuView.Reset()
		m.setStatus("Added " + path)
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// activate handles a menu item the same way a host menu would: the clear
// actions run directly, everything else goes through the list's router.
func (m *Model) activate(item *menu.MemoryItem) {
	if item == nil || item.IsSeparator() {
		return
	}

	switch item.ID() {
	case recent.IDClearMissing:
		m.clearMissing()
		return
	case recent.IDClear:
		m.confirmClear = true
		return
	}

	if !item.Enabled() {
		m.setStatus(components.DisplayLabel(item.Label()) + " is unavailable")
		return
	}

	handled, err := m.app.List.Route(context.Background(), item.ID())
	if err != nil {
		m.setError(err)
		return
	}
	if !handled {
		m.setStatus("Already using " + components.DisplayLabel(item.Label()))
		return
	}
	m.setStatus("Now using " + components.DisplayLabel(item.Label()))
}

func (m *Model) clearMissing() {
	missing := len(m.app.List.GetMissing())
	if missing == 0 {
		m.setStatus("No missing images")
		return
	}
	m.app.List.ClearMissing()
	m.applyDisplay()
	m.setStatus(fmt.Sprintf("Removed %d missing image(s)", missing))
}

func (m *Model) togglePause() {
	ctx := context.Background()
	var err error
	if m.app.Engine.Running() {
		err = m.app.Engine.Suspend(ctx)
	} else {
		err = m.app.Engine.Resume(ctx)
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.applyDisplay()
}

func (m *Model) copyPath(item *menu.MemoryItem) {
	if item == nil || item.Kind() != menu.KindRadio {
		return
	}
	if err := clipboard.WriteAll(item.Help()); err != nil {
		m.setError(fmt.Errorf("copy path: %w", err))
		return
	}
	m.setStatus("Copied " + item.Help())
}

func (m *Model) reveal(item *menu.MemoryItem) {
	if item == nil || item.Kind() != menu.KindRadio {
		return
	}
	if err := browser.Reveal(item.Help()); err != nil {
		m.setError(fmt.Errorf("open folder: %w", err))
	}
}

// display reports whether image entries may be chosen right now.
func (m Model) display() bool {
	if m.app.AskOnBoot {
		return false
	}
	return !(m.app.LockWhileRunning && m.app.Engine.Running())
}

// applyDisplay refreshes entry enabled state and the watched paths after
// the list, the engine or the filesystem changed.
func (m Model) applyDisplay() {
	m.app.List.SetEnabled(m.display())
	if m.app.Watcher != nil {
		m.app.Watcher.SetPaths(m.app.List.Paths())
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.lastError = nil
	m.statusExpiry = time.Now().Add(statusTimeout)
}

func (m *Model) setError(err error) {
	m.app.Logger.Warn("tui action failed", logging.Error(err))
	m.status = ""
	m.lastError = err
	m.statusExpiry = time.Now().Add(statusTimeout)
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.adding {
		return m.renderAdd()
	}

	// Main layout: two columns
	// Left: Recent menu
	// Right: Engine (top), Missing (bottom)

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 2
	mainHeight := m.height - 2
	topHeight := mainHeight * 45 / 100
	bottomHeight := mainHeight - topHeight

	state := components.EngineState{
		Running:  m.app.Engine.Running(),
		Source:   m.app.Engine.Current(),
		Message:  m.app.Engine.LastMessage(),
		Entries:  m.app.List.Len(),
		Capacity: m.app.List.Capacity(),
	}

	missing := make([]string, 0)
	for _, e := range m.app.List.GetMissing() {
		missing = append(missing, e.Path)
	}

	menuView := m.menuView.Render(m.app.Host.Items(), leftWidth-2, mainHeight-2, m.focusedPanel == PanelMenu)
	engineView := m.engineView.Render(state, rightWidth-2, topHeight-2, m.focusedPanel == PanelEngine)
	missingView := m.missingView.Render(missing, rightWidth-2, bottomHeight-2, m.focusedPanel == PanelMissing)

	rightCol := lipgloss.JoinVertical(lipgloss.Left, engineView, missingView)
	main := lipgloss.JoinHorizontal(lipgloss.Top, menuView, rightCol)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m Model) renderStatusBar() string {
	status := m.help.ShortHelpView(m.keys.ShortHelp())

	switch {
	case m.confirmClear:
		status = styles.Paused.Render("Clear the whole image list? (y/N)")
	case m.lastError != nil:
		status = styles.Failed.Render("Error: " + m.lastError.Error())
	case m.status != "":
		status = styles.Subtitle.Render(m.status)
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := styles.Title.Render("isoshelf - Keyboard Shortcuts")
	body := m.help.FullHelpView(m.keys.FullHelp())
	footer := styles.Dim.Render("Press ? or Esc to close")

	content := lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", footer))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(content))
}

func (m Model) renderAdd() string {
	content := lipgloss.NewStyle().
		Width(60).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Highlight.Render("Add image"),
			"",
			m.addInput.View(),
			"",
			styles.Dim.Render("Enter:add  Esc:cancel"),
		))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.FocusedBorder.Render(content))
}

// Run starts the TUI application and saves state when it exits
func Run(app *App) error {
	styles.ApplyTheme(app.Theme)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if app.Watcher != nil {
		app.Watcher.SetPaths(app.List.Paths())
		go func() { _ = app.Watcher.Start(ctx) }()
		defer app.Watcher.Stop()
	}

	model := NewModel(app)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, runErr := p.Run()

	if app.Save != nil {
		if err := app.Save(); err != nil {
			if runErr != nil {
				return runErr
			}
			return fmt.Errorf("save: %w", err)
		}
	}
	return runErr
}
