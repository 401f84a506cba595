package wizard

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/isoshelf/internal/pathutil"
)

// ImageExtensions are the file extensions offered when browsing for images.
var ImageExtensions = []string{".iso", ".cue", ".bin", ".img", ".chd", ".cso", ".mdf", ".nrg", ".ccd"}

// SearchFunc lists candidate paths for what the user has typed so far.
type SearchFunc func(query string) ([]string, error)

// GlobImages completes query against the filesystem. Directories are
// returned with a trailing separator so they can be descended into; files
// are returned only when they look like disc images.
func GlobImages(query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}
	prefix := pathutil.Normalize(query)
	if strings.HasSuffix(query, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	matches, err := filepath.Glob(prefix + "*")
	if err != nil {
		return nil, err
	}

	results := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if info.IsDir() {
			results = append(results, match+string(filepath.Separator))
			continue
		}
		if IsImagePath(match) {
			results = append(results, match)
		}
	}
	slices.Sort(results)
	return results, nil
}

// IsImagePath reports whether path has a known disc image extension.
func IsImagePath(path string) bool {
	return slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(path)))
}

// BrowseModel is the bubbletea model for the image path prompt.
type BrowseModel struct {
	input      textinput.Model
	results    []string
	cursor     int
	searchFunc SearchFunc
	selected   string
	err        error
	debounce   time.Duration
	lastQuery  string
	width      int
	height     int
}

// Styles
var (
	browseTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	browseResultStyle = lipgloss.NewStyle().
				PaddingLeft(2)

	browseSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color("237"))

	browseSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

// NewBrowseModel creates a new path prompt model.
func NewBrowseModel(searchFunc SearchFunc) BrowseModel {
	if searchFunc == nil {
		searchFunc = GlobImages
	}

	ti := textinput.New()
	ti.Placeholder = "~/images/disc.iso"
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60

	return BrowseModel{
		input:      ti,
		searchFunc: searchFunc,
		debounce:   150 * time.Millisecond,
		width:      80,
		height:     20,
	}
}

// Init initializes the model.
func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// debounceMsg is sent after the debounce period.
type debounceMsg struct {
	query string
}

// resultsMsg contains completion candidates.
type resultsMsg struct {
	query   string
	results []string
	err     error
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if m.cursor < len(m.results) && !isDir(m.results[m.cursor]) {
				m.selected = m.results[m.cursor]
				return m, tea.Quit
			}
			if value := m.input.Value(); value != "" && IsImagePath(value) {
				m.selected = pathutil.Normalize(value)
				return m, tea.Quit
			}
			return m, nil

		case "tab":
			// Complete the input to the highlighted candidate
			if m.cursor < len(m.results) {
				m.input.SetValue(m.results[m.cursor])
				m.input.CursorEnd()
			}

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4

	case debounceMsg:
		if msg.query == m.input.Value() && msg.query != m.lastQuery {
			m.lastQuery = msg.query
			return m, m.doSearch(msg.query)
		}
		return m, nil

	case resultsMsg:
		if msg.query == m.input.Value() {
			m.results = msg.results
			m.err = msg.err
			m.cursor = 0
		}
		return m, nil
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	if value := m.input.Value(); value != m.lastQuery {
		cmds = append(cmds, tea.Tick(m.debounce, func(time.Time) tea.Msg {
			return debounceMsg{query: value}
		}))
	}

	return m, tea.Batch(cmds...)
}

func (m BrowseModel) doSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.searchFunc(query)
		return resultsMsg{query: query, results: results, err: err}
	}
}

// View renders the model.
func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(browseTitleStyle.Render("📂 Add Image"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("Error: " + m.err.Error()))
	} else if len(m.results) == 0 && m.input.Value() != "" && m.lastQuery != "" {
		b.WriteString("No matching images")
	} else {
		maxResults := m.height - 8
		if maxResults < 5 {
			maxResults = 5
		}
		for i, result := range m.results {
			if i >= maxResults {
				b.WriteString(browseSubtitleStyle.Render("  ...and more"))
				break
			}
			if i == m.cursor {
				b.WriteString(browseSelectedStyle.Render("▸ " + result))
			} else {
				b.WriteString(browseResultStyle.Render("  " + result))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(browseSubtitleStyle.Render("↑/↓ navigate • tab complete • enter select • esc quit"))

	return b.String()
}

// Selected returns the chosen path, or "" if none.
func (m BrowseModel) Selected() string {
	return m.selected
}

// RunBrowse runs the path prompt and returns the chosen path.
func RunBrowse(searchFunc SearchFunc) (string, error) {
	model := NewBrowseModel(searchFunc)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	return finalModel.(BrowseModel).Selected(), nil
}

func isDir(path string) bool {
	return strings.HasSuffix(path, string(filepath.Separator))
}
