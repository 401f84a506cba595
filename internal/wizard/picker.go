package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/isoshelf/internal/pathutil"
)

// Choice is one recent image offered by the picker.
type Choice struct {
	// Index is the entry's position in the recent list, oldest first.
	Index   int
	Path    string
	Active  bool
	Missing bool
}

// PickerModel is the bubbletea model for the recent image picker.
type PickerModel struct {
	choices  []Choice
	cursor   int
	selected *Choice
	width    int
	height   int
}

// Styles for the image picker
var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	pickerItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	pickerSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color("237"))

	pickerActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))

	pickerMissingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	pickerDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// NewPickerModel creates a new image picker model. Choices are shown in
// the order given.
func NewPickerModel(choices []Choice) PickerModel {
	return PickerModel{
		choices: choices,
		width:   80,
		height:  20,
	}
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit

		case "enter", " ":
			if m.cursor < len(m.choices) && !m.choices[m.cursor].Missing {
				m.selected = &m.choices[m.cursor]
				return m, tea.Quit
			}

		case "up", "k", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j", "ctrl+n":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "home", "g":
			m.cursor = 0

		case "end", "G":
			if len(m.choices) > 0 {
				m.cursor = len(m.choices) - 1
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render("💿 Select Image"))
	b.WriteString("\n\n")

	if len(m.choices) == 0 {
		b.WriteString(pickerDimStyle.Render("No recent images"))
		b.WriteString("\n\n")
		b.WriteString(pickerDimStyle.Render("Add one with 'isoshelf add <path>'."))
	} else {
		for i, c := range m.choices {
			var line strings.Builder

			switch {
			case c.Missing:
				line.WriteString(pickerMissingStyle.Render("✗ "))
			case c.Active:
				line.WriteString(pickerActiveStyle.Render("● "))
			default:
				line.WriteString(pickerDimStyle.Render("○ "))
			}

			name := pathutil.Filename(c.Path)
			if c.Missing {
				name = pickerDimStyle.Render(name)
			}
			line.WriteString(name)
			line.WriteString(" " + pickerDimStyle.Render(c.Path))

			if i == m.cursor {
				b.WriteString(pickerSelectedStyle.Render("▸ " + line.String()))
			} else {
				b.WriteString(pickerItemStyle.Render("  " + line.String()))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(pickerDimStyle.Render("↑/↓ navigate • enter select • esc quit"))
	b.WriteString("\n")
	b.WriteString(pickerDimStyle.Render("● active  ○ available  ✗ missing"))

	return b.String()
}

// Selected returns the selected choice, or nil if none.
func (m PickerModel) Selected() *Choice {
	return m.selected
}

// RunPicker runs the image picker and returns the selected choice.
func RunPicker(choices []Choice) (*Choice, error) {
	model := NewPickerModel(choices)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	return finalModel.(PickerModel).Selected(), nil
}
