package wizard

import (
	"os"

	"golang.org/x/term"
)

// Interactive provides interactive fallback functionality.
type Interactive struct {
	enabled    bool
	searchFunc SearchFunc
	choices    []Choice
}

// NewInteractive creates a new interactive handler.
func NewInteractive() *Interactive {
	return &Interactive{
		enabled:    true,
		searchFunc: GlobImages,
	}
}

// SetEnabled enables or disables interactive mode.
func (i *Interactive) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// SetSearchFunc sets the completion function for the path prompt.
func (i *Interactive) SetSearchFunc(fn SearchFunc) {
	i.searchFunc = fn
}

// SetChoices sets the images offered by the picker.
func (i *Interactive) SetChoices(choices []Choice) {
	i.choices = choices
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.enabled && IsTerminal()
}

// PromptPath launches the path prompt if interactive mode is available.
// Returns "" if cancelled or not interactive.
func (i *Interactive) PromptPath() (string, error) {
	if !i.CanInteract() {
		return "", nil
	}
	return RunBrowse(i.searchFunc)
}

// PromptImage launches the image picker if interactive mode is available.
// Returns nil if cancelled or not interactive.
func (i *Interactive) PromptImage() (*Choice, error) {
	if !i.CanInteract() || len(i.choices) == 0 {
		return nil, nil
	}
	return RunPicker(i.choices)
}

// NeedsPath returns true if a path argument is required but missing.
func NeedsPath(args []string) bool {
	return len(args) == 0
}

// OnlyChoice returns the single selectable choice if there is exactly one.
func OnlyChoice(choices []Choice) *Choice {
	var only *Choice
	count := 0
	for i := range choices {
		if choices[i].Missing {
			continue
		}
		only = &choices[i]
		count++
	}
	if count == 1 {
		return only
	}
	return nil
}
