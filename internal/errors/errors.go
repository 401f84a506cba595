package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrSettingsUnavailable = errors.New("settings unavailable")
	ErrImageNotFound       = errors.New("image not found")
	ErrEngineUnavailable   = errors.New("engine unavailable")
	ErrNoSuchEntry         = errors.New("no such recent entry")
	ErrNotInteractive      = errors.New("not an interactive terminal")
	ErrConfigNotFound      = errors.New("config file not found")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// ShelfError wraps an error with a user-friendly suggestion.
type ShelfError struct {
	Err        error
	Suggestion string
}

func (e *ShelfError) Error() string {
	return e.Err.Error()
}

func (e *ShelfError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &ShelfError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var shelfErr *ShelfError
	if errors.As(err, &shelfErr) && shelfErr.Suggestion != "" {
		return shelfErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrImageNotFound) || strings.Contains(errStr, "no such file") {
		return "Run 'isoshelf missing' to list images that moved, or 'isoshelf clear-missing' to drop them"
	}

	if errors.Is(err, ErrNoSuchEntry) {
		return "Run 'isoshelf list' to see the recent images and their numbers"
	}

	if errors.Is(err, ErrEngineUnavailable) {
		return "The engine could not be paused. Try again once it is idle"
	}

	if errors.Is(err, ErrSettingsUnavailable) || strings.Contains(errStr, "settings") {
		return "Check that the settings file is readable, or set paths.settings in your config"
	}

	if errors.Is(err, ErrNotInteractive) {
		return "Pass the entry number or path as an argument instead"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'isoshelf config init' to create a default configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}

// PartialResult represents a result that may have partial failures.
type PartialResult[T any] struct {
	Data   T
	Errors []error
}

// HasErrors returns true if there were any errors.
func (p *PartialResult[T]) HasErrors() bool {
	return len(p.Errors) > 0
}

// AddError adds an error to the partial result.
func (p *PartialResult[T]) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// ErrorSummary returns a summary of all errors.
func (p *PartialResult[T]) ErrorSummary() string {
	if len(p.Errors) == 0 {
		return ""
	}
	if len(p.Errors) == 1 {
		return p.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(p.Errors)))
	for i, err := range p.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
