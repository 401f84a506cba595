package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	apperr "github.com/tessro/isoshelf/internal/errors"
	"github.com/tessro/isoshelf/internal/pathutil"
	"github.com/tessro/isoshelf/internal/wizard"
)

var pickForm bool

var selectCmd = &cobra.Command{
	Use:   "select <number|path>",
	Short: "Switch the engine to a recent image",
	Long: `Switch the engine to a recent image.

The argument is either a position from 'isoshelf list' (1 is the newest)
or a path. A path not yet in the list is added first.

Selecting the image that is already in use does nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a recent image interactively",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&pickForm, "form", false, "Use a simple form instead of the full-screen picker")
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(pickCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	idx, err := s.resolve(args[0])
	if err != nil {
		if _, numErr := strconv.Atoi(args[0]); numErr == nil || !errors.Is(err, apperr.ErrNoSuchEntry) {
			return err
		}
		var ok bool
		if idx, ok = s.add(args[0]); !ok {
			return err
		}
	}

	return selectAndSave(s, idx)
}

func runPick(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	choices := choicesFor(s)
	if len(choices) == 0 {
		return apperr.WithSuggestion(
			fmt.Errorf("recent list is empty: %w", apperr.ErrNoSuchEntry),
			"Add an image with 'isoshelf add <path>'")
	}

	var idx int
	if pickForm {
		idx, err = pickWithForm(choices)
	} else {
		idx, err = pickWithWizard(choices)
	}
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}

	return selectAndSave(s, idx)
}

func selectAndSave(s *session, idx int) error {
	path := s.list.Paths()[idx]

	handled, err := s.list.SelectIndex(context.Background(), idx)
	if err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}

	if JSONOutput() {
		status := "selected"
		if !handled {
			status = "unchanged"
		}
		return WriteJSON(map[string]string{
			"status": status,
			"path":   path,
		})
	}
	if !handled {
		fmt.Printf("Already using %s\n", pathutil.Filename(path))
		return nil
	}
	fmt.Printf("Now using %s\n", pathutil.Filename(path))
	return nil
}

// choicesFor lists the session's entries newest first.
func choicesFor(s *session) []wizard.Choice {
	entries := s.list.Entries()
	choices := make([]wizard.Choice, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		choices = append(choices, wizard.Choice{
			Index:   i,
			Path:    entries[i].Path,
			Active:  s.list.IsActive(entries[i].Path),
			Missing: !s.list.Exists(entries[i]),
		})
	}
	return choices
}

func pickWithWizard(choices []wizard.Choice) (int, error) {
	interactive := wizard.NewInteractive()
	interactive.SetEnabled(!JSONOutput())
	if !interactive.CanInteract() {
		return -1, apperr.ErrNotInteractive
	}
	interactive.SetChoices(choices)

	choice, err := interactive.PromptImage()
	if err != nil || choice == nil {
		return -1, err
	}
	return choice.Index, nil
}

func pickWithForm(choices []wizard.Choice) (int, error) {
	if JSONOutput() || !wizard.IsTerminal() {
		return -1, apperr.ErrNotInteractive
	}

	var options []huh.Option[int]
	for _, c := range choices {
		if c.Missing {
			continue
		}
		label := pathutil.Filename(c.Path)
		if c.Active {
			label += " [active]"
		}
		options = append(options, huh.NewOption(label, c.Index))
	}
	if len(options) == 0 {
		return -1, apperr.WithSuggestion(
			fmt.Errorf("every recent image is missing: %w", apperr.ErrImageNotFound),
			"Run 'isoshelf clear-missing' and add the images again")
	}

	selected := -1
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select image").
				Description("The engine switches to this image").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return -1, nil
		}
		return -1, fmt.Errorf("selection cancelled: %w", err)
	}
	return selected, nil
}
