package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	apperr "github.com/tessro/isoshelf/internal/errors"
	"github.com/tessro/isoshelf/internal/wizard"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every image from the recent list",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var clearMissingCmd = &cobra.Command{
	Use:   "clear-missing",
	Short: "Remove recent images whose file is gone",
	Args:  cobra.NoArgs,
	RunE:  runClearMissing,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Do not ask for confirmation")
	clearMissingCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(clearMissingCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	n := s.list.Len()
	if n == 0 {
		return report("cleared", 0, "Recent list is already empty")
	}

	ok, err := confirm(fmt.Sprintf("Remove all %d recent images?", n))
	if err != nil || !ok {
		return err
	}

	s.list.Clear()
	if err := s.save(); err != nil {
		return err
	}
	return report("cleared", n, fmt.Sprintf("Removed %d recent image(s)", n))
}

func runClearMissing(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	missing := s.list.GetMissing()
	if len(missing) == 0 {
		return report("cleared", 0, "All recent images are present")
	}

	if Verbose() {
		for _, e := range missing {
			fmt.Printf("  %s\n", e.Path)
		}
	}
	ok, err := confirm(fmt.Sprintf("Remove %d missing image(s)?", len(missing)))
	if err != nil || !ok {
		return err
	}

	s.list.ClearMissing()
	if err := s.save(); err != nil {
		return err
	}
	return report("cleared", len(missing), fmt.Sprintf("Removed %d missing image(s)", len(missing)))
}

// confirm asks a yes/no question unless --yes was given.
func confirm(title string) (bool, error) {
	if clearYes {
		return true, nil
	}
	if JSONOutput() || !wizard.IsTerminal() {
		return false, apperr.WithSuggestion(apperr.ErrNotInteractive, "Pass --yes to confirm without a prompt")
	}

	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Remove").
		Negative("Cancel").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

func report(status string, removed int, message string) error {
	if JSONOutput() {
		return WriteJSON(map[string]any{
			"status":  status,
			"removed": removed,
		})
	}
	fmt.Println(message)
	return nil
}
