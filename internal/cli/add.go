package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	apperr "github.com/tessro/isoshelf/internal/errors"
	"github.com/tessro/isoshelf/internal/pathutil"
	"github.com/tessro/isoshelf/internal/wizard"
)

var addSelect bool

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Add an image to the recent list",
	Long: `Add an image to the recent list without switching to it.

Without a path, an interactive prompt with path completion is shown.
An image already in the list keeps its position and becomes the selection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVarP(&addSelect, "select", "s", false, "Also switch the engine to the image")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	path, err := pathArg(args)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	idx, ok := s.add(path)
	if !ok {
		return fmt.Errorf("invalid image path %q", path)
	}
	if !pathutil.FileExists(s.list.Paths()[idx]) {
		logger.Warn("adding image that does not exist", slog.String("path", path))
	}
	if addSelect {
		if _, err := s.list.SelectIndex(context.Background(), idx); err != nil {
			return err
		}
	}
	if err := s.save(); err != nil {
		return err
	}

	added := s.list.Paths()[idx]
	if JSONOutput() {
		return WriteJSON(map[string]any{
			"status":   "added",
			"path":     added,
			"position": s.list.Len() - idx,
			"selected": addSelect,
		})
	}
	fmt.Printf("Added %s\n", added)
	return nil
}

// pathArg returns the path argument, prompting for one when it is missing
// and the terminal allows it. An empty result means the prompt was cancelled.
func pathArg(args []string) (string, error) {
	if !wizard.NeedsPath(args) {
		return args[0], nil
	}
	interactive := wizard.NewInteractive()
	interactive.SetEnabled(!JSONOutput())
	if !interactive.CanInteract() {
		return "", fmt.Errorf("path required: %w", apperr.ErrNotInteractive)
	}
	return interactive.PromptPath()
}
