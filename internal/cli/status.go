package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tessro/isoshelf/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active image and recent list summary",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusResult struct {
	Source    core.SourceType `json:"source"`
	Image     string          `json:"image,omitempty"`
	Entries   int             `json:"entries"`
	Capacity  int             `json:"capacity"`
	Missing   int             `json:"missing"`
	Settings  string          `json:"settings"`
	Usable    bool            `json:"settings_usable"`
	Portable  bool            `json:"portable"`
	AskOnBoot bool            `json:"ask_on_boot"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	cur := s.engine.Current()
	result := statusResult{
		Source:    cur.Type,
		Image:     cur.Path,
		Entries:   s.list.Len(),
		Capacity:  s.list.Capacity(),
		Missing:   len(s.list.GetMissing()),
		Settings:  s.store.Path(),
		Usable:    s.store.OK(),
		Portable:  s.store.Portable(),
		AskOnBoot: s.cfg.AskOnBoot(),
	}

	if JSONOutput() {
		return WriteJSON(result)
	}

	switch cur.Type {
	case core.SourceImage:
		Normal("Image", cur.Path)
	case core.SourceDisc:
		Normal("Source", "disc drive")
	default:
		Normal("Image", "none")
	}
	Normal("Recent", fmt.Sprintf("%d of %d", result.Entries, result.Capacity))
	if result.Missing > 0 {
		Normal("Missing", Colorize("31", fmt.Sprintf("%d", result.Missing)))
	}

	if Verbose() {
		Normal("Settings", result.Settings)
		if !result.Usable {
			Normal("Settings state", Colorize("31", "unreadable, changes will not be saved"))
		}
		Normal("Portable", fmt.Sprintf("%t", result.Portable))
		Normal("Ask on boot", fmt.Sprintf("%t", result.AskOnBoot))
	}
	return nil
}
