package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent images",
	Long: `List the recent images, newest first.

The number in the first column is the entry's position; pass it to
'isoshelf select' to switch to that image.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "List recent images whose file is gone",
	Args:  cobra.NoArgs,
	RunE:  runMissing,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(missingCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	res := s.views()
	if res.HasErrors() {
		logger.Warn("could not stat some images", slog.Int("count", len(res.Errors)))
		if Verbose() {
			fmt.Fprintln(os.Stderr, res.ErrorSummary())
		}
	}
	views := res.Data
	if JSONOutput() {
		return WriteJSON(map[string]any{
			"capacity": s.list.Capacity(),
			"entries":  views,
		})
	}

	if len(views) == 0 {
		fmt.Println("No recent images")
		return nil
	}

	t := NewTable("#", "", "NAME", "SIZE", "MODIFIED", "PATH")
	for _, v := range views {
		mark := " "
		switch {
		case !v.Exists:
			mark = Colorize("31", "✗")
		case v.Active:
			mark = Colorize("32", StatusIcon(true))
		case v.Selected:
			mark = StatusIcon(false)
		}
		t.Row(
			fmt.Sprintf("%d", v.Position),
			mark,
			TruncateString(v.Name, 40),
			FormatSize(v.Size),
			FormatAge(v.Modified),
			v.Path,
		)
	}
	t.Flush()

	if Verbose() {
		fmt.Printf("\n%d of %d slots used\n", len(views), s.list.Capacity())
	}
	return nil
}

func runMissing(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	var missing []entryView
	for _, v := range s.views().Data {
		if !v.Exists {
			missing = append(missing, v)
		}
	}

	if JSONOutput() {
		if missing == nil {
			missing = []entryView{}
		}
		return WriteJSON(missing)
	}

	if len(missing) == 0 {
		fmt.Println("All recent images are present")
		return nil
	}
	for _, v := range missing {
		fmt.Printf("%d  %s\n", v.Position, v.Path)
	}
	return nil
}
