package cli

import (
	"github.com/spf13/cobra"
	"github.com/tessro/isoshelf/internal/logging"
	"github.com/tessro/isoshelf/internal/tui"
	"github.com/tessro/isoshelf/internal/watch"
)

var tuiNoWatch bool

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard provides a live view with:
  • Recent Images - the recent list as the emulator menu shows it
  • Engine - run state and active image
  • Missing - listed images whose file is gone

Keyboard shortcuts:
  q, Ctrl+C    Quit and save
  ?            Help
  Enter        Switch to the highlighted image
  a            Add an image
  y            Copy the highlighted path
  o            Open the image's folder
  p            Pause/resume the engine
  x            Clear missing images
  X            Clear the whole list
  Tab          Switch panel`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiNoWatch, "no-watch", false, "Do not watch listed images for changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}

	app := &tui.App{
		List:             s.list,
		Host:             s.host,
		Engine:           s.engine,
		Save:             s.save,
		LockWhileRunning: cfg.TUI.LockWhileRunning,
		AskOnBoot:        cfg.AskOnBoot(),
		Theme:            cfg.TUI.Theme,
		Logger:           logging.NewComponentLogger(logger, "tui"),
	}

	if cfg.TUI.WatchEnabled() && !tuiNoWatch {
		w, err := watch.NewWatcher()
		if err != nil {
			logger.Warn("file watching disabled", logging.Error(err))
		} else {
			app.Watcher = w
		}
	}

	return tui.Run(app)
}
