package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tessro/isoshelf/internal/config"
	apperr "github.com/tessro/isoshelf/internal/errors"
	"github.com/tessro/isoshelf/internal/logging"
)

var (
	cfgFile      string
	settingsFile string
	jsonOut      bool
	verbose      bool

	cfg       *config.Config
	logger    = logging.NewNop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "isoshelf",
	Short: "Keep track of recently used disc images",
	Long: `isoshelf remembers the disc images you mount in the emulator and lets you
switch between them from the command line or an interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return initLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.isoshelfrc)")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file holding the recent list")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if settingsFile != "" {
		cfg.Paths.Settings = settingsFile
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrInvalidConfig, err)
	}

	return nil
}

func initLogger() error {
	l, closer, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger = l
	logCloser = closer
	logger.Debug("config loaded",
		slog.String("settings", cfg.Paths.Settings),
		slog.Int("capacity", cfg.RecentCapacity()),
		slog.Bool("portable", cfg.Paths.Portable))
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperr.Format(err))
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
