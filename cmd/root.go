package cmd

import (
	"log/slog"
	"os"

	"github.com/PixPMusic/gopher-launchpad/internal/config"
	"github.com/PixPMusic/gopher-launchpad/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app holds state shared by the subcommands, filled in by the root command's PersistentPreRunE
type app struct {
	configPath string
	name       string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the gopher-launchpad command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gopher-launchpad",
		Short:         "Drive a Novation Launchpad over MIDI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (default: user config dir)")
	flags.StringVarP(&a.name, "name", "n", "", "Device port name substring")
	flags.StringVar(&a.logLevel, "log-level", "", "Logging level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "Logging format (text, json)")

	root.AddCommand(newListCmd(a), newMonitorCmd(a), newClearCmd(a))
	return root
}

// setup loads the config file and applies flags that were set explicitly
func (a *app) setup(flags *pflag.FlagSet) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	// Persist the generated device ID before flags override anything, so
	// logs and metrics keep the same controller label on every run
	var saveErr error
	if cfg.Unsaved() {
		saveErr = cfg.Save(a.configPath)
	}

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "name":
			cfg.Device.Name = a.name
		case "log-level":
			cfg.Logging.Level = a.logLevel
		case "log-format":
			cfg.Logging.Format = a.logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(a.logger)

	if saveErr != nil {
		a.logger.Warn("Failed to save config", "error", saveErr)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
