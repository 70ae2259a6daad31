package main

import (
	"fmt"
	"os"

	"github.com/safedep/dry/log"
	"github.com/safedep/pmb/cmd/pm"
	"github.com/safedep/pmb/cmd/setup"
	"github.com/safedep/pmb/cmd/version"
	"github.com/safedep/pmb/config"
	"github.com/safedep/pmb/internal/eventlog"
	"github.com/safedep/pmb/internal/ui"
	"github.com/spf13/cobra"
)

var (
	debug   bool
	noColor bool
)

func main() {
	cmd := &cobra.Command{
		Use:              "pmb",
		Short:            "Build and run npm, yarn and pnpm invocations",
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := initLogging(debug); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to enable debug logging: %v\n", err)
			}

			ui.DisableColors(noColor)

			cfg := config.Get()
			if !cfg.Config.SkipEventLogging {
				err := eventlog.InitializeWithDir(cfg.EventLogDir(), cfg.Config.EventLogRetentionDays)
				if err != nil {
					log.Warnf("Failed to initialize event log: %v", err)
				}
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := eventlog.Close(); err != nil {
				log.Warnf("Failed to close event log: %v", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return fmt.Errorf("pmb: %s is not a valid command", args[0])
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	config.ApplyCobraFlags(cmd)

	cmd.AddCommand(pm.NewInstallCommand())
	cmd.AddCommand(pm.NewRemoveCommand())
	cmd.AddCommand(setup.NewSetupCommand())
	cmd.AddCommand(version.NewVersionCommand())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}

	if code := pm.ExitCode(); code != 0 {
		os.Exit(code)
	}
}

// initLogging sets up the logger, at debug level when requested.
func initLogging(debug bool) error {
	var err error
	if debug {
		err = os.Setenv("APP_LOG_LEVEL", "debug")
	}

	log.InitZapLogger("pmb", "")
	return err
}
