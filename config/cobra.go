package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ApplyCobraFlags applies the cobra flags to the command.
// These flags are local concern of the config package. This helper function is used
// to bind them to the Cobra command.
func ApplyCobraFlags(cmd *cobra.Command) {
	bindFlags(cmd.PersistentFlags(), globalConfig)
}

func bindFlags(flags *pflag.FlagSet, rc *RuntimeConfig) {
	flags.StringVar(&rc.Config.Manager, "manager", rc.Config.Manager,
		"Package manager to use (npm, yarn, pnpm or auto)")
	flags.StringVar(&rc.Config.Directory, "dir", rc.Config.Directory,
		"Working directory, created when missing")
	flags.BoolVar(&rc.Config.Global, "global", rc.Config.Global,
		"Pass --global to the package manager")
	flags.BoolVar(&rc.DryRun, "dry-run", false, "Print the invocation without running it")
	flags.BoolVar(&rc.Async, "async", false, "Stream package manager output while it runs")
}
