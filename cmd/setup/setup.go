package setup

import (
	"fmt"

	"github.com/safedep/pmb/config"
	"github.com/safedep/pmb/internal/ui"
	"github.com/spf13/cobra"
)

func NewSetupCommand() *cobra.Command {
	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Manage PMB configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	setupCmd.AddCommand(NewInitCommand())
	setupCmd.AddCommand(NewInfoCommand())

	return setupCmd
}

func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a template config file if none exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteTemplateConfig()
			if err != nil {
				ui.ErrorExit(fmt.Errorf("failed to write template config: %w", err))
			}

			fmt.Printf("%s Config at: %s\n", ui.Colors.Green("✓"), path)
			return nil
		},
	}
}
