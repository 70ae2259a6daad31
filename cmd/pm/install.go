package pm

import (
	"github.com/safedep/pmb/internal/flows"
	"github.com/spf13/cobra"
)

func NewInstallCommand() *cobra.Command {
	return newOperationCommand(flows.OperationInstall,
		"install [packages...]",
		"Install packages with npm, yarn or pnpm")
}
