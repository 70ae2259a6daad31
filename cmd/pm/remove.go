package pm

import (
	"github.com/safedep/pmb/internal/flows"
	"github.com/spf13/cobra"
)

func NewRemoveCommand() *cobra.Command {
	return newOperationCommand(flows.OperationRemove,
		"remove [packages...]",
		"Remove packages with npm, yarn or pnpm")
}
