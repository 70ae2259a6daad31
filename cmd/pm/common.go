package pm

import (
	"context"

	"github.com/safedep/pmb/config"
	"github.com/safedep/pmb/internal/flows"
	"github.com/safedep/pmb/internal/ui"
	"github.com/spf13/cobra"
)

// exitCode of the last package manager run. main exits with it after
// cobra finishes so that post-run hooks still run.
var exitCode int

// ExitCode returns the exit code of the package manager run by the
// install or remove command, 0 when nothing ran.
func ExitCode() int {
	return exitCode
}

// newOperationCommand builds a subcommand that runs op on the package
// manager selected through config and persistent flags.
func newOperationCommand(op flows.Operation, use, short string) *cobra.Command {
	var flags []string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := executeOperationFlow(cmd.Context(), op, args, flags)
			if err != nil {
				ui.ErrorExit(err)
			}

			// Mirrored by main, scripts and CI depend on it
			exitCode = code
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&flags, "flag", nil,
		"Extra flag passed to the package manager after the packages (repeatable, replaces configured flags)")

	return cmd
}

func executeOperationFlow(ctx context.Context, op flows.Operation, packages, flags []string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := flows.Invocation(op, packages, flags).Run(ctx, config.Get())
	if err != nil {
		return 1, err
	}

	return result.ExitCode, nil
}
