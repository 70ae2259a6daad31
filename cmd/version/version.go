package version

import (
	"fmt"
	"runtime"

	"github.com/safedep/pmb/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Version: %s\n", version.Version)
			fmt.Fprintf(out, "CommitSHA: %s\n", version.Commit)
			fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)

			return nil
		},
	}
}
