package pm

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/safedep/pmb/config"
	"github.com/safedep/pmb/internal/flows"
	"github.com/safedep/pmb/packagemanager"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationCommands(t *testing.T) {
	install := NewInstallCommand()
	assert.Equal(t, "install", install.Name())
	assert.NotNil(t, install.Flags().Lookup("flag"))

	remove := NewRemoveCommand()
	assert.Equal(t, "remove", remove.Name())
	assert.NotNil(t, remove.Flags().Lookup("flag"))
}

func TestExecuteOperationFlowDryRun(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := config.Get()
	saved := *cfg
	t.Cleanup(func() { *cfg = saved })

	cfg.DryRun = true
	cfg.Config.Manager = "yarn"

	exitCode, err := executeOperationFlow(context.Background(), flows.OperationInstall, []string{"typescript"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, exitCode)
}

func TestExecuteOperationFlowMissingPackages(t *testing.T) {
	t.Chdir(t.TempDir())

	exitCode, err := executeOperationFlow(context.Background(), flows.OperationRemove, nil, nil)
	assert.ErrorIs(t, err, packagemanager.ErrMissingParameter)
	assert.Equal(t, 1, exitCode)
}

func TestOperationCommandKeepsExitCodeForMain(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake package manager is a shell script")
	}

	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, "npm"), []byte("#!/bin/sh\nexit 3\n"), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Chdir(t.TempDir())

	cfg := config.Get()
	saved := *cfg
	t.Cleanup(func() { *cfg = saved })
	cfg.Config.Manager = "npm"
	cfg.Config.Directory = ""
	cfg.DryRun = false
	cfg.Async = false

	t.Cleanup(func() { exitCode = 0 })

	postRun := false
	root := &cobra.Command{
		Use: "pmb",
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			postRun = true
		},
	}
	root.AddCommand(NewInstallCommand())
	root.SetArgs([]string{"install", "left-pad"})

	require.NoError(t, root.Execute())
	assert.True(t, postRun)
	assert.Equal(t, 3, ExitCode())
}
