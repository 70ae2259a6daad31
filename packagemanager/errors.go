package packagemanager

import (
	"github.com/safedep/pmb/usefulerror"
)

var (
	ErrUnsupportedManager = usefulerror.Useful().
				WithCode(usefulerror.ErrCodeUnsupportedManager).
				WithHumanError("The requested package manager is not supported.").
				WithHelp("Use one of npm, yarn or pnpm.").
				Msg("unsupported package manager")

	ErrNoOperation = usefulerror.Useful().
			WithCode(usefulerror.ErrCodeNoOperation).
			WithHumanError("No package manager operation was selected.").
			WithHelp("Select an operation such as install or remove before executing.").
			Msg("no operation selected")

	ErrMissingParameter = usefulerror.Useful().
				WithCode(usefulerror.ErrCodeMissingParameter).
				WithHumanError("No packages were given for the operation.").
				WithHelp("Pass at least one package name.").
				Msg("missing parameter")

	ErrDirectoryResolution = usefulerror.Useful().
				WithCode(usefulerror.ErrCodeDirectoryResolution).
				WithHumanError("The working directory could not be resolved or created.").
				WithHelp("Check that the path is valid and that you have permission to create it.").
				Msg("failed to resolve working directory")

	ErrProcessSpawn = usefulerror.Useful().
			WithCode(usefulerror.ErrCodeProcessSpawn).
			WithHumanError("The package manager could not be started.").
			WithHelp("Make sure the package manager is installed and available in your PATH.").
			Msg("failed to start package manager")
)
