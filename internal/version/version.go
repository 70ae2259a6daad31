package version

import runtimeDebug "runtime/debug"

// Set at build time with -ldflags "-X github.com/safedep/pmb/internal/version.Version=..."
var (
	Version string
	Commit  string
)

func init() {
	if Version == "" {
		if buildInfo, ok := runtimeDebug.ReadBuildInfo(); ok {
			Version = buildInfo.Main.Version
		}
	}

	if Version == "" {
		Version = "(devel)"
	}
}
