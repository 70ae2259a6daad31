package setup

import (
	"testing"

	"github.com/safedep/pmb/config"
	"github.com/stretchr/testify/assert"
)

func TestSetupInfo(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Config.Manager = "yarn"
	cfg.Config.Flags = map[string][]string{
		"yarn": {"--exact"},
		"npm":  {"--no-audit", "--no-fund"},
		"pnpm": {},
	}

	info := setupInfo(&cfg)

	assert.Equal(t, "yarn", info["Manager"])
	assert.Equal(t, "(current directory)", info["Directory"])
	assert.Equal(t, "false", info["Global"])
	assert.Equal(t, "true", info["Event logging"])
	assert.Equal(t, "7", info["Log retention days"])
	assert.Equal(t, "npm=--no-audit --no-fund, yarn=--exact", info["Flags"])
}

func TestSetupInfoCustomDirectory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Config.Directory = "./web"
	cfg.Config.SkipEventLogging = true

	info := setupInfo(&cfg)

	assert.Equal(t, "./web", info["Directory"])
	assert.Equal(t, "false", info["Event logging"])
	assert.Empty(t, info["Flags"])
}
