package setup

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/safedep/pmb/config"
	"github.com/safedep/pmb/internal/ui"
	"github.com/safedep/pmb/internal/version"
	"github.com/spf13/cobra"
)

func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show information about PMB configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintInfoSection(os.Stdout, "PMB", setupInfo(config.Get()))
			return nil
		},
	}
}

func setupInfo(cfg *config.RuntimeConfig) map[string]string {
	flags := []string{}
	for name, f := range cfg.Config.Flags {
		if len(f) > 0 {
			flags = append(flags, fmt.Sprintf("%s=%s", name, strings.Join(f, " ")))
		}
	}

	sort.Strings(flags)

	directory := cfg.Config.Directory
	if directory == "" {
		directory = "(current directory)"
	}

	return map[string]string{
		"Version":            version.Version,
		"Config file":        cfg.ConfigFilePath(),
		"Event log dir":      cfg.EventLogDir(),
		"Event logging":      strconv.FormatBool(!cfg.Config.SkipEventLogging),
		"Log retention days": strconv.Itoa(cfg.Config.EventLogRetentionDays),
		"Manager":            cfg.Config.Manager,
		"Directory":          directory,
		"Global":             strconv.FormatBool(cfg.Config.Global),
		"Flags":              strings.Join(flags, ", "),
	}
}
