package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// loadViperConfig merges the config file at configPath into rc. A missing file
// is not an error, the defaults stay in place. Environment variables with the
// PMB_ prefix override file values (e.g. PMB_MANAGER=yarn).
func loadViperConfig(rc *RuntimeConfig, configPath string) error {
	v := viper.New()

	v.SetEnvPrefix("PMB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Defaults must be registered for AutomaticEnv to pick up keys that
	// are absent from the file.
	v.SetDefault("manager", rc.Config.Manager)
	v.SetDefault("directory", rc.Config.Directory)
	v.SetDefault("global", rc.Config.Global)
	v.SetDefault("flags", rc.Config.Flags)
	v.SetDefault("skip_event_logging", rc.Config.SkipEventLogging)
	v.SetDefault("event_log_retention_days", rc.Config.EventLogRetentionDays)

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var loadedConfig Config
	if err := v.Unmarshal(&loadedConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if loadedConfig.Flags == nil {
		loadedConfig.Flags = map[string][]string{}
	}

	rc.Config = loadedConfig
	return nil
}
