package config

import (
	"fmt"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/safedep/dry/log"
)

const (
	// Default log directory is relative to the config directory.
	CONFIG_DEFAULT_LOG_DIR = "logs"

	// Special manager name that selects the manager from lockfiles.
	ManagerAuto = "auto"
)

//go:embed config.template.yml
var templateConfig string

// Config is the global configuration for PMB that can be persisted or loaded from a given source.
type Config struct {
	// Manager is the default package manager: npm, yarn, pnpm or auto.
	Manager string `mapstructure:"manager"`

	// Directory is the default working directory for invocations.
	Directory string `mapstructure:"directory"`

	// Global adds --global to every invocation.
	Global bool `mapstructure:"global"`

	// Flags are extra flags passed after the packages when none are given on the command line.
	// Key is the package manager name (e.g., "npm", "yarn"), value is the list of flags.
	Flags map[string][]string `mapstructure:"flags"`

	// SkipEventLogging allows for skipping event logging.
	SkipEventLogging bool `mapstructure:"skip_event_logging"`

	// EventLogRetentionDays is the number of days to retain event logs.
	EventLogRetentionDays int `mapstructure:"event_log_retention_days"`
}

// FlagsFor returns the configured default flags for a manager.
func (c *Config) FlagsFor(manager string) []string {
	return c.Flags[manager]
}

// RuntimeConfig is the configuration that is used at runtime. It contains static configuration
// that can be loaded from a source and, if allowed, overridden by the user at runtime.
type RuntimeConfig struct {
	Config Config

	// DryRun prints the prepared invocation instead of running it.
	DryRun bool

	// Async starts the package manager and streams its output instead of buffering it.
	Async bool

	// Internal config values computed at runtime and must be accessed via. API
	configDir      string
	configFilePath string
	eventLogDir    string
}

// ConfigDir returns the path to the config directory.
func (r *RuntimeConfig) ConfigDir() string {
	return r.configDir
}

// ConfigFilePath returns the path to the config file.
func (r *RuntimeConfig) ConfigFilePath() string {
	return r.configFilePath
}

// EventLogDir returns the path to the event log directory.
func (r *RuntimeConfig) EventLogDir() string {
	return r.eventLogDir
}

// DefaultConfig is a fail safe contract for the runtime configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Config: Config{
			Manager:               "npm",
			Directory:             "",
			Global:                false,
			Flags:                 map[string][]string{},
			SkipEventLogging:      false,
			EventLogRetentionDays: 7,
		},
		DryRun: false,
		Async:  false,
	}
}

// globalConfig is the global configuration for PMB.
var globalConfig *RuntimeConfig

func init() {
	initConfig()
}

// initConfig should be idempotent and can be called multiple times.
// This is required for testing purposes.
func initConfig() {
	defaultConfig := DefaultConfig()
	globalConfig = &defaultConfig

	configDir, err := ConfigDir()
	if err != nil {
		panic(fmt.Errorf("failed to get config directory: %w", err))
	}

	configFilePath, err := ConfigFilePath()
	if err != nil {
		panic(fmt.Errorf("failed to get config file path: %w", err))
	}

	globalConfig.configDir = configDir
	globalConfig.configFilePath = configFilePath
	globalConfig.eventLogDir = filepath.Join(configDir, CONFIG_DEFAULT_LOG_DIR)

	if err := loadViperConfig(globalConfig, configFilePath); err != nil {
		log.Warnf("Failed to load config file, using defaults: %v", err)
	}
}

// Get returns the global configuration.
// This package guarantees that this function never returns nil.
func Get() *RuntimeConfig {
	return globalConfig
}

// WriteTemplateConfig writes the template configuration file to disk if it doesn't already exist.
// It returns the path of the config file.
func WriteTemplateConfig() (string, error) {
	if _, err := createConfigDir(); err != nil {
		return "", err
	}

	configFilePath, err := ConfigFilePath()
	if err != nil {
		return "", fmt.Errorf("failed to get config file path: %w", err)
	}

	// Do not overwrite the config file if it already exists
	if _, err := os.Stat(configFilePath); err == nil {
		return configFilePath, nil
	}

	if err := os.WriteFile(configFilePath, []byte(templateConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write template config: %w", err)
	}

	return configFilePath, nil
}
