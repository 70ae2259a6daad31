package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// This file centralizes all path-related helpers for the config package.

const (
	pmbConfigName = "config"
	pmbConfigType = "yml"
	pmbConfigPath = "safedep/pmb"

	PMB_CONFIG_DIR_ENV = "PMB_CONFIG_DIR"
)

// ConfigDir returns the base application config directory.
// If the PMB_CONFIG_DIR environment variable is set, its value is used as the base before appending safedep/pmb.
// Otherwise, the defaults are:
// - macOS:   ~/Library/Application Support/safedep/pmb
// - Linux:   ~/.config/safedep/pmb
// - Windows: %AppData%\safedep\pmb
func ConfigDir() (string, error) {
	dir := os.Getenv(PMB_CONFIG_DIR_ENV)
	if dir != "" {
		return filepath.Join(dir, pmbConfigPath), nil
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to retrieve user config directory: %w", err)
	}

	return filepath.Join(userConfigDir, pmbConfigPath), nil
}

// createConfigDir ensures the application config directory exists and returns its path.
func createConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return dir, nil
}

// ConfigFilePath returns the absolute path to the main PMB config file (e.g., config.yml),
// without creating any directories.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", pmbConfigName, pmbConfigType)), nil
}
