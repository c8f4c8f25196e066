package config

import (
	"os"
	"path/filepath"
)

const appName = "floaty"

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GetConfigDir returns the config directory:
// $XDG_CONFIG_HOME/floaty (default: ~/.config/floaty).
// With ENV=dev it is .dev/floaty under the working directory.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
