// Package paths resolves the XDG locations sysknife reads and writes:
// the user configuration file and the log file.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile points at an explicit configuration file
	EnvConfigFile = "SYSKNIFE_CONFIG"

	// EnvConfigDir overrides the XDG config directory for sysknife
	EnvConfigDir = "SYSKNIFE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for sysknife
	EnvStateDir = "SYSKNIFE_STATE_DIR"
)

const (
	AppDirName     = "sysknife"
	ConfigFileName = "config.toml"
	LogFileName    = "sysknife.log"
)

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the user configuration file. It may not exist.
func ConfigFilePath() string {
	if file := os.Getenv(EnvConfigFile); file != "" {
		return ExpandHome(file)
	}
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding the log file.
// XDG_STATE_HOME is read on every call so tests can redirect it.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
