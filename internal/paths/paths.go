// Package paths resolves the MixMaster state directory and the files inside it.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnvVar overrides the default state directory location
	HomeEnvVar = "MIXMASTER_HOME"
	// DefaultHomeDir is the state directory under the user's home
	DefaultHomeDir = ".mixmaster"

	// ConfigFileName is the config file inside the state directory
	ConfigFileName = "config.json"
	// DatabaseFileName is the local state database
	DatabaseFileName = "mixmaster.db"
	// ThemeFileName is the optional TUI theme override
	ThemeFileName = "theme.yaml"
	// LogsDirName holds TUI session logs
	LogsDirName = "logs"
)

// StateDir returns the MixMaster state directory.
// MIXMASTER_HOME takes precedence; otherwise ~/.mixmaster.
func StateDir() (string, error) {
	if custom := os.Getenv(HomeEnvVar); custom != "" {
		return custom, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultHomeDir), nil
}

// EnsureStateDir creates the state directory and its logs subdirectory.
func EnsureStateDir() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Join(dir, LogsDirName), 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// ConfigPath returns the path of the config file inside the state directory.
func ConfigPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// DatabasePath returns the path of the state database.
func DatabasePath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFileName), nil
}

// ThemePath returns the path of the TUI theme override file.
func ThemePath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ThemeFileName), nil
}

// LogsDir returns the directory for TUI session logs.
func LogsDir() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// ExpandUser expands a leading ~ to the user's home directory.
// Paths without a leading ~ are returned unchanged.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// NormalizePath converts backslashes to forward slashes so dataset
// paths compare equal across platforms.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
