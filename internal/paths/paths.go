// Package paths resolves the configuration directory and database file
// location for the pivot CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DatabaseFileName is the name of the SQLite database inside the data
// directory.
const DatabaseFileName = "pivot.db"

// Environment variable overrides.
const (
	EnvConfigDir = "PIVOT_CONFIG_DIR"
	EnvDBPath    = "PIVOT_DB_PATH"
)

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/pivot (fallback ~/.config/pivot)
// macOS:   ~/Library/Application Support/pivot
// Windows: %APPDATA%/pivot
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "pivot"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "pivot"), nil
	default:
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "pivot"), nil
	}
}

// DefaultDBPath returns the platform-specific default database location.
//
// Linux:   $XDG_DATA_HOME/pivot/pivot.db (fallback ~/.local/share/pivot/pivot.db)
// macOS:   ~/Library/Application Support/pivot/pivot.db
// Windows: %APPDATA%/pivot/pivot.db
func DefaultDBPath() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "pivot", DatabaseFileName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "pivot", DatabaseFileName), nil
	default:
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "pivot", DatabaseFileName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > PIVOT_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDBPath returns the database file path following the precedence
// chain: flag > config.yaml db_path > PIVOT_DB_PATH env > DefaultDBPath().
func ResolveDBPath(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDBPath); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDBPath()
}
