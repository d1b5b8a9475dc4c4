// Package paths resolves configuration and catalog directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultCatalogDirName is the CWD-relative catalog directory name.
const DefaultCatalogDirName = ".datapulse"

// Environment variable names for directory overrides.
const (
	EnvConfigDir  = "DATAPULSE_CONFIG_DIR"
	EnvCatalogDir = "DATAPULSE_CATALOG_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/datapulse (fallback ~/.config/datapulse)
// macOS:   ~/Library/Application Support/datapulse
// Windows: %APPDATA%/datapulse
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "datapulse"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "datapulse"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "datapulse"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DATAPULSE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveCatalogDir returns the catalog directory following the precedence
// chain: flag > config.yaml catalog_dir > DATAPULSE_CATALOG_DIR env >
// default $(CWD)/.datapulse.
//
// The CWD-relative default keeps each working directory's catalog
// independent: a catalog belongs to the project it was created in.
func ResolveCatalogDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvCatalogDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultCatalogDirName), nil
}
