// Package paths resolves configuration and bundle directory locations
// for the assetman CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative default directory name for bundle sources.
const DefaultBundleDirName = "bundles"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ASSETMAN_CONFIG_DIR"
	EnvBundleDir = "ASSETMAN_BUNDLE_DIR"
)

// platformDir indirects over the stdlib platform lookups so tests can
// substitute failing or canned implementations.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// appDirName is the subdirectory appended to every platform base.
const appDirName = "assetman"

// DefaultConfigDir picks the per-user configuration directory for the
// current platform. Linux honors $XDG_CONFIG_HOME and falls back to
// ~/.config; everywhere else os.UserConfigDir decides (Application
// Support on macOS, %APPDATA% on Windows).
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}

	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ASSETMAN_CONFIG_DIR env > DefaultConfigDir().
//
// If flag is non-empty it wins. Otherwise the ASSETMAN_CONFIG_DIR environment
// variable is checked. If neither is set, the platform default is returned.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveBundleDir returns the bundle directory following the precedence
// chain: flag > configYAMLValue > ASSETMAN_BUNDLE_DIR env > $(CWD)/bundles.
//
// The CWD-relative default keeps a game checkout self-contained when no
// override is active.
func ResolveBundleDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvBundleDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultBundleDirName), nil
}
