// Config loading for the assetman CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBundleDir = "bundle_dir"
	cfgKeyBundles   = "bundles"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
)

// cliConfig is the loaded config.yaml, set by PersistentPreRunE.
var cliConfig *viper.Viper

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Assetman CLI configuration

# Directory scanned for bundle sources (optional; overridable by --bundle-dir).
# Subdirectories with a manifest.yaml load as folder bundles; *.pak files load
# as packed bundles, in lexical order.
# bundle_dir:

# Explicit ordered bundle list. When set, discovery is skipped and bundles
# resolve in exactly this order (earlier entries shadow later ones).
# bundles:
#   - kind: folder
#     path: bundles/base
#   - kind: pak
#     path: bundles/mods/neon.pak

# Debug log verbosity and format.
log_level: info
log_format: text
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "text")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile writes a commented default config.yaml on
// first run; an existing file is left untouched.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
