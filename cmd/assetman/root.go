// Root command for the assetman CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/openpuyo/assetman/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// sysError marks a failure of the environment (config directory,
// filesystem) rather than of the user's request, so main can exit with
// exitSysError instead of exitUserError.
type sysError struct{ err error }

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

// exitCode classifies a command error at the process boundary.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var sys sysError
	if errors.As(err, &sys) {
		return exitSysError
	}
	return exitUserError
}

// Global flag values.
var (
	flagConfigDir string
	flagBundleDir string
	flagJSON      bool
)

// configBundleDir holds the bundle_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configBundleDir string

var rootCmd = &cobra.Command{
	Use:     "assetman",
	Short:   "Assetman resolves game assets across layered bundles",
	Long: `Assetman manages an ordered collection of asset bundles (base game,
mods, skin packs) and resolves image, sound, and animation requests
against them: the first bundle that supplies a clean asset wins.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return sysError{err}
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return sysError{err}
		}

		cliConfig = cfg
		configBundleDir = cfg.GetString(cfgKeyBundleDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagBundleDir, "bundle-dir", "", "bundle directory (default: $(CWD)/bundles)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bundlesCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(backgroundsCmd)
	rootCmd.AddCommand(charskinsCmd)
	rootCmd.AddCommand(sfxCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(soundCmd)
	rootCmd.AddCommand(animCmd)
	rootCmd.AddCommand(watchCmd)
}

// resolveBundleDir returns the bundle directory following the precedence
// chain: --bundle-dir flag > config.yaml bundle_dir > ASSETMAN_BUNDLE_DIR
// env > default $(CWD)/bundles.
func resolveBundleDir() (string, error) {
	return paths.ResolveBundleDir(flagBundleDir, configBundleDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > ASSETMAN_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
